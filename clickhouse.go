// Licensed to ClickHouse, Inc. under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. ClickHouse, Inc. licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

// Package clickhouse is a client for the ClickHouse native TCP protocol.
// One Conn owns one socket; all operations on it are synchronous and
// blocking on the caller's goroutine. Query results stream back through a
// caller-supplied QueryEvents sink, block by block.
package clickhouse

import (
	_ "time/tzdata"

	"github.com/ClickHouse/ch-native-go/lib/proto"
)

type (
	Block       = proto.Block
	BlockInfo   = proto.BlockInfo
	Exception   = proto.Exception
	Progress    = proto.Progress
	ProfileInfo = proto.ProfileInfo
	ServerInfo  = proto.ServerHandshake
)

// NewBlock reserves a block for numColumns columns of numRows rows each.
var NewBlock = proto.NewBlock

// Open resolves and dials the configured address, performs the protocol
// handshake, and returns a connection ready for queries.
func Open(opt *Options) (*Conn, error) {
	if opt == nil {
		opt = &Options{}
	}
	o := opt.setDefaults()
	conn, err := dial(o)
	if err != nil {
		return nil, err
	}
	return open(conn, o)
}
