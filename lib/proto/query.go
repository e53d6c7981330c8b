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

package proto

import (
	"os"

	"github.com/ClickHouse/ch-native-go/lib/binary"
	"github.com/ClickHouse/ch-native-go/lib/protocol"
)

var (
	osUser      = os.Getenv("USER")
	hostname, _ = os.Hostname()
)

// InitialAddress is what this client reports as the query's origin; the
// server only records it.
const InitialAddress = "[::ffff:127.0.0.1]:0"

type Query struct {
	ID       string
	Body     string
	QuotaKey string
}

func (q *Query) Encode(encoder *binary.Encoder, revision uint64) error {
	if err := encoder.String(q.ID); err != nil {
		return err
	}
	if revision >= DBMS_MIN_REVISION_WITH_CLIENT_INFO {
		if err := q.encodeClientInfo(encoder, revision); err != nil {
			return err
		}
	}
	// No per-query settings; the empty string terminates the list.
	if err := encoder.String(""); err != nil {
		return err
	}
	if err := encoder.Uvarint(protocol.StateComplete); err != nil {
		return err
	}
	if err := encoder.Uvarint(protocol.CompressDisable); err != nil {
		return err
	}
	return encoder.String(q.Body)
}

func (q *Query) encodeClientInfo(encoder *binary.Encoder, revision uint64) error {
	if err := encoder.UInt8(protocol.ClientQueryInitial); err != nil {
		return err
	}
	encoder.String("")             // initial_user
	encoder.String("")             // initial_query_id
	encoder.String(InitialAddress) // initial_address
	encoder.UInt8(protocol.InterfaceTCP)
	encoder.String(osUser)
	encoder.String(hostname)
	encoder.String(ClientName)
	encoder.Uvarint(ClientVersionMajor)
	encoder.Uvarint(ClientVersionMinor)
	if err := encoder.Uvarint(ClientRevision); err != nil {
		return err
	}
	if revision >= DBMS_MIN_REVISION_WITH_QUOTA_KEY_IN_CLIENT_INFO {
		return encoder.String(q.QuotaKey)
	}
	return nil
}
