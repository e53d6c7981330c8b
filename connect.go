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

package clickhouse

import (
	"net"
	"time"

	"github.com/pkg/errors"
)

func dial(opt *Options) (*connect, error) {
	conn, err := net.DialTimeout("tcp", opt.Addr, opt.DialTimeout)
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s", opt.Addr)
	}
	if tcp, ok := conn.(*net.TCPConn); ok {
		tcp.SetNoDelay(true)
	}
	return &connect{
		Conn:         conn,
		readTimeout:  opt.ReadTimeout,
		writeTimeout: opt.WriteTimeout,
	}, nil
}

// connect applies the per-operation deadlines on top of the raw socket.
// Buffering lives a layer up, in the stream.
type connect struct {
	net.Conn
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func (conn *connect) Read(b []byte) (int, error) {
	if conn.readTimeout != 0 {
		conn.SetReadDeadline(time.Now().Add(conn.readTimeout))
	}
	return conn.Conn.Read(b)
}

func (conn *connect) Write(b []byte) (int, error) {
	if conn.writeTimeout != 0 {
		conn.SetWriteDeadline(time.Now().Add(conn.writeTimeout))
	}
	return conn.Conn.Write(b)
}
