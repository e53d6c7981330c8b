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
	"errors"
	"fmt"
)

// ErrConnectionClosed is returned when an operation is attempted on a
// connection that was closed, either by the caller or after an earlier
// protocol or transport failure.
var ErrConnectionClosed = errors.New("clickhouse: connection is closed")

// UnexpectedPacket is a protocol violation: the server sent a packet code
// the current dialog does not allow.
type UnexpectedPacket struct {
	op     string
	packet uint64
}

func (e *UnexpectedPacket) Error() string {
	return fmt.Sprintf("clickhouse [%s]: unexpected packet %d from server", e.op, e.packet)
}

// OpError wraps a transport or codec failure with the operation it
// interrupted.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("clickhouse [%s]: %s", e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}
