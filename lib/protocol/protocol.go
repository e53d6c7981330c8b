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

// Package protocol declares the native TCP protocol constants shared by the
// codec and the connection state machine. Revision gates are inclusive lower
// bounds compared against the revision the server advertised in its Hello
// packet.
package protocol

const (
	DBMS_MIN_REVISION_WITH_TEMPORARY_TABLES         = 50264
	DBMS_MIN_REVISION_WITH_TOTAL_ROWS_IN_PROGRESS   = 51554
	DBMS_MIN_REVISION_WITH_BLOCK_INFO               = 51903
	DBMS_MIN_REVISION_WITH_CLIENT_INFO              = 54032
	DBMS_MIN_REVISION_WITH_SERVER_TIMEZONE          = 54058
	DBMS_MIN_REVISION_WITH_QUOTA_KEY_IN_CLIENT_INFO = 54060
)

// Client-emitted identity. The revision doubles as the feature-gate floor
// the server applies when talking back to us.
const (
	ClientName         = "ClickHouse client"
	ClientVersionMajor = 1
	ClientVersionMinor = 1
	ClientRevision     = 54126
)

const (
	ClientHello  = 0
	ClientQuery  = 1
	ClientData   = 2
	ClientCancel = 3
	ClientPing   = 4
)

const (
	ServerHello       = 0
	ServerData        = 1
	ServerException   = 2
	ServerProgress    = 3
	ServerPong        = 4
	ServerEndOfStream = 5
	ServerProfileInfo = 6
)

const (
	CompressDisable uint64 = 0
	CompressEnable  uint64 = 1
)

const (
	StateComplete = 2
)

const (
	// ClientQueryInitial is the query_kind a client sets on queries it
	// originates itself, as opposed to queries forwarded between servers.
	ClientQueryInitial = 1

	// InterfaceTCP identifies the native protocol in ClientInfo.
	InterfaceTCP = 1
)
