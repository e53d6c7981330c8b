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

import "github.com/ClickHouse/ch-native-go/lib/protocol"

const (
	DBMS_MIN_REVISION_WITH_TEMPORARY_TABLES         = protocol.DBMS_MIN_REVISION_WITH_TEMPORARY_TABLES
	DBMS_MIN_REVISION_WITH_TOTAL_ROWS_IN_PROGRESS   = protocol.DBMS_MIN_REVISION_WITH_TOTAL_ROWS_IN_PROGRESS
	DBMS_MIN_REVISION_WITH_BLOCK_INFO               = protocol.DBMS_MIN_REVISION_WITH_BLOCK_INFO
	DBMS_MIN_REVISION_WITH_CLIENT_INFO              = protocol.DBMS_MIN_REVISION_WITH_CLIENT_INFO
	DBMS_MIN_REVISION_WITH_SERVER_TIMEZONE          = protocol.DBMS_MIN_REVISION_WITH_SERVER_TIMEZONE
	DBMS_MIN_REVISION_WITH_QUOTA_KEY_IN_CLIENT_INFO = protocol.DBMS_MIN_REVISION_WITH_QUOTA_KEY_IN_CLIENT_INFO
)

const (
	ClientName         = protocol.ClientName
	ClientVersionMajor = protocol.ClientVersionMajor
	ClientVersionMinor = protocol.ClientVersionMinor
	ClientRevision     = protocol.ClientRevision
)
