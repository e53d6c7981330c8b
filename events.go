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

import "github.com/ClickHouse/ch-native-go/lib/proto"

// QueryEvents receives the server's responses while a query runs. All
// callbacks fire synchronously on the goroutine that called Query, in
// packet arrival order, and must not re-enter the connection.
type QueryEvents interface {
	// OnData fires once per non-empty data block.
	OnData(block *proto.Block)
	// OnProgress fires zero or more times while the server executes.
	OnProgress(progress *proto.Progress)
	// OnProfile fires at most once per query.
	OnProfile(profile *proto.ProfileInfo)
	// OnServerException fires at most once; the query is over afterwards.
	OnServerException(exception *proto.Exception)
	// OnFinish fires exactly once on normal completion.
	OnFinish()
}
