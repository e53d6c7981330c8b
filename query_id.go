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
	"strconv"
	"sync/atomic"
)

// queryID is process-global so that ids stay strictly increasing across all
// connections. Starts at zero, never resets.
var queryID uint64

func nextQueryID() string {
	return strconv.FormatUint(atomic.AddUint64(&queryID, 1), 10)
}

type queryOptions struct {
	queryID string
}

type QueryOption func(*queryOptions)

// WithQueryID overrides the generated query id for a single call, e.g. with
// a UUID the caller wants to find in system.query_log later.
func WithQueryID(id string) QueryOption {
	return func(opt *queryOptions) {
		opt.queryID = id
	}
}

func (opt *queryOptions) id() string {
	if opt.queryID != "" {
		return opt.queryID
	}
	return nextQueryID()
}
