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

package column

import "fmt"

type UnsupportedColumnType struct {
	t Type
}

func (e *UnsupportedColumnType) Error() string {
	return fmt.Sprintf("clickhouse: unsupported column type %q", e.t)
}

type ColumnConverterErr struct {
	op   string
	to   string
	from string
}

func (e *ColumnConverterErr) Error() string {
	return fmt.Sprintf("clickhouse: %s: converting %s to %s is unsupported", e.op, e.from, e.to)
}

type InvalidFixedSizeData struct {
	op       string
	got      int
	expected int
}

func (e *InvalidFixedSizeData) Error() string {
	return fmt.Sprintf("clickhouse [%s]: invalid fixed size data expected %d got %d", e.op, e.expected, e.got)
}
