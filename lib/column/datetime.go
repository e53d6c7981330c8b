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

import (
	"fmt"
	"time"

	"github.com/ClickHouse/ch-native-go/lib/binary"
)

// DateTime is a uint32 on the wire: seconds since 1970-01-01 UTC.
type DateTime struct {
	data []time.Time
}

func (DateTime) Type() Type {
	return "DateTime"
}

func (col *DateTime) Rows() int {
	return len(col.data)
}

func (col *DateTime) Row(i int) any {
	return col.data[i]
}

func (col *DateTime) Append(v any) error {
	switch v := v.(type) {
	case time.Time:
		col.data = append(col.data, v)
	case []time.Time:
		col.data = append(col.data, v...)
	default:
		return &ColumnConverterErr{op: "Append", from: fmt.Sprintf("%T", v), to: "DateTime"}
	}
	return nil
}

func (col *DateTime) Decode(decoder *binary.Decoder, rows int) error {
	col.data = make([]time.Time, rows)
	for i := 0; i < rows; i++ {
		v, err := decoder.UInt32()
		if err != nil {
			return err
		}
		col.data[i] = time.Unix(int64(v), 0).UTC()
	}
	return nil
}

func (col *DateTime) Encode(encoder *binary.Encoder) error {
	for _, v := range col.data {
		if err := encoder.UInt32(uint32(v.Unix())); err != nil {
			return err
		}
	}
	return nil
}

var _ Interface = (*DateTime)(nil)
