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

const secInDay = 24 * 60 * 60

// Date is a uint16 on the wire: days since 1970-01-01 UTC.
type Date struct {
	data []time.Time
}

func (Date) Type() Type {
	return "Date"
}

func (col *Date) Rows() int {
	return len(col.data)
}

func (col *Date) Row(i int) any {
	return col.data[i]
}

func (col *Date) Append(v any) error {
	switch v := v.(type) {
	case time.Time:
		col.data = append(col.data, v)
	case []time.Time:
		col.data = append(col.data, v...)
	default:
		return &ColumnConverterErr{op: "Append", from: fmt.Sprintf("%T", v), to: "Date"}
	}
	return nil
}

func (col *Date) Decode(decoder *binary.Decoder, rows int) error {
	col.data = make([]time.Time, rows)
	for i := 0; i < rows; i++ {
		v, err := decoder.UInt16()
		if err != nil {
			return err
		}
		col.data[i] = time.Unix(int64(v)*secInDay, 0).UTC()
	}
	return nil
}

func (col *Date) Encode(encoder *binary.Encoder) error {
	for _, v := range col.data {
		if err := encoder.UInt16(uint16(v.Unix() / secInDay)); err != nil {
			return err
		}
	}
	return nil
}

var _ Interface = (*Date)(nil)
