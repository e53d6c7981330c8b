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

	"github.com/ClickHouse/ch-native-go/lib/binary"
)

type String struct {
	data []string
}

func (String) Type() Type {
	return "String"
}

func (col *String) Rows() int {
	return len(col.data)
}

func (col *String) Row(i int) any {
	return col.data[i]
}

func (col *String) Append(v any) error {
	switch v := v.(type) {
	case string:
		col.data = append(col.data, v)
	case []string:
		col.data = append(col.data, v...)
	case []byte:
		col.data = append(col.data, string(v))
	default:
		return &ColumnConverterErr{op: "Append", from: fmt.Sprintf("%T", v), to: "String"}
	}
	return nil
}

func (col *String) Decode(decoder *binary.Decoder, rows int) error {
	col.data = make([]string, rows)
	for i := 0; i < rows; i++ {
		v, err := decoder.String()
		if err != nil {
			return err
		}
		col.data[i] = v
	}
	return nil
}

func (col *String) Encode(encoder *binary.Encoder) error {
	for _, v := range col.data {
		if err := encoder.String(v); err != nil {
			return err
		}
	}
	return nil
}

var _ Interface = (*String)(nil)
