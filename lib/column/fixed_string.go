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

// FixedString stores rows back to back in a single byte vector; the wire
// layout is rows*size raw bytes with no framing.
type FixedString struct {
	data []byte
	size int
}

func (col *FixedString) parse(t Type) (*FixedString, error) {
	if _, err := fmt.Sscanf(string(t), "FixedString(%d)", &col.size); err != nil || col.size <= 0 {
		return nil, &UnsupportedColumnType{t: t}
	}
	return col, nil
}

func (col *FixedString) Type() Type {
	return Type(fmt.Sprintf("FixedString(%d)", col.size))
}

func (col *FixedString) Size() int {
	return col.size
}

func (col *FixedString) Rows() int {
	if col.size == 0 {
		return 0
	}
	return len(col.data) / col.size
}

func (col *FixedString) Row(i int) any {
	return col.data[i*col.size : (i+1)*col.size]
}

func (col *FixedString) Append(v any) error {
	switch v := v.(type) {
	case []byte:
		if len(v)%col.size != 0 {
			return &InvalidFixedSizeData{op: "Append", got: len(v), expected: col.size}
		}
		col.data = append(col.data, v...)
	case string:
		if len(v) > col.size {
			return &InvalidFixedSizeData{op: "Append", got: len(v), expected: col.size}
		}
		padded := make([]byte, col.size)
		copy(padded, v)
		col.data = append(col.data, padded...)
	default:
		return &ColumnConverterErr{op: "Append", from: fmt.Sprintf("%T", v), to: string(col.Type())}
	}
	return nil
}

func (col *FixedString) Decode(decoder *binary.Decoder, rows int) error {
	buf, err := decoder.Fixed(rows * col.size)
	if err != nil {
		return err
	}
	col.data = buf
	return nil
}

func (col *FixedString) Encode(encoder *binary.Encoder) error {
	_, err := encoder.Write(col.data)
	return err
}

var _ Interface = (*FixedString)(nil)
