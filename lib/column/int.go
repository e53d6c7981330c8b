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

type Int8 struct {
	data []int8
}

func (Int8) Type() Type {
	return "Int8"
}

func (col *Int8) Rows() int {
	return len(col.data)
}

func (col *Int8) Row(i int) any {
	return col.data[i]
}

func (col *Int8) Append(v any) error {
	switch v := v.(type) {
	case int8:
		col.data = append(col.data, v)
	case []int8:
		col.data = append(col.data, v...)
	default:
		return &ColumnConverterErr{op: "Append", from: fmt.Sprintf("%T", v), to: "Int8"}
	}
	return nil
}

func (col *Int8) Decode(decoder *binary.Decoder, rows int) error {
	col.data = make([]int8, rows)
	for i := 0; i < rows; i++ {
		v, err := decoder.Int8()
		if err != nil {
			return err
		}
		col.data[i] = v
	}
	return nil
}

func (col *Int8) Encode(encoder *binary.Encoder) error {
	for _, v := range col.data {
		if err := encoder.Int8(v); err != nil {
			return err
		}
	}
	return nil
}

type Int16 struct {
	data []int16
}

func (Int16) Type() Type {
	return "Int16"
}

func (col *Int16) Rows() int {
	return len(col.data)
}

func (col *Int16) Row(i int) any {
	return col.data[i]
}

func (col *Int16) Append(v any) error {
	switch v := v.(type) {
	case int16:
		col.data = append(col.data, v)
	case []int16:
		col.data = append(col.data, v...)
	default:
		return &ColumnConverterErr{op: "Append", from: fmt.Sprintf("%T", v), to: "Int16"}
	}
	return nil
}

func (col *Int16) Decode(decoder *binary.Decoder, rows int) error {
	col.data = make([]int16, rows)
	for i := 0; i < rows; i++ {
		v, err := decoder.Int16()
		if err != nil {
			return err
		}
		col.data[i] = v
	}
	return nil
}

func (col *Int16) Encode(encoder *binary.Encoder) error {
	for _, v := range col.data {
		if err := encoder.Int16(v); err != nil {
			return err
		}
	}
	return nil
}

type Int32 struct {
	data []int32
}

func (Int32) Type() Type {
	return "Int32"
}

func (col *Int32) Rows() int {
	return len(col.data)
}

func (col *Int32) Row(i int) any {
	return col.data[i]
}

func (col *Int32) Append(v any) error {
	switch v := v.(type) {
	case int32:
		col.data = append(col.data, v)
	case []int32:
		col.data = append(col.data, v...)
	default:
		return &ColumnConverterErr{op: "Append", from: fmt.Sprintf("%T", v), to: "Int32"}
	}
	return nil
}

func (col *Int32) Decode(decoder *binary.Decoder, rows int) error {
	col.data = make([]int32, rows)
	for i := 0; i < rows; i++ {
		v, err := decoder.Int32()
		if err != nil {
			return err
		}
		col.data[i] = v
	}
	return nil
}

func (col *Int32) Encode(encoder *binary.Encoder) error {
	for _, v := range col.data {
		if err := encoder.Int32(v); err != nil {
			return err
		}
	}
	return nil
}

type Int64 struct {
	data []int64
}

func (Int64) Type() Type {
	return "Int64"
}

func (col *Int64) Rows() int {
	return len(col.data)
}

func (col *Int64) Row(i int) any {
	return col.data[i]
}

func (col *Int64) Append(v any) error {
	switch v := v.(type) {
	case int64:
		col.data = append(col.data, v)
	case []int64:
		col.data = append(col.data, v...)
	default:
		return &ColumnConverterErr{op: "Append", from: fmt.Sprintf("%T", v), to: "Int64"}
	}
	return nil
}

func (col *Int64) Decode(decoder *binary.Decoder, rows int) error {
	col.data = make([]int64, rows)
	for i := 0; i < rows; i++ {
		v, err := decoder.Int64()
		if err != nil {
			return err
		}
		col.data[i] = v
	}
	return nil
}

func (col *Int64) Encode(encoder *binary.Encoder) error {
	for _, v := range col.data {
		if err := encoder.Int64(v); err != nil {
			return err
		}
	}
	return nil
}

var (
	_ Interface = (*Int8)(nil)
	_ Interface = (*Int16)(nil)
	_ Interface = (*Int32)(nil)
	_ Interface = (*Int64)(nil)
)
