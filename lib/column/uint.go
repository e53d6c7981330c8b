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

type UInt8 struct {
	data []uint8
}

func (UInt8) Type() Type {
	return "UInt8"
}

func (col *UInt8) Rows() int {
	return len(col.data)
}

func (col *UInt8) Row(i int) any {
	return col.data[i]
}

func (col *UInt8) Append(v any) error {
	switch v := v.(type) {
	case uint8:
		col.data = append(col.data, v)
	case []uint8:
		col.data = append(col.data, v...)
	default:
		return &ColumnConverterErr{op: "Append", from: fmt.Sprintf("%T", v), to: "UInt8"}
	}
	return nil
}

func (col *UInt8) Decode(decoder *binary.Decoder, rows int) error {
	buf, err := decoder.Fixed(rows)
	if err != nil {
		return err
	}
	col.data = buf
	return nil
}

func (col *UInt8) Encode(encoder *binary.Encoder) error {
	_, err := encoder.Write(col.data)
	return err
}

type UInt16 struct {
	data []uint16
}

func (UInt16) Type() Type {
	return "UInt16"
}

func (col *UInt16) Rows() int {
	return len(col.data)
}

func (col *UInt16) Row(i int) any {
	return col.data[i]
}

func (col *UInt16) Append(v any) error {
	switch v := v.(type) {
	case uint16:
		col.data = append(col.data, v)
	case []uint16:
		col.data = append(col.data, v...)
	default:
		return &ColumnConverterErr{op: "Append", from: fmt.Sprintf("%T", v), to: "UInt16"}
	}
	return nil
}

func (col *UInt16) Decode(decoder *binary.Decoder, rows int) error {
	col.data = make([]uint16, rows)
	for i := 0; i < rows; i++ {
		v, err := decoder.UInt16()
		if err != nil {
			return err
		}
		col.data[i] = v
	}
	return nil
}

func (col *UInt16) Encode(encoder *binary.Encoder) error {
	for _, v := range col.data {
		if err := encoder.UInt16(v); err != nil {
			return err
		}
	}
	return nil
}

type UInt32 struct {
	data []uint32
}

func (UInt32) Type() Type {
	return "UInt32"
}

func (col *UInt32) Rows() int {
	return len(col.data)
}

func (col *UInt32) Row(i int) any {
	return col.data[i]
}

func (col *UInt32) Append(v any) error {
	switch v := v.(type) {
	case uint32:
		col.data = append(col.data, v)
	case []uint32:
		col.data = append(col.data, v...)
	default:
		return &ColumnConverterErr{op: "Append", from: fmt.Sprintf("%T", v), to: "UInt32"}
	}
	return nil
}

func (col *UInt32) Decode(decoder *binary.Decoder, rows int) error {
	col.data = make([]uint32, rows)
	for i := 0; i < rows; i++ {
		v, err := decoder.UInt32()
		if err != nil {
			return err
		}
		col.data[i] = v
	}
	return nil
}

func (col *UInt32) Encode(encoder *binary.Encoder) error {
	for _, v := range col.data {
		if err := encoder.UInt32(v); err != nil {
			return err
		}
	}
	return nil
}

type UInt64 struct {
	data []uint64
}

func (UInt64) Type() Type {
	return "UInt64"
}

func (col *UInt64) Rows() int {
	return len(col.data)
}

func (col *UInt64) Row(i int) any {
	return col.data[i]
}

func (col *UInt64) Append(v any) error {
	switch v := v.(type) {
	case uint64:
		col.data = append(col.data, v)
	case []uint64:
		col.data = append(col.data, v...)
	default:
		return &ColumnConverterErr{op: "Append", from: fmt.Sprintf("%T", v), to: "UInt64"}
	}
	return nil
}

func (col *UInt64) Decode(decoder *binary.Decoder, rows int) error {
	col.data = make([]uint64, rows)
	for i := 0; i < rows; i++ {
		v, err := decoder.UInt64()
		if err != nil {
			return err
		}
		col.data[i] = v
	}
	return nil
}

func (col *UInt64) Encode(encoder *binary.Encoder) error {
	for _, v := range col.data {
		if err := encoder.UInt64(v); err != nil {
			return err
		}
	}
	return nil
}

var (
	_ Interface = (*UInt8)(nil)
	_ Interface = (*UInt16)(nil)
	_ Interface = (*UInt32)(nil)
	_ Interface = (*UInt64)(nil)
)
