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

type Float32 struct {
	data []float32
}

func (Float32) Type() Type {
	return "Float32"
}

func (col *Float32) Rows() int {
	return len(col.data)
}

func (col *Float32) Row(i int) any {
	return col.data[i]
}

func (col *Float32) Append(v any) error {
	switch v := v.(type) {
	case float32:
		col.data = append(col.data, v)
	case []float32:
		col.data = append(col.data, v...)
	default:
		return &ColumnConverterErr{op: "Append", from: fmt.Sprintf("%T", v), to: "Float32"}
	}
	return nil
}

func (col *Float32) Decode(decoder *binary.Decoder, rows int) error {
	col.data = make([]float32, rows)
	for i := 0; i < rows; i++ {
		v, err := decoder.Float32()
		if err != nil {
			return err
		}
		col.data[i] = v
	}
	return nil
}

func (col *Float32) Encode(encoder *binary.Encoder) error {
	for _, v := range col.data {
		if err := encoder.Float32(v); err != nil {
			return err
		}
	}
	return nil
}

type Float64 struct {
	data []float64
}

func (Float64) Type() Type {
	return "Float64"
}

func (col *Float64) Rows() int {
	return len(col.data)
}

func (col *Float64) Row(i int) any {
	return col.data[i]
}

func (col *Float64) Append(v any) error {
	switch v := v.(type) {
	case float64:
		col.data = append(col.data, v)
	case []float64:
		col.data = append(col.data, v...)
	default:
		return &ColumnConverterErr{op: "Append", from: fmt.Sprintf("%T", v), to: "Float64"}
	}
	return nil
}

func (col *Float64) Decode(decoder *binary.Decoder, rows int) error {
	col.data = make([]float64, rows)
	for i := 0; i < rows; i++ {
		v, err := decoder.Float64()
		if err != nil {
			return err
		}
		col.data[i] = v
	}
	return nil
}

func (col *Float64) Encode(encoder *binary.Encoder) error {
	for _, v := range col.data {
		if err := encoder.Float64(v); err != nil {
			return err
		}
	}
	return nil
}

var (
	_ Interface = (*Float32)(nil)
	_ Interface = (*Float64)(nil)
)
