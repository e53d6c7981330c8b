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

// Package column implements the closed set of column types the native
// protocol core speaks. Columns are vectors: Decode and Encode move the
// whole column body in one pass, with no per-row framing.
package column

import (
	"strings"

	"github.com/ClickHouse/ch-native-go/lib/binary"
)

// Type is a column type descriptor as it appears on the wire,
// e.g. "UInt32" or "FixedString(16)". Matching is exact and case-sensitive.
type Type string

func (t Type) String() string {
	return string(t)
}

type Interface interface {
	Type() Type
	Rows() int
	Row(i int) any
	Append(v any) error
	Decode(decoder *binary.Decoder, rows int) error
	Encode(encoder *binary.Encoder) error
}

// Column allocates an empty column for the descriptor, or reports the
// descriptor as unsupported. This is the whole registry: anything absent
// from the switch is a protocol error at the data-packet layer.
func (t Type) Column() (Interface, error) {
	switch t {
	case "UInt8":
		return &UInt8{}, nil
	case "UInt16":
		return &UInt16{}, nil
	case "UInt32":
		return &UInt32{}, nil
	case "UInt64":
		return &UInt64{}, nil
	case "Int8":
		return &Int8{}, nil
	case "Int16":
		return &Int16{}, nil
	case "Int32":
		return &Int32{}, nil
	case "Int64":
		return &Int64{}, nil
	case "Float32":
		return &Float32{}, nil
	case "Float64":
		return &Float64{}, nil
	case "String":
		return &String{}, nil
	case "Date":
		return &Date{}, nil
	case "DateTime":
		return &DateTime{}, nil
	}
	if strings.HasPrefix(string(t), "FixedString(") {
		return (&FixedString{}).parse(t)
	}
	return nil, &UnsupportedColumnType{t: t}
}
