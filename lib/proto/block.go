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

// Package proto holds the packet bodies of the native protocol. Each type
// encodes or decodes itself against a binary codec; the revision argument is
// always the revision the server advertised during the handshake.
package proto

import (
	"fmt"

	"github.com/ClickHouse/ch-native-go/lib/binary"
	"github.com/ClickHouse/ch-native-go/lib/column"
)

// BlockInfo is framed as tagged fields: tag 1 carries is_overflows, tag 2
// carries bucket_num, tag 0 terminates.
type BlockInfo struct {
	IsOverflows bool
	BucketNum   int32
}

func (info *BlockInfo) Encode(encoder *binary.Encoder) error {
	if err := encoder.Uvarint(1); err != nil {
		return err
	}
	if err := encoder.Bool(info.IsOverflows); err != nil {
		return err
	}
	if err := encoder.Uvarint(2); err != nil {
		return err
	}
	if err := encoder.Int32(info.BucketNum); err != nil {
		return err
	}
	return encoder.Uvarint(0)
}

func (info *BlockInfo) Decode(decoder *binary.Decoder) (err error) {
	if _, err = decoder.Uvarint(); err != nil {
		return err
	}
	if info.IsOverflows, err = decoder.Bool(); err != nil {
		return err
	}
	if _, err = decoder.Uvarint(); err != nil {
		return err
	}
	if info.BucketNum, err = decoder.Int32(); err != nil {
		return err
	}
	if _, err = decoder.Uvarint(); err != nil {
		return err
	}
	return nil
}

// Block is the unit of data transfer in both directions: named, typed
// columns sharing one row count. The zero-column, zero-row block is the
// end-of-data marker on the client to server channel.
type Block struct {
	Info    BlockInfo
	names   []string
	columns []column.Interface
	rows    uint64
}

// NewBlock reserves room for numColumns columns of numRows rows each.
// The bucket number starts at -1, matching a block that does not belong to
// any aggregation bucket.
func NewBlock(numColumns, numRows int) *Block {
	return &Block{
		Info:    BlockInfo{BucketNum: -1},
		names:   make([]string, 0, numColumns),
		columns: make([]column.Interface, 0, numColumns),
		rows:    uint64(numRows),
	}
}

func (b *Block) Rows() int {
	return int(b.rows)
}

func (b *Block) Columns() int {
	return len(b.columns)
}

func (b *Block) ColumnNames() []string {
	return b.names
}

func (b *Block) Name(i int) string {
	return b.names[i]
}

func (b *Block) Column(i int) column.Interface {
	return b.columns[i]
}

// AppendColumn adds a column at the back. Row-count agreement with the
// block is checked at encode time, not here, so columns can be appended
// before they are filled.
func (b *Block) AppendColumn(name string, col column.Interface) error {
	if len(name) == 0 {
		return fmt.Errorf("clickhouse [block]: column name is empty")
	}
	b.names = append(b.names, name)
	b.columns = append(b.columns, col)
	return nil
}

func (b *Block) Encode(encoder *binary.Encoder, revision uint64) error {
	if revision >= DBMS_MIN_REVISION_WITH_BLOCK_INFO {
		if err := b.Info.Encode(encoder); err != nil {
			return err
		}
	}
	for i, col := range b.columns {
		if uint64(col.Rows()) != b.rows {
			return fmt.Errorf("clickhouse [block]: column %s has %d rows, block has %d",
				b.names[i], col.Rows(), b.rows)
		}
	}
	if err := encoder.Uvarint(uint64(len(b.columns))); err != nil {
		return err
	}
	if err := encoder.Uvarint(b.rows); err != nil {
		return err
	}
	for i, col := range b.columns {
		if err := encoder.String(b.names[i]); err != nil {
			return err
		}
		if err := encoder.String(string(col.Type())); err != nil {
			return err
		}
		if err := col.Encode(encoder); err != nil {
			return err
		}
	}
	return nil
}

func (b *Block) Decode(decoder *binary.Decoder, revision uint64) (err error) {
	if revision >= DBMS_MIN_REVISION_WITH_BLOCK_INFO {
		if err := b.Info.Decode(decoder); err != nil {
			return err
		}
	}
	numColumns, err := decoder.Uvarint()
	if err != nil {
		return err
	}
	if b.rows, err = decoder.Uvarint(); err != nil {
		return err
	}
	b.names = make([]string, 0, numColumns)
	b.columns = make([]column.Interface, 0, numColumns)
	for i := 0; i < int(numColumns); i++ {
		columnName, err := decoder.String()
		if err != nil {
			return err
		}
		columnType, err := decoder.String()
		if err != nil {
			return err
		}
		col, err := column.Type(columnType).Column()
		if err != nil {
			return err
		}
		if b.rows != 0 {
			if err := col.Decode(decoder, int(b.rows)); err != nil {
				return err
			}
		}
		if err := b.AppendColumn(columnName, col); err != nil {
			return err
		}
	}
	return nil
}
