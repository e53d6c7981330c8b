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

package clickhouse

import (
	"context"
	"errors"
	"net"

	"github.com/ClickHouse/ch-native-go/lib/binary"
	chio "github.com/ClickHouse/ch-native-go/lib/io"
	"github.com/ClickHouse/ch-native-go/lib/proto"
	"github.com/ClickHouse/ch-native-go/lib/protocol"
)

// Conn is one native-protocol session. It is not safe for concurrent use;
// distinct connections are independent. Any transport or protocol failure
// closes the socket and leaves the connection unusable, but a server
// exception does not: the server finished that query cleanly and the
// connection stays open.
type Conn struct {
	opt     *Options
	conn    net.Conn
	stream  *chio.Stream
	encoder *binary.Encoder
	decoder *binary.Decoder
	server  proto.ServerHandshake
	events  QueryEvents
	closed  bool
	debugf  func(format string, v ...any)
}

func open(conn net.Conn, opt *Options) (*Conn, error) {
	stream := chio.NewStreamSize(conn, opt.BufferSize)
	c := &Conn{
		opt:     opt,
		conn:    conn,
		stream:  stream,
		encoder: binary.NewEncoder(stream),
		decoder: binary.NewDecoder(stream),
		debugf:  initDebugf(opt),
	}
	if err := c.handshake(opt.Auth); err != nil {
		conn.Close()
		return nil, err
	}
	return c, nil
}

// ServerInfo reports what the server advertised during the handshake.
func (c *Conn) ServerInfo() proto.ServerHandshake {
	return c.server
}

func (c *Conn) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.stream.Close()
	return c.conn.Close()
}

func (c *Conn) handshake(auth Auth) error {
	c.debugf("[handshake] -> %s", proto.ClientHandshake{})
	if err := c.encoder.Uvarint(protocol.ClientHello); err != nil {
		return err
	}
	hello := proto.ClientHandshake{
		Database: auth.Database,
		Username: auth.Username,
		Password: auth.Password,
	}
	if err := hello.Encode(c.encoder); err != nil {
		return err
	}
	if err := c.stream.Flush(); err != nil {
		return err
	}
	packet, err := c.decoder.Uvarint()
	if err != nil {
		return err
	}
	switch packet {
	case protocol.ServerHello:
		if err := c.server.Decode(c.decoder); err != nil {
			return err
		}
		c.debugf("[handshake] <- %s", c.server)
		return nil
	case protocol.ServerException:
		var ex proto.Exception
		if err := ex.Decode(c.decoder); err != nil {
			return err
		}
		return &ex
	default:
		return &UnexpectedPacket{op: "handshake", packet: packet}
	}
}

// Query runs a statement and streams every response packet into events
// until the server signals the end of the stream. The sink is installed for
// the duration of the call only.
func (c *Conn) Query(ctx context.Context, query string, events QueryEvents, opts ...QueryOption) (err error) {
	if c.closed {
		return ErrConnectionClosed
	}
	_, span := startSpan(ctx, "clickhouse.Query", query, c.opt.Addr)
	defer endSpan(span, &err)

	c.events = events
	defer func() {
		c.events = nil
		if r := recover(); r != nil {
			c.Close()
			panic(r)
		}
	}()

	var qopt queryOptions
	for _, o := range opts {
		o(&qopt)
	}
	if err := c.sendQuery(qopt.id(), query); err != nil {
		c.Close()
		return &OpError{Op: "query", Err: err}
	}
	return c.receiveLoop("query", c.opt.RethrowServerExceptions)
}

// Insert sends one block of data into table. The server replies to the
// insert statement with its view of the table schema; the schema block is
// consumed but not validated here, mismatches come back as a server
// exception.
func (c *Conn) Insert(ctx context.Context, table string, block *proto.Block, opts ...QueryOption) (err error) {
	if c.closed {
		return ErrConnectionClosed
	}
	_, span := startSpan(ctx, "clickhouse.Insert", "INSERT INTO "+table, c.opt.Addr)
	defer endSpan(span, &err)

	var qopt queryOptions
	for _, o := range opts {
		o(&qopt)
	}
	if err := c.sendQuery(qopt.id(), "INSERT INTO "+table+" VALUES"); err != nil {
		c.Close()
		return &OpError{Op: "insert", Err: err}
	}

	// The server answers with the table's column schema as a data packet.
	// Progress may arrive first and is skipped.
	for {
		packet, more, err := c.receivePacket()
		if err != nil {
			var ex *proto.Exception
			if errors.As(err, &ex) {
				return ex
			}
			c.Close()
			return err
		}
		if packet == protocol.ServerData {
			break
		}
		if !more {
			c.Close()
			return &UnexpectedPacket{op: "insert", packet: packet}
		}
	}

	if err := c.sendData(block); err != nil {
		c.Close()
		return &OpError{Op: "insert", Err: err}
	}
	if err := c.sendData(proto.NewBlock(0, 0)); err != nil {
		c.Close()
		return &OpError{Op: "insert", Err: err}
	}
	if err := c.stream.Flush(); err != nil {
		c.Close()
		return &OpError{Op: "insert", Err: err}
	}
	return c.receiveLoop("insert", true)
}

// Ping checks connection liveness: one Ping packet out, exactly one Pong
// back. Anything else is a protocol violation.
func (c *Conn) Ping(ctx context.Context) (err error) {
	if c.closed {
		return ErrConnectionClosed
	}
	_, span := startSpan(ctx, "clickhouse.Ping", "", c.opt.Addr)
	defer endSpan(span, &err)

	c.debugf("-> ping")
	if err := c.encoder.Uvarint(protocol.ClientPing); err != nil {
		c.Close()
		return &OpError{Op: "ping", Err: err}
	}
	if err := c.stream.Flush(); err != nil {
		c.Close()
		return &OpError{Op: "ping", Err: err}
	}
	packet, err := c.decoder.Uvarint()
	if err != nil {
		c.Close()
		return &OpError{Op: "ping", Err: err}
	}
	if packet != protocol.ServerPong {
		c.Close()
		return &UnexpectedPacket{op: "ping", packet: packet}
	}
	c.debugf("<- pong")
	return nil
}

func (c *Conn) sendQuery(id, body string) error {
	c.debugf("[send query] id=%s body=%s", id, body)
	if err := c.encoder.Uvarint(protocol.ClientQuery); err != nil {
		return err
	}
	query := proto.Query{ID: id, Body: body}
	if err := query.Encode(c.encoder, c.server.Revision); err != nil {
		return err
	}
	// An empty block closes the query's data channel.
	if err := c.sendData(proto.NewBlock(0, 0)); err != nil {
		return err
	}
	return c.stream.Flush()
}

func (c *Conn) sendData(block *proto.Block) error {
	if err := c.encoder.Uvarint(protocol.ClientData); err != nil {
		return err
	}
	if c.server.Revision >= protocol.DBMS_MIN_REVISION_WITH_TEMPORARY_TABLES {
		if err := c.encoder.String(""); err != nil { // temporary table name
			return err
		}
	}
	return block.Encode(c.encoder, c.server.Revision)
}

// receiveLoop drains server packets until a terminal one. A server
// exception surfaces as an error only when rethrow is set; it never breaks
// the connection.
func (c *Conn) receiveLoop(op string, rethrow bool) error {
	for {
		_, more, err := c.receivePacket()
		if err != nil {
			var ex *proto.Exception
			if errors.As(err, &ex) {
				if rethrow {
					return ex
				}
				return nil
			}
			c.Close()
			return &OpError{Op: op, Err: err}
		}
		if !more {
			return nil
		}
	}
}

// receivePacket consumes exactly one server packet. It reports whether the
// dialog continues; a decoded server exception is returned as the error
// with the sink already notified.
func (c *Conn) receivePacket() (uint64, bool, error) {
	packet, err := c.decoder.Uvarint()
	if err != nil {
		return 0, false, err
	}
	switch packet {
	case protocol.ServerData:
		block, err := c.readData()
		if err != nil {
			return packet, false, err
		}
		c.debugf("[receive packet] <- data: columns=%d, rows=%d", block.Columns(), block.Rows())
		if c.events != nil && block.Rows() != 0 {
			c.events.OnData(block)
		}
		return packet, true, nil
	case protocol.ServerProgress:
		var progress proto.Progress
		if err := progress.Decode(c.decoder, c.server.Revision); err != nil {
			return packet, false, err
		}
		c.debugf("[receive packet] <- progress: %s", &progress)
		if c.events != nil {
			c.events.OnProgress(&progress)
		}
		return packet, true, nil
	case protocol.ServerProfileInfo:
		var profile proto.ProfileInfo
		if err := profile.Decode(c.decoder); err != nil {
			return packet, false, err
		}
		c.debugf("[receive packet] <- profiling: %s", &profile)
		if c.events != nil {
			c.events.OnProfile(&profile)
		}
		return packet, true, nil
	case protocol.ServerPong:
		c.debugf("[receive packet] <- pong")
		return packet, true, nil
	case protocol.ServerEndOfStream:
		c.debugf("[receive packet] <- end of stream")
		if c.events != nil {
			c.events.OnFinish()
		}
		return packet, false, nil
	case protocol.ServerException:
		c.debugf("[receive packet] <- exception")
		var ex proto.Exception
		if err := ex.Decode(c.decoder); err != nil {
			return packet, false, err
		}
		if c.events != nil {
			c.events.OnServerException(&ex)
		}
		return packet, false, &ex
	default:
		return packet, false, &UnexpectedPacket{op: "receive packet", packet: packet}
	}
}

func (c *Conn) readData() (*proto.Block, error) {
	if c.server.Revision >= protocol.DBMS_MIN_REVISION_WITH_TEMPORARY_TABLES {
		if _, err := c.decoder.String(); err != nil { // temporary table name
			return nil, err
		}
	}
	var block proto.Block
	if err := block.Decode(c.decoder, c.server.Revision); err != nil {
		return nil, err
	}
	return &block, nil
}
