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

// Package io layers buffered framing over the raw transport. It separates
// the codec from the socket: anything that can Read and Write bytes can
// carry the protocol, which is how the transcript-replay tests drive the
// connection without a server.
package io

import (
	"bufio"
	"io"
)

const defaultBufferSize = 256 << 10

func NewStream(rw io.ReadWriter) *Stream {
	return NewStreamSize(rw, defaultBufferSize)
}

func NewStreamSize(rw io.ReadWriter, size int) *Stream {
	if size <= 0 {
		size = defaultBufferSize
	}
	return &Stream{
		r: bufio.NewReaderSize(rw, size),
		w: bufio.NewWriterSize(rw, size),
	}
}

// Stream buffers both directions of a byte stream. Read fills the whole
// destination slice or fails; writes accumulate until Flush drains them to
// the underlying transport. Buffered but unflushed bytes are dropped on
// Close.
type Stream struct {
	r *bufio.Reader
	w *bufio.Writer
}

func (s *Stream) Read(p []byte) (int, error) {
	return io.ReadFull(s.r, p)
}

func (s *Stream) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

func (s *Stream) Flush() error {
	return s.w.Flush()
}

func (s *Stream) Close() error {
	s.r = nil
	s.w = nil
	return nil
}
