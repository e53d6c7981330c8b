package io

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chunkedReadWriter hands out one byte per Read to exercise the
// fill-until-complete contract.
type chunkedReadWriter struct {
	in  bytes.Buffer
	out bytes.Buffer
}

func (rw *chunkedReadWriter) Read(p []byte) (int, error) {
	if rw.in.Len() == 0 {
		return 0, io.EOF
	}
	return rw.in.Read(p[:1])
}

func (rw *chunkedReadWriter) Write(p []byte) (int, error) {
	return rw.out.Write(p)
}

func Test_StreamReadExact(t *testing.T) {
	rw := &chunkedReadWriter{}
	rw.in.WriteString("abcdef")

	stream := NewStreamSize(rw, 4)
	buf := make([]byte, 6)
	n, err := stream.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, []byte("abcdef"), buf)

	// past the end the stream reports EOF, not zero-filled bytes
	_, err = stream.Read(make([]byte, 1))
	assert.ErrorIs(t, err, io.EOF)
}

func Test_StreamShortSource(t *testing.T) {
	rw := &chunkedReadWriter{}
	rw.in.WriteString("ab")

	stream := NewStream(rw)
	_, err := stream.Read(make([]byte, 5))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func Test_StreamWriteBuffersUntilFlush(t *testing.T) {
	rw := &chunkedReadWriter{}
	stream := NewStream(rw)

	_, err := stream.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 0, rw.out.Len())

	require.NoError(t, stream.Flush())
	assert.Equal(t, "hello", rw.out.String())
}
