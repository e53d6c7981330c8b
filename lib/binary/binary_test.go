package binary

import (
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testErrorReadWriter struct{}

func (*testErrorReadWriter) Read([]byte) (int, error)  { return 0, io.EOF }
func (*testErrorReadWriter) Write([]byte) (int, error) { return 0, io.EOF }

func Test_Uvarint(t *testing.T) {
	var (
		buf     bytes.Buffer
		encoder = NewEncoder(&buf)
		decoder = NewDecoder(&buf)
	)

	for i := uint64(1); i < 1000000000000000; i *= 42 {
		if err := encoder.Uvarint(i); assert.NoError(t, err) {
			if v, err := decoder.Uvarint(); assert.NoError(t, err) {
				assert.Equal(t, i, v)
			}
		}
	}

	if err := encoder.Uvarint(math.MaxUint64); assert.NoError(t, err) {
		if v, err := decoder.Uvarint(); assert.NoError(t, err) {
			assert.Equal(t, uint64(math.MaxUint64), v)
		}
	}

	if err := NewEncoder(&testErrorReadWriter{}).Uvarint(0); assert.Error(t, err) {
		assert.Equal(t, io.EOF, err)
	}

	if v, err := NewDecoder(&testErrorReadWriter{}).Uvarint(); assert.Error(t, err) {
		assert.Equal(t, uint64(0), v)
	}
}

func Test_UvarintMinimalLength(t *testing.T) {
	for _, tt := range []struct {
		value uint64
		len   int
	}{
		{0, 1},
		{127, 1},
		{128, 2},
		{16383, 2},
		{16384, 3},
		{(1 << 35) - 1, 5},
		{1 << 35, 6},
		{math.MaxUint64, 10},
	} {
		var buf bytes.Buffer
		require.NoError(t, NewEncoder(&buf).Uvarint(tt.value))
		assert.Equal(t, tt.len, buf.Len(), "value %d", tt.value)
	}
}

func Test_UvarintRejectsOverlong(t *testing.T) {
	// ten continuation bytes: the value never terminates
	{
		raw := bytes.Repeat([]byte{0x80}, 10)
		_, err := NewDecoder(bytes.NewReader(raw)).Uvarint()
		assert.Error(t, err)
	}
	// tenth byte carries bits beyond the 64th
	{
		raw := append(bytes.Repeat([]byte{0xff}, 9), 0x02)
		_, err := NewDecoder(bytes.NewReader(raw)).Uvarint()
		assert.Error(t, err)
	}
}

func Test_Boolean(t *testing.T) {
	var (
		buf     bytes.Buffer
		encoder = NewEncoder(&buf)
		decoder = NewDecoder(&buf)
	)

	if err := encoder.Bool(false); assert.NoError(t, err) {
		if v, err := decoder.Bool(); assert.NoError(t, err) {
			assert.False(t, v)
		}
	}

	if err := encoder.Bool(true); assert.NoError(t, err) {
		if v, err := decoder.Bool(); assert.NoError(t, err) {
			assert.True(t, v)
		}
	}
}

func Test_FixedIntegersAreLittleEndian(t *testing.T) {
	var buf bytes.Buffer
	encoder := NewEncoder(&buf)

	require.NoError(t, encoder.UInt16(0x1234))
	assert.Equal(t, []byte{0x34, 0x12}, buf.Bytes())
	buf.Reset()

	require.NoError(t, encoder.UInt32(0x01020304))
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf.Bytes())
	buf.Reset()

	require.NoError(t, encoder.UInt64(0x0102030405060708))
	assert.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, buf.Bytes())
	buf.Reset()

	require.NoError(t, encoder.Int32(-1))
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, buf.Bytes())
}

func Test_IntegerRoundTrip(t *testing.T) {
	var (
		buf     bytes.Buffer
		encoder = NewEncoder(&buf)
		decoder = NewDecoder(&buf)
	)

	require.NoError(t, encoder.Int8(math.MinInt8))
	require.NoError(t, encoder.Int16(math.MinInt16))
	require.NoError(t, encoder.Int32(math.MinInt32))
	require.NoError(t, encoder.Int64(math.MinInt64))
	require.NoError(t, encoder.UInt8(math.MaxUint8))
	require.NoError(t, encoder.UInt16(math.MaxUint16))
	require.NoError(t, encoder.UInt32(math.MaxUint32))
	require.NoError(t, encoder.UInt64(math.MaxUint64))

	{
		v, err := decoder.Int8()
		require.NoError(t, err)
		assert.Equal(t, int8(math.MinInt8), v)
	}
	{
		v, err := decoder.Int16()
		require.NoError(t, err)
		assert.Equal(t, int16(math.MinInt16), v)
	}
	{
		v, err := decoder.Int32()
		require.NoError(t, err)
		assert.Equal(t, int32(math.MinInt32), v)
	}
	{
		v, err := decoder.Int64()
		require.NoError(t, err)
		assert.Equal(t, int64(math.MinInt64), v)
	}
	{
		v, err := decoder.UInt8()
		require.NoError(t, err)
		assert.Equal(t, uint8(math.MaxUint8), v)
	}
	{
		v, err := decoder.UInt16()
		require.NoError(t, err)
		assert.Equal(t, uint16(math.MaxUint16), v)
	}
	{
		v, err := decoder.UInt32()
		require.NoError(t, err)
		assert.Equal(t, uint32(math.MaxUint32), v)
	}
	{
		v, err := decoder.UInt64()
		require.NoError(t, err)
		assert.Equal(t, uint64(math.MaxUint64), v)
	}
}

func Test_FloatRoundTrip(t *testing.T) {
	var (
		buf     bytes.Buffer
		encoder = NewEncoder(&buf)
		decoder = NewDecoder(&buf)
	)
	for _, v := range []float64{0, 1.5, -2.25, math.MaxFloat64, math.SmallestNonzeroFloat64, math.Inf(1)} {
		require.NoError(t, encoder.Float64(v))
		got, err := decoder.Float64()
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	for _, v := range []float32{0, 3.5, -0.125, math.MaxFloat32} {
		require.NoError(t, encoder.Float32(v))
		got, err := decoder.Float32()
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func Test_String(t *testing.T) {
	var (
		buf     bytes.Buffer
		encoder = NewEncoder(&buf)
		decoder = NewDecoder(&buf)
	)

	for _, v := range []string{
		"",
		"hi",
		"embedded\x00nul",
		string(bytes.Repeat([]byte{'x'}, 1000)),
	} {
		require.NoError(t, encoder.String(v))
		got, err := decoder.String()
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func Test_StringWireFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf).String("hi"))
	assert.Equal(t, []byte{0x02, 'h', 'i'}, buf.Bytes())
}

func Test_StringTruncatedPayload(t *testing.T) {
	// length says five bytes, only two follow
	raw := []byte{0x05, 'a', 'b'}
	_, err := NewDecoder(bytes.NewReader(raw)).String()
	assert.Error(t, err)
}
