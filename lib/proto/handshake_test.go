package proto

import (
	"bytes"
	"testing"

	"github.com/ClickHouse/ch-native-go/lib/binary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ClientHandshakeEncode(t *testing.T) {
	var buf bytes.Buffer
	hello := ClientHandshake{
		Database: "default",
		Username: "default",
		Password: "secret",
	}
	require.NoError(t, hello.Encode(binary.NewEncoder(&buf)))

	decoder := binary.NewDecoder(&buf)
	name, err := decoder.String()
	require.NoError(t, err)
	assert.Equal(t, "ClickHouse client", name)
	major, _ := decoder.Uvarint()
	minor, _ := decoder.Uvarint()
	revision, err := decoder.Uvarint()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), major)
	assert.Equal(t, uint64(1), minor)
	assert.Equal(t, uint64(54126), revision)
	for _, want := range []string{"default", "default", "secret"} {
		got, err := decoder.String()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Zero(t, buf.Len())
}

func Test_ServerHandshakeDecode(t *testing.T) {
	var buf bytes.Buffer
	encoder := binary.NewEncoder(&buf)
	encoder.String("ClickHouse")
	encoder.Uvarint(1)
	encoder.Uvarint(1)
	encoder.Uvarint(54126)
	encoder.String("UTC")

	var srv ServerHandshake
	require.NoError(t, srv.Decode(binary.NewDecoder(&buf)))
	assert.Equal(t, "ClickHouse", srv.Name)
	assert.Equal(t, uint64(1), srv.Version.Major)
	assert.Equal(t, uint64(1), srv.Version.Minor)
	assert.Equal(t, uint64(54126), srv.Revision)
	require.NotNil(t, srv.Timezone)
	assert.Equal(t, "UTC", srv.Timezone.String())
}

func Test_ServerHandshakeDecodeBeforeTimezoneGate(t *testing.T) {
	var buf bytes.Buffer
	encoder := binary.NewEncoder(&buf)
	encoder.String("ClickHouse")
	encoder.Uvarint(1)
	encoder.Uvarint(1)
	encoder.Uvarint(DBMS_MIN_REVISION_WITH_SERVER_TIMEZONE - 1)

	var srv ServerHandshake
	require.NoError(t, srv.Decode(binary.NewDecoder(&buf)))
	assert.Nil(t, srv.Timezone)
	assert.Zero(t, buf.Len())
}

func Test_ServerHandshakeTruncated(t *testing.T) {
	var buf bytes.Buffer
	encoder := binary.NewEncoder(&buf)
	encoder.String("ClickHouse")
	encoder.Uvarint(1)

	var srv ServerHandshake
	assert.Error(t, srv.Decode(binary.NewDecoder(&buf)))
}
