package proto

import (
	"bytes"
	"testing"

	"github.com/ClickHouse/ch-native-go/lib/binary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drainClientInfo consumes an encoded ClientInfo and returns the reported
// client revision.
func drainClientInfo(t *testing.T, decoder *binary.Decoder, revision uint64) uint64 {
	t.Helper()
	kind, err := decoder.UInt8()
	require.NoError(t, err)
	assert.Equal(t, uint8(1), kind)
	for _, field := range []string{"initial_user", "initial_query_id", "initial_address"} {
		_, err := decoder.String()
		require.NoError(t, err, field)
	}
	iface, err := decoder.UInt8()
	require.NoError(t, err)
	assert.Equal(t, uint8(1), iface)
	for _, field := range []string{"os_user", "hostname", "client_name"} {
		_, err := decoder.String()
		require.NoError(t, err, field)
	}
	major, _ := decoder.Uvarint()
	minor, _ := decoder.Uvarint()
	clientRevision, err := decoder.Uvarint()
	require.NoError(t, err)
	assert.Equal(t, uint64(ClientVersionMajor), major)
	assert.Equal(t, uint64(ClientVersionMinor), minor)
	if revision >= DBMS_MIN_REVISION_WITH_QUOTA_KEY_IN_CLIENT_INFO {
		_, err := decoder.String()
		require.NoError(t, err)
	}
	return clientRevision
}

func Test_QueryEncode(t *testing.T) {
	var buf bytes.Buffer
	query := Query{ID: "42", Body: "SELECT 1"}
	require.NoError(t, query.Encode(binary.NewEncoder(&buf), 54126))

	decoder := binary.NewDecoder(&buf)
	id, err := decoder.String()
	require.NoError(t, err)
	assert.Equal(t, "42", id)

	clientRevision := drainClientInfo(t, decoder, 54126)
	assert.Equal(t, uint64(ClientRevision), clientRevision)

	settings, err := decoder.String()
	require.NoError(t, err)
	assert.Empty(t, settings)

	stage, err := decoder.Uvarint()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), stage)

	compression, err := decoder.Uvarint()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), compression)

	body, err := decoder.String()
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1", body)
	assert.Zero(t, buf.Len())
}

func Test_QueryEncodeBeforeQuotaKeyGate(t *testing.T) {
	const revision = DBMS_MIN_REVISION_WITH_QUOTA_KEY_IN_CLIENT_INFO - 1

	var buf bytes.Buffer
	query := Query{ID: "1", Body: "SELECT 1"}
	require.NoError(t, query.Encode(binary.NewEncoder(&buf), revision))

	decoder := binary.NewDecoder(&buf)
	_, err := decoder.String()
	require.NoError(t, err)
	drainClientInfo(t, decoder, revision)
	settings, err := decoder.String()
	require.NoError(t, err)
	assert.Empty(t, settings)
}

func Test_QueryEncodeBeforeClientInfoGate(t *testing.T) {
	const revision = DBMS_MIN_REVISION_WITH_CLIENT_INFO - 1

	var buf bytes.Buffer
	query := Query{ID: "7", Body: "SELECT 1"}
	require.NoError(t, query.Encode(binary.NewEncoder(&buf), revision))

	// without ClientInfo the settings terminator follows the id directly
	decoder := binary.NewDecoder(&buf)
	id, err := decoder.String()
	require.NoError(t, err)
	assert.Equal(t, "7", id)
	settings, err := decoder.String()
	require.NoError(t, err)
	assert.Empty(t, settings)
	stage, err := decoder.Uvarint()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), stage)
}
