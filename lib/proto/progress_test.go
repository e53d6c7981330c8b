package proto

import (
	"bytes"
	"testing"

	"github.com/ClickHouse/ch-native-go/lib/binary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ProgressDecode(t *testing.T) {
	var buf bytes.Buffer
	encoder := binary.NewEncoder(&buf)
	encoder.Uvarint(10)
	encoder.Uvarint(80)
	encoder.Uvarint(100)

	var progress Progress
	require.NoError(t, progress.Decode(binary.NewDecoder(&buf), 54126))
	assert.Equal(t, Progress{Rows: 10, Bytes: 80, TotalRows: 100}, progress)
}

func Test_ProgressDecodeBeforeTotalRowsGate(t *testing.T) {
	var buf bytes.Buffer
	encoder := binary.NewEncoder(&buf)
	encoder.Uvarint(10)
	encoder.Uvarint(80)

	var progress Progress
	require.NoError(t, progress.Decode(binary.NewDecoder(&buf), DBMS_MIN_REVISION_WITH_TOTAL_ROWS_IN_PROGRESS-1))
	assert.Equal(t, Progress{Rows: 10, Bytes: 80}, progress)
	assert.Zero(t, buf.Len())
}

func Test_ProfileInfoDecode(t *testing.T) {
	var buf bytes.Buffer
	encoder := binary.NewEncoder(&buf)
	encoder.Uvarint(100)  // rows
	encoder.Uvarint(2)    // blocks
	encoder.Uvarint(8000) // bytes
	encoder.Bool(true)    // applied_limit
	encoder.Uvarint(1000) // rows_before_limit
	encoder.Bool(false)   // calculated_rows_before_limit

	var profile ProfileInfo
	require.NoError(t, profile.Decode(binary.NewDecoder(&buf)))
	assert.Equal(t, ProfileInfo{
		Rows:            100,
		Blocks:          2,
		Bytes:           8000,
		AppliedLimit:    true,
		RowsBeforeLimit: 1000,
	}, profile)
}
