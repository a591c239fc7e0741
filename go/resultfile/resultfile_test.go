package resultfile

import (
	"os"
	"path/filepath"
	"testing"

	pt "github.com/stoilo/stoilo/go/protocols/task"
	"github.com/stretchr/testify/require"
)

func TestRoundTrips(t *testing.T) {
	var cases = []struct {
		status  pt.ResultStatus
		payload []byte
	}{
		{pt.ResultStatus_SUCCESS, []byte(`42`)},
		{pt.ResultStatus_SUCCESS, []byte(`{"loss": 0.125}`)},
		{pt.ResultStatus_SUCCESS, nil},
		{pt.ResultStatus_USER_ERROR, []byte("ZeroDivisionError")},
		{pt.ResultStatus_SYSTEM_ERROR, []byte("worker runtime missing")},
		// Payloads are EOF-delimited and may contain newlines or digits.
		{pt.ResultStatus_SUCCESS, []byte("[1,\n 2,\n 3]\n")},
		{pt.ResultStatus_USER_ERROR, []byte("012")},
	}
	for _, tc := range cases {
		var status, payload, err = Decode(Encode(tc.status, tc.payload))
		require.NoError(t, err)
		require.Equal(t, tc.status, status)
		require.Equal(t, tc.payload, payload)
	}
}

func TestEncodingIsBitExact(t *testing.T) {
	require.Equal(t, []byte("042"), Encode(pt.ResultStatus_SUCCESS, []byte("42")))
	require.Equal(t, []byte("1boom"), Encode(pt.ResultStatus_USER_ERROR, []byte("boom")))
	require.Equal(t, []byte("2"), Encode(pt.ResultStatus_SYSTEM_ERROR, nil))
}

func TestDecodeRejectsCorruption(t *testing.T) {
	var _, _, err = Decode(nil)
	require.EqualError(t, err, "empty result file")

	_, _, err = Decode([]byte{})
	require.EqualError(t, err, "empty result file")

	_, _, err = Decode([]byte("342"))
	require.EqualError(t, err, `invalid result status byte '3'`)

	_, _, err = Decode([]byte("x42"))
	require.EqualError(t, err, `invalid result status byte 'x'`)
}

func TestReadFile(t *testing.T) {
	var dir = t.TempDir()
	var path = filepath.Join(dir, "result")
	require.NoError(t, os.WriteFile(path, []byte(`0"a result"`), 0644))

	var status, payload, err = ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, pt.ResultStatus_SUCCESS, status)
	require.Equal(t, []byte(`"a result"`), payload)

	_, _, err = ReadFile(filepath.Join(dir, "missing"))
	require.ErrorContains(t, err, "reading result file")
}
