// Package resultfile reads and writes the worker result file:
// a single leading ASCII digit encoding the ResultStatus, followed by the
// payload bytes. There is no length prefix; EOF delimits the payload.
// For SUCCESS the payload is a UTF-8 JSON document, and for the two error
// statuses it's a UTF-8 diagnostic string.
package resultfile

import (
	"fmt"
	"os"

	pt "github.com/stoilo/stoilo/go/protocols/task"
)

// Encode the status and payload as result-file bytes.
func Encode(status pt.ResultStatus, payload []byte) []byte {
	var out = make([]byte, 0, 1+len(payload))
	out = append(out, '0'+byte(status))
	return append(out, payload...)
}

// Decode result-file bytes into their status and payload.
// A file which is empty, or whose lead byte isn't a known status digit,
// is corrupted.
func Decode(data []byte) (pt.ResultStatus, []byte, error) {
	if len(data) == 0 {
		return 0, nil, fmt.Errorf("empty result file")
	}
	var status = pt.ResultStatus(data[0] - '0')
	if _, ok := pt.ResultStatus_name[int32(status)]; !ok {
		return 0, nil, fmt.Errorf("invalid result status byte %q", data[0])
	}
	return status, data[1:], nil
}

// ReadFile reads and decodes the result file at |path|.
func ReadFile(path string) (pt.ResultStatus, []byte, error) {
	var data, err = os.ReadFile(path)
	if err != nil {
		return 0, nil, fmt.Errorf("reading result file: %w", err)
	}
	return Decode(data)
}
