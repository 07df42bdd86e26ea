package fastq

import (
	"bytes"
	"errors"
	"fmt"
)

// Header field positions, counted from 0 after splitting on ':'.
const (
	InstrumentField = 0
	TagField        = 9
)

// ErrShortHeader is returned for header lines without a field 9.
var ErrShortHeader = errors.New("header has too few fields")

// RewriteHeader returns line with field 0 set to instrument and field 9 set
// to tag plus a newline. The field count is unchanged; anything after field
// 9 is kept as is. line is not modified. A CRLF header loses its '\r' with
// the old field 9, so CRLF input comes out with mixed line endings.
func RewriteHeader(line []byte, tag, instrument string) ([]byte, error) {
	fields := bytes.Split(line, []byte{':'})
	if len(fields) <= TagField {
		return nil, fmt.Errorf("%w: want at least %d, got %d", ErrShortHeader, TagField+1, len(fields))
	}
	fields[InstrumentField] = []byte(instrument)
	fields[TagField] = append([]byte(tag), '\n')
	return bytes.Join(fields, []byte{':'}), nil
}
