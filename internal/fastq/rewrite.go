package fastq

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

const readBufSize = 64 * 1024

// Options controls a rewrite.
type Options struct {
	Tag            string
	Instrument     string
	HeaderInterval int // Lines 0, N, 2N, ... are headers. Zero means 4.
}

// Stats counts what a rewrite did.
type Stats struct {
	Lines    int64
	Headers  int64
	BytesIn  int64
	BytesOut int64
}

// Rewrite streams src to dst line by line, rewriting header lines with
// [RewriteHeader] and copying the rest verbatim. A final line without a
// newline is copied as is unless it is a header.
func Rewrite(dst io.Writer, src io.Reader, opts Options) (Stats, error) {
	interval := opts.HeaderInterval
	if interval <= 0 {
		interval = 4
	}

	var st Stats
	r := bufio.NewReaderSize(src, readBufSize)
	var long []byte
	for i := int64(0); ; i++ {
		line, err := readLine(r, &long)
		if len(line) > 0 {
			st.Lines++
			st.BytesIn += int64(len(line))
			out := line
			if i%int64(interval) == 0 {
				var herr error
				out, herr = RewriteHeader(line, opts.Tag, opts.Instrument)
				if herr != nil {
					return st, fmt.Errorf("line %d: %w", i+1, herr)
				}
				st.Headers++
			}
			n, werr := dst.Write(out)
			st.BytesOut += int64(n)
			if werr != nil {
				return st, werr
			}
		}
		if errors.Is(err, io.EOF) {
			return st, nil
		}
		if err != nil {
			return st, err
		}
	}
}

// readLine returns the next line including its newline. Lines longer than
// the reader buffer are assembled in *long, which is reused across calls.
// The returned slice is only valid until the next call.
func readLine(r *bufio.Reader, long *[]byte) ([]byte, error) {
	line, err := r.ReadSlice('\n')
	if !errors.Is(err, bufio.ErrBufferFull) {
		return line, err
	}
	*long = append((*long)[:0], line...)
	for errors.Is(err, bufio.ErrBufferFull) {
		line, err = r.ReadSlice('\n')
		*long = append(*long, line...)
	}
	return *long, err
}
