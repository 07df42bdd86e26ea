package fastq

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// IsGzipName reports whether name carries a .gz suffix.
func IsGzipName(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".gz")
}

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// OpenSource opens path for reading, decompressing gzip input detected by
// magic number (1F 8B) or .gz suffix.
func OpenSource(path string) (io.ReadCloser, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := io.ReadFull(fh, sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || IsGzipName(path) {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}

// destWriter buffers writes and, for gzip output, compresses them. Close
// flushes each layer before closing the file and keeps the first error.
type destWriter struct {
	*bufio.Writer
	gz *gzip.Writer
	fh *os.File
}

func (d *destWriter) Close() error {
	err := d.Flush()
	if d.gz != nil {
		if cerr := d.gz.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if cerr := d.fh.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// CreateDest creates path for writing. Without overwrite an existing file
// is an error (os.ErrExist). Names ending in .gz are gzip-compressed.
func CreateDest(path string, overwrite bool) (io.WriteCloser, error) {
	flags := os.O_CREATE | os.O_WRONLY | os.O_EXCL
	if overwrite {
		flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	}
	fh, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, err
	}
	d := &destWriter{fh: fh}
	if IsGzipName(path) {
		d.gz = gzip.NewWriter(fh)
		d.Writer = bufio.NewWriterSize(d.gz, readBufSize)
	} else {
		d.Writer = bufio.NewWriterSize(fh, readBufSize)
	}
	return d, nil
}
