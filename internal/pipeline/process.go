package pipeline

import (
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"github.com/backmassage/pairtag/internal/fastq"
)

// PairStats sums the rewrite stats of both files of a pair.
type PairStats struct {
	Lines    int64
	Headers  int64
	BytesIn  int64
	BytesOut int64
}

func (p *PairStats) add(s fastq.Stats) {
	p.Lines += s.Lines
	p.Headers += s.Headers
	p.BytesIn += s.BytesIn
	p.BytesOut += s.BytesOut
}

// pairEnv is what processPair needs besides the job itself.
type pairEnv struct {
	sourceDir  string
	resultDir  string
	instrument string
	interval   int
	overwrite  bool
	written    *writtenFiles
}

// writtenFiles records every destination created during a run so a failed
// run can remove them. Goroutine-safe.
type writtenFiles struct {
	mu    sync.Mutex
	paths []string
}

func (w *writtenFiles) add(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.paths = append(w.paths, path)
}

func (w *writtenFiles) list() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.paths...)
}

// closeStack closes handles in reverse order of acquisition.
type closeStack []io.Closer

func (c *closeStack) push(h io.Closer) { *c = append(*c, h) }

// Close closes everything and returns the first error.
func (c *closeStack) Close() error {
	var err error
	for i := len(*c) - 1; i >= 0; i-- {
		if cerr := (*c)[i].Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	*c = nil
	return err
}

// processPair opens both sources and both destinations, rewrites the two
// files, and releases all four handles before returning, on every path.
func processPair(j Job, env pairEnv) (st PairStats, err error) {
	var handles closeStack
	defer func() {
		if cerr := handles.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("pair %s: close: %w", j.Pair.Primary, cerr)
		}
	}()

	src1, dst1, err := openFile(&handles, env, j.Pair.Primary, j.PrimaryOut)
	if err != nil {
		return st, err
	}
	src2, dst2, err := openFile(&handles, env, j.Pair.Secondary, j.SecondaryOut)
	if err != nil {
		return st, err
	}

	opts := fastq.Options{
		Tag:            string(j.Tag),
		Instrument:     env.instrument,
		HeaderInterval: env.interval,
	}
	for _, f := range []struct {
		name string
		dst  io.Writer
		src  io.Reader
	}{
		{j.Pair.Primary, dst1, src1},
		{j.Pair.Secondary, dst2, src2},
	} {
		s, err := fastq.Rewrite(f.dst, f.src, opts)
		st.add(s)
		if err != nil {
			return st, fmt.Errorf("%s: %w", f.name, err)
		}
	}
	return st, nil
}

// openFile opens one source and its destination, pushing both on handles.
func openFile(handles *closeStack, env pairEnv, name, out string) (io.Reader, io.Writer, error) {
	src, err := fastq.OpenSource(filepath.Join(env.sourceDir, name))
	if err != nil {
		return nil, nil, fmt.Errorf("open source: %w", err)
	}
	handles.push(src)

	dstPath := filepath.Join(env.resultDir, out)
	dst, err := fastq.CreateDest(dstPath, env.overwrite)
	if err != nil {
		return nil, nil, fmt.Errorf("create result: %w", err)
	}
	env.written.add(dstPath)
	handles.push(dst)
	return src, dst, nil
}
