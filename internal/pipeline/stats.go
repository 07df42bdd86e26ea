package pipeline

import "time"

// RunStats tracks aggregate counters and byte totals across a batch run.
type RunStats struct {
	Total     int // Pairs discovered.
	Converted int
	Failed    int
	Unpaired  int // Files skipped for lacking a role marker.
	Orphans   int // Secondary files without a primary.

	Lines    int64
	Headers  int64
	BytesIn  int64
	BytesOut int64

	Elapsed time.Duration
}

// add folds one pair's counters into s.
func (s *RunStats) add(p PairStats) {
	s.Converted++
	s.Lines += p.Lines
	s.Headers += p.Headers
	s.BytesIn += p.BytesIn
	s.BytesOut += p.BytesOut
}
