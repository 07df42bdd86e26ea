package tagpool

import (
	"errors"
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// Sentinel errors for pool construction and lookup.
var (
	ErrEmptyAlphabet   = errors.New("alphabet must not be empty")
	ErrEmptySymbol     = errors.New("alphabet symbols must not be empty")
	ErrDuplicateSymbol = errors.New("alphabet symbols must be unique")
	ErrBadLength       = errors.New("tag length must be at least 1")
	ErrOutOfRange      = errors.New("tag index out of range")
	ErrTooLarge        = errors.New("pool too large to materialize; use the lazy sequence")
)

// Tag is one pool entry: Length symbols concatenated.
type Tag string

// Pool is the ordered set of every tag of a given length over an alphabet.
// It is immutable and safe for concurrent use.
type Pool struct {
	alphabet []string
	length   int
	size     uint64
	bounded  bool // false when len(alphabet)^length overflows uint64
}

// New validates alphabet and length and returns the pool they describe.
func New(alphabet []string, length int) (*Pool, error) {
	if len(alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}
	if length < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrBadLength, length)
	}
	seen := make(map[string]struct{}, len(alphabet))
	for _, s := range alphabet {
		if s == "" {
			return nil, ErrEmptySymbol
		}
		if _, dup := seen[s]; dup {
			return nil, fmt.Errorf("%w (%q repeated)", ErrDuplicateSymbol, s)
		}
		seen[s] = struct{}{}
	}

	p := &Pool{
		alphabet: append([]string(nil), alphabet...),
		length:   length,
		size:     1,
		bounded:  true,
	}
	base := uint64(len(alphabet))
	for i := 0; i < length; i++ {
		hi, lo := bits.Mul64(p.size, base)
		if hi != 0 {
			p.bounded = false
			p.size = 0
			break
		}
		p.size = lo
	}
	return p, nil
}

// Alphabet returns a copy of the symbols in pool order.
func (p *Pool) Alphabet() []string { return append([]string(nil), p.alphabet...) }

// Length is the number of symbols per tag.
func (p *Pool) Length() int { return p.length }

// Size returns len(alphabet)^length. ok is false when the count does not fit
// in a uint64, in which case the pool is treated as unbounded.
func (p *Pool) Size() (n uint64, ok bool) { return p.size, p.bounded }

// Contains reports whether i is a valid tag index.
func (p *Pool) Contains(i uint64) bool { return !p.bounded || i < p.size }

// At returns the i-th tag in pool order.
func (p *Pool) At(i uint64) (Tag, error) {
	if !p.Contains(i) {
		return "", fmt.Errorf("%w: %d >= %d", ErrOutOfRange, i, p.size)
	}
	base := uint64(len(p.alphabet))
	digits := make([]int, p.length)
	for pos := p.length - 1; pos >= 0 && i > 0; pos-- {
		digits[pos] = int(i % base)
		i /= base
	}
	var b strings.Builder
	for _, d := range digits {
		b.WriteString(p.alphabet[d])
	}
	return Tag(b.String()), nil
}

// All yields every tag in order. For unbounded pools the sequence is
// effectively endless; callers stop by breaking out of the loop.
func (p *Pool) All() iter.Seq[Tag] {
	return func(yield func(Tag) bool) {
		// Odometer over digit positions; avoids a division per tag.
		digits := make([]int, p.length)
		base := len(p.alphabet)
		for {
			var b strings.Builder
			for _, d := range digits {
				b.WriteString(p.alphabet[d])
			}
			if !yield(Tag(b.String())) {
				return
			}
			pos := p.length - 1
			for pos >= 0 {
				digits[pos]++
				if digits[pos] < base {
					break
				}
				digits[pos] = 0
				pos--
			}
			if pos < 0 {
				return
			}
		}
	}
}

// Generate materializes the whole pool. It refuses pools larger than limit
// and returns ErrTooLarge so the caller can fall back to [Pool.All] or
// [Pool.At].
func Generate(alphabet []string, length int, limit uint64) ([]Tag, error) {
	p, err := New(alphabet, length)
	if err != nil {
		return nil, err
	}
	n, ok := p.Size()
	if !ok || n > limit {
		return nil, fmt.Errorf("%w (%d^%d tags, limit %d)", ErrTooLarge, len(alphabet), length, limit)
	}
	tags := make([]Tag, 0, n)
	for t := range p.All() {
		tags = append(tags, t)
	}
	return tags, nil
}
