package pipeline

import (
	"fmt"

	"github.com/backmassage/pairtag/internal/naming"
	"github.com/backmassage/pairtag/internal/tagpool"
)

// Job is a pair with its assigned tag and output names.
type Job struct {
	Pair         Pair
	Tag          tagpool.Tag
	TagIndex     uint64
	PrimaryOut   string
	SecondaryOut string
}

// Plan assigns tags to pairs in order and derives output names. Capacity,
// name shape, and output collisions are all checked here, so a plan that
// comes back without error can be executed without reusing a tag or
// clobbering another pair's output.
func Plan(pairs []Pair, alloc *tagpool.Allocator) ([]Job, error) {
	if err := alloc.Fits(len(pairs)); err != nil {
		return nil, err
	}

	claims := naming.NewClaims()
	jobs := make([]Job, 0, len(pairs))
	for _, p := range pairs {
		as, err := alloc.Next()
		if err != nil {
			return nil, fmt.Errorf("pair %s: %w", p.Primary, err)
		}
		j := Job{Pair: p, Tag: as.Tag, TagIndex: as.Index}
		if j.PrimaryOut, err = naming.TagName(p.Primary, string(as.Tag)); err != nil {
			return nil, err
		}
		if j.SecondaryOut, err = naming.TagName(p.Secondary, string(as.Tag)); err != nil {
			return nil, err
		}
		if err := claims.Claim(p.Primary, j.PrimaryOut); err != nil {
			return nil, err
		}
		if err := claims.Claim(p.Secondary, j.SecondaryOut); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}
