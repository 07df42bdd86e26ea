package naming

import (
	"errors"
	"fmt"
	"sync"
)

// ErrCollision is returned when two source files map to one output name.
var ErrCollision = errors.New("output name already claimed")

// Claims tracks which source file owns each output name within a run.
// Tagging only rewrites token 1, so a name whose role marker sits in that
// token ("sample_R1_001.fastq") loses it and collides with its mate.
// All methods are goroutine-safe.
type Claims struct {
	mu     sync.Mutex
	owners map[string]string // output name → source name
}

// NewClaims creates an empty registry.
func NewClaims() *Claims {
	return &Claims{owners: make(map[string]string)}
}

// Claim records that source writes output. Claiming the same output again
// for the same source is a no-op.
func (c *Claims) Claim(source, output string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if owner, ok := c.owners[output]; ok && owner != source {
		return fmt.Errorf("%w: %s from both %s and %s", ErrCollision, output, owner, source)
	}
	c.owners[output] = source
	return nil
}
