// uuid wraps ID generation behind an interface so tests can use fixed IDs
package uuid

import (
	"github.com/google/uuid"
)

// Generator is an interface for generating unique IDs
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements Generator using Google's UUID package
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// FixedGenerator returns IDs from a fixed list, then falls back to the
// google generator. Intended for tests that need stable effect IDs.
type FixedGenerator struct {
	IDs  []string
	next int
}

// New returns the next fixed ID
func (g *FixedGenerator) New() string {
	if g.next < len(g.IDs) {
		id := g.IDs[g.next]
		g.next++
		return id
	}
	return uuid.New().String()
}
