package repo

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator hands out task ids. Implementations must never repeat an id
// for the lifetime of the store that owns them.
type IDGenerator interface {
	Next() string
}

// Sequence is a monotonic counter starting at 1.
type Sequence struct {
	n uint64
}

func NewSequence() *Sequence {
	return &Sequence{}
}

func (s *Sequence) Next() string {
	s.n++
	return strconv.FormatUint(s.n, 10)
}

type uuidGenerator struct{}

// UUIDs returns a generator of random (v4) UUID strings.
func UUIDs() IDGenerator {
	return uuidGenerator{}
}

func (uuidGenerator) Next() string {
	return uuid.NewString()
}
