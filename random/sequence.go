package random

import (
	"fmt"
	"sync"
)

// Sequence is a [Source] that replays a fixed list of indices in order.
// It exists to make selection deterministic in tests.
type Sequence struct {
	mu      sync.Mutex
	indices []int
	pos     int
}

// NewSequence returns a Sequence yielding indices (copied) one per call.
func NewSequence(indices ...int) *Sequence {
	dst := make([]int, len(indices))
	copy(dst, indices)
	return &Sequence{indices: dst}
}

// IntN returns the next scripted index. It fails with
// [ErrSequenceExhausted] after the last one, and with [ErrIndexOutOfRange]
// when the next index does not fit in [0, n); a rejected index is still
// consumed.
func (s *Sequence) IntN(n int) (int, error) {
	if err := checkBound(n); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pos >= len(s.indices) {
		return 0, ErrSequenceExhausted
	}
	i := s.indices[s.pos]
	s.pos++
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, n)
	}
	return i, nil
}

// Remaining reports how many scripted indices have not been consumed.
func (s *Sequence) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.indices) - s.pos
}
