package random

import (
	crand "crypto/rand"
	"math/rand/v2"
	"sync"
)

// Locked adapts a math/rand/v2 generator to [Source].
// *rand.Rand is not safe for concurrent use, so every call takes a mutex.
type Locked struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewLocked wraps r. A nil r is replaced by a fresh ChaCha8 generator
// seeded from crypto/rand.
func NewLocked(r *rand.Rand) *Locked {
	if r == nil {
		var seed [32]byte
		_, _ = crand.Read(seed[:])
		r = rand.New(rand.NewChaCha8(seed))
	}
	return &Locked{r: r}
}

// IntN returns r.IntN(n) for n > 0.
func (l *Locked) IntN(n int) (int, error) {
	if err := checkBound(n); err != nil {
		return 0, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n), nil
}
