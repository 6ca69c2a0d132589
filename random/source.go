package random

import (
	"crypto/rand"
	"fmt"
)

// Source produces uniformly distributed indices.
//
// IntN returns an index in [0, n). Implementations must be safe for
// concurrent use by multiple goroutines and must return [ErrInvalidBound]
// (possibly wrapped) when n <= 0. Any other error means the source could
// not produce entropy; callers propagate it unchanged.
type Source interface {
	IntN(n int) (int, error)
}

var defaultSource = NewReader(rand.Reader)

// Default returns the process-wide source backed by crypto/rand.
// It is shared by every caller and never needs seeding.
func Default() Source { return defaultSource }

func checkBound(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidBound, n)
	}
	return nil
}
