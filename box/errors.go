package box

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Box constructors.
//
// Use [errors.Is] for comparisons:
//
//	_, err := box.From(values)
//	if errors.Is(err, box.ErrInvalidArgument) {
//	    // values was empty
//	}
var (
	// ErrInvalidArgument is the kind shared by every construction error.
	ErrInvalidArgument = errors.New("box: invalid argument")

	// ErrNoCandidates is returned when a Box is built from zero candidates,
	// and by reads on the zero Box. It wraps [ErrInvalidArgument].
	ErrNoCandidates = fmt.Errorf("%w: at least one candidate is required", ErrInvalidArgument)

	// ErrWeightMismatch is returned by [NewWeighted] when the number of
	// weights differs from the number of candidates.
	ErrWeightMismatch = fmt.Errorf("%w: weights and candidates must have the same length", ErrInvalidArgument)

	// ErrZeroWeight is returned by [NewWeighted] when every weight is zero.
	ErrZeroWeight = fmt.Errorf("%w: total weight must be greater than 0", ErrInvalidArgument)

	// ErrWeightOverflow is returned by [NewWeighted] when the weights sum
	// past math.MaxInt.
	ErrWeightOverflow = fmt.Errorf("%w: total weight overflows int", ErrInvalidArgument)
)
