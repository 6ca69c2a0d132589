package random

import "errors"

// Sentinel errors returned by the sources in this package.
var (
	// ErrInvalidBound is returned when IntN is called with n <= 0.
	ErrInvalidBound = errors.New("random: bound must be greater than 0")

	// ErrIndexOutOfRange is returned when a scripted or misbehaving source
	// produces an index outside [0, n).
	ErrIndexOutOfRange = errors.New("random: index out of range")

	// ErrSequenceExhausted is returned by [Sequence] once every scripted
	// index has been consumed.
	ErrSequenceExhausted = errors.New("random: sequence exhausted")

	// ErrInvalidSeed is returned by [NewSeeded] when the seed is not
	// exactly 32 bytes long.
	ErrInvalidSeed = errors.New("random: invalid seed length")
)
