package box

import "github.com/ftxqxd/schroedinger-box/random"

// Options configures a [Box] built with [NewWithOptions].
//
// The zero value is valid and equivalent to the options used by [New] and
// [From].
type Options struct {
	// Source picks the collapsed index.
	// Default: [random.Default] (crypto/rand).
	Source random.Source
}

// DefaultOptions returns Options with every field set to its default.
func DefaultOptions() Options {
	return Options{Source: random.Default()}
}

func (o Options) source() random.Source {
	if o.Source == nil {
		return random.Default()
	}
	return o.Source
}
