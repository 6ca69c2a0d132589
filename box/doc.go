// Package box provides [Box], a generic cell that holds several candidate
// values and settles on exactly one of them the first time it is read.
//
// # Overview
//
// A Box starts out uncollapsed, holding every candidate it was built with.
// The first read picks one candidate uniformly at random, drops the rest,
// and from then on every read returns that same value:
//
//	cat, err := box.New("alive", "dead")
//	if err != nil { log.Fatal(err) }
//
//	fmt.Println(cat.Get()) // "alive" or "dead"
//	fmt.Println(cat.Get()) // whatever the first call printed
//
// A Box built with no candidates is rejected with [ErrNoCandidates], so a
// read always has something to return.
//
// # Weighted candidates
//
// [NewWeighted] gives each candidate a relative weight instead of an equal
// share:
//
//	cat, _ := box.NewWeighted([]uint64{1, 5}, []string{"alive", "dead"}, box.Options{})
//	// "dead" five times out of six
//
// A zero weight keeps a candidate in the Box without any chance of being
// selected.
//
// # Randomness
//
// Selection consults a [random.Source]. Boxes use [random.Default]
// (crypto/rand) unless one is injected through [Options]:
//
//	seeded, _ := random.NewSeeded(seed)
//	b, _ := box.NewWithOptions([]int{1, 2, 3}, box.Options{Source: seeded})
//
// Inject a seeded or scripted source to make tests deterministic.
//
// # Concurrency
//
// All methods are safe for concurrent use. Concurrent first reads are
// serialised: the source is consulted once, and every reader receives the
// same value. Reads after the collapse take no lock.
package box
