// Package random provides the uniform index sources consumed by
// [github.com/ftxqxd/schroedinger-box/box].
//
// # Overview
//
// A [Source] answers a single question: "give me an index in [0, n)".
// Every implementation in this package is safe for concurrent use and
// rejects n <= 0 with [ErrInvalidBound].
//
//   - [Default] — process-wide source backed by crypto/rand.
//   - [Reader] — any io.Reader turned into unbiased indices.
//   - [NewSeeded] — a reproducible ChaCha20 keystream, for tests and replays.
//   - [Locked] — a math/rand/v2 generator behind a mutex.
//   - [Sequence] — a scripted list of indices.
//   - [Counting] — a decorator recording how often a source was consulted.
//
// # Bias
//
// Byte-stream sources convert 64-bit words to indices by rejection
// sampling, so every index in [0, n) is equally likely provided the
// underlying stream is uniform.
package random
