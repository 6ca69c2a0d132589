package random

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/chacha20"
)

// SeedSize is the seed length accepted by [NewSeeded].
const SeedSize = chacha20.KeySize

// Reader is a [Source] that draws 64-bit words from an io.Reader.
//
// Words are mapped onto [0, n) by rejection sampling: a word is discarded
// when it falls into the short tail that does not divide evenly by n, so
// the result carries no modulo bias. On average fewer than two words are
// read per call.
//
// The wrapped reader is accessed under a mutex, so a Reader is safe for
// concurrent use even when the underlying io.Reader is not.
type Reader struct {
	mu  sync.Mutex
	r   io.Reader
	buf [8]byte
}

// NewReader returns a Reader drawing entropy from r.
// Read errors from r are returned, wrapped, by [Reader.IntN].
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// NewSeeded returns a deterministic Reader whose stream is the ChaCha20
// keystream for seed (which must be [SeedSize] bytes) under an all-zero
// nonce. Two Readers built from the same seed yield the same indices for
// the same sequence of calls.
//
//	src, err := random.NewSeeded(bytes.Repeat([]byte{7}, random.SeedSize))
func NewSeeded(seed []byte) (*Reader, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("%w: need %d bytes, got %d", ErrInvalidSeed, SeedSize, len(seed))
	}
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(seed, nonce)
	if err != nil {
		return nil, fmt.Errorf("random: failed to initialise chacha20: %w", err)
	}
	return NewReader(&keystream{c: c}), nil
}

// IntN returns a uniform index in [0, n).
// A bound of 1 is answered without reading from the stream.
func (s *Reader) IntN(n int) (int, error) {
	if err := checkBound(n); err != nil {
		return 0, err
	}
	if n == 1 {
		return 0, nil
	}

	un := uint64(n)
	// 2^64 mod n: words below this value belong to the uneven tail.
	thresh := -un % un

	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
			return 0, fmt.Errorf("random: failed to read entropy: %w", err)
		}
		v := binary.BigEndian.Uint64(s.buf[:])
		if v >= thresh {
			return int(v % un), nil
		}
	}
}

// keystream exposes a ChaCha20 cipher as an endless io.Reader.
type keystream struct {
	c *chacha20.Cipher
}

func (k *keystream) Read(p []byte) (int, error) {
	clear(p)
	k.c.XORKeyStream(p, p)
	return len(p), nil
}
