package box

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/ftxqxd/schroedinger-box/random"
)

// Box is a cell holding a non-empty set of candidates until its first
// read, after which it holds exactly one of them for good.
//
// The two states form a tagged variant:
//
//   - uncollapsed: candidates holds every value, in construction order.
//   - collapsed: value and index hold the survivor; candidates is nil.
//
// The only transition is uncollapsed → collapsed, performed by the first
// successful [Box.Observe] (or anything built on it). A failed source call
// leaves the Box uncollapsed.
//
// A Box must not be copied after first use. The zero Box has no
// candidates; reading it returns [ErrNoCandidates].
type Box[T any] struct {
	mu        sync.Mutex
	collapsed atomic.Bool

	source     random.Source
	size       int
	candidates []T
	// weights is nil for a uniform Box; otherwise weights[i] pairs with
	// candidates[i] and total is their sum.
	weights []uint64
	total   int

	value T
	index int
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New builds an uncollapsed Box from a variadic list of candidates (copied).
// Returns [ErrNoCandidates] when called with no candidates.
func New[T any](candidates ...T) (*Box[T], error) {
	return NewWithOptions(candidates, Options{})
}

// From builds an uncollapsed Box from a slice of candidates. The slice is
// copied, so later changes to it do not affect the Box.
// Returns [ErrNoCandidates] when candidates is empty.
func From[T any](candidates []T) (*Box[T], error) {
	return NewWithOptions(candidates, Options{})
}

// NewWithOptions is [From] with an explicit configuration, typically used
// to inject a deterministic [random.Source].
func NewWithOptions[T any](candidates []T, opts Options) (*Box[T], error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	dst := make([]T, len(candidates))
	copy(dst, candidates)
	return &Box[T]{
		source:     opts.source(),
		size:       len(dst),
		candidates: dst,
	}, nil
}

// NewWeighted builds an uncollapsed Box whose candidates[i] is selected
// with probability weights[i] / sum(weights). Weights of [1, 5] make the
// second candidate five times as likely as the first; a zero weight means
// the candidate is never selected. [From] is the case where every weight
// is 1.
//
// Both slices are copied. Returns an error wrapping [ErrInvalidArgument]
// when candidates is empty ([ErrNoCandidates]), when the slices differ in
// length ([ErrWeightMismatch]), when every weight is zero ([ErrZeroWeight]),
// or when the weights sum past math.MaxInt ([ErrWeightOverflow]).
func NewWeighted[T any](weights []uint64, candidates []T, opts Options) (*Box[T], error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	if len(weights) != len(candidates) {
		return nil, fmt.Errorf("%w: %d weights for %d candidates", ErrWeightMismatch, len(weights), len(candidates))
	}
	var total uint64
	for _, w := range weights {
		if w > math.MaxInt-total {
			return nil, ErrWeightOverflow
		}
		total += w
	}
	if total == 0 {
		return nil, ErrZeroWeight
	}

	b, err := NewWithOptions(candidates, opts)
	if err != nil {
		return nil, err
	}
	b.weights = make([]uint64, len(weights))
	copy(b.weights, weights)
	b.total = int(total)
	return b, nil
}

// Must returns b, panicking if err is non-nil. It is intended for
// package-level variables built from literal candidates:
//
//	var coin = box.Must(box.New("heads", "tails"))
func Must[T any](b *Box[T], err error) *Box[T] {
	if err != nil {
		panic(err)
	}
	return b
}

// ─────────────────────────────────────────────────────────────────────────────
// Reads
// ─────────────────────────────────────────────────────────────────────────────

// Observe returns the collapsed value, collapsing the Box first if needed.
//
// On the first call the source is asked for an index in [0, Len()); that
// candidate becomes the value returned by every later call, and the other
// candidates are released. A Box built with [NewWeighted] instead asks for
// a point in [0, total weight) and picks the candidate whose weight range
// holds it. A single-candidate Box collapses without consulting the source.
//
// If the source fails, its error is returned wrapped and the Box stays
// uncollapsed, so a later call may succeed. An index outside the candidate
// range is reported as [random.ErrIndexOutOfRange].
func (b *Box[T]) Observe() (T, error) {
	if b.collapsed.Load() {
		return b.value, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.collapsed.Load() {
		return b.value, nil
	}

	var zero T
	n := len(b.candidates)
	if n == 0 {
		return zero, ErrNoCandidates
	}

	i := 0
	if n > 1 {
		var err error
		if i, err = b.pick(); err != nil {
			return zero, fmt.Errorf("box: failed to collapse: %w", err)
		}
	}

	b.value, b.index = b.candidates[i], i
	b.candidates = nil
	b.weights = nil
	b.collapsed.Store(true)
	return b.value, nil
}

// pick draws the index of the surviving candidate. Callers hold b.mu.
func (b *Box[T]) pick() (int, error) {
	src := b.source
	if src == nil {
		src = random.Default()
	}
	n := len(b.candidates)
	if b.weights == nil {
		i, err := src.IntN(n)
		if err != nil {
			return 0, err
		}
		if i < 0 || i >= n {
			return 0, fmt.Errorf("%w: source returned %d for %d candidates", random.ErrIndexOutOfRange, i, n)
		}
		return i, nil
	}

	r, err := src.IntN(b.total)
	if err != nil {
		return 0, err
	}
	if r < 0 || r >= b.total {
		return 0, fmt.Errorf("%w: source returned %d for total weight %d", random.ErrIndexOutOfRange, r, b.total)
	}
	point := uint64(r)
	for i, w := range b.weights {
		if point < w {
			return i, nil
		}
		point -= w
	}
	// Unreachable: point < total = sum(weights).
	return n - 1, nil
}

// Get is [Box.Observe] for callers that treat the Box as a plain value.
// It panics if the source fails, which the default source never does.
func (b *Box[T]) Get() T {
	v, err := b.Observe()
	if err != nil {
		panic(err)
	}
	return v
}

// Peek returns the collapsed value and true, or the zero value and false
// while the Box is still uncollapsed. Peek never collapses the Box.
func (b *Box[T]) Peek() (T, bool) {
	if b.collapsed.Load() {
		return b.value, true
	}
	var zero T
	return zero, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Inspection
// ─────────────────────────────────────────────────────────────────────────────

// Collapsed reports whether the Box has settled on a value.
func (b *Box[T]) Collapsed() bool { return b.collapsed.Load() }

// Index returns the construction-order position of the collapsed value.
// Returns -1 and false while uncollapsed.
func (b *Box[T]) Index() (int, bool) {
	if b.collapsed.Load() {
		return b.index, true
	}
	return -1, false
}

// Len returns the number of candidates the Box was built with.
// It does not change when the Box collapses.
func (b *Box[T]) Len() int { return b.size }

// Candidates returns a copy of the values the Box can still produce: every
// candidate while uncollapsed, only the survivor once collapsed.
func (b *Box[T]) Candidates() []T {
	if b.collapsed.Load() {
		return []T{b.value}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.collapsed.Load() {
		return []T{b.value}
	}
	out := make([]T, len(b.candidates))
	copy(out, b.candidates)
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Encoding
// ─────────────────────────────────────────────────────────────────────────────

// String implements [fmt.Stringer]. It does not collapse the Box: an
// uncollapsed Box renders as "Box(a | b | c)", a collapsed one as "Box(v)".
func (b *Box[T]) String() string {
	vals := b.Candidates()
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}
	return "Box(" + strings.Join(parts, " | ") + ")"
}

// MarshalJSON implements [json.Marshaler]. Encoding counts as a read: the
// Box collapses and its value is encoded in place of the Box.
func (b *Box[T]) MarshalJSON() ([]byte, error) {
	v, err := b.Observe()
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}
