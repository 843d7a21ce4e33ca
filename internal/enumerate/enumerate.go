// Package enumerate materializes remote, gap-free indexed collections that
// expose an element accessor but no length accessor.
//
// A collection is read by probing index 0, 1, 2, ... one call at a time until
// a probe misses or the configured cap is reached. Because the remote
// collection is packed without gaps, the first miss marks its end and no
// further probe is issued.
//
// A miss is never reported as an error. The fetcher cannot tell an empty
// collection from a broken accessor, so both produce an empty sequence. The
// cause of termination is still recorded on the Sequence so that callers can
// log or measure it.
package enumerate

import (
	"context"
	"iter"
	"reflect"
	"sync/atomic"
)

// Reader reads the element stored at index. A non-nil error means the
// element does not exist (or could not be read) and ends the enumeration.
type Reader[T any] func(ctx context.Context, index uint64) (T, error)

// Termination describes why an enumeration stopped.
type Termination int

const (
	// Running means the sequence has not finished yet.
	Running Termination = iota

	// EndOfCollection means a probe failed.
	EndOfCollection

	// Sentinel means a probe returned the element type's zero value while
	// sentinel detection was enabled.
	Sentinel

	// Capped means the maximum number of probes was issued without a miss.
	Capped

	// Canceled means the context was done before the next probe.
	Canceled

	// Abandoned means the consumer stopped iterating early.
	Abandoned
)

// String returns a lower-case name for the termination reason.
func (t Termination) String() string {
	switch t {
	case Running:
		return "running"
	case EndOfCollection:
		return "end_of_collection"
	case Sentinel:
		return "sentinel"
	case Capped:
		return "capped"
	case Canceled:
		return "canceled"
	case Abandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// config holds the probing policy.
type config struct {
	maxProbe       uint64 // 0 means unbounded
	stopOnSentinel bool
}

// Option configures a Fetch call.
type Option func(*config)

// WithMaxProbe caps the number of probes. The cap is also the maximum number
// of elements the sequence can hold. Zero disables the cap.
func WithMaxProbe(n uint64) Option {
	return func(c *config) {
		c.maxProbe = n
	}
}

// WithStopOnSentinel makes a successfully read zero value end the
// enumeration, as if the probe had failed. By default zero values are
// yielded like any other element.
func WithStopOnSentinel() Option {
	return func(c *config) {
		c.stopOnSentinel = true
	}
}

// Sequence is a lazy, single-use view over a remote indexed collection.
// Probes are issued while the sequence is being iterated, never before.
type Sequence[T any] struct {
	ctx  context.Context
	read Reader[T]
	cfg  config

	consumed atomic.Bool

	probes      uint64
	termination Termination
	err         error
}

// Fetch returns a sequence over the collection behind read. No probe is
// issued until the sequence is iterated.
func Fetch[T any](ctx context.Context, read Reader[T], opts ...Option) *Sequence[T] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Sequence[T]{
		ctx:  ctx,
		read: read,
		cfg:  cfg,
	}
}

// Collect fetches the whole collection and returns its elements in index
// order. The result is never nil.
func Collect[T any](ctx context.Context, read Reader[T], opts ...Option) []T {
	return Fetch(ctx, read, opts...).Collect()
}

// All returns an iterator over (index, element) pairs in ascending index
// order. The sequence can be iterated only once; later iterations yield
// nothing.
func (s *Sequence[T]) All() iter.Seq2[uint64, T] {
	return func(yield func(uint64, T) bool) {
		if !s.consumed.CompareAndSwap(false, true) {
			return
		}

		for index := uint64(0); ; index++ {
			if s.cfg.maxProbe > 0 && index >= s.cfg.maxProbe {
				s.termination = Capped
				return
			}

			if err := s.ctx.Err(); err != nil {
				s.termination, s.err = Canceled, err
				return
			}

			s.probes++
			v, err := s.read(s.ctx, index)
			if err != nil {
				s.termination, s.err = EndOfCollection, err
				return
			}

			if s.cfg.stopOnSentinel && isZero(v) {
				s.termination = Sentinel
				return
			}

			if !yield(index, v) {
				s.termination = Abandoned
				return
			}
		}
	}
}

// Values returns an iterator over the elements only.
func (s *Sequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Collect drains the sequence into a slice. The result is never nil.
func (s *Sequence[T]) Collect() []T {
	out := make([]T, 0)
	for v := range s.Values() {
		out = append(out, v)
	}
	return out
}

// Probes returns the number of reads issued so far.
func (s *Sequence[T]) Probes() uint64 {
	return s.probes
}

// Termination returns why the sequence stopped, or Running while it has not.
func (s *Sequence[T]) Termination() Termination {
	return s.termination
}

// Err returns the error of the terminating probe, or the context error for
// Canceled. It is informational only: a failed probe is how a collection
// ends, so it is never surfaced as a failure of the enumeration.
func (s *Sequence[T]) Err() error {
	return s.err
}

// zeroer is implemented by element types that define their own notion of
// an empty value.
type zeroer interface {
	IsZero() bool
}

// isZero reports whether v is its type's sentinel value.
func isZero[T any](v T) bool {
	if z, ok := any(v).(zeroer); ok {
		return z.IsZero()
	}
	return reflect.ValueOf(&v).Elem().IsZero()
}
