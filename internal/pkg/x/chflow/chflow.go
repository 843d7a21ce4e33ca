// Package chflow wraps channel sends and receives so they give up once a
// context is done.
package chflow

import "context"

// Receive returns the next value from ch. ok is false when ctx is done first
// or ch is closed.
func Receive[T any](ctx context.Context, ch <-chan T) (v T, ok bool) {
	select {
	case <-ctx.Done():
		return v, false
	case v, ok = <-ch:
		return v, ok
	}
}

// Send delivers v on ch and reports whether it did before ctx was done.
func Send[T any](ctx context.Context, ch chan<- T, v T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- v:
		return true
	}
}

