package randgen

import "errors"

var (
	// ErrInvalidBound is returned when a caller requests a draw with a
	// non-positive bound.
	ErrInvalidBound = errors.New("random bound must be positive")

	// ErrRandomSource is returned when the underlying entropy source fails.
	// It is fatal: callers must not retry or substitute weaker randomness.
	ErrRandomSource = errors.New("random source failure")

	// ErrScriptExhausted is returned by a scripted source once every
	// scripted value has been consumed.
	ErrScriptExhausted = errors.New("scripted random source exhausted")

	// ErrScriptOutOfBound is returned by a scripted source when the next
	// scripted value does not fit in [0, bound).
	ErrScriptOutOfBound = errors.New("scripted value out of bound")
)
