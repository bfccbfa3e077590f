package passphrase

import "errors"

var (
	// ErrIndexOutOfRange is returned when a word index does not exist in
	// the passphrase.
	ErrIndexOutOfRange = errors.New("word index out of range")

	// ErrInvalidWordLimit is returned when Shorten is given a
	// non-positive length limit.
	ErrInvalidWordLimit = errors.New("word length limit must be positive")

	// ErrBadTranslateSpec is returned for a malformed xs:ys translate
	// mapping: a missing ':' separator, or more replacements than source
	// characters.
	ErrBadTranslateSpec = errors.New("malformed translate mapping")

	// ErrTooManyReplacements is returned when more randomized
	// substitutions are requested than the passphrase has character
	// positions to take them.
	ErrTooManyReplacements = errors.New("more randomize charsets than available character positions")

	// ErrInsufficientEntropy is returned when a selection's entropy falls
	// below the configured minimum. The computation itself succeeded; the
	// result is rejected by policy and no passphrase is produced.
	ErrInsufficientEntropy = errors.New("insufficient entropy")
)
