package wordlist

import "errors"

var (
	// ErrOpenFailed is returned when a dictionary file cannot be opened.
	ErrOpenFailed = errors.New("failed to open dictionary")

	// ErrReadFailed is returned when the underlying stream fails mid-read.
	ErrReadFailed = errors.New("failed to read dictionary")
)
