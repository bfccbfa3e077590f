package policy

import "errors"

var (
	// ErrInvalidPolicy is returned when a policy document cannot be
	// decoded or declares no profiles.
	ErrInvalidPolicy = errors.New("invalid policy document")

	// ErrUnknownProfile is returned when a requested profile name is not
	// declared in the document.
	ErrUnknownProfile = errors.New("unknown policy profile")
)
