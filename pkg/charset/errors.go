package charset

import "errors"

var (
	// ErrUnknownTag is returned when an expression uses a symbolic tag
	// other than 'd', 'u', 'l' or 's'.
	ErrUnknownTag = errors.New("unrecognized charset tag")

	// ErrMalformedExpr is returned when an enumeration is left
	// unterminated (a '[' with no closing ']').
	ErrMalformedExpr = errors.New("malformed charset expression")
)
