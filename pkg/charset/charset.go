package charset

import (
	"fmt"
	"sort"
	"strings"
)

// Charset is a set of characters materialized as a sorted, duplicate-free
// byte slice so that a uniform random index yields a uniform random member.
type Charset []byte

// Predefined symbolic classes. Symbols covers the four contiguous bands of
// printable ASCII that are neither alphanumeric nor whitespace. They are
// built from raw spans rather than Parse, which resolves tags back to these
// very variables.
var (
	Digits  = span('0', '9')
	Upper   = span('A', 'Z')
	Lower   = span('a', 'z')
	Symbols = spans([][2]byte{{'!', '/'}, {':', '@'}, {'[', '`'}, {'{', '~'}})
)

// span returns the inclusive ASCII range [lo, hi] as a Charset.
func span(lo, hi byte) Charset {
	cs := make(Charset, 0, int(hi)-int(lo)+1)
	for c := int(lo); c <= int(hi); c++ {
		cs = append(cs, byte(c))
	}
	return cs
}

// spans concatenates ascending, non-overlapping ranges, preserving the
// sorted-members invariant.
func spans(bands [][2]byte) Charset {
	var cs Charset
	for _, b := range bands {
		cs = append(cs, span(b[0], b[1])...)
	}
	return cs
}

// Contains reports whether c is a member of the set.
func (cs Charset) Contains(c byte) bool {
	i := sort.Search(len(cs), func(i int) bool { return cs[i] >= c })
	return i < len(cs) && cs[i] == c
}

func (cs Charset) String() string {
	return string(cs)
}

// Parse compiles a charset expression into a Charset. Parsing is atomic:
// on error no partial set is returned.
func Parse(expr string) (Charset, error) {
	set := make(map[byte]struct{})
	if err := parseInto(expr, set); err != nil {
		return nil, err
	}

	cs := make(Charset, 0, len(set))
	for c := range set {
		cs = append(cs, c)
	}
	sort.Slice(cs, func(i, j int) bool { return cs[i] < cs[j] })
	return cs, nil
}

// parseInto consumes symbolic tags until it hits an enumeration. The
// enumeration body extends to the right-most ']' of the remaining text, so
// a literal ']' needs no escaping; the text after that bracket is a fresh
// expression, parsed recursively into the same set.
func parseInto(expr string, set map[byte]struct{}) error {
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		if c == '[' {
			rest := expr[i+1:]
			end := strings.LastIndexByte(rest, ']')
			if end < 0 {
				return fmt.Errorf("%w: unterminated '[' in %q", ErrMalformedExpr, expr)
			}
			enumerate(rest[:end], set)
			return parseInto(rest[end+1:], set)
		}

		cls, err := class(c)
		if err != nil {
			return err
		}
		for _, b := range cls {
			set[b] = struct{}{}
		}
	}
	return nil
}

// enumerate tokenizes an enumeration body greedily left to right, preferring
// a <char>-<char> range over a literal. A dash that cannot form a range
// (trailing, or adjacent to another dash) is a literal.
func enumerate(body string, set map[byte]struct{}) {
	for i := 0; i < len(body); {
		if i+2 < len(body) && body[i] != '-' && body[i+1] == '-' && body[i+2] != '-' {
			// Inclusive range; a reversed range contributes nothing.
			for c := int(body[i]); c <= int(body[i+2]); c++ {
				set[byte(c)] = struct{}{}
			}
			i += 3
			continue
		}
		set[body[i]] = struct{}{}
		i++
	}
}

func class(tag byte) (Charset, error) {
	switch tag {
	case 'd':
		return Digits, nil
	case 'u':
		return Upper, nil
	case 'l':
		return Lower, nil
	case 's':
		return Symbols, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTag, tag)
}
