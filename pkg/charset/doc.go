// Package charset parses compact character-set expressions into concrete,
// indexable sets of ASCII characters.
//
// An expression combines two forms:
//
//   - Symbolic tags, juxtaposed: 'd' (decimal digits), 'u' (uppercase
//     letters), 'l' (lowercase letters) and 's' (printable ASCII symbols).
//     "du" is the union of digits and uppercase letters.
//   - A regexp-like enumeration in brackets: "[-.?!0-9]" is the set
//     {'-', '.', '?', '!', '0' … '9'}. Ranges are inclusive and a dash that
//     cannot form a range is a literal.
//
// The two forms mix freely: "d[x-z]s" unions digits, {'x','y','z'} and the
// symbol class. One parsing rule is easy to get wrong and is load-bearing:
// an enumeration is closed by the RIGHT-MOST ']' in the remaining text, not
// the first one, so literal ']' characters may appear unescaped inside the
// body. Whatever follows that bracket is parsed as a further expression and
// unioned in.
//
// # Usage
//
//	cs, err := charset.Parse("d[!?-]")
//	if err != nil {
//	    // charset.ErrUnknownTag or charset.ErrMalformedExpr
//	}
//	c := cs[i] // sets are materialized sorted for random-access draws
package charset
