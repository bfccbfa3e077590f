// Package wordlist abstracts the dictionaries that passphrase words are drawn
// from as strictly-forward, single-use word streams.
//
// A Source yields words one at a time and is consumed exactly once; there is
// no rewinding, because the underlying stream may be a file handle or another
// single-pass iteration. The reservoir selector relies on this contract to
// sample in constant memory regardless of dictionary size.
//
// # Usage
//
// Stream a system dictionary:
//
//	src, err := wordlist.Open("/usr/share/dict/words")
//	if err != nil {
//	    // ...
//	}
//	defer src.Close()
//
// Or wrap any reader (one word per line, surrounding whitespace trimmed,
// blank lines skipped):
//
//	src := wordlist.NewScanner(strings.NewReader("apple\nberry\n"))
//
// For tests and embedded lists there is an in-memory source:
//
//	src := wordlist.Slice("apple", "berry", "cherry")
package wordlist
