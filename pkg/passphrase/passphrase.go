package passphrase

import (
	"bytes"
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/passkit/pkg/charset"
	"github.com/dmitrymomot/passkit/pkg/randgen"
)

// Word is an owned, mutable character buffer. Words are never aliased
// between passphrases; every edit happens through the owning Passphrase.
type Word []byte

// Passphrase is an index-addressable sequence of words. The word count is
// fixed at construction for the lifetime of the value; individual words may
// shrink or have characters replaced.
type Passphrase struct {
	words []Word
}

// New builds a Passphrase from sampled words, copying each into an owned
// buffer.
func New(words []string) *Passphrase {
	owned := make([]Word, len(words))
	for i, w := range words {
		owned[i] = Word(w)
	}
	return &Passphrase{words: owned}
}

// Len returns the number of words.
func (p *Passphrase) Len() int {
	return len(p.words)
}

// WordAt returns a copy of the i-th word.
func (p *Passphrase) WordAt(i int) (string, error) {
	if i < 0 || i >= len(p.words) {
		return "", fmt.Errorf("%w: %d of %d words", ErrIndexOutOfRange, i, len(p.words))
	}
	return string(p.words[i]), nil
}

// Replacement is a tagged variant: either a literal word or a function of
// the current word. Replace dispatches on the variant instead of testing
// callability.
type Replacement struct {
	word Word
	fn   func(Word) Word
}

// Literal replaces a word with a constant value.
func Literal(word string) Replacement {
	return Replacement{word: Word(word)}
}

// Transform replaces a word with the result of applying fn to it.
func Transform(fn func(Word) Word) Replacement {
	return Replacement{fn: fn}
}

// Replace swaps the i-th word per the given replacement.
func (p *Passphrase) Replace(i int, r Replacement) error {
	if i < 0 || i >= len(p.words) {
		return fmt.Errorf("%w: %d of %d words", ErrIndexOutOfRange, i, len(p.words))
	}
	if r.fn != nil {
		p.words[i] = r.fn(p.words[i])
		return nil
	}
	p.words[i] = r.word
	return nil
}

// Shorten truncates every word to at most max characters. Words already
// within the limit are untouched.
func (p *Passphrase) Shorten(max int) error {
	if max <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWordLimit, max)
	}
	for i, w := range p.words {
		if len(w) > max {
			p.words[i] = w[:max]
		}
	}
	return nil
}

// Fold lower-cases every character of every word.
func (p *Passphrase) Fold() {
	lower := cases.Lower(language.Und)
	for i, w := range p.words {
		p.words[i] = lower.Bytes(w)
	}
}

// Capitalize upper-cases the first character of the i-th word, leaving the
// rest of the word unchanged.
func (p *Passphrase) Capitalize(i int) error {
	return p.Replace(i, Transform(func(w Word) Word {
		r, size := utf8.DecodeRune(w)
		if r == utf8.RuneError || unicode.ToUpper(r) == r {
			return w
		}
		title := make(Word, 0, len(w))
		title = utf8.AppendRune(title, unicode.ToUpper(r))
		return append(title, w[size:]...)
	}))
}

// Randomize overwrites one randomly chosen character position per charset
// with a character drawn uniformly from that charset, never reusing a
// (word, position) pair within the call. Charset multiplicity is honored:
// a set occurring twice is drawn twice. Empty charsets are skipped.
//
// Precondition: the passphrase must have at least as many character
// positions as there are non-empty charsets; otherwise the call fails
// before any draw is made.
func (p *Passphrase) Randomize(charsets []charset.Charset, rnd randgen.Source) error {
	wanted := 0
	for _, cs := range charsets {
		if len(cs) > 0 {
			wanted++
		}
	}
	if wanted == 0 {
		return nil
	}

	total := 0
	for _, w := range p.words {
		total += len(w)
	}
	if wanted > total {
		return fmt.Errorf("%w: %d requested, %d available", ErrTooManyReplacements, wanted, total)
	}

	used := make(map[[2]int]struct{}, wanted)
	for _, cs := range charsets {
		if len(cs) == 0 {
			continue
		}
		r, err := rnd.IntN(len(cs))
		if err != nil {
			return err
		}
		c := cs[r]

		for {
			i, err := rnd.IntN(len(p.words))
			if err != nil {
				return err
			}
			if len(p.words[i]) == 0 {
				continue
			}
			j, err := rnd.IntN(len(p.words[i]))
			if err != nil {
				return err
			}
			if _, taken := used[[2]int{i, j}]; taken {
				continue
			}
			p.words[i][j] = c
			used[[2]int{i, j}] = struct{}{}
			break
		}
	}
	return nil
}

// Join concatenates the words with the given separator. This is the
// terminal operation: it does not mutate the passphrase, and it is the only
// point where the words flatten into a single value.
func (p *Passphrase) Join(separator string) string {
	flat := make([][]byte, len(p.words))
	for i, w := range p.words {
		flat[i] = w
	}
	return string(bytes.Join(flat, []byte(separator)))
}
