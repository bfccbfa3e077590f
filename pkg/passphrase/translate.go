package passphrase

import (
	"fmt"
	"strings"
)

// Table maps source characters to replacements or to deletion. A character
// without an entry passes through unchanged.
type Table struct {
	repl map[byte]byte
	del  map[byte]struct{}
}

// ParseTable builds a translation table from one or more "xs:ys" specs,
// combined in order (later specs win on conflicting characters). The
// character at position k of xs maps to the character at position k of ys.
// When ys is shorter than xs, the unmatched tail of xs maps to deletion; ys
// longer than xs is an error, as is a spec without a ':' separator.
func ParseTable(specs ...string) (*Table, error) {
	t := &Table{
		repl: make(map[byte]byte),
		del:  make(map[byte]struct{}),
	}
	for _, spec := range specs {
		xs, ys, ok := strings.Cut(spec, ":")
		if !ok {
			return nil, fmt.Errorf("%w: missing ':' in %q", ErrBadTranslateSpec, spec)
		}
		if len(ys) > len(xs) {
			return nil, fmt.Errorf("%w: %d replacements for %d characters in %q", ErrBadTranslateSpec, len(ys), len(xs), spec)
		}
		for k := 0; k < len(xs); k++ {
			if k < len(ys) {
				t.repl[xs[k]] = ys[k]
				delete(t.del, xs[k])
				continue
			}
			t.del[xs[k]] = struct{}{}
			delete(t.repl, xs[k])
		}
	}
	return t, nil
}

func (t *Table) apply(w Word) Word {
	out := make(Word, 0, len(w))
	for _, c := range w {
		if _, drop := t.del[c]; drop {
			continue
		}
		if r, ok := t.repl[c]; ok {
			c = r
		}
		out = append(out, c)
	}
	return out
}

// Translate applies the table to every character of every word. Deletions
// shrink the affected words; the word count never changes.
func (p *Passphrase) Translate(t *Table) {
	if t == nil {
		return
	}
	for i := range p.words {
		p.words[i] = t.apply(p.words[i])
	}
}
