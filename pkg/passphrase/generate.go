package passphrase

import (
	"fmt"

	"github.com/dmitrymomot/passkit/pkg/charset"
	"github.com/dmitrymomot/passkit/pkg/randgen"
	"github.com/dmitrymomot/passkit/pkg/reservoir"
	"github.com/dmitrymomot/passkit/pkg/wordlist"
)

// Options configures a single generation run. The zero value of every field
// disables the corresponding stage.
type Options struct {
	// Words is the number of words to sample.
	Words int

	// Separator joins the words of the final passphrase. Nil selects the
	// default single space; pointing at an empty string joins the words
	// with no separator at all.
	Separator *string

	// MinEntropy is the policy floor, in bits. A selection computing
	// below it is rejected with ErrInsufficientEntropy.
	MinEntropy float64

	// MaxWordLen truncates each word to at most this many characters.
	// Zero disables the stage; negative values are rejected.
	MaxWordLen int

	// Fold lower-cases all words before any characters are injected.
	Fold bool

	// Translate is applied to every character of every word.
	// Nil disables the stage.
	Translate *Table

	// Randomize holds one charset per requested substitution, in order.
	// Multiplicity is honored: list a set twice to draw from it twice.
	Randomize []charset.Charset

	// Capitalize upper-cases the first character of the word at
	// CapitalizeWord (default 0) as the final mutation.
	Capitalize     bool
	CapitalizeWord int

	// Rand supplies all randomness. Default: the crypto-backed source.
	Rand randgen.Source
}

// Result carries the generated passphrase together with its exact entropy
// accounting.
type Result struct {
	// Passphrase is the joined final value.
	Passphrase string

	// Entropy is the information content of the word selection, in bits.
	Entropy float64

	// Population is the number of words observed on the source stream.
	Population int
}

// Generate samples opts.Words words from src, enforces the entropy policy
// and applies the mutation stages in their fixed order: shorten, fold,
// translate, randomize, capitalize. src is consumed exactly once.
func Generate(src wordlist.Source, opts Options) (*Result, error) {
	if opts.MaxWordLen < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWordLimit, opts.MaxWordLen)
	}
	rnd := opts.Rand
	if rnd == nil {
		rnd = randgen.Crypto()
	}
	separator := " "
	if opts.Separator != nil {
		separator = *opts.Separator
	}

	words, population, err := reservoir.Select(src, opts.Words, rnd)
	if err != nil {
		return nil, err
	}

	entropy, err := reservoir.SampleEntropy(population, opts.Words)
	if err != nil {
		return nil, err
	}
	if entropy < opts.MinEntropy {
		return nil, fmt.Errorf(
			"%w: %.2f < %.2f bits; generate a longer passphrase or use a bigger dictionary",
			ErrInsufficientEntropy, entropy, opts.MinEntropy,
		)
	}

	p := New(words)
	if opts.MaxWordLen > 0 {
		if err := p.Shorten(opts.MaxWordLen); err != nil {
			return nil, err
		}
	}
	if opts.Fold {
		p.Fold()
	}
	p.Translate(opts.Translate)
	if err := p.Randomize(opts.Randomize, rnd); err != nil {
		return nil, err
	}
	if opts.Capitalize {
		if err := p.Capitalize(opts.CapitalizeWord); err != nil {
			return nil, err
		}
	}

	return &Result{
		Passphrase: p.Join(separator),
		Entropy:    entropy,
		Population: population,
	}, nil
}
