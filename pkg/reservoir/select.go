package reservoir

import (
	"fmt"

	"github.com/dmitrymomot/passkit/pkg/randgen"
	"github.com/dmitrymomot/passkit/pkg/wordlist"
)

// Select draws a uniform random sample of exactly n words from src in a
// single pass, buffering at most n words at a time. It returns the sample
// and the total number of words observed on the stream.
//
// The sample is unbiased two ways: every size-n subset of the stream is
// equally likely, and every ordering of the chosen words is equally likely.
// src is consumed strictly once and never rewound.
func Select(src wordlist.Source, n int, rnd randgen.Source) ([]string, int, error) {
	if n < 0 {
		return nil, 0, fmt.Errorf("%w: got %d", ErrInvalidSampleSize, n)
	}
	if n == 0 {
		return []string{}, 0, nil
	}

	// Fill the reservoir from the head of the stream.
	head := make([]string, 0, n)
	for len(head) < n {
		word, ok := src.Next()
		if !ok {
			if err := src.Err(); err != nil {
				return nil, 0, err
			}
			return nil, 0, fmt.Errorf("%w: need %d words, source had %d", ErrSourceExhausted, n, len(head))
		}
		head = append(head, word)
	}

	// The head arrives in stream order; draw it down at random so the
	// initial sample carries no position artifacts.
	sample := make([]string, 0, n)
	for len(head) > 0 {
		r, err := rnd.IntN(len(head))
		if err != nil {
			return nil, 0, err
		}
		sample = append(sample, head[r])
		head = append(head[:r], head[r+1:]...)
	}

	// Classical reservoir update: the word at 0-based stream position i
	// replaces a random slot with probability n/(i+1), keeping every word
	// seen so far included with probability exactly n/(i+1).
	seen := n
	for {
		word, ok := src.Next()
		if !ok {
			break
		}
		r, err := rnd.IntN(seen + 1)
		if err != nil {
			return nil, 0, err
		}
		if r < n {
			sample[r] = word
		}
		seen++
	}
	if err := src.Err(); err != nil {
		return nil, 0, err
	}

	return sample, seen, nil
}
