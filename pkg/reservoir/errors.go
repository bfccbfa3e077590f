package reservoir

import "errors"

var (
	// ErrInvalidSampleSize is returned when the requested sample size is
	// negative.
	ErrInvalidSampleSize = errors.New("sample size must be non-negative")

	// ErrSourceExhausted is returned when the word source yields fewer
	// words than the requested sample size. There is no way to ask a
	// finite source for more, so this is fatal and never retried.
	ErrSourceExhausted = errors.New("word source exhausted before sample filled")

	// ErrInvalidPopulation is returned by SampleEntropy when the observed
	// population is smaller than the sample drawn from it.
	ErrInvalidPopulation = errors.New("population smaller than sample size")
)
