// Package reservoir implements single-pass uniform sampling of a fixed
// number of words from a stream of unknown, possibly very large length,
// together with exact entropy accounting for the selection.
//
// The selector keeps at most n words in memory regardless of how long the
// stream is, and consumes the stream exactly once, in order, without
// rewinding. Each size-n subset of the stream is returned with equal
// probability, and the order of the returned sample is itself uniformly
// random: the first n elements are explicitly shuffled out of their arrival
// order before the classical reservoir update takes over, so downstream
// consumers that key off sample index see no position artifacts.
//
// SampleEntropy reports the exact information content of such a draw as a
// without-replacement sum, Σ log2(population−k) for k in [0, n). The naive
// n·log2(population) overstates entropy whenever n is a non-trivial fraction
// of the population, so it is deliberately not used.
//
// # Usage
//
//	sample, seen, err := reservoir.Select(src, 6, randgen.Crypto())
//	if err != nil {
//	    // ...
//	}
//	bits, err := reservoir.SampleEntropy(seen, len(sample))
package reservoir
