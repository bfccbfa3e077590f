package reservoir

import (
	"fmt"
	"math"
)

// SampleEntropy returns the exact information content, in bits, of drawing
// an unordered size-n sample without replacement from a population of the
// given size: Σ log2(population−k) for k in [0, n).
//
// Each successive draw chooses from a population shrunk by the words already
// taken, so the per-word contribution decreases as the sample grows.
func SampleEntropy(population, n int) (float64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidSampleSize, n)
	}
	if population < n {
		return 0, fmt.Errorf("%w: population %d, sample %d", ErrInvalidPopulation, population, n)
	}

	var bits float64
	for k := 0; k < n; k++ {
		bits += math.Log2(float64(population - k))
	}
	return bits, nil
}
