package reservoir_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passkit/pkg/reservoir"
)

func TestSampleEntropy(t *testing.T) {
	t.Parallel()

	t.Run("without-replacement sum", func(t *testing.T) {
		t.Parallel()
		bits, err := reservoir.SampleEntropy(5, 2)
		require.NoError(t, err)

		want := math.Log2(5) + math.Log2(4)
		assert.InDelta(t, want, bits, 1e-12)

		// The naive with-replacement formula overstates the entropy.
		assert.Less(t, bits, 2*math.Log2(5))
	})

	t.Run("zero sample carries zero bits", func(t *testing.T) {
		t.Parallel()
		bits, err := reservoir.SampleEntropy(100, 0)
		require.NoError(t, err)
		assert.Zero(t, bits)
	})

	t.Run("full population draw", func(t *testing.T) {
		t.Parallel()
		bits, err := reservoir.SampleEntropy(4, 4)
		require.NoError(t, err)

		// log2(4!) bits: 4 choices, then 3, 2, 1.
		assert.InDelta(t, math.Log2(24), bits, 1e-12)
	})

	t.Run("population smaller than sample", func(t *testing.T) {
		t.Parallel()
		_, err := reservoir.SampleEntropy(3, 4)
		require.ErrorIs(t, err, reservoir.ErrInvalidPopulation)
	})

	t.Run("negative sample size", func(t *testing.T) {
		t.Parallel()
		_, err := reservoir.SampleEntropy(3, -1)
		require.ErrorIs(t, err, reservoir.ErrInvalidSampleSize)
	})
}
