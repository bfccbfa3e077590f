package passphrase_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passkit/pkg/charset"
	"github.com/dmitrymomot/passkit/pkg/passphrase"
	"github.com/dmitrymomot/passkit/pkg/randgen"
	"github.com/dmitrymomot/passkit/pkg/reservoir"
	"github.com/dmitrymomot/passkit/pkg/wordlist"
)

func sep(s string) *string { return &s }

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("deterministic end to end", func(t *testing.T) {
		t.Parallel()
		src := wordlist.Slice("apple", "berry", "cherry", "date", "egg")

		// The unbias pass keeps the head in arrival order (draws 0,0,0);
		// "date" and "egg" draw indexes >= 3 and are skipped.
		rnd := randgen.Script(0, 0, 0, 3, 4)

		res, err := passphrase.Generate(src, passphrase.Options{
			Words:     3,
			Separator: sep("-"),
			Rand:      rnd,
		})
		require.NoError(t, err)

		assert.Equal(t, "apple-berry-cherry", res.Passphrase)
		assert.Equal(t, 5, res.Population)
		assert.InDelta(t, math.Log2(5)+math.Log2(4)+math.Log2(3), res.Entropy, 1e-12)
		assert.Equal(t, 0, rnd.Remaining())
	})

	t.Run("all stages in order", func(t *testing.T) {
		t.Parallel()
		src := wordlist.Slice("Sunrise", "HARBOR", "melon")
		digits, err := charset.Parse("d")
		require.NoError(t, err)
		table, err := passphrase.ParseTable("o:0")
		require.NoError(t, err)

		// Unbias draws 2,0,0 order the sample [melon Sunrise HARBOR];
		// then shorten(5), fold and o->0 yield [mel0n sunri harb0];
		// randomize injects '7' at word 1, position 2; capitalize
		// retitles word 0.
		rnd := randgen.Script(2, 0, 0, 7, 1, 2)

		res, err := passphrase.Generate(src, passphrase.Options{
			Words:      3,
			Separator:  sep("-"),
			MaxWordLen: 5,
			Fold:       true,
			Translate:  table,
			Randomize:  []charset.Charset{digits},
			Capitalize: true,
			Rand:       rnd,
		})
		require.NoError(t, err)

		assert.Equal(t, "Mel0n-su7ri-harb0", res.Passphrase)
		assert.Equal(t, 0, rnd.Remaining())
	})

	t.Run("entropy policy violation", func(t *testing.T) {
		t.Parallel()
		src := wordlist.Slice("apple", "berry", "cherry")

		_, err := passphrase.Generate(src, passphrase.Options{
			Words:      2,
			MinEntropy: 64,
			Rand:       randgen.Script(0, 0, 2),
		})
		require.ErrorIs(t, err, passphrase.ErrInsufficientEntropy)
		assert.Contains(t, err.Error(), "bigger dictionary")
	})

	t.Run("source exhausted", func(t *testing.T) {
		t.Parallel()
		src := wordlist.Slice("apple", "berry")

		_, err := passphrase.Generate(src, passphrase.Options{Words: 3})
		require.ErrorIs(t, err, reservoir.ErrSourceExhausted)
	})

	t.Run("negative word limit", func(t *testing.T) {
		t.Parallel()
		_, err := passphrase.Generate(wordlist.Slice("a"), passphrase.Options{
			Words:      1,
			MaxWordLen: -1,
		})
		require.ErrorIs(t, err, passphrase.ErrInvalidWordLimit)
	})

	t.Run("default separator is a space", func(t *testing.T) {
		t.Parallel()
		src := wordlist.Slice("apple", "berry")

		res, err := passphrase.Generate(src, passphrase.Options{
			Words: 2,
			Rand:  randgen.Script(0, 0),
		})
		require.NoError(t, err)
		assert.Equal(t, "apple berry", res.Passphrase)
	})

	t.Run("explicit empty separator joins words directly", func(t *testing.T) {
		t.Parallel()
		src := wordlist.Slice("apple", "berry")

		res, err := passphrase.Generate(src, passphrase.Options{
			Words:     2,
			Separator: sep(""),
			Rand:      randgen.Script(0, 0),
		})
		require.NoError(t, err)
		assert.Equal(t, "appleberry", res.Passphrase)
	})

	t.Run("zero words", func(t *testing.T) {
		t.Parallel()
		res, err := passphrase.Generate(wordlist.Slice("apple"), passphrase.Options{})
		require.NoError(t, err)
		assert.Equal(t, "", res.Passphrase)
		assert.Zero(t, res.Entropy)
		assert.Zero(t, res.Population)
	})

	t.Run("crypto source by default", func(t *testing.T) {
		t.Parallel()
		src := wordlist.Slice("apple", "berry", "cherry", "date")

		res, err := passphrase.Generate(src, passphrase.Options{Words: 2, Separator: sep("-")})
		require.NoError(t, err)
		assert.Regexp(t, `^[a-z]+-[a-z]+$`, res.Passphrase)
	})
}
