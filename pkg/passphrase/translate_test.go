package passphrase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passkit/pkg/passphrase"
)

func TestParseTable(t *testing.T) {
	t.Parallel()

	t.Run("replacements", func(t *testing.T) {
		t.Parallel()
		table, err := passphrase.ParseTable("eo:30")
		require.NoError(t, err)

		p := passphrase.New([]string{"melon", "hero"})
		p.Translate(table)
		assert.Equal(t, []string{"m3l0n", "h3r0"}, words(t, p))
	})

	t.Run("short ys deletes the tail of xs", func(t *testing.T) {
		t.Parallel()
		table, err := passphrase.ParseTable("abc:a")
		require.NoError(t, err)

		p := passphrase.New([]string{"cabbage"})
		p.Translate(table)
		assert.Equal(t, []string{"aage"}, words(t, p))
	})

	t.Run("ys longer than xs", func(t *testing.T) {
		t.Parallel()
		_, err := passphrase.ParseTable("ab:abc")
		require.ErrorIs(t, err, passphrase.ErrBadTranslateSpec)
	})

	t.Run("missing separator", func(t *testing.T) {
		t.Parallel()
		_, err := passphrase.ParseTable("abc")
		require.ErrorIs(t, err, passphrase.ErrBadTranslateSpec)
	})

	t.Run("multiple specs combine, later wins", func(t *testing.T) {
		t.Parallel()
		table, err := passphrase.ParseTable("e:3", "o:0", "e:_")
		require.NoError(t, err)

		p := passphrase.New([]string{"melon"})
		p.Translate(table)
		assert.Equal(t, []string{"m_l0n"}, words(t, p))
	})

	t.Run("remapping revives a deleted character", func(t *testing.T) {
		t.Parallel()
		table, err := passphrase.ParseTable("x:", "x:y")
		require.NoError(t, err)

		p := passphrase.New([]string{"axe"})
		p.Translate(table)
		assert.Equal(t, []string{"aye"}, words(t, p))
	})

	t.Run("unmapped characters pass through", func(t *testing.T) {
		t.Parallel()
		table, err := passphrase.ParseTable("q:9")
		require.NoError(t, err)

		p := passphrase.New([]string{"melon"})
		p.Translate(table)
		assert.Equal(t, []string{"melon"}, words(t, p))
	})
}

func TestTranslateNilTable(t *testing.T) {
	t.Parallel()

	p := passphrase.New([]string{"melon"})
	p.Translate(nil)
	assert.Equal(t, []string{"melon"}, words(t, p))
}
