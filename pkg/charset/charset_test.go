package charset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passkit/pkg/charset"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		expr string
		want string // expected members, sorted ascending
	}{
		{"single tag", "d", "0123456789"},
		{"tag union", "du", "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"},
		{"duplicate tags collapse", "dd", "0123456789"},
		{"simple range", "[a-c]", "abc"},
		{"literals", "[xyz]", "xyz"},
		{"range and literals", "[-.?!0-9]", "!-.0123456789?"},
		{"trailing dash literal", "[a-]", "-a"},
		{"leading dash literal", "[-a]", "-a"},
		{"double dash literals", "[a--]", "-a"},
		{"lone dash", "[-]", "-"},
		{"reversed range is empty", "[c-a]", ""},
		{"tag after enumeration", "[a-c]d", "0123456789abc"},
		{"tag before enumeration", "d[x-z]", "0123456789xyz"},
		{"tags on both sides", "d[_]u", "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ_"},
		{"literal right bracket inside body", "[a]b]", "]ab"},
		{"rightmost bracket closes", "[a][b]", "[]ab"},
		{"empty expression", "", ""},
		{"empty enumeration", "[]", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cs, err := charset.Parse(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cs.String())
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	t.Run("unknown tag", func(t *testing.T) {
		t.Parallel()
		_, err := charset.Parse("z")
		require.ErrorIs(t, err, charset.ErrUnknownTag)
		assert.Contains(t, err.Error(), "z")
	})

	t.Run("unknown tag after enumeration", func(t *testing.T) {
		t.Parallel()
		_, err := charset.Parse("[a-c]x")
		require.ErrorIs(t, err, charset.ErrUnknownTag)
	})

	t.Run("unterminated enumeration", func(t *testing.T) {
		t.Parallel()
		_, err := charset.Parse("[abc")
		require.ErrorIs(t, err, charset.ErrMalformedExpr)
	})

	t.Run("unterminated after valid part", func(t *testing.T) {
		t.Parallel()
		_, err := charset.Parse("d[abc")
		require.ErrorIs(t, err, charset.ErrMalformedExpr)
	})
}

func TestTagsResolveToPredefinedClasses(t *testing.T) {
	t.Parallel()

	tags := map[string]charset.Charset{
		"d": charset.Digits,
		"u": charset.Upper,
		"l": charset.Lower,
		"s": charset.Symbols,
	}
	for tag, want := range tags {
		tag, want := tag, want
		t.Run(tag, func(t *testing.T) {
			t.Parallel()
			cs, err := charset.Parse(tag)
			require.NoError(t, err)
			assert.Equal(t, want, cs)
		})
	}
}

func TestPredefinedClasses(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0123456789", charset.Digits.String())
	assert.Equal(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ", charset.Upper.String())
	assert.Equal(t, "abcdefghijklmnopqrstuvwxyz", charset.Lower.String())

	// Symbols: all printable ASCII except alphanumerics and whitespace,
	// in four contiguous bands.
	assert.Equal(t, "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~", charset.Symbols.String())
	assert.Len(t, charset.Symbols, 32)
}

func TestContains(t *testing.T) {
	t.Parallel()

	cs, err := charset.Parse("[a-c]")
	require.NoError(t, err)

	assert.True(t, cs.Contains('a'))
	assert.True(t, cs.Contains('c'))
	assert.False(t, cs.Contains('d'))
	assert.False(t, charset.Charset(nil).Contains('a'))
}
