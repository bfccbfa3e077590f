package randgen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// Source produces unbiased integers in [0, bound). Implementations must be
// safe to call repeatedly; a returned error is fatal to the operation that
// consumed the draw.
type Source interface {
	IntN(bound int) (int, error)
}

// Crypto returns a Source backed by the operating system's CSPRNG.
// Draws are unbiased for any positive bound.
func Crypto() Source {
	return cryptoSource{}
}

type cryptoSource struct{}

func (cryptoSource) IntN(bound int) (int, error) {
	if bound <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidBound, bound)
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(bound)))
	if err != nil {
		return 0, errors.Join(ErrRandomSource, err)
	}
	return int(v.Int64()), nil
}

// Script returns a deterministic Source that replays the given values in
// order. It is intended for tests: it errors when exhausted and when a
// scripted value falls outside the requested bound, instead of masking a
// consumption-order bug. Not safe for concurrent use.
func Script(values ...int) *ScriptedSource {
	return &ScriptedSource{values: values}
}

// ScriptedSource replays a fixed sequence of draws.
type ScriptedSource struct {
	values []int
	pos    int
}

func (s *ScriptedSource) IntN(bound int) (int, error) {
	if bound <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidBound, bound)
	}
	if s.pos >= len(s.values) {
		return 0, fmt.Errorf("%w: draw %d requested", ErrScriptExhausted, s.pos+1)
	}
	v := s.values[s.pos]
	s.pos++
	if v < 0 || v >= bound {
		return 0, fmt.Errorf("%w: value %d for bound %d", ErrScriptOutOfBound, v, bound)
	}
	return v, nil
}

// Remaining reports how many scripted values have not been consumed yet.
// Tests use it to assert the exact number of draws an operation performed.
func (s *ScriptedSource) Remaining() int {
	return len(s.values) - s.pos
}
