package wordlist

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

// Source is a finite, strictly-forward stream of words. Next returns the
// next word and true, or a zero word and false once the stream is exhausted
// or failed; after a false return the caller must consult Err. A Source is
// single-use and not safe for concurrent consumption.
type Source interface {
	Next() (string, bool)
	Err() error
}

// NewScanner wraps r as a word Source reading one word per line.
// Surrounding whitespace is trimmed and blank lines are skipped.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{sc: bufio.NewScanner(r)}
}

// Scanner streams words from an io.Reader, line by line.
type Scanner struct {
	sc *bufio.Scanner
}

func (s *Scanner) Next() (string, bool) {
	for s.sc.Scan() {
		word := strings.TrimSpace(s.sc.Text())
		if word != "" {
			return word, true
		}
	}
	return "", false
}

func (s *Scanner) Err() error {
	if err := s.sc.Err(); err != nil {
		return errors.Join(ErrReadFailed, err)
	}
	return nil
}

// Slice returns an in-memory Source over the given words, yielded in order.
// Words are passed through verbatim, without trimming.
func Slice(words ...string) Source {
	return &sliceSource{words: words}
}

type sliceSource struct {
	words []string
	pos   int
}

func (s *sliceSource) Next() (string, bool) {
	if s.pos >= len(s.words) {
		return "", false
	}
	w := s.words[s.pos]
	s.pos++
	return w, true
}

func (s *sliceSource) Err() error { return nil }

// Open opens a dictionary file as a word Source. The caller owns the
// returned File and must Close it when selection completes.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrOpenFailed, err)
	}
	return &File{Scanner: NewScanner(f), f: f}, nil
}

// File is a word Source backed by an open dictionary file.
type File struct {
	*Scanner
	f *os.File
}

func (f *File) Close() error {
	return f.f.Close()
}
