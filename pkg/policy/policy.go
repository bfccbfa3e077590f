package policy

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/passkit/pkg/charset"
	"github.com/dmitrymomot/passkit/pkg/passphrase"
)

// Profile is one named generation policy. Zero-valued fields leave the
// corresponding stage disabled, mirroring passphrase.Options.
type Profile struct {
	Words int `yaml:"words"`

	// Separator distinguishes "absent" (nil, default single space) from
	// an explicit empty string (join words with no separator).
	Separator *string `yaml:"separator"`
	MinEntropy     float64  `yaml:"min_entropy"`
	Shorten        int      `yaml:"shorten"`
	Fold           bool     `yaml:"fold"`
	Translate      []string `yaml:"translate"`
	Randomize      []string `yaml:"randomize"`
	Capitalize     bool     `yaml:"capitalize"`
	CapitalizeWord int      `yaml:"capitalize_word"`
}

// Profiles is a set of named profiles loaded from one policy document.
type Profiles map[string]Profile

type document struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

// Load decodes a policy document. Unknown fields are rejected so a typo in
// a policy file fails loudly instead of silently relaxing the policy.
func Load(r io.Reader) (Profiles, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Join(ErrInvalidPolicy, err)
	}
	if len(doc.Profiles) == 0 {
		return nil, fmt.Errorf("%w: no profiles declared", ErrInvalidPolicy)
	}
	return doc.Profiles, nil
}

// LoadFile reads and decodes a policy file.
func LoadFile(path string) (Profiles, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidPolicy, err)
	}
	defer f.Close()
	return Load(f)
}

// Get returns the named profile. The error lists the declared names to make
// a typo actionable.
func (ps Profiles) Get(name string) (Profile, error) {
	p, ok := ps[name]
	if !ok {
		names := make([]string, 0, len(ps))
		for n := range ps {
			names = append(names, n)
		}
		sort.Strings(names)
		return Profile{}, fmt.Errorf("%w: %q (have %v)", ErrUnknownProfile, name, names)
	}
	return p, nil
}

// Compile turns the profile into generation options, parsing its charset
// expressions and translate mappings. The randomness source is left unset
// for the caller to inject.
func (p Profile) Compile() (passphrase.Options, error) {
	opts := passphrase.Options{
		Words:          p.Words,
		Separator:      p.Separator,
		MinEntropy:     p.MinEntropy,
		MaxWordLen:     p.Shorten,
		Fold:           p.Fold,
		Capitalize:     p.Capitalize,
		CapitalizeWord: p.CapitalizeWord,
	}

	for _, expr := range p.Randomize {
		cs, err := charset.Parse(expr)
		if err != nil {
			return passphrase.Options{}, err
		}
		opts.Randomize = append(opts.Randomize, cs)
	}

	if len(p.Translate) > 0 {
		table, err := passphrase.ParseTable(p.Translate...)
		if err != nil {
			return passphrase.Options{}, err
		}
		opts.Translate = table
	}

	return opts, nil
}
