// Package main implements the passkit command: it samples words from a
// dictionary stream, enforces an entropy floor and applies character-class
// mutations, printing the finished passphrase on stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dmitrymomot/passkit/pkg/charset"
	"github.com/dmitrymomot/passkit/pkg/config"
	"github.com/dmitrymomot/passkit/pkg/logger"
	"github.com/dmitrymomot/passkit/pkg/passphrase"
	"github.com/dmitrymomot/passkit/pkg/policy"
	"github.com/dmitrymomot/passkit/pkg/wordlist"
)

// envConfig carries defaults that make sense per machine or per shell
// profile; flags override all of them.
type envConfig struct {
	Dictionary string `env:"PASSKIT_DICTIONARY" envDefault:"/usr/share/dict/words"`
	PolicyFile string `env:"PASSKIT_POLICY_FILE"`
	Profile    string `env:"PASSKIT_PROFILE" envDefault:"default"`
	LogLevel   string `env:"PASSKIT_LOG_LEVEL" envDefault:"warn"`
	LogFormat  string `env:"PASSKIT_LOG_FORMAT" envDefault:"text"`
}

const usageText = `Usage: passkit [options] <length>

Generate a random passphrase of <length> dictionary words.

Options:
    -C, --capitalize             capitalize the first word
    -F, --fold                   lower-case all words before other edits
    -m, --max-word-len <n>       truncate words to at most <n> characters
    -R, --randomize <charset>    swap in one random character from <charset>
                                 (repeatable; e.g. "d", "us", "[-.?!0-9]")
    -S, --separator <string>     separate words with <string> (default: space)
    -T, --translate <xs>:<ys>    translate characters of <xs> to <ys>
                                 (repeatable; short <ys> deletes the tail of <xs>)
    -E, --least-entropy <H>      require at least <H> bits of entropy
    -f, --file <path>            draw words from <path>
    -p, --policy <path>          load generation profiles from a YAML policy file
    -P, --profile <name>         profile to apply from the policy file
    -h, --help                   print this message

Environment: PASSKIT_DICTIONARY, PASSKIT_POLICY_FILE, PASSKIT_PROFILE,
PASSKIT_LOG_LEVEL, PASSKIT_LOG_FORMAT. Flags take precedence.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// repeatable collects every occurrence of a flag, preserving order and
// multiplicity.
type repeatable []string

func (r *repeatable) String() string { return fmt.Sprint([]string(*r)) }

func (r *repeatable) Set(v string) error {
	*r = append(*r, v)
	return nil
}

func run(args []string, stdout, stderr io.Writer) int {
	var cfg envConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fs := flag.NewFlagSet("passkit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usageText) }

	var (
		capitalize bool
		fold       bool
		maxWordLen int
		randomize  repeatable
		translate  repeatable
		separator  string
		minEntropy float64
	)
	fs.BoolVar(&capitalize, "C", false, "")
	fs.BoolVar(&capitalize, "capitalize", false, "")
	fs.BoolVar(&fold, "F", false, "")
	fs.BoolVar(&fold, "fold", false, "")
	fs.IntVar(&maxWordLen, "m", 0, "")
	fs.IntVar(&maxWordLen, "max-word-len", 0, "")
	fs.Var(&randomize, "R", "")
	fs.Var(&randomize, "randomize", "")
	fs.Var(&translate, "T", "")
	fs.Var(&translate, "translate", "")
	fs.StringVar(&separator, "S", "", "")
	fs.StringVar(&separator, "separator", "", "")
	fs.Float64Var(&minEntropy, "E", 0, "")
	fs.Float64Var(&minEntropy, "least-entropy", 0, "")
	fs.StringVar(&cfg.Dictionary, "f", cfg.Dictionary, "")
	fs.StringVar(&cfg.Dictionary, "file", cfg.Dictionary, "")
	fs.StringVar(&cfg.PolicyFile, "p", cfg.PolicyFile, "")
	fs.StringVar(&cfg.PolicyFile, "policy", cfg.PolicyFile, "")
	fs.StringVar(&cfg.Profile, "P", cfg.Profile, "")
	fs.StringVar(&cfg.Profile, "profile", cfg.Profile, "")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithFormat(logger.ParseFormat(cfg.LogFormat)),
		logger.WithOutput(stderr),
	)

	// Start from the policy profile, if any, then layer explicit flags on
	// top so the command line always has the last word.
	var opts passphrase.Options
	if cfg.PolicyFile != "" {
		profiles, err := policy.LoadFile(cfg.PolicyFile)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		profile, err := profiles.Get(cfg.Profile)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		opts, err = profile.Compile()
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["C"] || set["capitalize"] {
		opts.Capitalize = capitalize
	}
	if set["F"] || set["fold"] {
		opts.Fold = fold
	}
	if set["m"] || set["max-word-len"] {
		opts.MaxWordLen = maxWordLen
	}
	if set["S"] || set["separator"] {
		// An explicit -S "" is a real choice: join words directly.
		opts.Separator = &separator
	}
	if set["E"] || set["least-entropy"] {
		opts.MinEntropy = minEntropy
	}
	for _, expr := range randomize {
		cs, err := charset.Parse(expr)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		opts.Randomize = append(opts.Randomize, cs)
	}
	if len(translate) > 0 {
		table, err := passphrase.ParseTable(translate...)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		opts.Translate = table
	}

	switch fs.NArg() {
	case 0:
		if opts.Words <= 0 {
			fs.Usage()
			return 2
		}
	case 1:
		n, err := strconv.Atoi(fs.Arg(0))
		if err != nil || n < 1 {
			fmt.Fprintf(stderr, "Error: invalid length: %s\n", fs.Arg(0))
			return 2
		}
		opts.Words = n
	default:
		fs.Usage()
		return 2
	}

	src, err := wordlist.Open(cfg.Dictionary)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer src.Close()

	res, err := passphrase.Generate(src, opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	log.Debug("passphrase generated",
		"words", opts.Words,
		"population", res.Population,
		"entropy_bits", res.Entropy,
	)

	fmt.Fprintln(stdout, res.Passphrase)
	return 0
}
