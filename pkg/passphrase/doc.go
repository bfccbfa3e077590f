// Package passphrase builds human-memorable, high-entropy passphrases from
// randomly sampled dictionary words and mutates them to satisfy
// character-class policies.
//
// The central type is Passphrase: a fixed-count sequence of exclusively
// owned, mutable words. Stages edit it in place and run in one fixed order:
//
//	shorten → fold → translate → randomize → capitalize
//
// The order is part of the contract. Truncation happens before substitution
// so substituted characters are never cut off; case-folding before random
// injection so injected characters are never lowercased; translation before
// randomization so injected characters are never re-translated; and
// capitalization last so nothing undoes it. Join is the terminal operation
// and the only point where the words collapse into a single string.
//
// Generate ties the stages to the reservoir selector and the entropy
// policy: it samples words from a wordlist.Source, verifies the exact
// selection entropy against a minimum, applies the configured stages and
// returns the joined result.
//
// # Usage
//
//	src, _ := wordlist.Open("/usr/share/dict/words")
//	defer src.Close()
//
//	digits, _ := charset.Parse("d")
//	res, err := passphrase.Generate(src, passphrase.Options{
//	    Words:      6,
//	    MinEntropy: 80,
//	    Randomize:  []charset.Charset{digits},
//	    Capitalize: true,
//	})
//	if err != nil {
//	    // errors.Is(err, passphrase.ErrInsufficientEntropy) means the
//	    // policy rejected an otherwise valid draw: use more words or a
//	    // bigger dictionary.
//	}
//	fmt.Println(res.Passphrase, res.Entropy)
//
// All randomness is drawn through an injected randgen.Source; production
// callers rely on the crypto-backed default while tests script exact draws.
package passphrase
