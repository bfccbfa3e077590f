// Package policy loads named passphrase-generation profiles from YAML, so
// that organizational password rules live in a reviewable file instead of a
// shell alias.
//
// A policy file declares one or more profiles:
//
//	profiles:
//	  default:
//	    words: 6
//	    min_entropy: 75
//	  vendor-portal:
//	    words: 4
//	    separator: "-"
//	    min_entropy: 50
//	    fold: true
//	    shorten: 8
//	    capitalize: true
//	    translate: ["e:3", "o:0"]
//	    randomize: ["d", "s"]
//
// Each entry of randomize is a charset expression (see package charset) and
// contributes one substitution; repeat an expression to draw from it twice.
// Each entry of translate is an xs:ys mapping (see passphrase.ParseTable).
// A profile compiles into passphrase.Options with Compile, reusing the same
// parsers as the command-line flags, so syntax errors carry the same
// sentinel errors either way.
package policy
