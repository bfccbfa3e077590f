// Package passkit generates human-memorable, high-entropy passphrases by
// sampling words uniformly at random from a dictionary stream of unknown
// length and optionally mutating the result to satisfy character-class
// policies.
//
// The module is organized as small, independent packages:
//
//   - pkg/reservoir: single-pass, constant-memory uniform sampling of n
//     words from a stream, with exact without-replacement entropy accounting
//   - pkg/charset: a compact character-set expression language (symbolic
//     classes and regexp-like enumerations)
//   - pkg/passphrase: the mutation pipeline (shorten, fold, translate,
//     randomize, capitalize) and the end-to-end generator with an entropy
//     policy floor
//   - pkg/wordlist: word sources over files, readers and slices
//   - pkg/randgen: the injected bounded-random capability, crypto-backed in
//     production and scriptable in tests
//   - pkg/policy: named generation profiles loaded from YAML
//   - pkg/config, pkg/logger: environment configuration and structured
//     logging for the CLI
//
// cmd/passkit wires these into a command that prints one passphrase on
// stdout and keeps every diagnostic on stderr.
package passkit
