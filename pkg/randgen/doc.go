// Package randgen provides a small capability interface for drawing unbiased
// random integers in [0, bound), together with a cryptographically secure
// production implementation and a scripted implementation for deterministic
// tests.
//
// All randomness consumed by the passkit packages flows through the Source
// interface. Components never reach for a global generator: the capability is
// injected as a parameter, which keeps selection and mutation logic
// independently testable without weakening the production configuration.
//
// # Usage
//
//	rnd := randgen.Crypto()
//	i, err := rnd.IntN(52)
//	if err != nil {
//	    // the entropy source failed; treat as fatal
//	}
//
// In tests, script the exact draw sequence:
//
//	rnd := randgen.Script(3, 0, 1)
//
// A scripted source fails loudly when it runs out of values or when a
// scripted value does not fit the requested bound, so a test that consumes
// randomness in an unexpected order cannot silently pass.
package randgen
