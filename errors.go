package paillier

import "github.com/pkg/errors"

// ErrKeyInvalid is returned when inputs to FromPrimes fail validation: not
// prime, wrong bit length, or p == q.
var ErrKeyInvalid = errors.New("paillier: key material is invalid")

// ErrInvariantViolated is returned when a "cannot happen" precondition fails,
// such as an expected-odd modulus being even or an expected-invertible
// element sharing a factor with its modulus. It signals programmer error or
// corrupted inputs, never an ordinary runtime condition.
var ErrInvariantViolated = errors.New("paillier: internal invariant violated")

// ErrSamplerExhausted is returned by RandomNonce when the rejection-sampling
// loop exceeds its iteration ceiling. Unreachable for an honestly generated
// modulus; guards against a caller-supplied n that is degenerate.
var ErrSamplerExhausted = errors.New("paillier: sampler exceeded iteration ceiling")

// invalidKeyf wraps ErrKeyInvalid with a formatted reason.
func invalidKeyf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrKeyInvalid, format, args...)
}

// invariantViolatedf wraps ErrInvariantViolated with a formatted reason.
func invariantViolatedf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvariantViolated, format, args...)
}
