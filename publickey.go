package paillier

import "math/big"

// PublicKey is the Paillier public key: the modulus n and the Montgomery
// precomputation derived from it. PublicKey is an immutable value, freely
// copyable; it carries no reference back to any SecretKey it may have been
// projected from.
type PublicKey struct {
	level Level
	n     *big.Int
	pre   *publicPrecomputation
}

// FromNUnchecked builds a PublicKey directly from a modulus n, without
// checking that n actually factors as a product of two equal-length primes.
// Prefer obtaining a PublicKey via SecretKey.AsPublicKey or GenerateKey
// unless you are reconstructing a key whose n you already trust.
func FromNUnchecked(level Level, n *big.Int) (*PublicKey, error) {
	if err := checkBitLen(n, level.S, "n"); err != nil {
		return nil, err
	}
	pre, err := newPublicPrecomputation(n)
	if err != nil {
		return nil, err
	}
	return &PublicKey{level: level, n: n, pre: pre}, nil
}

// Level reports the security level this key was constructed under.
func (pk *PublicKey) Level() Level { return pk.level }

// N returns the modulus. The returned value must not be mutated.
func (pk *PublicKey) N() *big.Int { return pk.n }

// NSquare returns n^2, the modulus ciphertexts live under. The returned
// value must not be mutated.
func (pk *PublicKey) NSquare() *big.Int { return pk.pre.nSquare }

// PlaintextIsValid reports whether m is a valid plaintext under pk: 0 <= m
// and m < n.
func (pk *PublicKey) PlaintextIsValid(m *big.Int) bool {
	return m.Sign() >= 0 && ctLess(m, pk.n)
}

// PlaintextEq reports whether ml and mr are equal valid plaintexts. It
// checks validity of both operands before comparing, composing the three
// checks with a plain boolean AND rather than short-circuiting, so the
// result does not reveal which check failed through early return timing.
func (pk *PublicKey) PlaintextEq(ml, mr *big.Int) bool {
	validL := pk.PlaintextIsValid(ml)
	validR := pk.PlaintextIsValid(mr)
	eq := ctEq(ml, mr)
	return validL && validR && eq
}

// NonceIsValid reports whether r is a valid nonce under pk: 0 < r < n and
// gcd(r, n) = 1.
func (pk *PublicKey) NonceIsValid(r *big.Int) bool {
	return r.Sign() > 0 && ctLess(r, pk.n) && isCoprime(r, pk.n)
}

// NonceEq reports whether rl and rr are equal valid nonces.
func (pk *PublicKey) NonceEq(rl, rr *big.Int) bool {
	validL := pk.NonceIsValid(rl)
	validR := pk.NonceIsValid(rr)
	eq := ctEq(rl, rr)
	return validL && validR && eq
}

// CiphertextIsValid reports whether c is a valid ciphertext under pk:
// 0 < c < n^2 and gcd(c, n^2) = 1.
func (pk *PublicKey) CiphertextIsValid(c *big.Int) bool {
	return c.Sign() > 0 && ctLess(c, pk.pre.nSquare) && isCoprime(c, pk.pre.nSquare)
}

// CiphertextEq reports whether cl and cr are equal valid ciphertexts.
func (pk *PublicKey) CiphertextEq(cl, cr *big.Int) bool {
	validL := pk.CiphertextIsValid(cl)
	validR := pk.CiphertextIsValid(cr)
	eq := ctEq(cl, cr)
	return validL && validR && eq
}

// ScalarIsValid reports whether s is a valid scalar exponent under pk:
// 0 <= s < n.
func (pk *PublicKey) ScalarIsValid(s *big.Int) bool {
	return s.Sign() >= 0 && ctLess(s, pk.n)
}
