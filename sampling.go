package paillier

import (
	"crypto/rand"
	"io"
	"math/big"
)

// maxNonceSampleAttempts bounds the rejection-sampling loop in RandomNonce.
// Unreachable in practice: for an honestly generated n the expected number
// of draws is far below 2 (almost every residue mod n is coprime to it).
const maxNonceSampleAttempts = 1000

// RandomPlaintext draws a uniform plaintext in [0, n).
func (pk *PublicKey) RandomPlaintext(rng io.Reader) (*big.Int, error) {
	m, err := rand.Int(rng, pk.n)
	if err != nil {
		return nil, invariantViolatedf("drawing random plaintext: %v", err)
	}
	return m, nil
}

// RandomNonce draws a uniform nonce in [1, n) with gcd(r, n) = 1 by
// rejection sampling, matching GetRandomNumberInMultiplicativeGroup in the
// teacher's utils.go. Returns ErrSamplerExhausted if no valid nonce is found
// within maxNonceSampleAttempts draws.
func (pk *PublicKey) RandomNonce(rng io.Reader) (*big.Int, error) {
	for attempt := 0; attempt < maxNonceSampleAttempts; attempt++ {
		r, err := rand.Int(rng, pk.n)
		if err != nil {
			return nil, invariantViolatedf("drawing random nonce: %v", err)
		}
		if r.Sign() != 0 && isCoprime(r, pk.n) {
			return r, nil
		}
	}
	return nil, ErrSamplerExhausted
}
