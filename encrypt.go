package paillier

import (
	"io"
	"math/big"
)

// EncryptWithNonce computes c = (1 + m*n) * r^n mod n^2, the Paillier
// encryption of m under the randomising nonce r. m must satisfy
// 0 <= m < n; r must be a nonzero residue with 0 < r < n and gcd(r, n) = 1.
// Per spec.md §9 Open Questions, validity of r is not checked here (matching
// original_source, which notes this as a deliberate simplification): callers
// that accept r from an untrusted source should run NonceIsValid first.
func (pk *PublicKey) EncryptWithNonce(m, r *big.Int) (*big.Int, error) {
	if !pk.PlaintextIsValid(m) {
		return nil, invalidKeyf("plaintext %v is out of range [0, n)", m)
	}

	// g^m = (1+n)^m ≡ 1 + m*n (mod n^2); the binomial identity sidesteps a
	// generic exponentiation entirely.
	gToM := new(big.Int).Mul(pk.n, m)
	gToM.Add(gToM, bigOne)

	rToN := pk.pre.nnMontyParams.expMod(r, pk.n)

	c := new(big.Int).Mul(gToM, rToN)
	c.Mod(c, pk.pre.nSquare)
	return c, nil
}

// Encrypt draws a fresh random nonce via RandomNonce and encrypts m with it,
// returning both the ciphertext and the nonce used.
func (pk *PublicKey) Encrypt(rng io.Reader, m *big.Int) (ciphertext, nonce *big.Int, err error) {
	r, err := pk.RandomNonce(rng)
	if err != nil {
		return nil, nil, err
	}
	c, err := pk.EncryptWithNonce(m, r)
	if err != nil {
		return nil, nil, err
	}
	return c, r, nil
}
