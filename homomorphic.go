package paillier

import "math/big"

// This file implements the homomorphic operators of spec.md §4.6: the
// ciphertext side works in the multiplicative group (Z/n^2 Z)*, the nonce
// side in (Z/nZ)*. Every ciphertext/nonce inverse used below is guaranteed
// to exist by the validity invariants (coprimality with n^2 or n); a failure
// to invert is therefore an invariant violation, not a recoverable error,
// per spec.md §4.6.

// CiphertextAdd returns the ciphertext encoding m1+m2 mod n, given
// ciphertexts encoding m1 and m2: c1*c2 mod n^2.
func (pk *PublicKey) CiphertextAdd(c1, c2 *big.Int) *big.Int {
	c := new(big.Int).Mul(c1, c2)
	return c.Mod(c, pk.pre.nSquare)
}

// CiphertextAddPlain returns the ciphertext encoding m+m' mod n, given a
// ciphertext encoding m and a plaintext m'. The nonce is unchanged.
func (pk *PublicKey) CiphertextAddPlain(c, m *big.Int) *big.Int {
	gToM := new(big.Int).Mul(pk.n, m)
	gToM.Add(gToM, bigOne)
	out := new(big.Int).Mul(c, gToM)
	return out.Mod(out, pk.pre.nSquare)
}

// CiphertextSub returns the ciphertext encoding m1-m2 mod n: c1*c2^-1 mod n^2.
func (pk *PublicKey) CiphertextSub(c1, c2 *big.Int) (*big.Int, error) {
	c2Inv := modInverse(c2, pk.pre.nSquare)
	if c2Inv == nil {
		return nil, invariantViolatedf("ciphertext not invertible mod n^2")
	}
	c := new(big.Int).Mul(c1, c2Inv)
	return c.Mod(c, pk.pre.nSquare), nil
}

// CiphertextSubPlain returns the ciphertext encoding m-m' mod n, given a
// ciphertext encoding m and a plaintext m'. The nonce is unchanged.
func (pk *PublicKey) CiphertextSubPlain(c, m *big.Int) *big.Int {
	mNeg := new(big.Int).Sub(pk.n, m)
	mNeg.Mod(mNeg, pk.n)
	return pk.CiphertextAddPlain(c, mNeg)
}

// CiphertextNeg returns the ciphertext encoding (n - m) mod n, given a
// ciphertext encoding m: c^-1 mod n^2.
func (pk *PublicKey) CiphertextNeg(c *big.Int) (*big.Int, error) {
	cInv := modInverse(c, pk.pre.nSquare)
	if cInv == nil {
		return nil, invariantViolatedf("ciphertext not invertible mod n^2")
	}
	return cInv, nil
}

// CiphertextMulScalar returns the ciphertext encoding m*s mod n, given a
// ciphertext encoding m and a scalar s: c^s mod n^2.
func (pk *PublicKey) CiphertextMulScalar(c, s *big.Int) *big.Int {
	return pk.pre.nnMontyParams.expMod(c, s)
}

// NonceAdd returns the nonce product r1*r2 mod n, the nonce update that
// pairs with CiphertextAdd.
func (pk *PublicKey) NonceAdd(r1, r2 *big.Int) *big.Int {
	r := new(big.Int).Mul(r1, r2)
	return r.Mod(r, pk.n)
}

// NonceSub returns r1*r2^-1 mod n, the nonce update that pairs with
// CiphertextSub.
func (pk *PublicKey) NonceSub(r1, r2 *big.Int) (*big.Int, error) {
	r2Inv := modInverse(r2, pk.n)
	if r2Inv == nil {
		return nil, invariantViolatedf("nonce not invertible mod n")
	}
	r := new(big.Int).Mul(r1, r2Inv)
	return r.Mod(r, pk.n), nil
}

// NonceNeg returns r^-1 mod n, the nonce update that pairs with
// CiphertextNeg.
func (pk *PublicKey) NonceNeg(r *big.Int) (*big.Int, error) {
	rInv := modInverse(r, pk.n)
	if rInv == nil {
		return nil, invariantViolatedf("nonce not invertible mod n")
	}
	return rInv, nil
}

// NonceMulScalar returns r^s mod n, the nonce update that pairs with
// CiphertextMulScalar.
func (pk *PublicKey) NonceMulScalar(r, s *big.Int) *big.Int {
	return pk.pre.nMontyParams.expMod(r, s)
}
