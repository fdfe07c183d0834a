package paillier

import "math/big"

// Decrypt recovers the plaintext m from ciphertext c via CRT: a
// Fermat-quotient L-function evaluation modulo p^2 and modulo q^2, each
// multiplied by its precomputed h-factor, then lifted to mod n with the CRT
// coefficient q^-1 mod p. c must satisfy 0 < c < n^2 with gcd(c, n^2) = 1;
// behaviour is undefined otherwise (callers accepting c from an untrusted
// source should run PublicKey.CiphertextIsValid first, per spec.md §4.5).
func (sk *SecretKey) Decrypt(c *big.Int) (*big.Int, error) {
	lp := sk.fermatQuotientP(c)
	mp := new(big.Int).Mul(lp, sk.pre.hp)
	mp.Mod(mp, sk.p)

	lq := sk.fermatQuotientQ(c)
	mq := new(big.Int).Mul(lq, sk.pre.hq)
	mq.Mod(mq, sk.q)

	return sk.crtCombine(mp, mq), nil
}

// Open recovers both the plaintext m and the nonce r used to produce c. It
// requires the SecretKey to have been constructed with withOpen = true;
// otherwise it returns ErrInvariantViolated rather than lazily computing the
// missing precomputation, since doing so on this secret-dependent path would
// leak timing (spec.md §9 Open Questions).
func (sk *SecretKey) Open(c *big.Int) (m *big.Int, r *big.Int, err error) {
	if !sk.pre.supportsOpen() {
		return nil, nil, invariantViolatedf("secret key was not constructed with open support")
	}

	m, err = sk.Decrypt(c)
	if err != nil {
		return nil, nil, err
	}

	gToM := new(big.Int).Mul(sk.pk.n, m)
	gToM.Add(gToM, bigOne)
	gToMInv := modInverse(gToM, sk.pk.pre.nSquare)
	if gToMInv == nil {
		return nil, nil, invariantViolatedf("g^m not invertible mod n^2")
	}
	rToN := new(big.Int).Mul(c, gToMInv)
	rToN.Mod(rToN, sk.pk.pre.nSquare)

	rModP := new(big.Int).Mod(rToN, sk.p)
	rModP.Exp(rModP, sk.pre.nInverseModPMinus1, sk.p)

	rModQ := new(big.Int).Mod(rToN, sk.q)
	rModQ.Exp(rModQ, sk.pre.nInverseModQMinus1, sk.q)

	r = sk.crtCombine(rModP, rModQ)
	return m, r, nil
}

// fermatQuotientP computes L_p(c^(p-1) mod p^2) = (c^(p-1) mod p^2 - 1) / p.
func (sk *SecretKey) fermatQuotientP(c *big.Int) *big.Int {
	xReduced := narrow(c, sk.pre.ppMontyParams.modulus)
	xToPm1 := sk.pre.ppMontyParams.expMod(xReduced, sk.pre.pMinus1)
	return lFunction(xToPm1, sk.p)
}

// fermatQuotientQ computes L_q(c^(q-1) mod q^2) analogously.
func (sk *SecretKey) fermatQuotientQ(c *big.Int) *big.Int {
	xReduced := narrow(c, sk.pre.qqMontyParams.modulus)
	xToQm1 := sk.pre.qqMontyParams.expMod(xReduced, sk.pre.qMinus1)
	return lFunction(xToQm1, sk.q)
}

// crtCombine lifts a pair (mp mod p, mq mod q) to the unique value mod n =
// p*q congruent to each, via h = (mp - mq) * q^-1 mod p, m = mq + q*h.
func (sk *SecretKey) crtCombine(mp, mq *big.Int) *big.Int {
	h := new(big.Int).Sub(mp, mq)
	h.Mod(h, sk.p)
	h.Mul(h, sk.pre.qInverseModP)
	h.Mod(h, sk.p)

	m := new(big.Int).Mul(sk.q, h)
	m.Add(m, mq)
	return m
}
