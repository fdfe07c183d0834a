package paillier

import "math/big"

// secretPrecomputation caches everything CRT-based decryption and open need,
// derived once from the primes p and q at key-construction time and
// thereafter read-only. See spec.md §4.2 for the derivation this mirrors;
// the hp/hq derivation below follows original_source's sk/precomp.rs
// (the (1 - (n mod x^2) - 1) / x construction) exactly, since spec.md §4.2
// leaves the precise integer-division path to the implementation.
type secretPrecomputation struct {
	pMinus1       *big.Int
	ppMontyParams *montgomeryParams
	hp            *big.Int

	qMinus1       *big.Int
	qqMontyParams *montgomeryParams
	hq            *big.Int

	qInverseModP *big.Int

	// Present only when open() support is requested at construction time.
	// See spec.md §9 Open Questions: open must reject rather than lazily
	// compute these, since lazy computation on a secret-dependent path
	// would leak timing.
	nInverseModPMinus1 *big.Int
	nInverseModQMinus1 *big.Int
}

// hFactor computes h_x = (L_x((1+n)^(x-1) mod x^2))^-1 mod x, where
// L_x(y) = (y-1)/x and (1+n)^(x-1) ≡ 1 - n (mod x^2); following
// original_source, the quantity actually divided is
// (1 - (n mod x^2)) - 1, i.e. -(n mod x^2), which is exact because n ≡ 0
// (mod x) once reduced by the prime itself dividing n = p*q.
func hFactor(n, x, xSquare *big.Int) (*big.Int, error) {
	nModXSquare := narrow(n, xSquare)

	// (1 - nModXSquare - 1) mod xSquare == (-nModXSquare) mod xSquare
	numerator := new(big.Int).Neg(nModXSquare)
	numerator.Mod(numerator, xSquare)

	hInv := new(big.Int).Div(numerator, x)
	h := modInverse(hInv, x)
	if h == nil {
		return nil, invariantViolatedf("h factor not invertible mod prime")
	}
	return h, nil
}

// newSecretPrecomputation derives the secret precomputation table from two
// distinct odd primes p, q. withOpen requests the additional n^-1 mod (p-1)
// and n^-1 mod (q-1) needed by SecretKey.Open; construction fails with
// ErrKeyInvalid if n is not invertible modulo p-1 or q-1 (cannot happen for
// honestly generated, equal-length primes, but the check is mandatory per
// spec.md §4.2).
func newSecretPrecomputation(p, q *big.Int, withOpen bool) (*secretPrecomputation, error) {
	n := wideningMul(p, q)

	pSquare := wideningSquare(p)
	ppMontyParams, err := newMontgomeryParams(pSquare)
	if err != nil {
		return nil, err
	}
	hp, err := hFactor(n, p, pSquare)
	if err != nil {
		return nil, err
	}

	qSquare := wideningSquare(q)
	qqMontyParams, err := newMontgomeryParams(qSquare)
	if err != nil {
		return nil, err
	}
	hq, err := hFactor(n, q, qSquare)
	if err != nil {
		return nil, err
	}

	qInverseModP := modInverse(q, p)
	if qInverseModP == nil {
		return nil, invariantViolatedf("q not invertible mod p")
	}

	sp := &secretPrecomputation{
		pMinus1:       new(big.Int).Sub(p, bigOne),
		ppMontyParams: ppMontyParams,
		hp:            hp,
		qMinus1:       new(big.Int).Sub(q, bigOne),
		qqMontyParams: qqMontyParams,
		hq:            hq,
		qInverseModP:  qInverseModP,
	}

	if withOpen {
		pMinus1, qMinus1 := sp.pMinus1, sp.qMinus1
		lambda := new(big.Int).Mul(pMinus1, qMinus1)
		lambda.Div(lambda, gcd(pMinus1, qMinus1))

		nInverseModLambda := modInverse(n, lambda)
		if nInverseModLambda == nil {
			return nil, invalidKeyf("n is not invertible modulo lambda(n); p and q are not a valid safe-prime-regime pair")
		}

		sp.nInverseModPMinus1 = narrow(nInverseModLambda, pMinus1)
		sp.nInverseModQMinus1 = narrow(nInverseModLambda, qMinus1)
	}

	return sp, nil
}

// supportsOpen reports whether this precomputation carries the data Open
// needs.
func (sp *secretPrecomputation) supportsOpen() bool {
	return sp.nInverseModPMinus1 != nil && sp.nInverseModQMinus1 != nil
}
