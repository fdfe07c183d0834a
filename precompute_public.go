package paillier

import "math/big"

// publicPrecomputation caches what can be derived from n alone to speed up
// encryption and the ciphertext-side homomorphic operators: the Montgomery
// context for n^2 (always needed, for r^n mod n^2 and scalar-mul), and the
// Montgomery context for n itself (needed for nonce scalar-mul, r^s mod n).
type publicPrecomputation struct {
	nSquare       *big.Int
	nnMontyParams *montgomeryParams
	nMontyParams  *montgomeryParams
}

// newPublicPrecomputation derives the public precomputation table from an
// odd modulus n of width S. n^2 is computed via wideningSquare (S -> D) and
// is odd because n is odd.
func newPublicPrecomputation(n *big.Int) (*publicPrecomputation, error) {
	if n.Bit(0) == 0 {
		return nil, invariantViolatedf("n must be odd")
	}

	nSquare := wideningSquare(n)
	nnMontyParams, err := newMontgomeryParams(nSquare)
	if err != nil {
		return nil, err
	}
	nMontyParams, err := newMontgomeryParams(n)
	if err != nil {
		return nil, err
	}

	return &publicPrecomputation{
		nSquare:       nSquare,
		nnMontyParams: nnMontyParams,
		nMontyParams:  nMontyParams,
	}, nil
}
