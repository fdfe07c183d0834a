package paillier

import "math/big"

// montgomeryParams caches what Montgomery multiplication needs for a fixed
// odd modulus: R = 2^rBits (R is implicit in rBits and is never stored
// directly; it would otherwise dwarf the modulus it accompanies), and
// nPrime = -modulus^-1 mod R, the constant REDC needs to cancel the low
// rBits bits of a product before shifting them off. This is the "Montgomery
// context" the design calls for inside PublicPrecomputation and
// SecretPrecomputation; both precomputation tables embed one of these per
// modulus they work under (n^2, optionally n, and p^2/q^2).
type montgomeryParams struct {
	modulus *big.Int
	rBits   uint
	nPrime  *big.Int
}

// newMontgomeryParams builds the Montgomery context for an odd modulus. R is
// taken as the smallest power of two strictly greater than modulus, which is
// always coprime to an odd modulus.
func newMontgomeryParams(modulus *big.Int) (*montgomeryParams, error) {
	if modulus.Bit(0) == 0 {
		return nil, invariantViolatedf("montgomery modulus must be odd")
	}
	rBits := uint(modulus.BitLen())
	r := new(big.Int).Lsh(bigOne, rBits)

	nModR := new(big.Int).Mod(modulus, r)
	nInv := new(big.Int).ModInverse(nModR, r)
	if nInv == nil {
		return nil, invariantViolatedf("montgomery modulus not invertible mod R")
	}
	nPrime := new(big.Int).Sub(r, nInv)
	nPrime.Mod(nPrime, r)

	return &montgomeryParams{modulus: modulus, rBits: rBits, nPrime: nPrime}, nil
}

// redc reduces t (0 <= t < R*modulus) to t*R^-1 mod modulus, in [0, modulus).
func (p *montgomeryParams) redc(t *big.Int) *big.Int {
	rMask := new(big.Int).Sub(new(big.Int).Lsh(bigOne, p.rBits), bigOne)

	m := new(big.Int).And(t, rMask)
	m.Mul(m, p.nPrime)
	m.And(m, rMask)

	u := new(big.Int).Mul(m, p.modulus)
	u.Add(u, t)
	u.Rsh(u, p.rBits)

	if u.Cmp(p.modulus) >= 0 {
		u.Sub(u, p.modulus)
	}
	return u
}

// toMont converts an ordinary residue x (0 <= x < modulus) to Montgomery
// form, x*R mod modulus.
func (p *montgomeryParams) toMont(x *big.Int) *big.Int {
	t := new(big.Int).Lsh(x, p.rBits)
	return new(big.Int).Mod(t, p.modulus)
}

// fromMont converts a Montgomery-form residue back to ordinary form.
func (p *montgomeryParams) fromMont(xBar *big.Int) *big.Int {
	return p.redc(xBar)
}

// mulMont multiplies two Montgomery-form residues, returning their product
// in Montgomery form.
func (p *montgomeryParams) mulMont(aBar, bBar *big.Int) *big.Int {
	return p.redc(new(big.Int).Mul(aBar, bBar))
}

// powMont raises a Montgomery-form residue to exponent e (an ordinary,
// non-negative integer, not itself in Montgomery form) via left-to-right
// square-and-multiply, returning the result in Montgomery form. Every bit of
// e costs one square and one multiply, the product being kept only where the
// bit is set, so the number of Montgomery multiplications depends on e's bit
// length and not on its bits. This matters because e is secret at some call
// sites (Decrypt passes p-1 and q-1), not only public values such as n.
func (p *montgomeryParams) powMont(aBar *big.Int, e *big.Int) *big.Int {
	result := p.toMont(bigOne)
	base := aBar
	for i := e.BitLen() - 1; i >= 0; i-- {
		result = p.mulMont(result, result)
		product := p.mulMont(result, base)
		if e.Bit(i) == 1 {
			result = product
		}
	}
	return result
}

// expMod raises an ordinary residue base to exponent e modulo p.modulus,
// returning an ordinary residue. This is the convenience entry point most
// call sites use; toMont/fromMont bracket a single powMont call.
func (p *montgomeryParams) expMod(base, e *big.Int) *big.Int {
	baseBar := p.toMont(new(big.Int).Mod(base, p.modulus))
	return p.fromMont(p.powMont(baseBar, e))
}
