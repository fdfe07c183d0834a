package paillier

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMontgomeryParamsRejectsEvenModulus(t *testing.T) {
	_, err := newMontgomeryParams(big.NewInt(60490))
	assert.ErrorIs(t, err, ErrInvariantViolated)
}

func TestMontgomeryRoundTrip(t *testing.T) {
	modulus := big.NewInt(60491)
	p, err := newMontgomeryParams(modulus)
	require.NoError(t, err)

	for _, x := range []int64{0, 1, 2, 12345, 60490} {
		xb := big.NewInt(x)
		bar := p.toMont(xb)
		back := p.fromMont(bar)
		assert.Equal(t, 0, xb.Cmp(back), "round trip for %d", x)
	}
}

func TestMulMontMatchesPlainMultiplication(t *testing.T) {
	modulus := big.NewInt(60491)
	p, err := newMontgomeryParams(modulus)
	require.NoError(t, err)

	a := big.NewInt(1234)
	b := big.NewInt(5678)

	want := new(big.Int).Mul(a, b)
	want.Mod(want, modulus)

	aBar := p.toMont(a)
	bBar := p.toMont(b)
	gotBar := p.mulMont(aBar, bBar)
	got := p.fromMont(gotBar)

	assert.Equal(t, 0, want.Cmp(got))
}

func TestExpModMatchesBigIntExp(t *testing.T) {
	modulus := big.NewInt(60491)
	p, err := newMontgomeryParams(modulus)
	require.NoError(t, err)

	base := big.NewInt(9999)
	exp := big.NewInt(777)
	want := new(big.Int).Exp(base, exp, modulus)
	got := p.expMod(base, exp)
	assert.Equal(t, 0, want.Cmp(got))
}

func TestExpModZeroExponentIsOne(t *testing.T) {
	modulus := big.NewInt(60491)
	p, err := newMontgomeryParams(modulus)
	require.NoError(t, err)

	got := p.expMod(big.NewInt(42), big.NewInt(0))
	assert.Equal(t, 0, big.NewInt(1).Cmp(got))
}
