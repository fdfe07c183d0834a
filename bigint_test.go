package paillier

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckBitLen(t *testing.T) {
	assert.NoError(t, checkBitLen(big.NewInt(250), 8, "x"))
	assert.NoError(t, checkBitLen(big.NewInt(0), 8, "x"))
	assert.Error(t, checkBitLen(big.NewInt(256), 8, "x"))
}

func TestGcdAndIsCoprime(t *testing.T) {
	assert.Equal(t, 0, gcd(big.NewInt(12), big.NewInt(18)).Cmp(big.NewInt(6)))
	assert.True(t, isCoprime(big.NewInt(5), big.NewInt(9)))
	assert.False(t, isCoprime(big.NewInt(6), big.NewInt(9)))
}

func TestModInverse(t *testing.T) {
	inv := modInverse(big.NewInt(3), big.NewInt(11))
	product := new(big.Int).Mul(big.NewInt(3), inv)
	product.Mod(product, big.NewInt(11))
	assert.Equal(t, 0, product.Cmp(big.NewInt(1)))

	assert.Nil(t, modInverse(big.NewInt(6), big.NewInt(9)))
}

func TestLFunction(t *testing.T) {
	n := big.NewInt(60491)
	// x = 1 + 3*n, so L(x) = 3.
	x := new(big.Int).Mul(n, big.NewInt(3))
	x.Add(x, bigOne)
	got := lFunction(x, n)
	assert.Equal(t, 0, got.Cmp(big.NewInt(3)))
}

func TestCtEq(t *testing.T) {
	assert.True(t, ctEq(big.NewInt(42), big.NewInt(42)))
	assert.False(t, ctEq(big.NewInt(42), big.NewInt(43)))
	// Different byte lengths must not be mistaken for equal.
	assert.False(t, ctEq(big.NewInt(1), big.NewInt(256)))
}

func TestCtLess(t *testing.T) {
	assert.True(t, ctLess(big.NewInt(1), big.NewInt(2)))
	assert.False(t, ctLess(big.NewInt(2), big.NewInt(2)))
	assert.False(t, ctLess(big.NewInt(3), big.NewInt(2)))
}

func TestWideningMulAndSquare(t *testing.T) {
	assert.Equal(t, 0, wideningMul(big.NewInt(251), big.NewInt(241)).Cmp(big.NewInt(60491)))
	assert.Equal(t, 0, wideningSquare(big.NewInt(251)).Cmp(big.NewInt(63001)))
}

func TestNarrow(t *testing.T) {
	got := narrow(big.NewInt(70000), big.NewInt(60491))
	assert.Equal(t, 0, got.Cmp(big.NewInt(70000-60491)))
}
