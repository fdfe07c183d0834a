package paillier

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprintIsDeterministic(t *testing.T) {
	pk1, err := FromNUnchecked(newLevel(8), big.NewInt(60491))
	require.NoError(t, err)
	pk2, err := FromNUnchecked(newLevel(8), big.NewInt(60491))
	require.NoError(t, err)

	assert.Equal(t, pk1.Fingerprint(), pk2.Fingerprint())
}

func TestFingerprintDiffersForDifferentModuli(t *testing.T) {
	pk1, err := FromNUnchecked(newLevel(8), big.NewInt(60491))
	require.NoError(t, err)
	pk2, err := FromNUnchecked(newLevel(7), big.NewInt(10403))
	require.NoError(t, err)

	assert.NotEqual(t, pk1.Fingerprint(), pk2.Fingerprint())
}

func TestHashBigIntsDistinguishesOperandBoundaries(t *testing.T) {
	// (0x01, 0x0203) and (0x0102, 0x03) both concatenate to the bytes
	// 01 02 03, so concatenation-naive hashing would confuse them; the
	// length-prefixed scheme must not.
	a := hashBigInts(big.NewInt(0x01), big.NewInt(0x0203))
	b := hashBigInts(big.NewInt(0x0102), big.NewInt(0x03))
	assert.NotEqual(t, a, b)
}
