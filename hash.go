package paillier

import (
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/sha3"
)

// hashInputDelimiter separates successive operands inside hashBigInts' input
// buffer, matching the domain-separation approach in
// bnb-chain-tss-lib/common/hash.go's SHA512_256.
const hashInputDelimiter = byte('$')

// hashBigInts hashes a sequence of big integers with SHA3-256, writing the
// operand count first and then each operand prefixed with its byte length
// and followed by a delimiter, so that no sequence of
// inputs can be confused with a different sequence that happens to
// concatenate to the same bytes.
func hashBigInts(in ...*big.Int) []byte {
	state := sha3.New256()

	count := make([]byte, 8)
	binary.LittleEndian.PutUint64(count, uint64(len(in)))
	state.Write(count)

	for _, x := range in {
		bz := x.Bytes()
		length := make([]byte, 8)
		binary.LittleEndian.PutUint64(length, uint64(len(bz)))
		state.Write(length)
		state.Write(bz)
		state.Write([]byte{hashInputDelimiter})
	}

	return state.Sum(nil)
}

// Fingerprint returns a deterministic SHA3-256 digest of pk's modulus,
// suitable for comparing or logging keys without exposing or copying the
// full modulus. Two PublicKeys constructed from the same n always produce
// the same fingerprint, independent of how pk was obtained (FromNUnchecked
// or SecretKey.AsPublicKey).
func (pk *PublicKey) Fingerprint() []byte {
	return hashBigInts(pk.n)
}
