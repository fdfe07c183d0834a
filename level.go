package paillier

// Level fixes the bit widths used throughout a Paillier instantiation. H is
// the bit length of each prime p and q; S = 2H is the bit length of the
// modulus n = p*q; D = 2S is the bit length of n^2, and therefore of a
// ciphertext. Widths are tracked as plain ints rather than at the type
// level: Go has no const-generic integer types, so the width discipline the
// design calls for is enforced by assertion (see checkBitLen) rather than
// by the compiler.
type Level struct {
	H int
	S int
	D int
}

// HBits, SBits and DBits return the declared widths of this level, for
// readability at call sites that only need one of them.
func (l Level) HBits() int { return l.H }
func (l Level) SBits() int { return l.S }
func (l Level) DBits() int { return l.D }

func newLevel(h int) Level {
	return Level{H: h, S: 2 * h, D: 4 * h}
}

var (
	// Level2048 is the 2048-bit modulus level: 1024-bit primes, 2048-bit n,
	// 4096-bit n^2.
	Level2048 = newLevel(1024)
	// Level3072 is the 3072-bit modulus level: 1536-bit primes, 3072-bit n,
	// 6144-bit n^2.
	Level3072 = newLevel(1536)
	// Level4096 is the 4096-bit modulus level: 2048-bit primes, 4096-bit n,
	// 8192-bit n^2.
	Level4096 = newLevel(2048)
)
