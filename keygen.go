package paillier

import (
	"context"
	"io"
	"math/big"
)

// KeyGenerationConcurrency controls how many goroutines GenerateKey fans its
// prime search out across. It is a compile-time constant, not a setting that
// callers can change at run time; GeneratePrime itself takes the concurrency
// level as an explicit parameter, as the teacher's safe-prime generator does.
const KeyGenerationConcurrency = 4

// GenerateKey samples two distinct level.H-bit primes from rng and
// constructs a SecretKey and its PublicKey from them. withOpen requests the
// additional precomputation Open needs.
//
// Per spec.md §5's reentrancy property, a call holding its own rng (rather
// than always drawing from a shared global source) can run concurrently
// with, and independently of, any other in-flight GenerateKey call.
//
// ctx bounds the concurrent prime search; a nil ctx is treated as
// context.Background().
func GenerateKey(ctx context.Context, rng io.Reader, level Level, withOpen bool) (*SecretKey, *PublicKey, error) {
	var p, q *big.Int

	for {
		var err error
		p, err = GeneratePrime(ctx, rng, level.H, KeyGenerationConcurrency)
		if err != nil {
			return nil, nil, err
		}
		q, err = GeneratePrime(ctx, rng, level.H, KeyGenerationConcurrency)
		if err != nil {
			return nil, nil, err
		}
		if p.Cmp(q) != 0 {
			break
		}
		log.Debugw("resampling q after collision with p", "level", level.H)
	}

	sk, err := FromPrimesUnchecked(level, p, q, withOpen)
	if err != nil {
		return nil, nil, err
	}
	return sk, sk.AsPublicKey(), nil
}
