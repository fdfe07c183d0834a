package paillier

import (
	"context"
	"io"
	"math/big"
	"sync"

	logging "github.com/ipfs/go-log"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// log is this package's sole logging surface: it is only ever written to
// from GeneratePrime's concurrent search, never from the constant-time
// encrypt/decrypt/homomorphic paths, where a logging call would itself be an
// observable, secret-dependent side channel.
var log = logging.Logger("paillier")

// smallPrimes excludes trivially-composite candidates before paying for a
// full Miller-Rabin pass, same list and rationale as
// crypto/rand.Prime's internal sieve and the teacher's safe-prime generator.
var smallPrimes = []uint8{
	3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53,
}

var smallPrimesProduct = new(big.Int).SetUint64(16294579238595022365)

// syncReader serializes concurrent Read calls against an io.Reader that
// makes no concurrency guarantee of its own. crypto/rand.Reader is already
// safe for concurrent use, but a caller-supplied deterministic RNG (the
// reentrancy path spec.md §5 calls for) generally is not, and GeneratePrime
// fans out concurrencyLevel goroutines over the same reader.
type syncReader struct {
	mu sync.Mutex
	r  io.Reader
}

func (s *syncReader) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Read(p)
}

// GeneratePrime searches for a random prime of exactly bitLen bits, trying
// concurrencyLevel goroutines in parallel against rng and returning as soon
// as one succeeds; the remaining goroutines are cancelled rather than left
// to run to their own completion. This plays the role of the
// "generate_prime(bits, rng) -> integer" primality oracle spec.md §6 treats
// as an external collaborator; it is provided here so the package is usable
// standalone, generalized from the teacher's safe-prime (p = 2q+1) search to
// a plain H-bit prime search, since spec.md's primes need only be distinct
// and equal-length, not of Sophie Germain form.
//
// ctx also bounds the search; a nil ctx is treated as context.Background().
func GeneratePrime(ctx context.Context, rng io.Reader, bitLen int, concurrencyLevel int) (*big.Int, error) {
	if bitLen < 2 {
		return nil, invalidKeyf("prime size must be at least 2 bits")
	}
	if concurrencyLevel < 1 {
		concurrencyLevel = 1
	}
	if ctx == nil {
		ctx = context.Background()
	}

	searchCtx, cancelSearch := context.WithCancel(ctx)
	defer cancelSearch()

	group, gctx := errgroup.WithContext(searchCtx)
	found := make(chan *big.Int, 1)
	safeRng := &syncReader{r: rng}

	for i := 0; i < concurrencyLevel; i++ {
		group.Go(func() error {
			return searchPrime(gctx, safeRng, bitLen, found)
		})
	}

	var result *big.Int
	select {
	case result = <-found:
		// A sibling already has an answer: stop every other search
		// immediately instead of waiting for them to find their own.
		cancelSearch()
	case <-gctx.Done():
	}

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return nil, errors.Wrap(err, "GeneratePrime")
	}
	if result == nil {
		select {
		case result = <-found:
		default:
			return nil, invariantViolatedf("prime search ended without a result or error")
		}
	}
	return result, nil
}

// searchPrime repeatedly draws odd bitLen-bit candidates, sieves them
// against smallPrimes, and runs a full probabilistic primality test on
// survivors, sending the first prime found to found and returning nil. It
// returns early with nil once ctx is done, leaving the race to whichever
// goroutine (if any) already sent a result.
func searchPrime(ctx context.Context, random io.Reader, bitLen int, found chan<- *big.Int) error {
	byteLen := (bitLen + 7) / 8
	bytes := make([]byte, byteLen)

	b := uint(bitLen % 8)
	if b == 0 {
		b = 8
	}

	attempts := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if _, err := io.ReadFull(random, bytes); err != nil {
			return errors.Wrap(err, "reading random bytes")
		}

		bytes[0] &= uint8(int(1<<b) - 1)
		if b >= 2 {
			bytes[0] |= 3 << (b - 2)
		} else {
			bytes[0] |= 1
		}
		bytes[byteLen-1] |= 1

		candidate := new(big.Int).SetBytes(bytes)
		attempts++

		if !isPrimeCandidate(candidate) {
			continue
		}
		if candidate.BitLen() != bitLen {
			continue
		}
		if !candidate.ProbablyPrime(millerRabinRounds) {
			continue
		}

		log.Debugw("found prime candidate", "bitLen", bitLen, "attempts", attempts)

		select {
		case found <- candidate:
		default:
		}
		return nil
	}
}

func isPrimeCandidate(candidate *big.Int) bool {
	m := new(big.Int).Mod(candidate, smallPrimesProduct).Uint64()
	for _, p := range smallPrimes {
		if m%uint64(p) == 0 && m != uint64(p) {
			return false
		}
	}
	return true
}
