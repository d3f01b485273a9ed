package rng

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Crypto draws numbers from crypto/rand
// Used when no seed is configured, so shuffles cannot be predicted from the clock
type Crypto struct{}

// Intn returns a uniformly distributed number in [0, n)
func (Crypto) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("rng: invalid bound %d", n))
	}

	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
