package pkg

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// NewRand - returns a PCG generator derived from seed, so equal seeds replay equal games.
// A zero seed is replaced by one read from crypto/rand.
func NewRand(seed int64) (*rand.Rand, error) {
	if seed == 0 {
		var b [8]byte
		if _, err := crand.Read(b[:]); err != nil {
			return nil, fmt.Errorf("failed to read random seed: %w", err)
		}

		seed = int64(binary.LittleEndian.Uint64(b[:])) //nolint: gosec // wrap-around is fine for a seed
	}

	u := uint64(seed) //nolint: gosec // same as above
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64))), nil
}

// mix is the splitmix64 finalizer.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
