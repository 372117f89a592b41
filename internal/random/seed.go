// Package random provides seeding helpers for the game's random sources.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// New returns a generator seeded with seed, or with a fresh seed when seed is 0.
// The clock is used if crypto/rand cannot be read.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		var err error
		if seed, err = NewSeed(); err != nil {
			seed = time.Now().UnixNano()
		}
	}
	return rand.New(rand.NewSource(seed))
}
