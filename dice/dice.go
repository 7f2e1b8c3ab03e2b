// Package dice wraps the process RNG with the die-roll helpers the rest
// of the game is written in terms of.
package dice

import (
	"math/rand"
	"sync"
	"time"
)

var (
	mu  sync.Mutex
	rng = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Reseed resets the shared source. Zero reseeds from the clock.
func Reseed(seed int64) {
	mu.Lock()
	defer mu.Unlock()
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng = rand.New(rand.NewSource(seed))
}

// Roll sums count dice with the given number of faces, plus a modifier.
// Never returns less than zero.
func Roll(faces, count, modifier int) int {
	mu.Lock()
	defer mu.Unlock()

	sum := 0
	for i := 0; i < count; i++ {
		sum += rng.Intn(faces) + 1
	}
	sum += modifier
	if sum < 0 {
		return 0
	}
	return sum
}

// Check rolls a d20 plus modifier and bonus against a difficulty.
func Check(mod, difficulty, bonus int) bool {
	return Roll(20, 1, 0)+mod+bonus >= difficulty
}

// Intn returns a value in [0, n).
func Intn(n int) int {
	mu.Lock()
	defer mu.Unlock()
	return rng.Intn(n)
}

// Range returns a value in [lo, hi).
func Range(lo, hi int) int {
	return lo + Intn(hi-lo)
}

// Float returns a value in [0.0, 1.0).
func Float() float64 {
	mu.Lock()
	defer mu.Unlock()
	return rng.Float64()
}
