package particle

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// SetSeed makes subsequent random draws reproducible. Without it the
// sequence is seeded from the clock.
func SetSeed(seed int64) {
	rngMu.Lock()
	rng = rand.New(rand.NewSource(seed))
	rngMu.Unlock()
}

func randomFloat() float64 {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Float64()
}

// Range is a closed-open [Min, Max) sampling interval.
type Range struct {
	Min, Max float64
}

// Sample draws uniformly from the range.
func (r Range) Sample() float64 {
	return RandomBetween(r.Min, r.Max)
}

// RandomBetween returns a uniform sample in [low, high).
func RandomBetween(low, high float64) float64 {
	return low + randomFloat()*(high-low)
}

// RandomRounded samples like RandomBetween and rounds to the given number of
// fractional digits. Rounding can land exactly on high.
func RandomRounded(low, high float64, decimals int) float64 {
	return roundTo(RandomBetween(low, high), decimals)
}

func roundTo(v float64, decimals int) float64 {
	if decimals < 0 {
		decimals = 0
	}
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}

// randomSign returns -1 or 1 with equal probability.
func randomSign() float64 {
	if randomFloat() > 0.5 {
		return 1
	}
	return -1
}
