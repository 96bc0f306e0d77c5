// Package random isolates the randomness that business decisions depend on
// (mutual-like chance, reply selection, simulated latency) behind an
// injectable source, so tests can force either branch.
package random

import (
	"math/rand"
	"sync"
	"time"
)

type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n).
	IntN(n int) int
	// DurationBetween returns a duration in [min, max).
	DurationBetween(min, max time.Duration) time.Duration
}

// Math is a rand-backed source. A single instance is shared between the
// request handlers and the timer goroutines that fire scheduled tasks, so
// access to the underlying rand.Rand must be serialized.
type Math struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewMath() *Math {
	return &Math{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (m *Math) Float64() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rng.Float64()
}

func (m *Math) IntN(n int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rng.Intn(n)
}

func (m *Math) DurationBetween(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return min + time.Duration(m.rng.Int63n(int64(max-min)))
}

// Fixed always yields the same values. Test helper: Value above 0.5 forces
// the mutual-like branch, at or below suppresses it.
type Fixed struct {
	Value float64
	N     int
}

func (f Fixed) Float64() float64 { return f.Value }

func (f Fixed) IntN(int) int { return f.N }

func (f Fixed) DurationBetween(min, _ time.Duration) time.Duration { return min }
