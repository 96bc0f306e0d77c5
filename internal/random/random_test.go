package random

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMath_Ranges(t *testing.T) {
	m := NewMath()

	for i := 0; i < 100; i++ {
		v := m.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)

		n := m.IntN(5)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 5)

		d := m.DurationBetween(time.Second, 3*time.Second)
		assert.GreaterOrEqual(t, d, time.Second)
		assert.Less(t, d, 3*time.Second)
	}
}

func TestMath_DurationBetweenDegenerateRange(t *testing.T) {
	m := NewMath()

	assert.Equal(t, time.Second, m.DurationBetween(time.Second, time.Second))
	assert.Equal(t, time.Second, m.DurationBetween(time.Second, time.Millisecond))
}

// One Math instance is shared between request goroutines and timer
// goroutines; run under -race.
func TestMath_ConcurrentCallers(t *testing.T) {
	m := NewMath()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_ = m.Float64()
				_ = m.IntN(10)
				_ = m.DurationBetween(time.Millisecond, time.Second)
			}
		}()
	}
	wg.Wait()
}

func TestFixed(t *testing.T) {
	f := Fixed{Value: 0.9, N: 2}

	assert.Equal(t, 0.9, f.Float64())
	assert.Equal(t, 2, f.IntN(100))
	assert.Equal(t, time.Second, f.DurationBetween(time.Second, time.Minute))
}
