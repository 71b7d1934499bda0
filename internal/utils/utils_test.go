package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomGeneratorRanges(t *testing.T) {
	g := NewRandomGenerator(42)
	for i := 0; i < 1000; i++ {
		n := g.Int(1, 100)
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 100)

		f := g.Float(0, 1)
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}

func TestRandomGeneratorInclusiveBounds(t *testing.T) {
	g := NewRandomGenerator(7)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		seen[g.Int(1, 3)] = true
	}
	assert.True(t, seen[1])
	assert.True(t, seen[3])
	assert.Equal(t, 5, g.Int(5, 5))
	assert.Equal(t, 2, g.Int(2, 2))
}

func TestRandomGeneratorSwappedBounds(t *testing.T) {
	g := NewRandomGenerator(3)
	for i := 0; i < 100; i++ {
		n := g.Int(10, 1)
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 10)
	}
}

func TestRandomGeneratorDeterministic(t *testing.T) {
	a := NewRandomGenerator(1234)
	b := NewRandomGenerator(1234)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Int(0, 1000), b.Int(0, 1000))
		assert.Equal(t, a.Float(-5, 5), b.Float(-5, 5))
	}

	a.Seed(99)
	b.Seed(99)
	assert.Equal(t, a.Int(0, 1<<20), b.Int(0, 1<<20))
}

func TestTimer(t *testing.T) {
	timer := NewTimer(1.0)

	assert.False(t, timer.HasTimePassed(0.4))
	assert.False(t, timer.HasTimePassed(0.4))
	assert.InDelta(t, 0.8, timer.PassedTime(), 1e-9)
	assert.InDelta(t, 0.2, timer.Remaining(), 1e-9)

	assert.True(t, timer.HasTimePassed(0.5))
	// остаток переносится в следующий интервал
	assert.InDelta(t, 0.3, timer.PassedTime(), 1e-9)

	timer.Restart()
	assert.Equal(t, 0.0, timer.PassedTime())

	timer.SetInterval(5)
	assert.False(t, timer.HasTimePassed(4.9))
	assert.True(t, timer.HasTimePassed(0.1))
}

func TestTimerDefaultInterval(t *testing.T) {
	timer := NewTimer(0)
	assert.Equal(t, 1.0, timer.Interval())
	assert.Equal(t, 1.0, timer.Remaining())
}

func TestClampAndLerp(t *testing.T) {
	assert.Equal(t, 1, Clamp(-4, 1, 100))
	assert.Equal(t, 100, Clamp(400, 1, 100))
	assert.Equal(t, 0.5, Clamp(0.5, 0.1, 1.0))
	assert.InDelta(t, 5.0, Lerp(0, 10, 0.5), 1e-9)
}
