// internal/utils/random.go
package utils

import (
	"math/rand"
	"time"
)

// RandomGenerator — обёртка над генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type RandomGenerator struct {
	rng *rand.Rand
}

// NewRandomGenerator создаёт генератор с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewRandomGenerator(seed int64) *RandomGenerator {
	g := &RandomGenerator{}
	g.Seed(seed)
	return g
}

// Seed пересоздаёт источник с новым сидом.
func (g *RandomGenerator) Seed(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
}

// Int возвращает целое число в закрытом диапазоне [min, max].
func (g *RandomGenerator) Int(min, max int) int {
	if min > max {
		min, max = max, min
	}
	return min + g.rng.Intn(max-min+1)
}

// Float возвращает число в диапазоне [min, max).
func (g *RandomGenerator) Float(min, max float64) float64 {
	if min > max {
		min, max = max, min
	}
	return min + g.rng.Float64()*(max-min)
}
