// pkg/geom/vector.go
package geom

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number — любые числовые типы, которые может хранить вектор.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vector2 — двумерный вектор (позиция, скорость, размер).
type Vector2[T Number] struct {
	X, Y T
}

// Vector2i используется для экранных координат курсора.
type Vector2i = Vector2[int]

// Vector2f используется для позиций и направлений сущностей.
type Vector2f = Vector2[float64]

// Vec2 создаёт вектор.
func Vec2[T Number](x, y T) Vector2[T] {
	return Vector2[T]{X: x, Y: y}
}

func (v Vector2[T]) Add(o Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2[T]) Sub(o Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2[T]) Scale(k T) Vector2[T] {
	return Vector2[T]{X: v.X * k, Y: v.Y * k}
}

// Length возвращает длину вектора.
func (v Vector2[T]) Length() float64 {
	return math.Hypot(float64(v.X), float64(v.Y))
}

// Normalized возвращает единичный вектор. Нулевой вектор остаётся нулевым.
func (v Vector2[T]) Normalized() Vector2f {
	l := v.Length()
	if l == 0 {
		return Vector2f{}
	}
	return Vector2f{X: float64(v.X) / l, Y: float64(v.Y) / l}
}

// ToFloat переводит вектор любого типа во float64.
func ToFloat[T Number](v Vector2[T]) Vector2f {
	return Vector2f{X: float64(v.X), Y: float64(v.Y)}
}

// ToInt отбрасывает дробную часть.
func ToInt(v Vector2f) Vector2i {
	return Vector2i{X: int(v.X), Y: int(v.Y)}
}
