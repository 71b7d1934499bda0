// pkg/geom/rect.go
package geom

// Rect — прямоугольник в экранных координатах (аналог глобальных границ спрайта).
type Rect struct {
	X, Y, W, H float64
}

// RectAt строит прямоугольник по левому верхнему углу и размеру.
func RectAt(pos, size Vector2f) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
}

// Contains проверяет попадание точки. Правая и нижняя границы не включаются.
func (r Rect) Contains(p Vector2f) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects возвращает true, если площадь пересечения больше нуля.
func (r Rect) Intersects(o Rect) bool {
	left := max(r.X, o.X)
	top := max(r.Y, o.Y)
	right := min(r.X+r.W, o.X+o.W)
	bottom := min(r.Y+r.H, o.Y+o.H)
	return left < right && top < bottom
}

func (r Rect) Center() Vector2f {
	return Vector2f{X: r.X + r.W/2, Y: r.Y + r.H/2}
}
