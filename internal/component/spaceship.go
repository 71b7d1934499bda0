// internal/component/spaceship.go
package component

import "farm-flies/pkg/geom"

// Spaceship — корабль игрока, который следует за курсором.
type Spaceship struct {
	Position geom.Vector2f
	Size     geom.Vector2f
	Alive    bool
	Sprite   string
}

func NewSpaceship(sprite string, size geom.Vector2f) *Spaceship {
	return &Spaceship{Size: size, Alive: true, Sprite: sprite}
}

// CenterOn ставит центр корабля в точку курсора.
func (s *Spaceship) CenterOn(cursor geom.Vector2i) {
	s.Position = geom.Vec2(float64(cursor.X)-s.Size.X/2, float64(cursor.Y)-s.Size.Y/2)
}

func (s *Spaceship) Reset() {
	s.Alive = true
}

func (s *Spaceship) Bounds() geom.Rect {
	return geom.RectAt(s.Position, s.Size)
}
