// internal/input/cursor.go
package input

import (
	"farm-flies/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
)

// Cursor — игровой курсор со своим спрайтом. Системный курсор скрыт.
type Cursor struct {
	poller   Poller
	position geom.Vector2i
	sprite   *ebiten.Image
}

func NewCursor(poller Poller, sprite *ebiten.Image) *Cursor {
	if poller == nil {
		poller = EbitenPoller{}
	}
	return &Cursor{poller: poller, sprite: sprite}
}

func (c *Cursor) Update() {
	x, y := c.poller.CursorPosition()
	c.position = geom.Vec2(x, y)
}

func (c *Cursor) Position() geom.Vector2i {
	return c.position
}

// PositionF — позиция курсора во float64 для проверок попадания.
func (c *Cursor) PositionF() geom.Vector2f {
	return geom.ToFloat(c.position)
}

func (c *Cursor) SetSprite(sprite *ebiten.Image) {
	c.sprite = sprite
}

func (c *Cursor) Draw(screen *ebiten.Image) {
	if c.sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(c.position.X), float64(c.position.Y))
	screen.DrawImage(c.sprite, op)
}
