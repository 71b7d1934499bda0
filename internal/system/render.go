// internal/system/render.go
package system

import (
	"farm-flies/internal/config"
	"farm-flies/internal/entity"
	"farm-flies/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
)

// RenderSystem рисует сущности
type RenderSystem struct {
	world  *entity.World
	images ImageSource
}

func NewRenderSystem(world *entity.World, images ImageSource) *RenderSystem {
	return &RenderSystem{world: world, images: images}
}

// Draw: сначала снаряды, потом корабль, потом живые враги.
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range s.world.ProjectileIDs() {
		p, _ := s.world.Projectiles.Get(id)
		if p.Active {
			s.drawSprite(screen, p.Sprite, p.Position, config.ProjectileScale)
		}
	}

	if ship := s.world.Spaceship; ship != nil && ship.Alive {
		s.drawSprite(screen, ship.Sprite, ship.Position, 1)
	}

	for _, id := range s.world.EnemyIDs() {
		e, _ := s.world.Enemies.Get(id)
		if e.Alive {
			s.drawSprite(screen, e.Sprite, e.Position, 1)
		}
	}
}

func (s *RenderSystem) drawSprite(screen *ebiten.Image, sprite string, pos geom.Vector2f, scale float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(pos.X, pos.Y)
	screen.DrawImage(s.images.Image(sprite), op)
}
