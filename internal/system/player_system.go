// internal/system/player_system.go
package system

import (
	"farm-flies/internal/component"
	"farm-flies/internal/config"
	"farm-flies/internal/entity"
	"farm-flies/internal/event"
	"farm-flies/internal/input"
	"farm-flies/pkg/geom"
)

// PlayerSystem ведёт корабль за курсором и стреляет по нажатию.
type PlayerSystem struct {
	world           *entity.World
	input           *input.Manager
	cursor          *input.Cursor
	sizer           SpriteSizer
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(world *entity.World, in *input.Manager, cursor *input.Cursor, sizer SpriteSizer, eventDispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{world: world, input: in, cursor: cursor, sizer: sizer, eventDispatcher: eventDispatcher}
}

func (s *PlayerSystem) Update(deltaTime float64) {
	ship := s.world.Spaceship
	if ship == nil {
		return
	}
	ship.CenterOn(s.cursor.Position())

	if s.input.IsKeyPress(input.Shoot) {
		pid := SpawnProjectile(s.world, s.sizer, config.BombSprite, ship.Position, geom.Vec2(0.0, -1.0), component.OwnerPlayer)
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerShot, Data: ShotData{Projectile: pid}})
	}
}
