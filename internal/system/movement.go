// internal/system/movement.go
package system

import (
	"math"

	"farm-flies/internal/config"
	"farm-flies/internal/entity"
)

// MovementSystem двигает врагов: синус по горизонтали, челнок по вертикали.
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range s.world.EnemyIDs() {
		e, _ := s.world.Enemies.Get(id)
		if !e.Alive {
			continue
		}
		e.TimeElapsed += deltaTime
		dy := config.EnemyVerticalSpeed * e.VerticalDirection * deltaTime
		dx := config.EnemyAmplitude * math.Sin(config.EnemyFrequency*e.TimeElapsed) * deltaTime
		e.Position.X += dx
		e.Position.Y += dy

		if e.Position.Y > config.EnemyBounceBottom {
			e.VerticalDirection = -1
		} else if e.Position.Y < config.EnemyBounceTop {
			e.VerticalDirection = 1
		}
	}
}
