// internal/system/projectile.go
package system

import (
	"farm-flies/internal/config"
	"farm-flies/internal/entity"
)

// ProjectileSystem двигает снаряды и убирает вылетевшие за экран.
type ProjectileSystem struct {
	world *entity.World
}

func NewProjectileSystem(world *entity.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range s.world.ProjectileIDs() {
		p, _ := s.world.Projectiles.Get(id)
		if !p.Active {
			continue
		}
		// снаряд сдвигается дважды за кадр
		for i := 0; i < 2; i++ {
			p.Position = p.Position.Add(p.Direction.Scale(p.Speed * deltaTime))
		}
		if p.Position.Y < config.ProjectileTopY || p.Position.Y > config.ScreenHeight {
			p.Active = false
		}
	}
	s.RemoveInactiveProjectiles()
}

// RemoveInactiveProjectiles удаляет погасшие снаряды из мира.
func (s *ProjectileSystem) RemoveInactiveProjectiles() int {
	removed := 0
	for _, id := range s.world.ProjectileIDs() {
		if p, _ := s.world.Projectiles.Get(id); !p.Active {
			s.world.RemoveProjectile(id)
			removed++
		}
	}
	return removed
}
