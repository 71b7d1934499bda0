// internal/system/shooting.go
package system

import (
	"farm-flies/internal/component"
	"farm-flies/internal/config"
	"farm-flies/internal/entity"
	"farm-flies/internal/event"
	"farm-flies/internal/types"
	"farm-flies/internal/utils"
	"farm-flies/pkg/geom"
)

// ShootingSystem решает, когда враги стреляют вниз.
type ShootingSystem struct {
	world           *entity.World
	sizer           SpriteSizer
	rng             *utils.RandomGenerator
	eventDispatcher *event.Dispatcher
}

func NewShootingSystem(world *entity.World, sizer SpriteSizer, rng *utils.RandomGenerator, eventDispatcher *event.Dispatcher) *ShootingSystem {
	return &ShootingSystem{world: world, sizer: sizer, rng: rng, eventDispatcher: eventDispatcher}
}

func (s *ShootingSystem) Update(deltaTime float64) {
	for _, id := range s.world.EnemyIDs() {
		e, _ := s.world.Enemies.Get(id)
		if e.Alive {
			s.process(id, e, deltaTime)
		}
	}
}

// process повторяет правило врага: после неудачного броска перезарядка
// остаётся неположительной, и бросок повторяется в следующем кадре.
func (s *ShootingSystem) process(id types.EntityID, e *component.Enemy, deltaTime float64) {
	e.ShootCooldown -= deltaTime
	if e.ShootCooldown > 0 {
		return
	}

	params := component.AdjustShooting(e.Difficulty, config.ShootMaxRoll, config.ShootBaseRequired,
		config.ShootBaseCooldown, config.ShootMinCooldown)
	if s.rng.Int(1, params.MaxRoll) > params.RequiredRoll {
		return
	}
	pid := SpawnProjectile(s.world, s.sizer, e.ProjectileSprite, e.Position, geom.Vec2(0.0, 1.0), component.OwnerEnemy)
	if p, ok := s.world.Projectiles.Get(pid); ok {
		p.Shooter = id
	}
	e.ShootCooldown = params.Cooldown
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyShot, Data: ShotData{Shooter: id, Projectile: pid}})
}

// ShotData — данные событий PlayerShot и EnemyShot.
type ShotData struct {
	Shooter    types.EntityID
	Projectile types.EntityID
}
