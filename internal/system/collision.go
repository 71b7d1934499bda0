// internal/system/collision.go
package system

import (
	"farm-flies/internal/component"
	"farm-flies/internal/entity"
	"farm-flies/internal/event"
	"farm-flies/internal/types"
)

// CollisionSystem проверяет попадания снарядов.
type CollisionSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewCollisionSystem(world *entity.World, eventDispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{world: world, eventDispatcher: eventDispatcher}
}

// HitData — данные события EnemyDestroyed.
type HitData struct {
	Enemy      types.EntityID
	Projectile types.EntityID
}

// CheckEnemyCollision: каждый снаряд игрока убивает не больше одного врага.
// Снаряды убитого врага исчезают вместе с ним.
func (s *CollisionSystem) CheckEnemyCollision() int {
	killed := 0
	enemyIDs := s.world.EnemyIDs()
	for _, pid := range s.world.ProjectileIDs() {
		p, ok := s.world.Projectiles.Get(pid)
		if !ok || !p.Active || p.Owner != component.OwnerPlayer {
			continue
		}
		bounds := p.Bounds()
		for _, eid := range enemyIDs {
			e, ok := s.world.Enemies.Get(eid)
			if !ok || !e.Alive {
				continue
			}
			if bounds.Intersects(e.Bounds()) {
				e.Alive = false
				p.Active = false
				s.world.RemoveEnemy(eid)
				s.world.RemoveProjectile(pid)
				s.removeShotsOf(eid)
				killed++
				s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: HitData{Enemy: eid, Projectile: pid}})
				break
			}
		}
	}
	return killed
}

func (s *CollisionSystem) removeShotsOf(enemy types.EntityID) {
	for _, pid := range s.world.ProjectileIDs() {
		if p, _ := s.world.Projectiles.Get(pid); p.Owner == component.OwnerEnemy && p.Shooter == enemy {
			s.world.RemoveProjectile(pid)
		}
	}
}

// HasEnemyProjectileHitSpaceship — не больше одного попадания за кадр.
func (s *CollisionSystem) HasEnemyProjectileHitSpaceship() bool {
	ship := s.world.Spaceship
	if ship == nil || !ship.Alive {
		return false
	}
	hitbox := ship.Bounds()
	for _, pid := range s.world.ProjectileIDs() {
		p, _ := s.world.Projectiles.Get(pid)
		if !p.Active || p.Owner != component.OwnerEnemy {
			continue
		}
		if p.Bounds().Intersects(hitbox) {
			p.Active = false
			s.eventDispatcher.Dispatch(event.Event{Type: event.SpaceshipHit, Data: pid})
			return true
		}
	}
	return false
}
