// internal/entity/ecs.go
package entity

import (
	"slices"

	"farm-flies/internal/component"
	"farm-flies/internal/types"

	"github.com/kamstrup/intmap"
)

// World хранит все сущности уровня.
type World struct {
	NextID      types.EntityID
	Enemies     *intmap.Map[types.EntityID, *component.Enemy]
	Projectiles *intmap.Map[types.EntityID, *component.Projectile]
	Spaceship   *component.Spaceship
}

func NewWorld() *World {
	return &World{
		NextID:      1,
		Enemies:     intmap.New[types.EntityID, *component.Enemy](64),
		Projectiles: intmap.New[types.EntityID, *component.Projectile](128),
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

func (w *World) AddEnemy(e *component.Enemy) types.EntityID {
	id := w.NewEntity()
	w.Enemies.Put(id, e)
	return id
}

func (w *World) AddProjectile(p *component.Projectile) types.EntityID {
	id := w.NewEntity()
	w.Projectiles.Put(id, p)
	return id
}

func (w *World) RemoveEnemy(id types.EntityID) bool {
	return w.Enemies.Del(id)
}

func (w *World) RemoveProjectile(id types.EntityID) bool {
	return w.Projectiles.Del(id)
}

// EnemyIDs возвращает id врагов по возрастанию, то есть в порядке появления.
func (w *World) EnemyIDs() []types.EntityID {
	return sortedKeys(w.Enemies)
}

// ProjectileIDs возвращает id снарядов по возрастанию.
func (w *World) ProjectileIDs() []types.EntityID {
	return sortedKeys(w.Projectiles)
}

func sortedKeys[V any](m *intmap.Map[types.EntityID, V]) []types.EntityID {
	ids := make([]types.EntityID, 0, m.Len())
	m.ForEach(func(id types.EntityID, _ V) bool {
		ids = append(ids, id)
		return true
	})
	slices.Sort(ids)
	return ids
}

// AliveEnemies — число живых врагов.
func (w *World) AliveEnemies() int {
	n := 0
	w.Enemies.ForEach(func(_ types.EntityID, e *component.Enemy) bool {
		if e.Alive {
			n++
		}
		return true
	})
	return n
}

// Clear удаляет всех врагов и снаряды. Корабль остаётся.
func (w *World) Clear() {
	w.Enemies.Clear()
	w.Projectiles.Clear()
	w.NextID = 1
}
