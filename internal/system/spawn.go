// internal/system/spawn.go
package system

import (
	"farm-flies/internal/component"
	"farm-flies/internal/defs"
	"farm-flies/internal/entity"
	"farm-flies/internal/logger"
	"farm-flies/internal/utils"
	"farm-flies/pkg/geom"
)

// SpawnSystem расставляет врагов уровня.
type SpawnSystem struct {
	world *entity.World
	sizer SpriteSizer
	rng   *utils.RandomGenerator
}

func NewSpawnSystem(world *entity.World, sizer SpriteSizer, rng *utils.RandomGenerator) *SpawnSystem {
	return &SpawnSystem{world: world, sizer: sizer, rng: rng}
}

// SpawnGrid выстраивает def.Count врагов сеткой по строкам.
// Число строк пересчитывается так, чтобы поместились все враги.
func (s *SpawnSystem) SpawnGrid(def defs.LevelDefinition) int {
	if def.Count <= 0 || def.Rows <= 0 || def.Columns <= 0 || def.SpacingX <= 0 || def.SpacingY <= 0 {
		logger.Errorf("Invalid input parameters for level %d", def.Number)
		return 0
	}

	rows := (def.Count + def.Columns - 1) / def.Columns
	size := s.sizer.Size(def.EnemySprite)
	spawned := 0
	for y := 0; y < rows; y++ {
		for x := 0; x < def.Columns; x++ {
			if spawned >= def.Count {
				return spawned
			}
			e := component.NewEnemy(def.EnemySprite, def.ProjectileSprite, size, def.Difficulty, s.rng.Float(0, 1))
			e.Position = geom.Vec2(float64(x)*def.SpacingX, float64(y)*def.SpacingY)
			s.world.AddEnemy(e)
			spawned++
		}
	}
	return spawned
}
