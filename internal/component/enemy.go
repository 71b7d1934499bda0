// internal/component/enemy.go
package component

import "farm-flies/pkg/geom"

// Enemy — летающая корова или свинья.
type Enemy struct {
	Position          geom.Vector2f
	Size              geom.Vector2f
	TimeElapsed       float64
	VerticalDirection float64 // -1 вверх, +1 вниз
	ShootCooldown     float64
	Difficulty        DifficultyLevel
	Sprite            string
	ProjectileSprite  string
	Alive             bool
}

func NewEnemy(sprite, projectileSprite string, size geom.Vector2f, difficulty DifficultyLevel, cooldown float64) *Enemy {
	return &Enemy{
		Size:              size,
		VerticalDirection: -1,
		ShootCooldown:     cooldown,
		Difficulty:        difficulty,
		Sprite:            sprite,
		ProjectileSprite:  projectileSprite,
		Alive:             true,
	}
}

func (e *Enemy) Bounds() geom.Rect {
	return geom.RectAt(e.Position, e.Size)
}
