// internal/defs/types.go
package defs

import "farm-flies/internal/component"

// LevelDefinition описывает один уровень: кто летит, чем стреляет и как выстроен.
type LevelDefinition struct {
	Number           int
	Name             string
	EnemySprite      string
	ProjectileSprite string
	Difficulty       component.DifficultyLevel
	Count            int
	Columns          int
	Rows             int
	SpacingX         float64
	SpacingY         float64
}
