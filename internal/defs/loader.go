// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"
	"os"

	"farm-flies/internal/component"
	"farm-flies/internal/config"
	"farm-flies/internal/logger"
)

var ErrNoLevels = errors.New("no levels defined")

// DefaultLevels — встроенные уровни.
func DefaultLevels() []LevelDefinition {
	return []LevelDefinition{
		{
			Number:           1,
			Name:             "Level One",
			EnemySprite:      config.PigSprite,
			ProjectileSprite: config.EggSprite,
			Difficulty:       component.VeryEasy,
			Count:            45,
			Columns:          15,
			Rows:             15,
			SpacingX:         130,
			SpacingY:         150,
		},
		{
			Number:           2,
			Name:             "Level Two",
			EnemySprite:      config.CowSprite,
			ProjectileSprite: config.BombSprite,
			Difficulty:       component.Normal,
			Count:            60,
			Columns:          15,
			Rows:             15,
			SpacingX:         120,
			SpacingY:         110,
		},
	}
}

// ParseLevels разбирает текст файла уровней.
func ParseLevels(name, src string) ([]LevelDefinition, error) {
	file, err := levelParser.ParseString(name, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse levels: %w", err)
	}
	if len(file.Levels) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoLevels)
	}

	levels := make([]LevelDefinition, 0, len(file.Levels))
	for _, decl := range file.Levels {
		def, err := decl.toDefinition()
		if err != nil {
			return nil, fmt.Errorf("%s: level %d: %w", decl.Pos, decl.Number, err)
		}
		levels = append(levels, def)
	}
	return levels, nil
}

// LoadLevels читает файл уровней с диска.
func LoadLevels(path string) ([]LevelDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read levels file: %w", err)
	}
	levels, err := ParseLevels(path, string(data))
	if err != nil {
		return nil, err
	}
	logger.Infof("Loaded %d level definitions", len(levels))
	return levels, nil
}

func (d *levelDecl) toDefinition() (LevelDefinition, error) {
	def := LevelDefinition{Number: d.Number, Name: d.Name, Difficulty: component.Normal}
	for _, p := range d.Props {
		switch {
		case p.Enemy != nil:
			def.EnemySprite = *p.Enemy
		case p.Projectile != nil:
			def.ProjectileSprite = *p.Projectile
		case p.Difficulty != nil:
			diff, err := component.ParseDifficulty(*p.Difficulty)
			if err != nil {
				return def, err
			}
			def.Difficulty = diff
		case p.Count != nil:
			def.Count = *p.Count
		case p.Grid != nil:
			def.Columns, def.Rows = p.Grid.Columns, p.Grid.Rows
		case p.Spacing != nil:
			def.SpacingX, def.SpacingY = p.Spacing.X, p.Spacing.Y
		}
	}
	return def, def.Validate()
}

// Validate проверяет, что из определения можно построить сетку врагов.
func (d LevelDefinition) Validate() error {
	switch {
	case d.Count <= 0:
		return fmt.Errorf("count must be positive, got %d", d.Count)
	case d.Columns <= 0 || d.Rows <= 0:
		return fmt.Errorf("grid must be positive, got %d x %d", d.Columns, d.Rows)
	case d.SpacingX <= 0 || d.SpacingY <= 0:
		return fmt.Errorf("spacing must be positive, got %g %g", d.SpacingX, d.SpacingY)
	case d.EnemySprite == "" || d.ProjectileSprite == "":
		return errors.New("enemy and projectile sprites are required")
	}
	return nil
}
