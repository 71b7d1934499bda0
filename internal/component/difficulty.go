// internal/component/difficulty.go
package component

import (
	"fmt"
	"strings"

	"farm-flies/internal/utils"
)

// DifficultyLevel влияет на частоту и шанс выстрела врага.
type DifficultyLevel int

const (
	VeryEasy DifficultyLevel = iota
	Easy
	Normal
	Hard
	VeryHard
	Insane
)

var difficultyNames = map[DifficultyLevel]string{
	VeryEasy: "very_easy",
	Easy:     "easy",
	Normal:   "normal",
	Hard:     "hard",
	VeryHard: "very_hard",
	Insane:   "insane",
}

func (d DifficultyLevel) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

// ParseDifficulty принимает имена в snake_case, регистр не важен.
func ParseDifficulty(s string) (DifficultyLevel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d, name := range difficultyNames {
		if name == s {
			return d, nil
		}
	}
	return Normal, fmt.Errorf("unknown difficulty %q", s)
}

// поправки к броску и перезарядке
var difficultyAdjust = map[DifficultyLevel]struct {
	required int
	cooldown float64
}{
	VeryEasy: {20, 1.0},
	Easy:     {10, 0.5},
	Normal:   {0, 0},
	Hard:     {-5, -0.2},
	VeryHard: {-10, -0.4},
	Insane:   {-15, -0.6},
}

// ShootingParams — параметры выстрела с учётом сложности.
type ShootingParams struct {
	MaxRoll      int
	RequiredRoll int
	Cooldown     float64
}

// AdjustShooting применяет таблицу сложности к базовым значениям.
// Требуемый бросок ограничен [1, max], перезарядка не меньше minCooldown.
func AdjustShooting(d DifficultyLevel, baseMax, baseRequired int, baseCooldown, minCooldown float64) ShootingParams {
	adj := difficultyAdjust[d]
	return ShootingParams{
		MaxRoll:      baseMax,
		RequiredRoll: utils.Clamp(baseRequired+adj.required, 1, baseMax),
		Cooldown:     max(minCooldown, baseCooldown+adj.cooldown),
	}
}
