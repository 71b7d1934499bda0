// internal/ui/hud.go
package ui

import (
	"fmt"

	"farm-flies/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// HUD показывает уровень, жизни и очки в левом верхнем углу.
type HUD struct {
	X, Y        int
	LineSpacing int
	Level       int
	Lives       int
	Score       int
	Paused      bool
}

func NewHUD(level int) *HUD {
	return &HUD{X: 10, Y: 10, LineSpacing: 30, Level: level}
}

func (h *HUD) Lines() []string {
	return []string{
		fmt.Sprintf("Level: %d", h.Level),
		fmt.Sprintf("Lives: %d", h.Lives),
		fmt.Sprintf("Score: %d", h.Score),
	}
}

// Draw рисует строки HUD и, если игра на паузе, затемнение с надписью.
func (h *HUD) Draw(screen *ebiten.Image, face, pauseFace font.Face) {
	if h.Paused {
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseOverlay, false)
		DrawOutlinedText(screen, pauseFace, "GAME PAUSE",
			int(config.ScreenWidth*0.4), int(config.ScreenHeight*0.4),
			config.TextLightColor, config.TextOutlineColor, 1)
	}
	for i, line := range h.Lines() {
		DrawOutlinedText(screen, face, line, h.X, h.Y+i*h.LineSpacing,
			config.TextLightColor, config.TextOutlineColor, 1)
	}
}
