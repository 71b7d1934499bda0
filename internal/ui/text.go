// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// размеры символа отладочного шрифта ebitenutil
const (
	debugCharWidth  = 6
	debugCharHeight = 16
)

// MeasureText возвращает ширину и высоту строки.
func MeasureText(face font.Face, s string) (int, int) {
	if face == nil {
		return len(s) * debugCharWidth, debugCharHeight
	}
	b := text.BoundString(face, s)
	return b.Dx(), b.Dy()
}

// DrawText рисует строку так, что (x, y) — левый верхний угол.
// Без шрифта используется отладочный вывод.
func DrawText(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	if face == nil {
		ebitenutil.DebugPrintAt(screen, s, x, y)
		return
	}
	text.Draw(screen, s, face, x, y+face.Metrics().Ascent.Ceil(), clr)
}

// DrawOutlinedText рисует строку с обводкой толщиной thickness пикселей.
func DrawOutlinedText(screen *ebiten.Image, face font.Face, s string, x, y int, clr, outline color.Color, thickness int) {
	if face != nil {
		for dy := -thickness; dy <= thickness; dy++ {
			for dx := -thickness; dx <= thickness; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				DrawText(screen, face, s, x+dx, y+dy, outline)
			}
		}
	}
	DrawText(screen, face, s, x, y, clr)
}

// DrawCenteredText рисует строку с центром в (cx, cy).
func DrawCenteredText(screen *ebiten.Image, face font.Face, s string, cx, cy int, clr color.Color) {
	w, h := MeasureText(face, s)
	DrawText(screen, face, s, cx-w/2, cy-h/2, clr)
}
