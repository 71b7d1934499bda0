// internal/ui/menu_button.go
package ui

import (
	"image/color"

	"farm-flies/internal/config"
	"farm-flies/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// MenuButton представляет собой простую кнопку для использования в меню.
type MenuButton struct {
	Rect        geom.Rect
	Text        string
	BgColor     color.RGBA
	HoverColor  color.RGBA
	TextColor   color.RGBA
	StrokeColor color.RGBA
	hovered     bool
}

// NewMenuButton создает новую кнопку меню.
func NewMenuButton(rect geom.Rect, text string) *MenuButton {
	return &MenuButton{
		Rect:        rect,
		Text:        text,
		BgColor:     config.ButtonColor,
		HoverColor:  config.ButtonHoverColor,
		TextColor:   config.TextLightColor,
		StrokeColor: config.ButtonStroke,
	}
}

func (b *MenuButton) Contains(p geom.Vector2f) bool {
	return b.Rect.Contains(p)
}

// Update запоминает, наведён ли курсор на кнопку.
func (b *MenuButton) Update(cursor geom.Vector2f) bool {
	b.hovered = b.Contains(cursor)
	return b.hovered
}

func (b *MenuButton) Hovered() bool {
	return b.hovered
}

// Color — текущий цвет фона с учётом наведения.
func (b *MenuButton) Color() color.RGBA {
	if b.hovered {
		return b.HoverColor
	}
	return b.BgColor
}

// Draw отрисовывает кнопку.
func (b *MenuButton) Draw(screen *ebiten.Image, face font.Face) {
	r := b.Rect
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), b.Color(), false)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), config.StrokeWidth, b.StrokeColor, false)

	c := r.Center()
	DrawCenteredText(screen, face, b.Text, int(c.X), int(c.Y), b.TextColor)
}
