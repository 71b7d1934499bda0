// internal/system/background.go
package system

import (
	"farm-flies/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
)

// BackgroundSystem прокручивает фон вниз.
type BackgroundSystem struct {
	bg *component.ScrollingBackground
}

func NewBackgroundSystem(bg *component.ScrollingBackground) *BackgroundSystem {
	return &BackgroundSystem{bg: bg}
}

// Update: копия, ушедшая ниже высоты картинки, переставляется над другой.
func (s *BackgroundSystem) Update(deltaTime float64) {
	bg := s.bg
	moveY := bg.Speed * deltaTime
	bg.FirstY += moveY
	bg.SecondY += moveY

	if bg.FirstY >= bg.Height {
		bg.FirstY = bg.SecondY - bg.Height
	}
	if bg.SecondY >= bg.Height {
		bg.SecondY = bg.FirstY - bg.Height
	}
}

func (s *BackgroundSystem) Draw(screen *ebiten.Image, images ImageSource) {
	img := images.Image(s.bg.Sprite)
	for _, y := range []float64{s.bg.FirstY, s.bg.SecondY} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, y)
		screen.DrawImage(img, op)
	}
}
