// internal/component/background.go
package component

// ScrollingBackground — две копии фона, которые бесконечно едут вниз.
type ScrollingBackground struct {
	Sprite  string
	Height  float64
	Speed   float64
	FirstY  float64
	SecondY float64
}

func NewScrollingBackground(sprite string, height, speed float64) *ScrollingBackground {
	b := &ScrollingBackground{Sprite: sprite, Height: height, Speed: speed}
	b.Reset()
	return b
}

// Reset возвращает копии в начальное положение: вторая сразу над первой.
func (b *ScrollingBackground) Reset() {
	b.FirstY = 0
	b.SecondY = -b.Height
}
