// internal/input/fake.go
package input

import "github.com/hajimehoshi/ebiten/v2"

// FakePoller — управляемый вручную источник ввода для тестов сцен и систем.
type FakePoller struct {
	Keys    map[ebiten.Key]bool
	Buttons map[ebiten.MouseButton]bool
	X, Y    int
}

func NewFakePoller() *FakePoller {
	return &FakePoller{
		Keys:    make(map[ebiten.Key]bool),
		Buttons: make(map[ebiten.MouseButton]bool),
	}
}

func (p *FakePoller) IsKeyPressed(key ebiten.Key) bool { return p.Keys[key] }

func (p *FakePoller) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	return p.Buttons[button]
}

func (p *FakePoller) CursorPosition() (int, int) { return p.X, p.Y }

// Release отпускает все клавиши и кнопки.
func (p *FakePoller) Release() {
	clear(p.Keys)
	clear(p.Buttons)
}
