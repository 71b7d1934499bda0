// internal/state/menu_state.go
package state

import (
	"farm-flies/internal/config"
	"farm-flies/internal/input"
	"farm-flies/internal/ui"
	"farm-flies/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
)

// MenuState — главное меню
type MenuState struct {
	BaseScene
	sm      *SceneManager
	res     *Resources
	start   *ui.MenuButton
	credits *ui.MenuButton
	quit    *ui.MenuButton
}

func NewMenuState(sm *SceneManager, res *Resources) *MenuState {
	return &MenuState{sm: sm, res: res}
}

func (m *MenuState) OnInit() {
	m.start = ui.NewMenuButton(geom.Rect{X: 400, Y: 300, W: 200, H: 50}, "Start")
	m.credits = ui.NewMenuButton(geom.Rect{X: 400, Y: 370, W: 200, H: 50}, "Credits")
	m.quit = ui.NewMenuButton(geom.Rect{X: 400, Y: 440, W: 200, H: 50}, "Quit")
}

func (m *MenuState) buttons() []*ui.MenuButton {
	return []*ui.MenuButton{m.start, m.credits, m.quit}
}

func (m *MenuState) Update(deltaTime float64) {
	cursor := m.res.Cursor.PositionF()
	for _, b := range m.buttons() {
		b.Update(cursor)
	}
}

func (m *MenuState) HandleInput(deltaTime float64) {
	if m.res.Input.IsKeyPress(input.Pause) {
		m.res.Game.RequestQuit()
		return
	}
	if !m.res.Input.IsKeyPress(input.Shoot) {
		return
	}
	cursor := m.res.Cursor.PositionF()
	switch {
	case m.start.Contains(cursor):
		_ = m.sm.Switch(LevelOne)
	case m.credits.Contains(cursor):
		_ = m.sm.Switch(Credits)
	case m.quit.Contains(cursor):
		m.res.Game.RequestQuit()
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	titleFace := m.res.Assets.Face(config.FontB, config.TitleFontSize)
	ui.DrawText(screen, titleFace, config.WindowTitle, 400, 150, config.TextLightColor)

	face := m.res.Assets.Face(config.FontB, config.ButtonFontSize)
	for _, b := range m.buttons() {
		b.Draw(screen, face)
	}
	m.res.Cursor.Draw(screen)
}

// Button возвращает кнопку по тексту, для тестов и отладки.
func (m *MenuState) Button(text string) *ui.MenuButton {
	for _, b := range m.buttons() {
		if b.Text == text {
			return b
		}
	}
	return nil
}
