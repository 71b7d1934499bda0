// internal/state/credits_state.go
package state

import (
	"fmt"

	"farm-flies/internal/config"
	"farm-flies/internal/input"
	"farm-flies/internal/ui"
	"farm-flies/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
)

type creditEntry struct {
	Role string
	Name string
}

var creditEntries = []creditEntry{
	{"Lead Developer & Technical Architect", "Felix Atanasescu"},
	{"Support Programmer", "Andrei Kotlyarenko"},
	{"Support Programmer & QA Tester", "Alina Atanasescu"},
	{"Game Designer & Visual Artist", "Radu Buzatu"},
}

// CreditsState — титры с кнопкой возврата в меню.
type CreditsState struct {
	BaseScene
	sm   *SceneManager
	res  *Resources
	back *ui.MenuButton
}

func NewCreditsState(sm *SceneManager, res *Resources) *CreditsState {
	return &CreditsState{sm: sm, res: res}
}

func (s *CreditsState) OnInit() {
	s.back = ui.NewMenuButton(geom.Rect{X: 20, Y: config.ScreenHeight - 70, W: 150, H: 50}, "Back")
	s.back.BgColor = config.BackButtonColor
	s.back.HoverColor = config.BackButtonColor
}

// OnStart: сюда попадают и после победы, поэтому рекорд сохраняется здесь тоже.
func (s *CreditsState) OnStart() {
	s.res.Game.CommitHighScore()
}

func (s *CreditsState) Update(deltaTime float64) {
	s.back.Update(s.res.Cursor.PositionF())
}

func (s *CreditsState) HandleInput(deltaTime float64) {
	clicked := s.res.Input.IsKeyPress(input.Shoot) && s.back.Contains(s.res.Cursor.PositionF())
	if clicked || s.res.Input.IsKeyPress(input.Pause) {
		_ = s.sm.Switch(MainMenu)
	}
}

func (s *CreditsState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	face := s.res.Assets.Face(config.FontB, config.CreditFontSize)
	rowHeight := config.CreditSpacing * 2
	startY := config.ScreenHeight/2 - float64(len(creditEntries))*rowHeight/2
	for i, entry := range creditEntries {
		y := int(startY + float64(i)*rowHeight)
		ui.DrawCenteredText(screen, face, entry.Role, config.ScreenWidth/2, y, config.TextLightColor)
		ui.DrawCenteredText(screen, face, entry.Name, config.ScreenWidth/2, y+config.CreditSpacing*0.6, config.TextLightColor)
	}

	small := s.res.Assets.Face(config.FontA, config.HUDFontSize)
	ui.DrawText(screen, small, fmt.Sprintf("High score: %d", s.res.Game.HighScore()), 20, 20, config.TextLightColor)

	s.back.Draw(screen, s.res.Assets.Face(config.FontB, 20))
	s.res.Cursor.Draw(screen)
}
