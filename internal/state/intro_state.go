// internal/state/intro_state.go
package state

import (
	"image/color"

	"farm-flies/internal/config"
	"farm-flies/internal/input"
	"farm-flies/internal/ui"
	"farm-flies/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

// IntroState — заставка с названием игры.
type IntroState struct {
	BaseScene
	sm    *SceneManager
	res   *Resources
	timer *utils.Timer
}

func NewIntroState(sm *SceneManager, res *Resources) *IntroState {
	return &IntroState{sm: sm, res: res, timer: utils.NewTimer(config.IntroDuration)}
}

func (s *IntroState) OnStart() {
	s.timer.Restart()
}

func (s *IntroState) HandleInput(deltaTime float64) {
	if s.res.Input.IsKeyPress(input.Shoot) || s.res.Input.IsKeyPress(input.Confirm) {
		_ = s.sm.Switch(MainMenu)
	}
}

func (s *IntroState) Update(deltaTime float64) {
	if s.timer.HasTimePassed(deltaTime) {
		_ = s.sm.Switch(MainMenu)
	}
}

func (s *IntroState) Draw(screen *ebiten.Image) {
	// название проявляется за первую половину заставки
	progress := utils.Clamp(s.timer.PassedTime()/(s.timer.Interval()/2), 0, 1)
	alpha := uint8(utils.Lerp(0, 255, progress))
	title := color.RGBA{config.TextLightColor.R, config.TextLightColor.G, config.TextLightColor.B, alpha}

	titleFace := s.res.Assets.Face(config.FontB, config.TitleFontSize)
	ui.DrawCenteredText(screen, titleFace, config.WindowTitle, config.ScreenWidth/2, config.ScreenHeight/2-40, title)

	hintFace := s.res.Assets.Face(config.FontA, config.HUDFontSize)
	ui.DrawCenteredText(screen, hintFace, "Click to continue", config.ScreenWidth/2, config.ScreenHeight/2+60, config.TextLightColor)
}
