// internal/state/game_over_state.go
package state

import (
	"fmt"

	"farm-flies/internal/config"
	"farm-flies/internal/ui"
	"farm-flies/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameOverState — экран поражения с обратным отсчётом.
type GameOverState struct {
	BaseScene
	sm    *SceneManager
	res   *Resources
	timer *utils.Timer
}

func NewGameOverState(sm *SceneManager, res *Resources) *GameOverState {
	return &GameOverState{sm: sm, res: res, timer: utils.NewTimer(config.GameOverDuration)}
}

func (s *GameOverState) OnStart() {
	s.timer.Restart()
	s.res.Game.CommitHighScore()
	s.res.Music.Play(TrackGameOver, false)
}

func (s *GameOverState) OnStop() {
	s.res.Music.Stop(TrackGameOver)
}

func (s *GameOverState) Update(deltaTime float64) {
	if s.timer.HasTimePassed(deltaTime) {
		_ = s.sm.Switch(Credits)
	}
}

// Countdown — целые секунды до перехода, дробная часть отбрасывается.
func (s *GameOverState) Countdown() int {
	return int(s.timer.Remaining())
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	face := s.res.Assets.Face(config.FontA, config.PauseFontSize)
	ui.DrawCenteredText(screen, face, "You have lost all your lives!", config.ScreenWidth/2, config.ScreenHeight/2, config.TextLightColor)

	small := s.res.Assets.Face(config.FontA, config.HUDFontSize)
	ui.DrawText(screen, small, fmt.Sprintf("Restarting in %d", s.Countdown()), 0, 0, config.TextLightColor)
	ui.DrawText(screen, small, fmt.Sprintf("Score: %d  High score: %d", s.res.Game.Score(), s.res.Game.HighScore()),
		0, 30, config.TextLightColor)
}
