// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	"farm-flies/internal/component"
	"farm-flies/internal/config"
	"farm-flies/internal/debug"
	"farm-flies/internal/defs"
	"farm-flies/internal/event"
	"farm-flies/internal/logger"
	"farm-flies/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var ErrNotEnoughLevels = errors.New("at least two levels are required")

// GameInstance — корневой объект игры: сцены, счёт и игровой цикл ebiten.
type GameInstance struct {
	settings config.Settings
	res      *state.Resources
	scenes   *state.SceneManager
	levels   map[state.SceneID]*state.LevelState

	score     int
	highScore int
	quit      bool

	lastUpdateTime time.Time
	pending        chan config.Settings

	mu       sync.RWMutex
	snapshot debug.Snapshot
}

// NewGameInstance регистрирует все сцены и включает стартовую.
func NewGameInstance(settings config.Settings, levels []defs.LevelDefinition, res *state.Resources) (*GameInstance, error) {
	if len(levels) < 2 {
		return nil, fmt.Errorf("got %d: %w", len(levels), ErrNotEnoughLevels)
	}
	levels, err := applyDifficulty(levels, settings.Difficulty)
	if err != nil {
		return nil, err
	}

	g := &GameInstance{
		settings:       settings,
		res:            res,
		scenes:         state.NewSceneManager(res.Dispatcher),
		highScore:      settings.HighScore,
		lastUpdateTime: time.Now(),
		pending:        make(chan config.Settings, 1),
	}
	res.Game = g
	res.Dispatcher.SubscribeAll(g, event.EnemyDestroyed, event.SceneChanged)
	loadAudio(res, settings)

	levelOne := state.NewLevelOne(g.scenes, res, levels[0])
	levelTwo := state.NewLevelTwo(g.scenes, res, levels[1])
	g.levels = map[state.SceneID]*state.LevelState{
		state.LevelOne: levelOne,
		state.LevelTwo: levelTwo,
	}

	scenes := []struct {
		id    state.SceneID
		scene state.Scene
	}{
		{state.Intro, state.NewIntroState(g.scenes, res)},
		{state.MainMenu, state.NewMenuState(g.scenes, res)},
		{state.LevelOne, levelOne},
		{state.LevelTwo, levelTwo},
		{state.GameOver, state.NewGameOverState(g.scenes, res)},
		{state.Credits, state.NewCreditsState(g.scenes, res)},
	}
	for _, s := range scenes {
		if err := g.scenes.Add(s.scene, s.id); err != nil {
			return nil, err
		}
	}
	g.scenes.PrintStates()

	if err := g.scenes.Switch(startScene(settings.StartScene)); err != nil {
		return nil, err
	}
	g.refreshSnapshot()
	return g, nil
}

func applyDifficulty(levels []defs.LevelDefinition, name string) ([]defs.LevelDefinition, error) {
	if name == "" {
		return levels, nil
	}
	d, err := component.ParseDifficulty(name)
	if err != nil {
		return nil, fmt.Errorf("settings difficulty: %w", err)
	}
	out := make([]defs.LevelDefinition, len(levels))
	for i, l := range levels {
		l.Difficulty = d
		out[i] = l
	}
	return out, nil
}

func startScene(name string) state.SceneID {
	if name == "" {
		return state.Intro
	}
	id, err := state.ParseSceneID(name)
	if err != nil {
		logger.Warnf("%v, starting from %s", err, state.Intro)
		return state.Intro
	}
	return id
}

// OnEvent реализует event.Listener.
func (g *GameInstance) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDestroyed:
		g.score += config.ScorePerEnemy
	case event.SceneChanged:
		logger.Value("Scene changed", e.Data, logger.Info)
	}
}

// Update вызывается ebiten каждый тик.
func (g *GameInstance) Update() error {
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	g.lastUpdateTime = now
	return g.Step(deltaTime)
}

// Step — один кадр с заданным deltaTime.
func (g *GameInstance) Step(deltaTime float64) error {
	g.applyPending()

	g.res.Cursor.Update()
	g.res.Input.Update()
	g.scenes.HandleInput(deltaTime)
	g.scenes.Update(deltaTime)

	g.refreshSnapshot()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *GameInstance) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.scenes.Draw(screen)
}

func (g *GameInstance) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// ApplySettings передаёт новые настройки в игровой цикл. Безопасно вызывать
// из любой горутины; применяются только последние настройки.
func (g *GameInstance) ApplySettings(s config.Settings) {
	for {
		select {
		case g.pending <- s:
			return
		default:
			select {
			case <-g.pending:
			default:
			}
		}
	}
}

func (g *GameInstance) applyPending() {
	select {
	case s := <-g.pending:
		g.res.Sounds.SetVolume(s.Volume)
		g.res.Music.SetVolume(s.Volume)
		logger.Value("Volume", s.Volume, logger.Info)
	default:
	}
}

func (g *GameInstance) RequestQuit() {
	g.quit = true
}

func (g *GameInstance) Score() int {
	return g.score
}

func (g *GameInstance) ResetScore() {
	g.score = 0
}

func (g *GameInstance) HighScore() int {
	return g.highScore
}

// CommitHighScore сохраняет счёт в файл настроек, если это новый рекорд.
func (g *GameInstance) CommitHighScore() bool {
	if g.score <= g.highScore {
		return false
	}
	g.highScore = g.score
	if err := config.SaveHighScore(g.settings.Path, g.highScore); err != nil {
		logger.Errorf("%v", err)
	}
	logger.Value("New high score", g.highScore, logger.Info)
	return true
}

func (g *GameInstance) refreshSnapshot() {
	snap := debug.Snapshot{Score: g.score, HighScore: g.highScore}
	if id, ok := g.scenes.Current(); ok {
		snap.Scene = id.String()
		if level, ok := g.levels[id]; ok {
			snap.Lives = level.Lives()
			snap.Enemies = level.World().Enemies.Len()
			snap.Projectiles = level.World().Projectiles.Len()
		}
	}
	g.mu.Lock()
	g.snapshot = snap
	g.mu.Unlock()
}

// Snapshot реализует debug.StateSource.
func (g *GameInstance) Snapshot() debug.Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.snapshot
}

// Scenes — менеджер сцен, для отладки.
func (g *GameInstance) Scenes() *state.SceneManager {
	return g.scenes
}

// Run открывает окно и крутит игровой цикл до выхода.
func (g *GameInstance) Run() error {
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	if _, icon, err := ebitenutil.NewImageFromFile(config.CowSprite); err == nil {
		ebiten.SetWindowIcon([]image.Image{icon})
	} else {
		logger.Warnf("window icon: %v", err)
	}

	defer g.Close()
	return ebiten.RunGame(g)
}

// Close освобождает сцены и звуки.
func (g *GameInstance) Close() {
	g.scenes.Destroy()
	g.res.Sounds.Cleanup()
	g.res.Music.Cleanup()
	if c, ok := g.res.Assets.(interface{ Cleanup() }); ok {
		c.Cleanup()
	}
}
