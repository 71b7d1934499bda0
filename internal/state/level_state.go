// internal/state/level_state.go
package state

import (
	"farm-flies/internal/component"
	"farm-flies/internal/config"
	"farm-flies/internal/defs"
	"farm-flies/internal/entity"
	"farm-flies/internal/event"
	"farm-flies/internal/input"
	"farm-flies/internal/logger"
	"farm-flies/internal/system"
	"farm-flies/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// LevelState — игровой уровень. Первый и второй уровни отличаются
// определением и сценой, в которую ведёт победа.
type LevelState struct {
	BaseScene
	sm         *SceneManager
	res        *Resources
	def        defs.LevelDefinition
	next       SceneID
	resetScore bool

	world      *entity.World
	background *component.ScrollingBackground
	lives      int
	paused     bool
	hud        *ui.HUD

	backgroundSystem *system.BackgroundSystem
	spawnSystem      *system.SpawnSystem
	playerSystem     *system.PlayerSystem
	movementSystem   *system.MovementSystem
	shootingSystem   *system.ShootingSystem
	projectileSystem *system.ProjectileSystem
	collisionSystem  *system.CollisionSystem
	renderSystem     *system.RenderSystem
}

// NewLevelOne — первый уровень. Новый забег, поэтому счёт обнуляется.
func NewLevelOne(sm *SceneManager, res *Resources, def defs.LevelDefinition) *LevelState {
	return &LevelState{sm: sm, res: res, def: def, next: LevelTwo, resetScore: true}
}

// NewLevelTwo — второй уровень, после него идут титры.
func NewLevelTwo(sm *SceneManager, res *Resources, def defs.LevelDefinition) *LevelState {
	return &LevelState{sm: sm, res: res, def: def, next: Credits}
}

func (s *LevelState) OnInit() {
	s.world = entity.NewWorld()
	s.world.Spaceship = component.NewSpaceship(config.SpaceshipSprite, s.res.Assets.Size(config.SpaceshipSprite))

	height := s.res.Assets.Size(config.BackgroundSprite).Y
	s.background = component.NewScrollingBackground(config.BackgroundSprite, height, config.BackgroundScrollSpeed)
	s.hud = ui.NewHUD(s.def.Number)

	d := s.res.Dispatcher
	s.backgroundSystem = system.NewBackgroundSystem(s.background)
	s.spawnSystem = system.NewSpawnSystem(s.world, s.res.Assets, s.res.RNG)
	s.playerSystem = system.NewPlayerSystem(s.world, s.res.Input, s.res.Cursor, s.res.Assets, d)
	s.movementSystem = system.NewMovementSystem(s.world)
	s.shootingSystem = system.NewShootingSystem(s.world, s.res.Assets, s.res.RNG, d)
	s.projectileSystem = system.NewProjectileSystem(s.world)
	s.collisionSystem = system.NewCollisionSystem(s.world, d)
	s.renderSystem = system.NewRenderSystem(s.world, s.res.Assets)
}

// OnStart сбрасывает уровень в начальное состояние.
func (s *LevelState) OnStart() {
	s.lives = config.StartLives
	s.paused = false
	// клик, которым запустили уровень, не должен стать выстрелом
	s.res.Input.Flush()
	if s.resetScore {
		s.res.Game.ResetScore()
	}
	s.world.Clear()
	s.world.Spaceship.Reset()
	n := s.spawnSystem.SpawnGrid(s.def)
	logger.Infof("%s started with %d enemies", s.def.Name, n)
	s.background.Reset()
	s.res.Music.Play(TrackLevel, true)
	s.updateHUD()
}

func (s *LevelState) OnStop() {
	s.res.Music.Stop(TrackLevel)
}

func (s *LevelState) HandleInput(deltaTime float64) {
	if s.res.Input.IsKeyPress(input.Pause) {
		s.paused = !s.paused
		s.hud.Paused = s.paused
	}
}

func (s *LevelState) Update(deltaTime float64) {
	if s.paused {
		return
	}
	s.backgroundSystem.Update(deltaTime)
	s.playerSystem.Update(deltaTime)
	s.movementSystem.Update(deltaTime)
	s.shootingSystem.Update(deltaTime)
	s.projectileSystem.Update(deltaTime)
	s.updateHUD()

	if s.world.Enemies.Len() == 0 {
		s.res.Dispatcher.Dispatch(event.Event{Type: event.LevelCleared, Data: s.def.Number})
		_ = s.sm.Switch(s.next)
		return
	}

	s.collisionSystem.CheckEnemyCollision()
	if s.collisionSystem.HasEnemyProjectileHitSpaceship() {
		s.lives--
	}

	if s.lives <= 0 {
		s.res.Dispatcher.Dispatch(event.Event{Type: event.LivesDepleted, Data: s.def.Number})
		_ = s.sm.Switch(GameOver)
	}
}

func (s *LevelState) updateHUD() {
	s.hud.Lives = s.lives
	s.hud.Score = s.res.Game.Score()
	s.hud.Paused = s.paused
}

func (s *LevelState) Draw(screen *ebiten.Image) {
	s.backgroundSystem.Draw(screen, s.res.Assets)
	s.renderSystem.Draw(screen)
	s.hud.Draw(screen,
		s.res.Assets.Face(config.FontA, config.HUDFontSize),
		s.res.Assets.Face(config.FontA, config.PauseFontSize))
}

func (s *LevelState) Lives() int                       { return s.lives }
func (s *LevelState) Paused() bool                     { return s.paused }
func (s *LevelState) World() *entity.World             { return s.world }
func (s *LevelState) Definition() defs.LevelDefinition { return s.def }
