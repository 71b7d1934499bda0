// internal/state/scene.go
package state

import (
	"fmt"
	"strings"

	"farm-flies/internal/audio"
	"farm-flies/internal/event"
	"farm-flies/internal/input"
	"farm-flies/internal/interfaces"
	"farm-flies/internal/system"
	"farm-flies/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// Scene — интерфейс для всех сцен
type Scene interface {
	OnInit()
	OnDestroy()
	OnStart()
	OnStop()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	HandleInput(deltaTime float64)
}

// BaseScene даёт пустые хуки жизненного цикла.
type BaseScene struct{}

func (BaseScene) OnInit()                       {}
func (BaseScene) OnDestroy()                    {}
func (BaseScene) OnStart()                      {}
func (BaseScene) OnStop()                       {}
func (BaseScene) Update(deltaTime float64)      {}
func (BaseScene) Draw(screen *ebiten.Image)     {}
func (BaseScene) HandleInput(deltaTime float64) {}

// SceneID — идентификатор сцены
type SceneID int

const (
	MainMenu SceneID = iota
	LevelOne
	LevelTwo
	GameOver
	Credits
	Intro
)

var sceneNames = map[SceneID]string{
	MainMenu: "MainMenu",
	LevelOne: "LevelOne",
	LevelTwo: "LevelTwo",
	GameOver: "GameOver",
	Credits:  "Credits",
	Intro:    "Intro",
}

func (id SceneID) String() string {
	if name, ok := sceneNames[id]; ok {
		return name
	}
	return fmt.Sprintf("Scene(%d)", int(id))
}

// ParseSceneID принимает имя сцены без учёта регистра.
func ParseSceneID(s string) (SceneID, error) {
	for id, name := range sceneNames {
		if strings.EqualFold(name, s) {
			return id, nil
		}
	}
	return Intro, fmt.Errorf("unknown scene %q", s)
}

// Assets — картинки, размеры спрайтов и шрифты.
type Assets interface {
	system.ImageSource
	system.SpriteSizer
	Face(path string, size float64) font.Face
}

// Имена музыкальных треков в MusicPlayer.
const (
	TrackLevel    = "level"
	TrackGameOver = "gameOver"
)

// Resources — общие зависимости сцен.
type Resources struct {
	Assets     Assets
	Input      *input.Manager
	Cursor     *input.Cursor
	Sounds     *audio.SoundManager
	Music      *audio.MusicPlayer
	Dispatcher *event.Dispatcher
	RNG        *utils.RandomGenerator
	Game       interfaces.GameContext
}
