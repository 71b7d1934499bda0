// internal/app/resources.go
package app

import (
	"os"

	"farm-flies/internal/audio"
	"farm-flies/internal/config"
	"farm-flies/internal/event"
	"farm-flies/internal/input"
	"farm-flies/internal/logger"
	"farm-flies/internal/state"
	"farm-flies/internal/utils"
)

// NewResources собирает общие зависимости сцен. Game заполняет NewGameInstance.
func NewResources(settings config.Settings, assets state.Assets, poller input.Poller, backend audio.Backend) *state.Resources {
	dispatcher := event.NewDispatcher()
	res := &state.Resources{
		Assets:     assets,
		Input:      input.NewManager(poller),
		Cursor:     input.NewCursor(poller, assets.Image(config.CursorSprite)),
		Sounds:     audio.NewSoundManager(backend),
		Music:      audio.NewMusicPlayer(backend),
		Dispatcher: dispatcher,
		RNG:        utils.NewRandomGenerator(settings.Seed),
	}
	res.Sounds.Subscribe(dispatcher)
	return res
}

// loadAudio загружает звуки и музыку. Отсутствующие файлы не мешают игре.
func loadAudio(res *state.Resources, settings config.Settings) {
	n, err := res.Sounds.LoadDir(os.DirFS(config.AssetsDir), config.SoundPattern)
	if err != nil {
		logger.Errorf("%v", err)
	}
	logger.Value("Sounds loaded", n, logger.Info)

	if err := res.Music.Load(state.TrackLevel, config.LevelMusic); err != nil {
		logger.Errorf("%v", err)
	}
	if err := res.Music.Load(state.TrackGameOver, config.GameOverMusic); err != nil {
		logger.Errorf("%v", err)
	}
	res.Sounds.SetVolume(settings.Volume)
	res.Music.SetVolume(settings.Volume)
}
