// internal/audio/music.go
package audio

import (
	"fmt"
	"os"

	"farm-flies/internal/logger"
	"farm-flies/internal/utils"
)

type track struct {
	ext    string
	data   []byte
	player Player
	loop   bool
}

// MusicPlayer проигрывает длинные треки. Зацикленный трек
// собирается через audio.NewInfiniteLoop.
type MusicPlayer struct {
	backend Backend
	tracks  map[string]*track
	volume  float64
}

func NewMusicPlayer(backend Backend) *MusicPlayer {
	return &MusicPlayer{
		backend: backend,
		tracks:  make(map[string]*track),
		volume:  1.0,
	}
}

// Load читает трек в память. Декодирование откладывается до Play.
func (m *MusicPlayer) Load(name, filePath string) error {
	if _, ok := m.tracks[name]; ok {
		return nil
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to load music %s: %w", name, err)
	}
	m.tracks[name] = &track{ext: extOf(filePath), data: data}
	return nil
}

// Play запускает трек с начала.
func (m *MusicPlayer) Play(name string, loop bool) {
	t, ok := m.tracks[name]
	if !ok {
		logger.Warnf("music not found: %s", name)
		return
	}
	if t.player != nil && t.loop != loop {
		t.player.Pause()
		_ = t.player.Close()
		t.player = nil
	}
	if t.player == nil {
		p, err := m.backend.NewPlayer(t.ext, t.data, loop)
		if err != nil {
			logger.Errorf("music %s: %v", name, err)
			return
		}
		t.player, t.loop = p, loop
	}
	t.player.SetVolume(m.volume)
	if err := t.player.Rewind(); err != nil {
		logger.Errorf("rewind %s: %v", name, err)
	}
	t.player.Play()
}

func (m *MusicPlayer) Stop(name string) {
	t, ok := m.tracks[name]
	if !ok || t.player == nil {
		return
	}
	t.player.Pause()
}

func (m *MusicPlayer) StopAll() {
	for _, t := range m.tracks {
		if t.player != nil {
			t.player.Pause()
		}
	}
}

func (m *MusicPlayer) IsPlaying(name string) bool {
	t, ok := m.tracks[name]
	return ok && t.player != nil && t.player.IsPlaying()
}

func (m *MusicPlayer) SetVolume(v float64) {
	m.volume = utils.Clamp(v, 0, 1)
	for _, t := range m.tracks {
		if t.player != nil {
			t.player.SetVolume(m.volume)
		}
	}
}

func (m *MusicPlayer) Cleanup() {
	for name, t := range m.tracks {
		if t.player != nil {
			_ = t.player.Close()
		}
		delete(m.tracks, name)
	}
}
