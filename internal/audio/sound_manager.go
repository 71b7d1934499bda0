// internal/audio/sound_manager.go
package audio

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"farm-flies/internal/event"
	"farm-flies/internal/logger"
	"farm-flies/internal/utils"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/stoewer/go-strcase"
)

// Имена звуков, которые проигрываются по игровым событиям.
const (
	SoundEnemyDeath   = "cowDeath"
	SoundPlayerShot   = "shipShooting"
	SoundSpaceshipHit = "spaceshipHit"
)

var eventSounds = map[event.EventType]string{
	event.EnemyDestroyed: SoundEnemyDeath,
	event.PlayerShot:     SoundPlayerShot,
	event.SpaceshipHit:   SoundSpaceshipHit,
}

// SoundManager хранит короткие звуковые эффекты по имени.
type SoundManager struct {
	backend Backend
	sounds  map[string]Player
	volume  float64
}

func NewSoundManager(backend Backend) *SoundManager {
	return &SoundManager{
		backend: backend,
		sounds:  make(map[string]Player),
		volume:  1.0,
	}
}

// SoundKey — ключ звука по имени файла: ship_shooting.wav -> shipShooting.
func SoundKey(file string) string {
	stem := strings.TrimSuffix(path.Base(file), path.Ext(file))
	return strcase.LowerCamelCase(stem)
}

// LoadSound загружает файл с диска. Уже загруженное имя не перезагружается.
func (m *SoundManager) LoadSound(name, filePath string) error {
	if _, ok := m.sounds[name]; ok {
		return nil
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to load sound %s: %w", name, err)
	}
	return m.add(name, filePath, data)
}

// LoadDir загружает все файлы fsys, подходящие под glob-шаблон (например **/*.wav).
func (m *SoundManager) LoadDir(fsys fs.FS, pattern string) (int, error) {
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return 0, fmt.Errorf("bad sound pattern %q: %w", pattern, err)
	}
	loaded := 0
	for _, match := range matches {
		name := SoundKey(match)
		if _, ok := m.sounds[name]; ok {
			continue
		}
		data, err := fs.ReadFile(fsys, match)
		if err != nil {
			logger.Errorf("failed to read sound %s: %v", match, err)
			continue
		}
		if err := m.add(name, match, data); err != nil {
			logger.Errorf("%v", err)
			continue
		}
		loaded++
	}
	return loaded, nil
}

func (m *SoundManager) add(name, filePath string, data []byte) error {
	p, err := m.backend.NewPlayer(extOf(filePath), data, false)
	if err != nil {
		return fmt.Errorf("failed to load sound %s: %w", name, err)
	}
	p.SetVolume(m.volume)
	m.sounds[name] = p
	logger.Infof("sound loaded: %s (%s)", name, filePath)
	return nil
}

// PlaySound проигрывает звук с начала.
func (m *SoundManager) PlaySound(name string) {
	p, ok := m.sounds[name]
	if !ok {
		logger.Warnf("sound not found: %s", name)
		return
	}
	if err := p.Rewind(); err != nil {
		logger.Errorf("rewind %s: %v", name, err)
	}
	p.Play()
}

// StopSound останавливает звук и перематывает его в начало.
func (m *SoundManager) StopSound(name string) {
	p, ok := m.sounds[name]
	if !ok {
		logger.Warnf("sound not found: %s", name)
		return
	}
	p.Pause()
	if err := p.Rewind(); err != nil {
		logger.Errorf("rewind %s: %v", name, err)
	}
}

func (m *SoundManager) SetVolume(v float64) {
	m.volume = utils.Clamp(v, 0, 1)
	for _, p := range m.sounds {
		p.SetVolume(m.volume)
	}
}

func (m *SoundManager) Volume() float64 {
	return m.volume
}

func (m *SoundManager) Has(name string) bool {
	_, ok := m.sounds[name]
	return ok
}

// Subscribe подписывает менеджер на события, у которых есть звук.
func (m *SoundManager) Subscribe(d *event.Dispatcher) {
	for t := range eventSounds {
		d.Subscribe(t, m)
	}
}

// OnEvent проигрывает звук, привязанный к событию.
func (m *SoundManager) OnEvent(e event.Event) {
	if name, ok := eventSounds[e.Type]; ok {
		m.PlaySound(name)
	}
}

// Cleanup закрывает все проигрыватели.
func (m *SoundManager) Cleanup() {
	for name, p := range m.sounds {
		if err := p.Close(); err != nil {
			logger.Warnf("close sound %s: %v", name, err)
		}
		delete(m.sounds, name)
	}
}
