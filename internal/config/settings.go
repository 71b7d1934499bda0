// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Settings — настройки, читаемые из settings.json во время запуска.
type Settings struct {
	Path       string
	Volume     float64
	Seed       int64
	Difficulty string // пусто — сложность из определения уровня
	DebugAddr  string
	StartScene string
	LevelsFile string
	HighScore  int
}

// DefaultSettings возвращает настройки по умолчанию.
func DefaultSettings() Settings {
	return Settings{
		Path:      DefaultSettingsPath,
		Volume:    1.0,
		DebugAddr: DefaultDebugAddr,
	}
}

// ParseSettings разбирает JSON. Отсутствующие ключи берутся из значений по умолчанию.
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if len(data) == 0 {
		return s, nil
	}
	if !gjson.ValidBytes(data) {
		return s, errors.New("settings: invalid json")
	}
	if v := gjson.GetBytes(data, "audio.volume"); v.Exists() {
		s.Volume = min(max(v.Float(), 0), 1)
	}
	if v := gjson.GetBytes(data, "seed"); v.Exists() {
		s.Seed = v.Int()
	}
	if v := gjson.GetBytes(data, "debug.addr"); v.Exists() && v.String() != "" {
		s.DebugAddr = v.String()
	}
	s.Difficulty = gjson.GetBytes(data, "difficulty").String()
	s.StartScene = gjson.GetBytes(data, "startScene").String()
	s.LevelsFile = gjson.GetBytes(data, "levelsFile").String()
	s.HighScore = int(gjson.GetBytes(data, "highScore").Int())
	return s, nil
}

// LoadSettings читает файл. Если файла нет, возвращаются настройки по умолчанию.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s := DefaultSettings()
		s.Path = path
		return s, nil
	}
	if err != nil {
		return DefaultSettings(), fmt.Errorf("failed to read settings file: %w", err)
	}
	s, err := ParseSettings(data)
	if err != nil {
		return s, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	s.Path = path
	return s, nil
}

// SaveHighScore записывает рекорд, не трогая остальные ключи файла.
func SaveHighScore(path string, score int) error {
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read settings file: %w", err)
	}
	if len(data) == 0 {
		data = []byte("{}")
	}
	data, err = sjson.SetBytes(data, "highScore", score)
	if err != nil {
		return fmt.Errorf("failed to set high score: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
