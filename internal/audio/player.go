// internal/audio/player.go
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// SampleRate — частота дискретизации аудио-контекста.
const SampleRate = 44100

var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Player — то, что нужно менеджерам от проигрывателя. *audio.Player подходит.
type Player interface {
	Play()
	Pause()
	Rewind() error
	IsPlaying() bool
	SetVolume(volume float64)
	Close() error
}

// Backend превращает содержимое файла в проигрыватель.
type Backend interface {
	NewPlayer(ext string, data []byte, loop bool) (Player, error)
}

// EbitenBackend декодирует wav и mp3 через ebiten/audio.
type EbitenBackend struct {
	ctx *audio.Context
}

// NewEbitenBackend создаёт аудио-контекст. Вызывать один раз за процесс.
func NewEbitenBackend() *EbitenBackend {
	return &EbitenBackend{ctx: audio.NewContext(SampleRate)}
}

func (b *EbitenBackend) NewPlayer(ext string, data []byte, loop bool) (Player, error) {
	var (
		stream io.ReadSeeker
		length int64
	)
	switch strings.ToLower(ext) {
	case ".wav":
		s, err := wav.DecodeWithSampleRate(SampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav: %w", err)
		}
		stream, length = s, s.Length()
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(SampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode mp3: %w", err)
		}
		stream, length = s, s.Length()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if loop {
		stream = audio.NewInfiniteLoop(stream, length)
	}
	p, err := b.ctx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return p, nil
}

func extOf(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
