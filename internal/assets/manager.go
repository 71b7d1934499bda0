// internal/assets/manager.go
package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"farm-flies/internal/config"
	"farm-flies/internal/logger"
	"farm-flies/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// PlaceholderSize — сторона картинки-заглушки для отсутствующих спрайтов.
const PlaceholderSize = 32

type faceKey struct {
	path string
	size float64
}

// Manager управляет загрузкой, кэшированием и выгрузкой картинок и шрифтов.
type Manager struct {
	images map[string]*ebiten.Image
	sizes  map[string]geom.Vector2f
	fonts  map[string]*opentype.Font
	faces  map[faceKey]font.Face
}

// NewManager создает новый экземпляр Manager.
func NewManager() *Manager {
	return &Manager{
		images: make(map[string]*ebiten.Image),
		sizes:  make(map[string]geom.Vector2f),
		fonts:  make(map[string]*opentype.Font),
		faces:  make(map[faceKey]font.Face),
	}
}

// Image возвращает картинку из кэша, загружая её при первом обращении.
// Если файл не читается, кэшируется заглушка.
func (m *Manager) Image(path string) *ebiten.Image {
	if img, ok := m.images[path]; ok {
		return img
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		logger.Errorf("failed to load image %s: %v", path, err)
		img = placeholder()
	}
	m.images[path] = img
	b := img.Bounds()
	m.sizes[path] = geom.Vec2(float64(b.Dx()), float64(b.Dy()))
	return img
}

func placeholder() *ebiten.Image {
	img := ebiten.NewImage(PlaceholderSize, PlaceholderSize)
	img.Fill(config.PlaceholderColor)
	return img
}

// Size возвращает размер спрайта. Для этого достаточно заголовка файла,
// поэтому системы могут считать столкновения без загрузки текстур.
func (m *Manager) Size(path string) geom.Vector2f {
	if s, ok := m.sizes[path]; ok {
		return s
	}
	s := geom.Vec2(float64(PlaceholderSize), float64(PlaceholderSize))
	f, err := os.Open(path)
	if err == nil {
		cfg, _, decErr := image.DecodeConfig(f)
		f.Close()
		if decErr == nil {
			s = geom.Vec2(float64(cfg.Width), float64(cfg.Height))
		} else {
			err = decErr
		}
	}
	if err != nil {
		logger.Warnf("sprite size for %s: %v", path, err)
	}
	m.sizes[path] = s
	return s
}

// Face возвращает шрифт заданного размера. При ошибке возвращается nil,
// и текст рисуется отладочным шрифтом.
func (m *Manager) Face(path string, size float64) font.Face {
	key := faceKey{path: path, size: size}
	if face, ok := m.faces[key]; ok {
		return face
	}
	face, err := m.loadFace(path, size)
	if err != nil {
		logger.Errorf("Error loading font! %v", err)
	}
	m.faces[key] = face
	return face
}

func (m *Manager) loadFace(path string, size float64) (font.Face, error) {
	tt, ok := m.fonts[path]
	if !ok {
		fontData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font: %w", err)
		}
		tt, err = opentype.Parse(fontData)
		if err != nil {
			return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
		}
		m.fonts[path] = tt
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face %s: %w", path, err)
	}
	return face, nil
}

// Cleanup выгружает все картинки и шрифты.
func (m *Manager) Cleanup() {
	for path, img := range m.images {
		img.Deallocate()
		delete(m.images, path)
	}
	for key, face := range m.faces {
		if face != nil {
			face.Close()
		}
		delete(m.faces, key)
	}
	clear(m.sizes)
	clear(m.fonts)
	logger.Infof("All assets unloaded.")
}
