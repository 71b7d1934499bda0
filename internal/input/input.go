// internal/input/input.go
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyBind — игровое действие, к которому привязаны клавиши и кнопки мыши.
type KeyBind uint

const (
	Pause KeyBind = iota
	Shoot
	RightClick
	Confirm
	bindCount
)

func (k KeyBind) String() string {
	switch k {
	case Pause:
		return "Pause"
	case Shoot:
		return "Shoot"
	case RightClick:
		return "RightClick"
	case Confirm:
		return "Confirm"
	default:
		return "Unknown"
	}
}

// Poller — источник сырого состояния клавиатуры и мыши.
type Poller interface {
	IsKeyPressed(key ebiten.Key) bool
	IsMouseButtonPressed(button ebiten.MouseButton) bool
	CursorPosition() (int, int)
}

// EbitenPoller читает состояние напрямую из ebiten.
type EbitenPoller struct{}

func (EbitenPoller) IsKeyPressed(key ebiten.Key) bool { return ebiten.IsKeyPressed(key) }

func (EbitenPoller) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(button)
}

func (EbitenPoller) CursorPosition() (int, int) { return ebiten.CursorPosition() }

var keyBinds = map[ebiten.Key]KeyBind{
	ebiten.KeyEscape: Pause,
	ebiten.KeyEnter:  Confirm,
	ebiten.KeySpace:  Confirm,
}

var mouseBinds = map[ebiten.MouseButton]KeyBind{
	ebiten.MouseButtonLeft:  Shoot,
	ebiten.MouseButtonRight: RightClick,
}

// Manager хранит битовые маски текущего и предыдущего кадра.
type Manager struct {
	poller   Poller
	current  uint32
	previous uint32
}

func NewManager(poller Poller) *Manager {
	if poller == nil {
		poller = EbitenPoller{}
	}
	return &Manager{poller: poller}
}

// Update вызывается один раз за кадр до обработки ввода сценами.
func (m *Manager) Update() {
	m.previous = m.current
	m.current = 0

	for key, bind := range keyBinds {
		if m.poller.IsKeyPressed(key) {
			m.current |= 1 << bind
		}
	}
	for button, bind := range mouseBinds {
		if m.poller.IsMouseButtonPressed(button) {
			m.current |= 1 << bind
		}
	}
}

// Flush считает текущие нажатия уже обработанными: IsKeyPress вернёт false
// до следующего нового нажатия.
func (m *Manager) Flush() {
	m.previous = m.current
}

// IsKeyPress — действие нажато в этом кадре и не было нажато в предыдущем.
func (m *Manager) IsKeyPress(k KeyBind) bool {
	mask := uint32(1) << k
	return m.current&mask != 0 && m.previous&mask == 0
}

// IsKeyDown — действие удерживается.
func (m *Manager) IsKeyDown(k KeyBind) bool {
	return m.current&(uint32(1)<<k) != 0
}

// Poller возвращает источник ввода, например для курсора.
func (m *Manager) Poller() Poller {
	return m.poller
}
