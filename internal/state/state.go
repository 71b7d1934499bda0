// internal/state/state.go
package state

import (
	"errors"
	"fmt"
	"slices"

	"farm-flies/internal/event"
	"farm-flies/internal/logger"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	ErrSceneExists   = errors.New("scene already exists")
	ErrNilScene      = errors.New("scene is nil")
	ErrSceneNotFound = errors.New("scene not found")
)

// SceneManager — хранит сцены и переключает текущую
type SceneManager struct {
	scenes          map[SceneID]Scene
	current         Scene
	currentID       SceneID
	eventDispatcher *event.Dispatcher
}

// NewSceneManager создаёт менеджер без текущей сцены
func NewSceneManager(eventDispatcher *event.Dispatcher) *SceneManager {
	return &SceneManager{
		scenes:          make(map[SceneID]Scene),
		eventDispatcher: eventDispatcher,
	}
}

// Add регистрирует сцену и вызывает её OnInit.
func (sm *SceneManager) Add(scene Scene, id SceneID) error {
	if scene == nil {
		logger.Errorf("Cannot add nil scene %s", id)
		return fmt.Errorf("%s: %w", id, ErrNilScene)
	}
	if _, exists := sm.scenes[id]; exists {
		logger.Errorf("Scene %s already exists", id)
		return fmt.Errorf("%s: %w", id, ErrSceneExists)
	}
	sm.scenes[id] = scene
	scene.OnInit()
	return nil
}

// Switch устанавливает новую сцену. Ошибка уже записана в лог,
// поэтому сцены её не проверяют.
func (sm *SceneManager) Switch(id SceneID) error {
	next, ok := sm.scenes[id]
	if !ok {
		logger.Errorf("Scene %s not found", id)
		return fmt.Errorf("%s: %w", id, ErrSceneNotFound)
	}
	if sm.current != nil {
		sm.current.OnStop() // Выход из текущей сцены, если она есть
	}
	sm.current = next
	sm.currentID = id
	sm.current.OnStart()
	sm.eventDispatcher.Dispatch(event.Event{Type: event.SceneChanged, Data: id})
	return nil
}

// Remove удаляет сцену. Если она текущая, текущей сцены больше нет.
func (sm *SceneManager) Remove(id SceneID) error {
	scene, ok := sm.scenes[id]
	if !ok {
		return fmt.Errorf("%s: %w", id, ErrSceneNotFound)
	}
	if sm.current == scene && sm.currentID == id {
		sm.current = nil
	}
	scene.OnDestroy()
	delete(sm.scenes, id)
	return nil
}

// Current возвращает id текущей сцены.
func (sm *SceneManager) Current() (SceneID, bool) {
	return sm.currentID, sm.current != nil
}

// Update обновляет текущую сцену
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущую сцену
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

func (sm *SceneManager) HandleInput(deltaTime float64) {
	if sm.current != nil {
		sm.current.HandleInput(deltaTime)
	}
}

func (sm *SceneManager) ids() []SceneID {
	ids := make([]SceneID, 0, len(sm.scenes))
	for id := range sm.scenes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Destroy вызывает OnDestroy у всех сцен по возрастанию id.
func (sm *SceneManager) Destroy() {
	sm.current = nil
	for _, id := range sm.ids() {
		sm.scenes[id].OnDestroy()
		delete(sm.scenes, id)
	}
}

// PrintStates пишет в лог все зарегистрированные сцены.
func (sm *SceneManager) PrintStates() {
	for _, id := range sm.ids() {
		logger.Value("Scene", id, logger.Info)
	}
}
