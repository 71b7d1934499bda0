// internal/event/types.go
package event

const (
	EnemyDestroyed EventType = "EnemyDestroyed" // Враг уничтожен
	SpaceshipHit   EventType = "SpaceshipHit"   // Корабль получил снаряд
	PlayerShot     EventType = "PlayerShot"
	EnemyShot      EventType = "EnemyShot"
	LevelCleared   EventType = "LevelCleared" // Все враги уровня уничтожены
	LivesDepleted  EventType = "LivesDepleted"
	SceneChanged   EventType = "SceneChanged" // Data: id новой сцены
)
