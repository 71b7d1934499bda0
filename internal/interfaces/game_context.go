// internal/interfaces/game_context.go
package interfaces

// GameContext — то, что сцены знают об игре в целом.
type GameContext interface {
	RequestQuit()
	Score() int
	ResetScore()
	HighScore() int
	// CommitHighScore сохраняет текущий счёт, если он больше рекорда.
	CommitHighScore() bool
}
