// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1920
	ScreenHeight = 1080
	WindowTitle  = "FARM FLIES"
	MaxDeltaTime = 0.06

	StartLives            = 3
	ScorePerEnemy         = 1
	BackgroundScrollSpeed = 300.0 // pixels per second

	EnemyAmplitude     = 50.0
	EnemyFrequency     = 2.0
	EnemyVerticalSpeed = 50.0
	EnemyBounceBottom  = 200.0
	EnemyBounceTop     = 0.0

	ShootMaxRoll      = 100
	ShootBaseRequired = 10
	ShootBaseCooldown = 1.0
	ShootMinCooldown  = 0.1
	ShootRetryDelay   = 0.01

	ProjectileSpeed = 300.0 // pixels per second
	ProjectileScale = 0.5
	ProjectileTopY  = -1.0

	IntroDuration    = 3.0
	GameOverDuration = 5.0

	HUDFontSize    = 24
	PauseFontSize  = 50
	TitleFontSize  = 72
	ButtonFontSize = 30
	CreditFontSize = 28
	CreditSpacing  = 60.0

	DefaultSettingsPath = "settings.json"
	DefaultDebugAddr    = "localhost:6060"
)

// Пути к ресурсам
const (
	AssetsDir        = "Assets"
	SpaceshipSprite  = "Assets/space_ship.png"
	PigSprite        = "Assets/pig.png"
	CowSprite        = "Assets/cow.png"
	BombSprite       = "Assets/Bomb.png"
	EggSprite        = "Assets/egg.png"
	BackgroundSprite = "Assets/background.png"
	CursorSprite     = "Assets/cursor.png"
	LevelMusic       = "Assets/yo-suzuki.mp3"
	GameOverMusic    = "Assets/game-over.mp3"
	FontA            = "Assets/Middle.ttf"
	FontB            = "Assets/HelpMe.otf"

	SoundPattern = "*.wav"
)

var (
	BackgroundColor  = color.RGBA{0, 0, 0, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextOutlineColor = color.RGBA{0, 0, 255, 255}
	ButtonColor      = color.RGBA{0, 255, 0, 255}
	ButtonHoverColor = color.RGBA{255, 255, 0, 255}
	BackButtonColor  = color.RGBA{70, 70, 70, 255}
	ButtonStroke     = color.RGBA{255, 255, 255, 255}
	PauseOverlay     = color.RGBA{0, 0, 0, 128}
	PlaceholderColor = color.RGBA{255, 0, 255, 255}
	StrokeWidth      = float32(2.0)
)
