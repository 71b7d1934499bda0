package audio

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"farm-flies/internal/event"
	"farm-flies/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.SetOutput(os.Stderr)
	logger.SetColor(false)
	os.Exit(m.Run())
}

func TestSoundKey(t *testing.T) {
	assert.Equal(t, "shipShooting", SoundKey("Assets/ship_shooting.wav"))
	assert.Equal(t, "cowDeath", SoundKey("cowDeath.wav"))
	assert.Equal(t, "spaceshipHit", SoundKey("sfx/spaceship_hit.wav"))
}

func TestLoadSoundOnce(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "boom.wav")
	require.NoError(t, os.WriteFile(file, []byte("RIFF"), 0o644))

	backend := &FakeBackend{}
	m := NewSoundManager(backend)
	require.NoError(t, m.LoadSound("boom", file))
	require.NoError(t, m.LoadSound("boom", file))

	assert.Len(t, backend.Players, 1)
	assert.True(t, m.Has("boom"))
}

func TestLoadSoundErrors(t *testing.T) {
	m := NewSoundManager(&FakeBackend{})
	assert.Error(t, m.LoadSound("missing", filepath.Join(t.TempDir(), "none.wav")))

	file := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	err := m.LoadSound("notes", file)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.False(t, m.Has("notes"))
}

func TestLoadDir(t *testing.T) {
	fsys := fstest.MapFS{
		"Assets/cowDeath.wav":          {Data: []byte("a")},
		"Assets/ship_shooting.wav":     {Data: []byte("b")},
		"Assets/sfx/spaceship_hit.wav": {Data: []byte("c")},
		"Assets/yo-suzuki.mp3":         {Data: []byte("d")},
		"Assets/cow.png":               {Data: []byte("e")},
	}
	m := NewSoundManager(&FakeBackend{})

	n, err := m.LoadDir(fsys, "**/*.wav")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	for _, name := range []string{SoundEnemyDeath, SoundPlayerShot, SoundSpaceshipHit} {
		assert.True(t, m.Has(name), name)
	}
	assert.False(t, m.Has("yoSuzuki"))

	n, err = m.LoadDir(fsys, "**/*.wav")
	require.NoError(t, err)
	assert.Zero(t, n, "already loaded sounds are skipped")

	_, err = m.LoadDir(fsys, "[")
	assert.Error(t, err)
}

func loadedManager(t *testing.T) (*SoundManager, *FakeBackend) {
	t.Helper()
	backend := &FakeBackend{}
	m := NewSoundManager(backend)
	_, err := m.LoadDir(fstest.MapFS{
		"cowDeath.wav":      {Data: []byte("a")},
		"ship_shooting.wav": {Data: []byte("b")},
		"spaceship_hit.wav": {Data: []byte("c")},
	}, "*.wav")
	require.NoError(t, err)
	return m, backend
}

func TestPlayAndStop(t *testing.T) {
	m, backend := loadedManager(t)
	m.PlaySound(SoundPlayerShot)

	var shot *FakePlayer
	for _, p := range backend.Players {
		if p.Playing {
			shot = p
		}
	}
	require.NotNil(t, shot)
	assert.Equal(t, 1, shot.Rewinds)

	m.StopSound(SoundPlayerShot)
	assert.False(t, shot.Playing)
	assert.Equal(t, 2, shot.Rewinds)

	assert.NotPanics(t, func() {
		m.PlaySound("moo")
		m.StopSound("moo")
	})
}

func TestSetVolumeClamps(t *testing.T) {
	m, backend := loadedManager(t)
	m.SetVolume(3)
	assert.Equal(t, 1.0, m.Volume())
	m.SetVolume(-1)
	for _, p := range backend.Players {
		assert.Equal(t, 0.0, p.Vol)
	}
}

func TestEventsPlaySounds(t *testing.T) {
	m, backend := loadedManager(t)
	d := event.NewDispatcher()
	m.Subscribe(d)

	d.Dispatch(event.Event{Type: event.EnemyDestroyed})
	d.Dispatch(event.Event{Type: event.SpaceshipHit})
	d.Dispatch(event.Event{Type: event.LevelCleared})

	plays := 0
	for _, p := range backend.Players {
		plays += p.Plays
	}
	assert.Equal(t, 2, plays)
}

func TestMusicPlayer(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "theme.mp3")
	require.NoError(t, os.WriteFile(file, []byte("ID3"), 0o644))

	backend := &FakeBackend{}
	music := NewMusicPlayer(backend)
	require.NoError(t, music.Load("theme", file))
	assert.Error(t, music.Load("other", filepath.Join(dir, "missing.mp3")))

	music.Play("theme", true)
	require.Len(t, backend.Players, 1)
	assert.True(t, backend.Players[0].Loop)
	assert.True(t, music.IsPlaying("theme"))

	music.Stop("theme")
	assert.False(t, music.IsPlaying("theme"))

	// смена режима пересоздаёт проигрыватель
	music.Play("theme", false)
	require.Len(t, backend.Players, 2)
	assert.True(t, backend.Players[0].Closed)
	assert.False(t, backend.Players[1].Loop)

	music.SetVolume(0.4)
	assert.Equal(t, 0.4, backend.Players[1].Vol)

	music.StopAll()
	assert.False(t, music.IsPlaying("theme"))

	music.Play("unknown", true)
	assert.Len(t, backend.Players, 2)
}
