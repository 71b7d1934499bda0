package input

import (
	"testing"

	"farm-flies/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyPressIsOneFrame(t *testing.T) {
	p := NewFakePoller()
	m := NewManager(p)

	m.Update()
	assert.False(t, m.IsKeyPress(Shoot))

	p.Buttons[ebiten.MouseButtonLeft] = true
	m.Update()
	assert.True(t, m.IsKeyPress(Shoot))
	assert.True(t, m.IsKeyDown(Shoot))

	m.Update()
	assert.False(t, m.IsKeyPress(Shoot), "held button is not a new press")
	assert.True(t, m.IsKeyDown(Shoot))

	p.Release()
	m.Update()
	assert.False(t, m.IsKeyDown(Shoot))

	p.Buttons[ebiten.MouseButtonLeft] = true
	m.Update()
	assert.True(t, m.IsKeyPress(Shoot))
}

func TestFlushConsumesPress(t *testing.T) {
	p := NewFakePoller()
	m := NewManager(p)

	p.Buttons[ebiten.MouseButtonLeft] = true
	m.Update()
	require.True(t, m.IsKeyPress(Shoot))

	m.Flush()
	assert.False(t, m.IsKeyPress(Shoot))
	assert.True(t, m.IsKeyDown(Shoot), "flush keeps the held state")

	p.Release()
	m.Update()
	p.Buttons[ebiten.MouseButtonLeft] = true
	m.Update()
	assert.True(t, m.IsKeyPress(Shoot))
}

func TestKeyBindings(t *testing.T) {
	tests := []struct {
		name  string
		press func(p *FakePoller)
		bind  KeyBind
	}{
		{"escape pauses", func(p *FakePoller) { p.Keys[ebiten.KeyEscape] = true }, Pause},
		{"enter confirms", func(p *FakePoller) { p.Keys[ebiten.KeyEnter] = true }, Confirm},
		{"space confirms", func(p *FakePoller) { p.Keys[ebiten.KeySpace] = true }, Confirm},
		{"right mouse", func(p *FakePoller) { p.Buttons[ebiten.MouseButtonRight] = true }, RightClick},
		{"left mouse shoots", func(p *FakePoller) { p.Buttons[ebiten.MouseButtonLeft] = true }, Shoot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewFakePoller()
			m := NewManager(p)
			tt.press(p)
			m.Update()
			for k := KeyBind(0); k < bindCount; k++ {
				assert.Equal(t, k == tt.bind, m.IsKeyDown(k), k.String())
			}
		})
	}
}

func TestCursorFollowsPoller(t *testing.T) {
	p := NewFakePoller()
	c := NewCursor(p, nil)

	p.X, p.Y = 120, 48
	assert.Equal(t, geom.Vector2i{}, c.Position())
	c.Update()
	assert.Equal(t, geom.Vec2(120, 48), c.Position())
	assert.Equal(t, geom.Vec2(120.0, 48.0), c.PositionF())
}
