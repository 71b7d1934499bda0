package system

import (
	"testing"

	"farm-flies/internal/component"
	"farm-flies/internal/config"
	"farm-flies/internal/defs"
	"farm-flies/internal/entity"
	"farm-flies/internal/event"
	"farm-flies/internal/input"
	"farm-flies/internal/types"
	"farm-flies/internal/utils"
	"farm-flies/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sizer = FixedSizer(geom.Vec2(40.0, 40.0))

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newDispatcher(r *recorder) *event.Dispatcher {
	d := event.NewDispatcher()
	d.SubscribeAll(r, event.EnemyDestroyed, event.SpaceshipHit, event.PlayerShot, event.EnemyShot)
	return d
}

func level(count, cols int) defs.LevelDefinition {
	return defs.LevelDefinition{
		Number:           1,
		EnemySprite:      "pig.png",
		ProjectileSprite: "egg.png",
		Difficulty:       component.VeryEasy,
		Count:            count,
		Columns:          cols,
		Rows:             1,
		SpacingX:         130,
		SpacingY:         150,
	}
}

func TestSpawnGrid(t *testing.T) {
	w := entity.NewWorld()
	s := NewSpawnSystem(w, sizer, utils.NewRandomGenerator(1))

	n := s.SpawnGrid(level(45, 15))
	require.Equal(t, 45, n)

	ids := w.EnemyIDs()
	first, _ := w.Enemies.Get(ids[0])
	last, _ := w.Enemies.Get(ids[44])
	sixteenth, _ := w.Enemies.Get(ids[15])

	assert.Equal(t, geom.Vec2(0.0, 0.0), first.Position)
	assert.Equal(t, geom.Vec2(0.0, 150.0), sixteenth.Position)
	assert.Equal(t, geom.Vec2(14*130.0, 2*150.0), last.Position)
	assert.Equal(t, geom.Vec2(40.0, 40.0), first.Size)
	for _, id := range ids {
		e, _ := w.Enemies.Get(id)
		assert.GreaterOrEqual(t, e.ShootCooldown, 0.0)
		assert.Less(t, e.ShootCooldown, 1.0)
		assert.Equal(t, -1.0, e.VerticalDirection)
	}
}

func TestSpawnGridPartialRow(t *testing.T) {
	w := entity.NewWorld()
	s := NewSpawnSystem(w, sizer, utils.NewRandomGenerator(1))

	assert.Equal(t, 7, s.SpawnGrid(level(7, 3)))
	ids := w.EnemyIDs()
	last, _ := w.Enemies.Get(ids[6])
	assert.Equal(t, geom.Vec2(0.0, 300.0), last.Position, "rows = ceil(7/3) = 3")
}

func TestSpawnGridRejectsInvalid(t *testing.T) {
	w := entity.NewWorld()
	s := NewSpawnSystem(w, sizer, utils.NewRandomGenerator(1))

	bad := []defs.LevelDefinition{level(0, 3), level(5, 0), level(5, 3)}
	bad[2].SpacingY = 0
	for _, def := range bad {
		assert.Zero(t, s.SpawnGrid(def))
	}
	assert.Zero(t, w.Enemies.Len())
}

func TestMovementSineAndBounce(t *testing.T) {
	w := entity.NewWorld()
	e := component.NewEnemy("pig.png", "egg.png", geom.Vec2(10.0, 10.0), component.Normal, 1)
	e.Position = geom.Vec2(100.0, 100.0)
	w.AddEnemy(e)
	m := NewMovementSystem(w)

	m.Update(0.1)
	assert.InDelta(t, 100.0-5.0, e.Position.Y, 1e-9)
	assert.InDelta(t, 100.0+50*0.1*0.19866933079506122, e.Position.X, 1e-9)
	assert.Equal(t, 0.1, e.TimeElapsed)

	e.Position.Y = 0.5
	m.Update(0.1)
	assert.Equal(t, 1.0, e.VerticalDirection, "bounces at the top")

	e.Position.Y = 205
	m.Update(0.01)
	assert.Equal(t, -1.0, e.VerticalDirection, "bounces at the bottom")
}

func TestMovementSkipsDead(t *testing.T) {
	w := entity.NewWorld()
	e := &component.Enemy{Position: geom.Vec2(5.0, 5.0), VerticalDirection: -1}
	w.AddEnemy(e)
	NewMovementSystem(w).Update(1)
	assert.Equal(t, geom.Vec2(5.0, 5.0), e.Position)
}

func TestShootingWaitsForCooldown(t *testing.T) {
	w := entity.NewWorld()
	r := &recorder{}
	e := component.NewEnemy("cow.png", "egg.png", geom.Vec2(10.0, 10.0), component.Normal, 0.5)
	w.AddEnemy(e)
	s := NewShootingSystem(w, sizer, utils.NewRandomGenerator(3), newDispatcher(r))

	s.Update(0.2)
	assert.InDelta(t, 0.3, e.ShootCooldown, 1e-9)
	assert.Zero(t, w.Projectiles.Len())
}

func TestShootingEventuallyFires(t *testing.T) {
	w := entity.NewWorld()
	r := &recorder{}
	e := component.NewEnemy("cow.png", "egg.png", geom.Vec2(10.0, 10.0), component.Insane, 0)
	e.Position = geom.Vec2(300.0, 120.0)
	w.AddEnemy(e)
	s := NewShootingSystem(w, sizer, utils.NewRandomGenerator(11), newDispatcher(r))

	for i := 0; i < 1000 && w.Projectiles.Len() == 0; i++ {
		s.Update(0.016)
	}
	require.Equal(t, 1, w.Projectiles.Len())
	assert.Equal(t, 1, r.count(event.EnemyShot))

	p, _ := w.Projectiles.Get(w.ProjectileIDs()[0])
	assert.Equal(t, component.OwnerEnemy, p.Owner)
	assert.Equal(t, geom.Vec2(0.0, 1.0), p.Direction)
	assert.Equal(t, geom.Vec2(300.0, 120.0), p.Position)
	assert.Equal(t, geom.Vec2(20.0, 20.0), p.Size, "projectiles are drawn at half scale")
	assert.InDelta(t, 0.4, e.ShootCooldown, 1e-9)
}

func TestShootingFailedRollRetriesNextFrame(t *testing.T) {
	w := entity.NewWorld()
	e := component.NewEnemy("cow.png", "egg.png", geom.Vec2(10.0, 10.0), component.VeryEasy, 0)
	w.AddEnemy(e)
	s := NewShootingSystem(w, sizer, utils.NewRandomGenerator(5), nil)

	for i := 0; i < 50; i++ {
		s.Update(0.016)
		if w.Projectiles.Len() == 0 {
			assert.LessOrEqual(t, e.ShootCooldown, 0.0)
		} else {
			return
		}
	}
}

func TestTryShootWithRandomCooldown(t *testing.T) {
	rng := utils.NewRandomGenerator(2)
	cooldown := 0.5
	shots := 0
	shoot := func() { shots++ }

	always := component.ShootingParams{MaxRoll: 10, RequiredRoll: 10, Cooldown: 2}
	assert.False(t, TryShootWithRandomCooldown(rng, &cooldown, 0.1, always, shoot))
	assert.InDelta(t, 0.4, cooldown, 1e-9)

	assert.True(t, TryShootWithRandomCooldown(rng, &cooldown, 0.5, always, shoot))
	assert.Equal(t, 2.0, cooldown)
	assert.Equal(t, 1, shots)

	never := component.ShootingParams{MaxRoll: 100, RequiredRoll: 0, Cooldown: 2}
	cooldown = 0
	assert.False(t, TryShootWithRandomCooldown(rng, &cooldown, 0.1, never, shoot))
	assert.Equal(t, config.ShootRetryDelay, cooldown)
}

func TestProjectileMovesTwicePerFrame(t *testing.T) {
	w := entity.NewWorld()
	p := component.NewProjectile("bomb.png", geom.Vec2(0.0, 500.0), geom.Vec2(0.0, -1.0), geom.Vec2(5.0, 5.0), 300, component.OwnerPlayer)
	w.AddProjectile(p)
	NewProjectileSystem(w).Update(0.1)

	assert.InDelta(t, 440.0, p.Position.Y, 1e-9)
	assert.True(t, p.Active)
}

func TestProjectileLeavesScreen(t *testing.T) {
	w := entity.NewWorld()
	up := component.NewProjectile("bomb.png", geom.Vec2(0.0, 5.0), geom.Vec2(0.0, -1.0), geom.Vec2(5.0, 5.0), 300, component.OwnerPlayer)
	down := component.NewProjectile("egg.png", geom.Vec2(0.0, 1075.0), geom.Vec2(0.0, 1.0), geom.Vec2(5.0, 5.0), 300, component.OwnerEnemy)
	stays := component.NewProjectile("egg.png", geom.Vec2(0.0, 500.0), geom.Vec2(0.0, 1.0), geom.Vec2(5.0, 5.0), 300, component.OwnerEnemy)
	w.AddProjectile(up)
	w.AddProjectile(down)
	w.AddProjectile(stays)

	NewProjectileSystem(w).Update(0.05)
	assert.False(t, up.Active)
	assert.False(t, down.Active)
	assert.Equal(t, 1, w.Projectiles.Len())
}

func TestCheckEnemyCollisionOneEnemyPerProjectile(t *testing.T) {
	w := entity.NewWorld()
	r := &recorder{}
	c := NewCollisionSystem(w, newDispatcher(r))

	a := &component.Enemy{Position: geom.Vec2(0.0, 0.0), Size: geom.Vec2(50.0, 50.0), Alive: true}
	b := &component.Enemy{Position: geom.Vec2(10.0, 10.0), Size: geom.Vec2(50.0, 50.0), Alive: true}
	far := &component.Enemy{Position: geom.Vec2(900.0, 0.0), Size: geom.Vec2(50.0, 50.0), Alive: true}
	aid := w.AddEnemy(a)
	w.AddEnemy(b)
	w.AddEnemy(far)
	w.AddProjectile(component.NewProjectile("bomb.png", geom.Vec2(20.0, 20.0), geom.Vec2(0.0, -1.0), geom.Vec2(5.0, 5.0), 300, component.OwnerPlayer))
	// снаряд врага не убивает врагов
	w.AddProjectile(component.NewProjectile("egg.png", geom.Vec2(905.0, 5.0), geom.Vec2(0.0, 1.0), geom.Vec2(5.0, 5.0), 300, component.OwnerEnemy))

	assert.Equal(t, 1, c.CheckEnemyCollision())
	assert.False(t, a.Alive)
	assert.True(t, b.Alive)
	assert.True(t, far.Alive)
	assert.Equal(t, 2, w.Enemies.Len())
	assert.Equal(t, 1, w.Projectiles.Len())

	require.Equal(t, 1, r.count(event.EnemyDestroyed))
	assert.Equal(t, aid, r.events[0].Data.(HitData).Enemy)
}

func TestKilledEnemyTakesItsShotsAlong(t *testing.T) {
	w := entity.NewWorld()
	r := &recorder{}
	d := newDispatcher(r)
	w.Spaceship = component.NewSpaceship("ship.png", geom.Vec2(40.0, 40.0))
	w.Spaceship.CenterOn(geom.Vec2(500, 900))

	shooter := component.NewEnemy("cow.png", "egg.png", geom.Vec2(40.0, 40.0), component.VeryEasy, 0)
	shooter.Position = geom.Vec2(480.0, 0.0)
	sid := w.AddEnemy(shooter)
	other := component.NewEnemy("cow.png", "egg.png", geom.Vec2(40.0, 40.0), component.VeryEasy, 0)
	other.Position = geom.Vec2(1500.0, 0.0)
	oid := w.AddEnemy(other)

	shooting := NewShootingSystem(w, sizer, utils.NewRandomGenerator(3), d)
	shots := map[types.EntityID]int{}
	for i := 0; i < 1000 && (shots[sid] == 0 || shots[oid] == 0); i++ {
		shooting.Update(0.01)
		clear(shots)
		for _, id := range w.ProjectileIDs() {
			p, _ := w.Projectiles.Get(id)
			shots[p.Shooter]++
		}
	}
	require.NotZero(t, shots[sid])
	require.NotZero(t, shots[oid])

	w.AddProjectile(component.NewProjectile("bomb.png", shooter.Position, geom.Vec2(0.0, -1.0), geom.Vec2(5.0, 5.0), 300, component.OwnerPlayer))
	c := NewCollisionSystem(w, d)
	require.Equal(t, 1, c.CheckEnemyCollision())

	for _, id := range w.ProjectileIDs() {
		p, _ := w.Projectiles.Get(id)
		assert.Equal(t, oid, p.Shooter, "only the survivor's eggs remain")
	}
	assert.Equal(t, shots[oid], w.Projectiles.Len())

	// снаряды убитого врага больше не могут попасть в корабль
	projectiles := NewProjectileSystem(w)
	for i := 0; i < 200; i++ {
		projectiles.Update(0.01)
		assert.False(t, c.HasEnemyProjectileHitSpaceship())
	}
}

func TestSpaceshipHitAtMostOncePerFrame(t *testing.T) {
	w := entity.NewWorld()
	r := &recorder{}
	c := NewCollisionSystem(w, newDispatcher(r))
	w.Spaceship = component.NewSpaceship("ship.png", geom.Vec2(100.0, 100.0))
	w.Spaceship.Position = geom.Vec2(500.0, 800.0)

	first := component.NewProjectile("egg.png", geom.Vec2(510.0, 810.0), geom.Vec2(0.0, 1.0), geom.Vec2(5.0, 5.0), 300, component.OwnerEnemy)
	second := component.NewProjectile("egg.png", geom.Vec2(520.0, 820.0), geom.Vec2(0.0, 1.0), geom.Vec2(5.0, 5.0), 300, component.OwnerEnemy)
	own := component.NewProjectile("bomb.png", geom.Vec2(530.0, 830.0), geom.Vec2(0.0, -1.0), geom.Vec2(5.0, 5.0), 300, component.OwnerPlayer)
	w.AddProjectile(own)
	w.AddProjectile(first)
	w.AddProjectile(second)

	assert.True(t, c.HasEnemyProjectileHitSpaceship())
	assert.False(t, first.Active)
	assert.True(t, second.Active)
	assert.True(t, own.Active)

	assert.True(t, c.HasEnemyProjectileHitSpaceship())
	assert.False(t, c.HasEnemyProjectileHitSpaceship())
	assert.Equal(t, 2, r.count(event.SpaceshipHit))
}

func TestPlayerSystemFollowsCursorAndShoots(t *testing.T) {
	w := entity.NewWorld()
	w.Spaceship = component.NewSpaceship(config.SpaceshipSprite, geom.Vec2(100.0, 80.0))
	r := &recorder{}
	poller := input.NewFakePoller()
	in := input.NewManager(poller)
	cursor := input.NewCursor(poller, nil)
	s := NewPlayerSystem(w, in, cursor, sizer, newDispatcher(r))

	poller.X, poller.Y = 960, 900
	poller.Buttons[ebiten.MouseButtonLeft] = true
	cursor.Update()
	in.Update()
	s.Update(0.016)

	assert.Equal(t, geom.Vec2(910.0, 860.0), w.Spaceship.Position)
	require.Equal(t, 1, w.Projectiles.Len())
	p, _ := w.Projectiles.Get(w.ProjectileIDs()[0])
	assert.Equal(t, component.OwnerPlayer, p.Owner)
	assert.Equal(t, geom.Vec2(0.0, -1.0), p.Direction)
	assert.Equal(t, 1, r.count(event.PlayerShot))

	// удержание кнопки не стреляет повторно
	in.Update()
	s.Update(0.016)
	assert.Equal(t, 1, w.Projectiles.Len())
}

func TestBackgroundScroll(t *testing.T) {
	bg := component.NewScrollingBackground("bg.png", 1000, 300)
	s := NewBackgroundSystem(bg)

	s.Update(1)
	assert.Equal(t, 300.0, bg.FirstY)
	assert.Equal(t, -700.0, bg.SecondY)

	s.Update(2.5)
	// первая копия ушла за край и встала над второй
	assert.Equal(t, 50.0, bg.SecondY)
	assert.Equal(t, -950.0, bg.FirstY)
}
