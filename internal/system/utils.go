// internal/system/utils.go
package system

import (
	"farm-flies/internal/component"
	"farm-flies/internal/config"
	"farm-flies/internal/entity"
	"farm-flies/internal/types"
	"farm-flies/internal/utils"
	"farm-flies/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteSizer отдаёт размер спрайта по пути к файлу.
type SpriteSizer interface {
	Size(path string) geom.Vector2f
}

// ImageSource отдаёт загруженную картинку по пути к файлу.
type ImageSource interface {
	Image(path string) *ebiten.Image
}

// FixedSizer — один размер для всех спрайтов.
type FixedSizer geom.Vector2f

func (s FixedSizer) Size(string) geom.Vector2f { return geom.Vector2f(s) }

// SpawnProjectile создаёт снаряд в точке pos. Снаряд рисуется в половинном масштабе.
func SpawnProjectile(world *entity.World, sizer SpriteSizer, sprite string, pos, dir geom.Vector2f, owner component.Owner) types.EntityID {
	size := sizer.Size(sprite).Scale(config.ProjectileScale)
	p := component.NewProjectile(sprite, pos, dir, size, config.ProjectileSpeed, owner)
	return world.AddProjectile(p)
}

// TryShootWithRandomCooldown уменьшает перезарядку и, когда она истекла,
// бросает кубик. При удаче вызывает shoot и ставит полную перезарядку,
// при неудаче пробует снова через короткую задержку.
func TryShootWithRandomCooldown(rng *utils.RandomGenerator, cooldown *float64, dt float64, params component.ShootingParams, shoot func()) bool {
	*cooldown -= dt
	if *cooldown > 0 {
		return false
	}
	if rng.Int(1, params.MaxRoll) <= params.RequiredRoll {
		shoot()
		*cooldown = params.Cooldown
		return true
	}
	*cooldown = config.ShootRetryDelay
	return false
}
