// internal/component/projectile.go
package component

import (
	"farm-flies/internal/types"
	"farm-flies/pkg/geom"
)

// Owner — чей это снаряд.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	Position  geom.Vector2f
	Direction geom.Vector2f
	Speed     float64
	Size      geom.Vector2f
	Owner     Owner
	Shooter   types.EntityID // враг, выпустивший снаряд; 0 у снарядов игрока
	Active    bool
	Sprite    string
}

// NewProjectile создаёт активный снаряд. Размер уже с учётом масштаба спрайта.
func NewProjectile(sprite string, pos, dir, size geom.Vector2f, speed float64, owner Owner) *Projectile {
	return &Projectile{
		Position:  pos,
		Direction: dir,
		Speed:     speed,
		Size:      size,
		Owner:     owner,
		Active:    true,
		Sprite:    sprite,
	}
}

func (p *Projectile) Bounds() geom.Rect {
	return geom.RectAt(p.Position, p.Size)
}
