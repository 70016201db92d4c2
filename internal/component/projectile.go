// internal/component/projectile.go
package component

import (
	"go-tankr/internal/types"
	"time"
)

// ProjectileStyle — внешний вид снаряда
type ProjectileStyle int

const (
	ProjectileLight ProjectileStyle = iota
	ProjectileHeavy                 // урон 2 и выше
)

// Projectile — ячейка пула снарядов. Для неактивной ячейки
// позиция не определена.
type Projectile struct {
	Slot   types.SlotID
	Owner  types.EntityID
	Active bool
	X, Y   float64
	VX, VY float64
	Damage int
	Age    time.Duration
}

// Style выбирает вид снаряда по урону.
func (p *Projectile) Style() ProjectileStyle {
	if p.Damage >= 2 {
		return ProjectileHeavy
	}
	return ProjectileLight
}
