// internal/defs/types.go
package defs

import (
	"image/color"
	"time"

	"go-tankr/internal/config"
)

// TankDefinition описывает параметры танка.
type TankDefinition struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Speed           float64 `json:"speed"`
	RotateSpeed     float64 `json:"rotate_speed"`
	MaxHealth       int     `json:"max_health"`
	Radius          float64 `json:"radius"`
	ReloadMs        int     `json:"reload_ms"`
	BulletDamage    int     `json:"bullet_damage"`
	TurretLength    float64 `json:"turret_length"`
	ProjectileSpeed float64 `json:"projectile_speed"`
	PoolCapacity    int     `json:"pool_capacity"`
	JumpImpulse     float64 `json:"jump_impulse"`
	Visuals         Visuals `json:"visuals"`
}

// Visuals — цвета корпуса и ствола
type Visuals struct {
	Body   [4]uint8 `json:"body"`
	Turret [4]uint8 `json:"turret"`
}

// Reload переводит reload_ms в time.Duration
func (d TankDefinition) Reload() time.Duration {
	return time.Duration(d.ReloadMs) * time.Millisecond
}

func (d TankDefinition) BodyColor() color.RGBA {
	return color.RGBA{d.Visuals.Body[0], d.Visuals.Body[1], d.Visuals.Body[2], d.Visuals.Body[3]}
}

func (d TankDefinition) TurretColor() color.RGBA {
	return color.RGBA{d.Visuals.Turret[0], d.Visuals.Turret[1], d.Visuals.Turret[2], d.Visuals.Turret[3]}
}

func rgba(c color.RGBA) [4]uint8 {
	return [4]uint8{c.R, c.G, c.B, c.A}
}

// DefaultTank — танк игрока со значениями из config.
func DefaultTank() TankDefinition {
	return TankDefinition{
		ID:              "TANK_BLUE",
		Name:            config.PlayerName,
		Speed:           config.TankSpeed,
		RotateSpeed:     config.TankRotateSpeed,
		MaxHealth:       config.TankMaxHealth,
		Radius:          config.TankRadius,
		ReloadMs:        int(config.TankReloadInterval / time.Millisecond),
		BulletDamage:    config.TankBulletDamage,
		TurretLength:    config.TurretLength,
		ProjectileSpeed: config.ProjectileSpeed,
		PoolCapacity:    config.ProjectilePoolCapacity,
		JumpImpulse:     config.JumpImpulse,
		Visuals: Visuals{
			Body:   rgba(config.PlayerBodyColor),
			Turret: rgba(config.PlayerTurretColor),
		},
	}
}

// TargetTank — неподвижная учебная мишень.
func TargetTank() TankDefinition {
	d := DefaultTank()
	d.ID = "TANK_TARGET"
	d.Name = config.TargetName
	d.Visuals = Visuals{
		Body:   rgba(config.TargetBodyColor),
		Turret: rgba(config.TargetTurretColor),
	}
	return d
}

// withDefaults заполняет нулевые поля значениями DefaultTank.
func (d TankDefinition) withDefaults() TankDefinition {
	base := DefaultTank()
	if d.Name == "" {
		d.Name = d.ID
	}
	if d.Speed == 0 {
		d.Speed = base.Speed
	}
	if d.RotateSpeed == 0 {
		d.RotateSpeed = base.RotateSpeed
	}
	if d.MaxHealth == 0 {
		d.MaxHealth = base.MaxHealth
	}
	if d.Radius == 0 {
		d.Radius = base.Radius
	}
	if d.ReloadMs == 0 {
		d.ReloadMs = base.ReloadMs
	}
	if d.BulletDamage == 0 {
		d.BulletDamage = base.BulletDamage
	}
	if d.TurretLength == 0 {
		d.TurretLength = base.TurretLength
	}
	if d.ProjectileSpeed == 0 {
		d.ProjectileSpeed = base.ProjectileSpeed
	}
	if d.PoolCapacity == 0 {
		d.PoolCapacity = base.PoolCapacity
	}
	if d.JumpImpulse == 0 {
		d.JumpImpulse = base.JumpImpulse
	}
	if d.Visuals == (Visuals{}) {
		d.Visuals = base.Visuals
	}
	return d
}
