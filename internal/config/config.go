// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	WorldWidth   = 2400
	WorldHeight  = 1800
	MaxDeltaTime = 0.06
	LogLevel     = "info"

	// Танк
	TankSpeed          = 350.0 // единиц в секунду
	TankRotateSpeed    = 90.0  // градусов в секунду
	TankMaxHealth      = 100
	TankRadius         = 24.0
	TankBulletDamage   = 1
	TankReloadInterval = 200 * time.Millisecond
	TurretLength       = 40.0 // длина ствола, от точки крепления до дула
	TurretWidth        = 8.0
	JumpImpulse        = 350.0
	TankStartX         = 100.0

	// Снаряды
	ProjectilePoolCapacity = 30
	ProjectileSpeed        = 500.0 // pixels per second
	ProjectileRadius       = 5.0
	HeavyProjectileRadius  = 7.0
	ProjectileLifetime     = 0 // без ограничения по времени

	// Оверлеи
	CaptionOffsetY   = 44
	HealthBarWidth   = 48
	HealthBarHeight  = 6
	HealthBarOffsetY = 36
	HealthBarLowFrac = 0.3

	DamageFlashDuration = 0.15 // секунды

	// Индикатор перезарядки в углу экрана
	ReloadIndicatorX      = 40
	ReloadIndicatorY      = ScreenHeight - 40
	ReloadIndicatorRadius = 16

	// Учебная мишень
	TargetOffsetX = 420.0
	TargetName    = "Target"
	PlayerName    = "Player 1"
)

// Features — флаги возможностей, которые включаются отдельно от основной логики
type Features struct {
	// JumpOnDown включает прыжок при нажатии "вниз", если танк стоит на нижней границе
	JumpOnDown bool
	// ProjectileLifetime ограничивает время жизни снаряда, 0 отключает
	ProjectileLifetime time.Duration
}

// DefaultFeatures возвращает флаги по умолчанию.
func DefaultFeatures() Features {
	return Features{
		JumpOnDown:         false,
		ProjectileLifetime: ProjectileLifetime,
	}
}

var (
	BackgroundColor    = color.RGBA{20, 20, 30, 255}
	GridColor          = color.RGBA{40, 45, 60, 255}
	BoundsColor        = color.RGBA{150, 70, 70, 220}
	PlayerBodyColor    = color.RGBA{50, 100, 255, 255}
	PlayerTurretColor  = color.RGBA{19, 101, 114, 255}
	TargetBodyColor    = color.RGBA{180, 50, 50, 255}
	TargetTurretColor  = color.RGBA{120, 30, 30, 255}
	ProjectileColor    = color.RGBA{120, 180, 255, 255}
	HeavyProjectileCol = color.RGBA{50, 100, 255, 255}
	HealthBarColor     = color.RGBA{19, 101, 114, 255} // #136572
	HealthBarLowColor  = color.RGBA{220, 60, 60, 255}
	HealthBarBackColor = color.RGBA{0, 0, 0, 180}
	TextLightColor     = color.RGBA{240, 240, 240, 255}
	StrokeColor        = color.RGBA{255, 255, 255, 255}
	DamageFlashColor   = color.RGBA{255, 255, 255, 255}
	ReloadReadyColor   = color.RGBA{80, 200, 120, 255}
	ReloadCoolingColor = color.RGBA{200, 160, 60, 255}
	StrokeWidth        = 2.0
)
