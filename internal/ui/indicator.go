// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-tankr/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ReloadSource — то, чью перезарядку показывает индикатор
type ReloadSource interface {
	ReloadProgress(now time.Duration) float64
}

// ReloadIndicator — круглый индикатор перезарядки в углу экрана.
// После выстрела он коротко "вздрагивает".
type ReloadIndicator struct {
	X, Y     float32
	Radius   float32
	Progress float64

	source ReloadSource
	shotAt time.Duration
	now    time.Duration
}

func NewReloadIndicator(source ReloadSource, x, y, radius float32) *ReloadIndicator {
	return &ReloadIndicator{
		X:        x,
		Y:        y,
		Radius:   radius,
		Progress: 1,
		source:   source,
		shotAt:   -time.Hour,
	}
}

// Update снимает прогресс перезарядки на момент now
func (i *ReloadIndicator) Update(now time.Duration) {
	p := i.source.ReloadProgress(now)
	if p < i.Progress {
		i.shotAt = now
	}
	i.Progress = p
	i.now = now
}

// Scale возвращает текущий масштаб пульсации
func (i *ReloadIndicator) Scale() float64 {
	elapsed := (i.now - i.shotAt).Seconds()
	return 1.0 + 0.3*math.Exp(-elapsed*8)
}

// Color зависит от готовности к выстрелу
func (i *ReloadIndicator) Color() color.RGBA {
	if i.Progress >= 1 {
		return config.ReloadReadyColor
	}
	return config.ReloadCoolingColor
}

// Draw отрисовывает индикатор
func (i *ReloadIndicator) Draw(screen *ebiten.Image) {
	currentRadius := i.Radius * float32(i.Scale())
	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, config.HealthBarBackColor, true)
	if r := currentRadius * float32(i.Progress); r > 0 {
		vector.DrawFilledCircle(screen, i.X, i.Y, r, i.Color(), true)
	}
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1, config.StrokeColor, true)
}
