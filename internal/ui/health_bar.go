// internal/ui/health_bar.go
package ui

import (
	"image/color"

	"go-tankr/internal/camera"
	"go-tankr/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HealthSource — то, чьё здоровье показывает полоса
type HealthSource interface {
	Position() (float64, float64)
	Health() (int, int)
}

// HealthBar — полоса здоровья над танком.
type HealthBar struct {
	target HealthSource
	color  color.RGBA

	X, Y  float64 // левый верхний угол в мировых координатах
	Ratio float64
	Alive bool
}

// NewHealthBar создает полосу здоровья для target.
func NewHealthBar(target HealthSource, c color.RGBA) *HealthBar {
	b := &HealthBar{target: target, color: c, Alive: true}
	b.Update()
	return b
}

// Update пересчитывает положение и заполнение.
func (b *HealthBar) Update() {
	if !b.Alive {
		return
	}
	x, y := b.target.Position()
	b.X = x - config.HealthBarWidth/2
	b.Y = y - config.HealthBarOffsetY
	value, max := b.target.Health()
	b.Ratio = 0
	if max > 0 {
		b.Ratio = float64(value) / float64(max)
	}
	if b.Ratio > 1 {
		b.Ratio = 1
	} else if b.Ratio < 0 {
		b.Ratio = 0
	}
}

func (b *HealthBar) Kill() {
	b.Alive = false
}

// FillColor: при низком здоровье полоса краснеет
func (b *HealthBar) FillColor() color.RGBA {
	if b.Ratio <= config.HealthBarLowFrac {
		return config.HealthBarLowColor
	}
	return b.color
}

func (b *HealthBar) Draw(screen *ebiten.Image, cam *camera.Camera) {
	if !b.Alive {
		return
	}
	sx, sy := cam.WorldToScreen(b.X, b.Y)
	x, y := float32(sx), float32(sy)
	vector.DrawFilledRect(screen, x, y, config.HealthBarWidth, config.HealthBarHeight, config.HealthBarBackColor, true)
	if w := float32(config.HealthBarWidth * b.Ratio); w > 0 {
		vector.DrawFilledRect(screen, x, y, w, config.HealthBarHeight, b.FillColor(), true)
	}
	vector.StrokeRect(screen, x, y, config.HealthBarWidth, config.HealthBarHeight, 1, config.StrokeColor, true)
}
