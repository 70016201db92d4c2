// internal/system/render.go
package system

import (
	"image/color"

	"go-tankr/internal/camera"
	"go-tankr/internal/component"
	"go-tankr/internal/config"
	"go-tankr/internal/entity"
	"go-tankr/internal/types"
	"go-tankr/internal/utils"
	"go-tankr/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const gridStep = 100

// RenderSystem рисует мир, танки и снаряды
type RenderSystem struct {
	ecs    *entity.ECS
	bounds Bounds
}

func NewRenderSystem(ecs *entity.ECS, bounds Bounds) *RenderSystem {
	return &RenderSystem{ecs: ecs, bounds: bounds}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, cam *camera.Camera) {
	screen.Fill(config.BackgroundColor)
	s.drawGrid(screen, cam)

	for id, body := range s.ecs.Bodies {
		look, ok := s.ecs.Renderables[id]
		if !ok {
			continue
		}
		x, y := cam.WorldToScreen(body.X, body.Y)
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(body.Radius)+2, config.StrokeColor, true)
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(body.Radius), s.bodyColor(id, look), true)

		// Гусеница показывает направление корпуса; в покое рисуем её тоньше
		fx, fy := utils.PointFromAngle(x, y, body.Radius, body.Angle-90)
		width := float32(4)
		if look.Idle {
			width = 2
		}
		vector.StrokeLine(screen, float32(x), float32(y), float32(fx), float32(fy), width, config.StrokeColor, true)

		if turret, ok := s.ecs.Turrets[id]; ok && turret.Visible {
			tx, ty := utils.PointFromAngle(x, y, turret.Length, turret.Bearing+90)
			vector.StrokeLine(screen, float32(x), float32(y), float32(tx), float32(ty), config.TurretWidth, look.TurretColor, true)
		}
	}

	for _, pool := range s.ecs.Projectiles {
		pool.ForEachActive(func(_ types.SlotID, proj *component.Projectile) {
			x, y := cam.WorldToScreen(proj.X, proj.Y)
			radius, clr := float32(config.ProjectileRadius), config.ProjectileColor
			if proj.Style() == component.ProjectileHeavy {
				radius, clr = config.HeavyProjectileRadius, config.HeavyProjectileCol
			}
			vector.DrawFilledCircle(screen, float32(x), float32(y), radius, clr, true)
		})
	}
}

// bodyColor учитывает вспышку урона и затемняет уничтоженный танк
func (s *RenderSystem) bodyColor(id types.EntityID, look *component.Renderable) color.RGBA {
	c := look.BodyColor
	if st, ok := s.ecs.Tanks[id]; ok && st.State == component.Dead {
		c = render.DarkenColor(c)
	}
	if flash, ok := s.ecs.DamageFlashes[id]; ok {
		c = render.LerpColor(c, config.DamageFlashColor, flash.Intensity())
	}
	return c
}

func (s *RenderSystem) drawGrid(screen *ebiten.Image, cam *camera.Camera) {
	for gx := s.bounds.MinX; gx <= s.bounds.MaxX; gx += gridStep {
		x0, y0 := cam.WorldToScreen(gx, s.bounds.MinY)
		x1, y1 := cam.WorldToScreen(gx, s.bounds.MaxY)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, config.GridColor, false)
	}
	for gy := s.bounds.MinY; gy <= s.bounds.MaxY; gy += gridStep {
		x0, y0 := cam.WorldToScreen(s.bounds.MinX, gy)
		x1, y1 := cam.WorldToScreen(s.bounds.MaxX, gy)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, config.GridColor, false)
	}
	x, y := cam.WorldToScreen(s.bounds.MinX, s.bounds.MinY)
	w, h := s.bounds.MaxX-s.bounds.MinX, s.bounds.MaxY-s.bounds.MinY
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), float32(config.StrokeWidth), config.BoundsColor, true)
}
