// internal/system/movement.go
package system

import (
	"go-tankr/internal/component"
	"go-tankr/internal/entity"
	"go-tankr/internal/utils"
)

// Bounds — прямоугольник игрового мира
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Contains проверяет, лежит ли точка внутри мира
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// MovementSystem применяет скорости танков и удерживает их в границах мира
type MovementSystem struct {
	ecs    *entity.ECS
	bounds Bounds
}

func NewMovementSystem(ecs *entity.ECS, bounds Bounds) *MovementSystem {
	return &MovementSystem{ecs: ecs, bounds: bounds}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, body := range s.ecs.Bodies {
		if tank, ok := s.ecs.Tanks[id]; ok && tank.State == component.Dead {
			continue
		}
		body.X += body.VX * deltaTime
		body.Y += body.VY * deltaTime
		body.Angle = utils.WrapDegrees(body.Angle + body.AngularVelocity*deltaTime)
		s.clamp(body)
	}
}

// clamp прижимает корпус к границам, как collideWorldBounds
func (s *MovementSystem) clamp(body *component.Body) {
	r := body.Radius
	body.X = utils.Clamp(body.X, s.bounds.MinX+r, s.bounds.MaxX-r)
	body.Y = utils.Clamp(body.Y, s.bounds.MinY+r, s.bounds.MaxY-r)
	body.TouchingDown = body.Y >= s.bounds.MaxY-r
}
