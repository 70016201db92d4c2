// internal/system/projectile.go
package system

import (
	"time"

	"go-tankr/internal/component"
	"go-tankr/internal/entity"
	"go-tankr/internal/event"
	"go-tankr/internal/types"
)

// ProjectileSystem двигает снаряды и гасит те, что вылетели за границы мира
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	bounds          Bounds
	lifetime        time.Duration // 0 без ограничения
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, bounds Bounds, lifetime time.Duration) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		bounds:          bounds,
		lifetime:        lifetime,
	}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	dt := time.Duration(deltaTime * float64(time.Second))
	for _, pool := range s.ecs.Projectiles {
		pool.ForEachActive(func(id types.SlotID, proj *component.Projectile) {
			proj.X += proj.VX * deltaTime
			proj.Y += proj.VY * deltaTime
			proj.Age += dt

			expired := s.lifetime > 0 && proj.Age >= s.lifetime
			if expired || !s.bounds.Contains(proj.X, proj.Y) {
				pool.Deactivate(id)
				s.eventDispatcher.Dispatch(event.Event{
					Type: event.ProjectileExpired,
					Data: event.ProjectileData{Owner: pool.Owner(), Slot: id},
				})
			}
		})
	}
}
