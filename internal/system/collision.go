package system

import (
	"math"

	"go-tankr/internal/component"
	"go-tankr/internal/entity"
	"go-tankr/internal/types"
)

// CollisionSystem проверяет попадания снарядов в танки.
// Урон наносится через onHit, сам снаряд возвращается в пул.
type CollisionSystem struct {
	ecs              *entity.ECS
	projectileRadius float64
	onHit            func(target types.EntityID, damage int)
}

func NewCollisionSystem(ecs *entity.ECS, projectileRadius float64, onHit func(target types.EntityID, damage int)) *CollisionSystem {
	return &CollisionSystem{
		ecs:              ecs,
		projectileRadius: projectileRadius,
		onHit:            onHit,
	}
}

func (s *CollisionSystem) Update() {
	for _, pool := range s.ecs.Projectiles {
		pool.ForEachActive(func(id types.SlotID, proj *component.Projectile) {
			if target, ok := s.findHit(pool.Owner(), proj); ok {
				pool.Deactivate(id)
				s.onHit(target, proj.Damage)
			}
		})
	}
}

func (s *CollisionSystem) findHit(owner types.EntityID, proj *component.Projectile) (types.EntityID, bool) {
	for id, body := range s.ecs.Bodies {
		// Свои снаряды не попадают
		if id == owner {
			continue
		}
		if tank, ok := s.ecs.Tanks[id]; ok && tank.State == component.Dead {
			continue
		}
		if math.Hypot(proj.X-body.X, proj.Y-body.Y) <= body.Radius+s.projectileRadius {
			return id, true
		}
	}
	return 0, false
}
