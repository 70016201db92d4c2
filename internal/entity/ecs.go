// internal/entity/ecs.go
package entity

import (
	"go-tankr/internal/component"
	"go-tankr/internal/types"
)

type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	Bodies        map[types.EntityID]*component.Body
	Healths       map[types.EntityID]*component.Health
	Turrets       map[types.EntityID]*component.Turret
	FireControls  map[types.EntityID]*component.FireControl
	Tanks         map[types.EntityID]*component.TankState
	Renderables   map[types.EntityID]*component.Renderable
	Projectiles   map[types.EntityID]*ProjectilePool // пул снарядов каждого танка
	DamageFlashes map[types.EntityID]*component.DamageFlash
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Bodies:        make(map[types.EntityID]*component.Body),
		Healths:       make(map[types.EntityID]*component.Health),
		Turrets:       make(map[types.EntityID]*component.Turret),
		FireControls:  make(map[types.EntityID]*component.FireControl),
		Tanks:         make(map[types.EntityID]*component.TankState),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Projectiles:   make(map[types.EntityID]*ProjectilePool),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности. Пул снарядов
// остаётся, чтобы уже выпущенные снаряды долетели.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Bodies, id)
	delete(ecs.Healths, id)
	delete(ecs.Turrets, id)
	delete(ecs.FireControls, id)
	delete(ecs.Tanks, id)
	delete(ecs.Renderables, id)
	delete(ecs.DamageFlashes, id)
}
