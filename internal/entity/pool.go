package entity

import (
	"go-tankr/internal/component"
	"go-tankr/internal/types"
)

// ProjectilePool — пул снарядов фиксированной ёмкости. Все ячейки
// создаются в конструкторе и потом только переиспользуются.
type ProjectilePool struct {
	owner types.EntityID
	slots []component.Projectile
}

// NewProjectilePool создаёт пул на capacity снарядов.
func NewProjectilePool(owner types.EntityID, capacity int) *ProjectilePool {
	if capacity < 0 {
		capacity = 0
	}
	slots := make([]component.Projectile, capacity)
	for i := range slots {
		slots[i].Slot = types.SlotID(i)
		slots[i].Owner = owner
	}
	return &ProjectilePool{owner: owner, slots: slots}
}

// Owner возвращает сущность, которой принадлежат снаряды.
func (p *ProjectilePool) Owner() types.EntityID {
	return p.owner
}

// Capacity возвращает ёмкость пула.
func (p *ProjectilePool) Capacity() int {
	return len(p.slots)
}

// Acquire возвращает первую неактивную ячейку по возрастанию индекса.
func (p *ProjectilePool) Acquire() (types.SlotID, bool) {
	for i := range p.slots {
		if !p.slots[i].Active {
			return types.SlotID(i), true
		}
	}
	return types.NoSlot, false
}

// Reset активирует ячейку и перезаписывает её кинематику.
func (p *ProjectilePool) Reset(id types.SlotID, x, y, vx, vy float64, damage int) {
	s := p.Get(id)
	if s == nil {
		return
	}
	s.Active = true
	s.X, s.Y = x, y
	s.VX, s.VY = vx, vy
	s.Damage = damage
	s.Age = 0
}

// Deactivate возвращает ячейку в пул.
func (p *ProjectilePool) Deactivate(id types.SlotID) {
	if s := p.Get(id); s != nil {
		s.Active = false
	}
}

// DeactivateAll гасит все снаряды пула.
func (p *ProjectilePool) DeactivateAll() {
	for i := range p.slots {
		p.slots[i].Active = false
	}
}

// Get возвращает ячейку по индексу или nil.
func (p *ProjectilePool) Get(id types.SlotID) *component.Projectile {
	if id < 0 || int(id) >= len(p.slots) {
		return nil
	}
	return &p.slots[id]
}

// Active считает активные снаряды.
func (p *ProjectilePool) Active() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Active {
			n++
		}
	}
	return n
}

// ForEachActive вызывает fn для каждого активного снаряда.
// fn может деактивировать переданную ячейку.
func (p *ProjectilePool) ForEachActive(fn func(id types.SlotID, proj *component.Projectile)) {
	for i := range p.slots {
		if p.slots[i].Active {
			fn(types.SlotID(i), &p.slots[i])
		}
	}
}
