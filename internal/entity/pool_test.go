package entity

import (
	"testing"

	"go-tankr/internal/component"
	"go-tankr/internal/types"
)

func TestAcquireFirstFit(t *testing.T) {
	pool := NewProjectilePool(1, 3)
	for want := 0; want < 3; want++ {
		id, ok := pool.Acquire()
		if !ok || id != types.SlotID(want) {
			t.Fatalf("expected slot %d, got %d (ok=%v)", want, id, ok)
		}
		pool.Reset(id, 0, 0, 1, 1, 1)
	}
	if id, ok := pool.Acquire(); ok || id != types.NoSlot {
		t.Errorf("expected exhausted pool, got slot %d", id)
	}

	// Освобождаем среднюю ячейку, она должна вернуться первой
	pool.Deactivate(1)
	if id, ok := pool.Acquire(); !ok || id != 1 {
		t.Errorf("expected slot 1 after deactivation, got %d", id)
	}
}

func TestResetOverwritesKinematics(t *testing.T) {
	pool := NewProjectilePool(7, 2)
	id, _ := pool.Acquire()
	pool.Reset(id, 10, 20, 30, 40, 2)
	p := pool.Get(id)
	if !p.Active {
		t.Fatal("slot should be active after Reset")
	}
	if p.X != 10 || p.Y != 20 || p.VX != 30 || p.VY != 40 || p.Damage != 2 {
		t.Errorf("unexpected slot state: %+v", *p)
	}
	if p.Owner != 7 {
		t.Errorf("expected owner 7, got %d", p.Owner)
	}
	if p.Style() != component.ProjectileHeavy {
		t.Error("damage 2 should use heavy style")
	}
}

func TestCapacityNeverChanges(t *testing.T) {
	pool := NewProjectilePool(1, 30)
	for i := 0; i < 100; i++ {
		if id, ok := pool.Acquire(); ok {
			pool.Reset(id, 0, 0, 0, 0, 1)
		}
	}
	if pool.Capacity() != 30 {
		t.Errorf("capacity changed to %d", pool.Capacity())
	}
	if pool.Active() != 30 {
		t.Errorf("expected 30 active, got %d", pool.Active())
	}
	pool.DeactivateAll()
	if pool.Active() != 0 {
		t.Errorf("expected 0 active after DeactivateAll, got %d", pool.Active())
	}
}

func TestForEachActiveSkipsInactive(t *testing.T) {
	pool := NewProjectilePool(1, 4)
	pool.Reset(0, 0, 0, 0, 0, 1)
	pool.Reset(2, 0, 0, 0, 0, 1)

	var seen []types.SlotID
	pool.ForEachActive(func(id types.SlotID, p *component.Projectile) {
		seen = append(seen, id)
		pool.Deactivate(id)
	})
	if len(seen) != 2 || seen[0] != 0 || seen[1] != 2 {
		t.Errorf("unexpected iteration order: %v", seen)
	}
	if pool.Active() != 0 {
		t.Errorf("deactivation inside ForEachActive not applied")
	}
}

func TestOutOfRangeIgnored(t *testing.T) {
	pool := NewProjectilePool(1, 1)
	pool.Reset(5, 1, 1, 1, 1, 1)
	pool.Deactivate(-1)
	if pool.Get(5) != nil || pool.Active() != 0 {
		t.Error("out of range slot ids must be ignored")
	}
}

func TestRemoveEntityKeepsPool(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Bodies[id] = &component.Body{}
	ecs.Projectiles[id] = NewProjectilePool(id, 2)
	ecs.RemoveEntity(id)
	if _, ok := ecs.Bodies[id]; ok {
		t.Error("body should be removed")
	}
	if _, ok := ecs.Projectiles[id]; !ok {
		t.Error("projectile pool should survive entity removal")
	}
}
