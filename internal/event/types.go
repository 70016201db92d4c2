// internal/event/types.go
package event

import "go-tankr/internal/types"

const (
	TankFired         EventType = "TankFired"         // Танк выстрелил, Data: TankFiredData
	TankDestroyed     EventType = "TankDestroyed"     // Здоровье упало до нуля, Data: types.EntityID
	TankRemoved       EventType = "TankRemoved"       // Танк убран из мира, Data: types.EntityID
	ProjectileExpired EventType = "ProjectileExpired" // Снаряд вылетел за границы или истёк, Data: ProjectileData
)

// TankFiredData — данные события выстрела
type TankFiredData struct {
	Tank types.EntityID
	Slot types.SlotID
}

// ProjectileData — данные события снаряда
type ProjectileData struct {
	Owner types.EntityID
	Slot  types.SlotID
}
