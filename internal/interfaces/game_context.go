// internal/interfaces/game_context.go
package interfaces

import (
	"go-tankr/internal/event"
	"go-tankr/internal/types"
)

// TankContext — возможности мира, которые нужны танку.
// Танк не держит ссылок на движок, только этот интерфейс.
type TankContext interface {
	Dispatch(e event.Event)
	CenterCamera(x, y float64)
	RemoveTank(id types.EntityID)
}

// Overlay — элемент интерфейса, привязанный к танку (подпись, полоса здоровья).
type Overlay interface {
	Update()
	Kill()
}
