// internal/component/player.go
package component

// LifeState — состояние танка
type LifeState int

const (
	Alive LifeState = iota
	Dead
)

// TankState хранит имя танка и его жизненный цикл.
type TankState struct {
	Name    string
	State   LifeState
	Removed bool // Terminate уже вызывался
}
