// internal/types/types.go
package types

// EntityID — идентификатор сущности в ECS
type EntityID uint32

// SlotID — индекс ячейки в пуле снарядов
type SlotID int

// NoSlot означает, что свободной ячейки нет
const NoSlot SlotID = -1
