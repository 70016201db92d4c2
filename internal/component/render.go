// component/render.go
package component

import "image/color"

// Renderable — компонент для отрисовки
type Renderable struct {
	BodyColor   color.RGBA
	TurretColor color.RGBA
	Idle        bool // танк стоит, рисуем кадр покоя
}
