// component/movement.go
package component

// Body — кинематика танка. Angle в градусах, [0, 360).
type Body struct {
	X, Y            float64
	Angle           float64
	VX, VY          float64
	AngularVelocity float64 // градусов в секунду
	Radius          float64
	TouchingDown    bool // стоит на нижней границе мира
}

// Stop обнуляет линейную и угловую скорость.
func (b *Body) Stop() {
	b.VX, b.VY = 0, 0
	b.AngularVelocity = 0
}
