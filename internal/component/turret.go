// internal/component/turret.go
package component

// Turret отвечает за ствол танка.
type Turret struct {
	// Bearing - угол ствола в градусах, пересчитывается каждый кадр.
	Bearing float64
	// Length - длина ствола от точки крепления до дула.
	Length float64
	// Visible - false после уничтожения танка.
	Visible bool
}
