// internal/component/visual.go
package component

// DamageFlash указывает, что танк должен быть отрисован цветом урона.
type DamageFlash struct {
	Timer    float64 // Сколько времени эффекту осталось
	Duration float64 // Общая продолжительность эффекта
}

// Intensity убывает от 1 в момент попадания до 0 к концу эффекта
func (f *DamageFlash) Intensity() float64 {
	if f.Duration <= 0 || f.Timer <= 0 {
		return 0
	}
	return f.Timer / f.Duration
}
