package component

import "time"

// Health — компонент здоровья
type Health struct {
	Value int
	Max   int
}

// FireControl — состояние перезарядки
type FireControl struct {
	LastFired      time.Duration // момент последнего выстрела
	HasFired       bool          // стрелял ли танк хотя бы раз
	ReloadInterval time.Duration
	Damage         int // урон, копируемый в снаряд при выстреле
}

// Ready сообщает, можно ли стрелять в момент now.
func (f *FireControl) Ready(now time.Duration) bool {
	return !f.HasFired || now-f.LastFired >= f.ReloadInterval
}

// CoolingUntil возвращает момент окончания перезарядки.
func (f *FireControl) CoolingUntil() time.Duration {
	if !f.HasFired {
		return 0
	}
	return f.LastFired + f.ReloadInterval
}

// Progress возвращает долю перезарядки от 0 до 1. При 1 можно стрелять.
func (f *FireControl) Progress(now time.Duration) float64 {
	if f.Ready(now) || f.ReloadInterval <= 0 {
		return 1
	}
	left := f.CoolingUntil() - now
	return 1 - float64(left)/float64(f.ReloadInterval)
}

// Consume фиксирует выстрел в момент now.
func (f *FireControl) Consume(now time.Duration) {
	f.LastFired = now
	f.HasFired = true
}
