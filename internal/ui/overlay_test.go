package ui

import (
	"testing"
	"time"

	"go-tankr/internal/config"
)

type fakeTank struct {
	x, y       float64
	health, hp int
}

func (f *fakeTank) Position() (float64, float64) { return f.x, f.y }
func (f *fakeTank) Health() (int, int) { return f.health, f.hp }

func TestHealthBarFollowsTarget(t *testing.T) {
	tank := &fakeTank{x: 200, y: 300, health: 100, hp: 100}
	bar := NewHealthBar(tank, config.HealthBarColor)
	if bar.Ratio != 1 {
		t.Errorf("expected full bar, got %v", bar.Ratio)
	}

	tank.x, tank.health = 250, 25
	bar.Update()
	if bar.X != 250-config.HealthBarWidth/2 || bar.Y != 300-config.HealthBarOffsetY {
		t.Errorf("bar not positioned over tank: (%v, %v)", bar.X, bar.Y)
	}
	if bar.Ratio != 0.25 {
		t.Errorf("expected ratio 0.25, got %v", bar.Ratio)
	}
	if bar.FillColor() != config.HealthBarLowColor {
		t.Error("low health should use the low colour")
	}
}

func TestHealthBarKillStopsUpdates(t *testing.T) {
	tank := &fakeTank{x: 0, y: 0, health: 50, hp: 100}
	bar := NewHealthBar(tank, config.HealthBarColor)
	bar.Kill()
	tank.health = 10
	bar.Update()
	if bar.Alive || bar.Ratio != 0.5 {
		t.Errorf("killed bar changed: alive=%v ratio=%v", bar.Alive, bar.Ratio)
	}
}

func TestCaptionCentred(t *testing.T) {
	tank := &fakeTank{x: 100, y: 100}
	c := NewCaption(tank, "Player 1")
	// basicfont 7x13: 8 символов по 7 пикселей
	if c.X != 100-28 || c.Y != 100-config.CaptionOffsetY {
		t.Errorf("caption at (%v, %v)", c.X, c.Y)
	}
	c.Kill()
	tank.x = 500
	c.Update()
	if c.X != 72 {
		t.Error("killed caption must not move")
	}
}

type fakeReload struct{ progress float64 }

func (f *fakeReload) ReloadProgress(time.Duration) float64 { return f.progress }

func TestReloadIndicatorPulsesOnShot(t *testing.T) {
	src := &fakeReload{progress: 1}
	ind := NewReloadIndicator(src, 10, 10, 16)
	ind.Update(time.Second)
	if ind.Scale() > 1.0001 {
		t.Errorf("idle indicator should not pulse, scale %v", ind.Scale())
	}
	if ind.Color() != config.ReloadReadyColor {
		t.Error("ready indicator should use the ready color")
	}

	src.progress = 0
	ind.Update(2 * time.Second)
	if ind.Scale() < 1.29 {
		t.Errorf("indicator should pulse right after a shot, scale %v", ind.Scale())
	}
	if ind.Color() != config.ReloadCoolingColor {
		t.Error("cooling indicator should use the cooling color")
	}

	src.progress = 0.5
	ind.Update(2*time.Second + 500*time.Millisecond)
	if ind.Scale() > 1.01 {
		t.Errorf("pulse should fade, scale %v", ind.Scale())
	}
	if ind.Progress != 0.5 {
		t.Errorf("progress = %v, want 0.5", ind.Progress)
	}
}
