// internal/input/input.go
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Snapshot — состояние ввода на один кадр. Aim — точка прицела в мировых координатах.
type Snapshot struct {
	Left, Right, Up, Down, Fire bool
	AimX, AimY                  float64
}

// Bindings — клавиши управления
type Bindings struct {
	Left, Right, Up, Down []ebiten.Key
	Fire                  []ebiten.Key
	FireMouse             bool // стрелять левой кнопкой мыши
}

// DefaultBindings — стрелки и WASD, огонь пробелом или мышью
func DefaultBindings() Bindings {
	return Bindings{
		Left:      []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right:     []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Up:        []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
		Down:      []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
		Fire:      []ebiten.Key{ebiten.KeySpace},
		FireMouse: true,
	}
}

// KeyboardSource опрашивает клавиатуру и мышь ebiten.
type KeyboardSource struct {
	Bindings Bindings

	keyPressed   func(ebiten.Key) bool
	mousePressed func(ebiten.MouseButton) bool
	cursor       func() (int, int)
}

func NewKeyboardSource(b Bindings) *KeyboardSource {
	return &KeyboardSource{
		Bindings:     b,
		keyPressed:   ebiten.IsKeyPressed,
		mousePressed: ebiten.IsMouseButtonPressed,
		cursor:       ebiten.CursorPosition,
	}
}

func (s *KeyboardSource) anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if s.keyPressed(k) {
			return true
		}
	}
	return false
}

func (s *KeyboardSource) IsLeftPressed() bool { return s.anyPressed(s.Bindings.Left) }
func (s *KeyboardSource) IsRightPressed() bool { return s.anyPressed(s.Bindings.Right) }
func (s *KeyboardSource) IsUpPressed() bool { return s.anyPressed(s.Bindings.Up) }
func (s *KeyboardSource) IsDownPressed() bool { return s.anyPressed(s.Bindings.Down) }

func (s *KeyboardSource) IsFirePressed() bool {
	if s.anyPressed(s.Bindings.Fire) {
		return true
	}
	return s.Bindings.FireMouse && s.mousePressed(ebiten.MouseButtonLeft)
}

// Snapshot собирает состояние ввода. toWorld переводит экранные
// координаты курсора в мировые (обычно camera.ScreenToWorld).
func (s *KeyboardSource) Snapshot(toWorld func(x, y float64) (float64, float64)) Snapshot {
	cx, cy := s.cursor()
	ax, ay := float64(cx), float64(cy)
	if toWorld != nil {
		ax, ay = toWorld(ax, ay)
	}
	return Snapshot{
		Left:  s.IsLeftPressed(),
		Right: s.IsRightPressed(),
		Up:    s.IsUpPressed(),
		Down:  s.IsDownPressed(),
		Fire:  s.IsFirePressed(),
		AimX:  ax,
		AimY:  ay,
	}
}
