package state

import (
	"go-tankr/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverState — танк игрока уничтожен. R начинает заново.
type GameOverState struct {
	sm   *StateMachine
	last *GameState
}

func NewGameOverState(sm *StateMachine, last *GameState) *GameOverState {
	return &GameOverState{sm: sm, last: last}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	// Снаряды и мишень продолжают жить, пока игрок смотрит на экран
	s.last.game.Update(deltaTime, input.Snapshot{})
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.sm.SetState(NewGameState(s.sm, s.last.settings))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.last.Draw(screen)
	drawBanner(screen, "DESTROYED - press R to restart")
}

func (s *GameOverState) Exit() {}
