// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-tankr/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState останавливает игру и рисует поверх неё затемнение
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	title         string
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		title:         "PAUSED",
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	drawBanner(screen, s.title)
}

func (s *PauseState) Exit() {}

// drawBanner затемняет экран и пишет заголовок по центру
func drawBanner(screen *ebiten.Image, title string) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)
	face := basicfont.Face7x13
	width := font.MeasureString(face, title).Ceil()
	text.Draw(screen, title, face, (config.ScreenWidth-width)/2, config.ScreenHeight/2, config.TextLightColor)
}
