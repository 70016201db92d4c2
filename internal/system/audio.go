package system

import (
	"go-tankr/internal/audio"
	"go-tankr/internal/event"
)

// CuePlayer проигрывает звуковые сигналы
type CuePlayer interface {
	Play(cue audio.Cue)
}

// AudioSystem озвучивает выстрелы и уничтожение танков.
type AudioSystem struct {
	player CuePlayer
}

func NewAudioSystem(eventDispatcher *event.Dispatcher, player CuePlayer) *AudioSystem {
	s := &AudioSystem{player: player}
	eventDispatcher.Subscribe(event.TankFired, s)
	eventDispatcher.Subscribe(event.TankDestroyed, s)
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *AudioSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.TankFired:
		s.player.Play(audio.CueFire)
	case event.TankDestroyed:
		s.player.Play(audio.CueDeath)
	}
}
