package audio

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// Bank хранит готовые плееры для каждого сигнала.
type Bank struct {
	players map[Cue]*ebaudio.Player
}

// NewBank синтезирует все сигналы и создаёт плееры ebiten.
func NewBank() (*Bank, error) {
	ctx := ebaudio.CurrentContext()
	if ctx == nil {
		ctx = ebaudio.NewContext(SampleRate)
	}
	if ctx.SampleRate() != SampleRate {
		return nil, fmt.Errorf("audio context sample rate %d, want %d", ctx.SampleRate(), SampleRate)
	}

	b := &Bank{players: make(map[Cue]*ebaudio.Player)}
	for _, cue := range []Cue{CueFire, CueDeath} {
		pcm := Render(Sound(cue, beep.SampleRate(SampleRate)))
		if len(pcm) == 0 {
			return nil, fmt.Errorf("empty pcm for cue %q", cue)
		}
		b.players[cue] = ctx.NewPlayerFromBytes(pcm)
	}
	log.Debug("audio cues ready", "count", len(b.players))
	return b, nil
}

// Play проигрывает сигнал с начала.
func (b *Bank) Play(cue Cue) {
	p, ok := b.players[cue]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Warn("audio rewind failed", "cue", cue, "err", err)
		return
	}
	p.Play()
}

// Mute — заглушка, когда звук недоступен
type Mute struct{}

func (Mute) Play(Cue) {}
