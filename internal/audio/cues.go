// internal/audio/cues.go
package audio

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Cue — звуковой сигнал
type Cue string

const (
	CueFire  Cue = "fire"
	CueDeath Cue = "death"
)

// SampleRate частота дискретизации всех сигналов
const SampleRate = 44100

// WaveType — форма волны генератора
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// sweep — генератор с линейным изменением частоты от from до to
type sweep struct {
	from, to float64
	phase    float64
	total    int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewSweep создаёт генератор длительностью duration.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:  from,
		to:    to,
		total: rate.N(duration),
		wave:  wave,
		rate:  rate,
		rng:   rand.New(rand.NewSource(1)),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		var val float64
		switch s.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			val = 1
			if s.phase >= 0.5 {
				val = -1
			}
		case WaveNoise:
			val = s.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(s.position) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// decay — линейное затухание до нуля к концу сигнала
type decay struct {
	streamer beep.Streamer
	total    int
	position int
}

func NewDecay(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, total: rate.N(duration)}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(d.position)/float64(d.total)
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

func volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// FireSound — короткий "лазерный" свип вниз
func FireSound(rate beep.SampleRate) beep.Streamer {
	d := 120 * time.Millisecond
	return volume(NewDecay(NewSweep(1800, 300, d, WaveSquare, rate), d, rate), 0.25)
}

// DeathSound — шумовой взрыв с низким гулом
func DeathSound(rate beep.SampleRate) beep.Streamer {
	d := 600 * time.Millisecond
	noise := NewDecay(NewSweep(0, 0, d, WaveNoise, rate), d, rate)
	rumble := NewDecay(NewSweep(120, 40, d, WaveSine, rate), d, rate)
	return volume(beep.Mix(noise, rumble), 0.4)
}

// Sound возвращает генератор для сигнала
func Sound(cue Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case CueFire:
		return FireSound(rate)
	case CueDeath:
		return DeathSound(rate)
	}
	return nil
}

// Render переводит поток в 16-битный little-endian стерео PCM.
func Render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	frame := make([]byte, 4)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(buf[i][0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(buf[i][1])))
			out = append(out, frame...)
		}
		if !ok || n == 0 {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(v * math.MaxInt16)
}
