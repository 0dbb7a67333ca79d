// internal/audio/generator.go
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// tone — синусоида с линейным глиссандо и экспоненциальным затуханием.
// Конечна: после duration возвращает ok == false.
type tone struct {
	rate     beep.SampleRate
	from, to float64 // Гц
	decay    float64 // скорость затухания, 1/с
	duration int
	position int
	phase    float64
}

func newTone(rate beep.SampleRate, from, to float64, duration time.Duration, decay float64) beep.Streamer {
	return &tone{
		rate:     rate,
		from:     from,
		to:       to,
		decay:    decay,
		duration: rate.N(duration),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, i > 0
		}
		progress := float64(t.position) / float64(t.duration)
		freq := t.from + (t.to-t.from)*progress
		sec := float64(t.position) / float64(t.rate)
		val := 0.5 * math.Exp(-t.decay*sec) * math.Sin(2*math.Pi*t.phase)

		samples[i][0] = val
		samples[i][1] = val

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// melody — бесконечная фоновая петля: бас и арпеджио по нотам.
type melody struct {
	rate     beep.SampleRate
	notes    []float64
	noteLen  int
	position int
}

// Am — F — C — G, по две ноты на аккорд.
var gameplayNotes = []float64{220.00, 261.63, 174.61, 220.00, 261.63, 329.63, 196.00, 246.94}

func newMelody(rate beep.SampleRate, notes []float64, noteLen time.Duration) beep.Streamer {
	return &melody{rate: rate, notes: notes, noteLen: rate.N(noteLen)}
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	cycle := m.noteLen * len(m.notes)
	for i := range samples {
		pos := m.position % cycle
		note := m.notes[pos/m.noteLen]
		inNote := float64(pos%m.noteLen) / float64(m.rate)
		t := float64(m.position) / float64(m.rate)

		env := math.Exp(-inNote * 4)
		val := 0.25*env*math.Sin(2*math.Pi*note*t) + 0.1*math.Sin(2*math.Pi*note/2*t)

		samples[i][0] = val
		samples[i][1] = val
		m.position++
	}
	return len(samples), true
}

func (m *melody) Err() error { return nil }

// withVolume масштабирует громкость. 0 — тишина (log2(0) = -Inf).
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
