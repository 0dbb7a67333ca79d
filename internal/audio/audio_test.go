package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"go-lawn-defense/internal/config"
	"go-lawn-defense/internal/event"
)

func drain(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > 1 || math.Abs(buf[i][1]) > 1 {
				t.Fatalf("sample %d out of range: %v", total+i, buf[i])
			}
		}
		total += n
		if !ok {
			break
		}
	}
	return total
}

func TestToneHasFixedLength(t *testing.T) {
	s := newTone(sampleRate, 440, 220, 100*time.Millisecond, 5)
	if got, want := drain(t, s, 1<<20), sampleRate.N(100*time.Millisecond); got != want {
		t.Errorf("tone length = %d samples, want %d", got, want)
	}
	if s.Err() != nil {
		t.Errorf("unexpected error %v", s.Err())
	}
}

func TestEffectsAreFinite(t *testing.T) {
	for fx := EffectShoot; fx <= EffectVictory; fx++ {
		s := newEffect(fx)
		if s == nil {
			t.Fatalf("effect %d has no streamer", fx)
		}
		if n := drain(t, s, sampleRate.N(5*time.Second)); n == 0 || n >= sampleRate.N(5*time.Second) {
			t.Errorf("effect %d streamed %d samples", fx, n)
		}
	}
}

func TestMelodyLoops(t *testing.T) {
	s := newMelody(sampleRate, gameplayNotes, 10*time.Millisecond)
	limit := sampleRate.N(time.Second)
	if n := drain(t, s, limit); n < limit {
		t.Errorf("melody stopped after %d samples", n)
	}
}

func TestSilentVolume(t *testing.T) {
	s := withVolume(newTone(sampleRate, 440, 440, 10*time.Millisecond, 0), 0)
	buf := make([][2]float64, 64)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 || buf[i][1] != 0 {
			t.Fatalf("silent stream produced %v", buf[i])
		}
	}
}

func TestEventMapping(t *testing.T) {
	tests := []struct {
		typ  event.EventType
		want Effect
		ok   bool
	}{
		{event.ProjectileFired, EffectShoot, true},
		{event.ResourceCollected, EffectCollect, true},
		{event.LevelCompleted, EffectVictory, true},
		{event.SessionOver, EffectGameOver, true},
		{event.AttackerSpawned, 0, false},
	}
	for _, tt := range tests {
		fx, ok := effectFor(tt.typ)
		if ok != tt.ok || (ok && fx != tt.want) {
			t.Errorf("effectFor(%s) = %v,%v", tt.typ, fx, ok)
		}
	}
}

// Без Initialize контроллер молча игнорирует всё.
func TestControllerWithoutDevice(t *testing.T) {
	c := NewController(config.DefaultSettings(), nil)
	d := event.NewDispatcher()
	c.Subscribe(d)

	d.Dispatch(event.Event{Type: event.ProjectileFired})
	d.Dispatch(event.Event{Type: event.SessionPaused})
	d.Dispatch(event.Event{Type: event.SessionResumed})
	c.Play(EffectVictory)
	c.PlayMusic()
	c.StopMusic()
	c.Close()

	if c.ToggleMusic() {
		t.Error("music should be disabled after toggle")
	}
	if c.ToggleSound() {
		t.Error("sound should be disabled after toggle")
	}
	if s := c.Settings(); s.MusicEnabled || s.SoundEnabled {
		t.Errorf("settings not updated: %+v", s)
	}
}
