package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type traceState struct {
	name string
	log  *[]string
}

func (s *traceState) Enter() { *s.log = append(*s.log, "enter "+s.name) }
func (s *traceState) Update(deltaTime float64) { *s.log = append(*s.log, "update "+s.name) }
func (s *traceState) Draw(screen *ebiten.Image) {}
func (s *traceState) Exit() { *s.log = append(*s.log, "exit "+s.name) }

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.Update(0.016) // без состояния ничего не происходит

	a := &traceState{name: "a", log: &log}
	b := &traceState{name: "b", log: &log}
	sm.SetState(a)
	sm.Update(0.016)
	sm.SetState(b)
	if sm.Current() != b {
		t.Fatal("current state should be b")
	}
	sm.SetState(nil)

	want := []string{"enter a", "update a", "exit a", "enter b", "exit b"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
}

func TestPushPopKeepsUnderlyingState(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	game := &traceState{name: "game", log: &log}
	pause := &traceState{name: "pause", log: &log}

	sm.SetState(game)
	sm.Push(pause)
	sm.Update(0.016)
	if sm.Current() != pause {
		t.Fatal("overlay should be on top")
	}
	sm.Pop()
	sm.Update(0.016)
	sm.Pop()
	sm.Pop() // пустой стек

	want := []string{"enter game", "enter pause", "update pause", "exit pause", "update game", "exit game"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
	if sm.Current() != nil {
		t.Error("stack should be empty")
	}
}

func TestSetStateClosesOverlays(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.SetState(&traceState{name: "game", log: &log})
	sm.Push(&traceState{name: "pause", log: &log})
	sm.SetState(&traceState{name: "menu", log: &log})

	want := []string{"enter game", "enter pause", "exit pause", "exit game", "enter menu"}
	for i := range want {
		if i >= len(log) || log[i] != want[i] {
			t.Fatalf("log = %v, want %v", log, want)
		}
	}
}
