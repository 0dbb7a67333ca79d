// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — интерфейс для всех экранов
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine — стек экранов. Обновляется и рисуется только верхний;
// оверлей (пауза) кладётся поверх, не закрывая экран под ним.
type StateMachine struct {
	stack []State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState закрывает все экраны и открывает newState. nil очищает стек.
func (sm *StateMachine) SetState(newState State) {
	for len(sm.stack) > 0 {
		sm.pop().Exit()
	}
	if newState != nil {
		sm.Push(newState)
	}
}

// Push открывает overlay поверх текущего экрана.
func (sm *StateMachine) Push(overlay State) {
	sm.stack = append(sm.stack, overlay)
	overlay.Enter()
}

// Pop закрывает верхний экран и возвращает управление нижнему.
// Нижний экран повторно Enter не получает.
func (sm *StateMachine) Pop() {
	if len(sm.stack) == 0 {
		return
	}
	sm.pop().Exit()
}

func (sm *StateMachine) pop() State {
	top := sm.stack[len(sm.stack)-1]
	sm.stack[len(sm.stack)-1] = nil
	sm.stack = sm.stack[:len(sm.stack)-1]
	return top
}

// Current — верхний экран или nil.
func (sm *StateMachine) Current() State {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

func (sm *StateMachine) Update(deltaTime float64) {
	if s := sm.Current(); s != nil {
		s.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if s := sm.Current(); s != nil {
		s.Draw(screen)
	}
}
