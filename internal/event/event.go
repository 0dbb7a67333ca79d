// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data any // полезная нагрузка, см. types.go
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

type subscription struct {
	id       uint64
	listener Listener
}

// Dispatcher — синхронный диспетчер. Вызывается только из игрового цикла,
// подписчики получают события в порядке подписки.
type Dispatcher struct {
	nextID    uint64
	listeners map[EventType][]subscription
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[EventType][]subscription)}
}

// Subscribe подписывает listener на eventType и возвращает функцию отписки.
// Подписчик сравнивается по id, поэтому ListenerFunc тоже можно отписать.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) (cancel func()) {
	d.nextID++
	id := d.nextID
	d.listeners[eventType] = append(d.listeners[eventType], subscription{id: id, listener: listener})
	return func() { d.remove(eventType, id) }
}

// SubscribeAll — подписка сразу на несколько типов с общей отпиской.
func (d *Dispatcher) SubscribeAll(listener Listener, eventTypes ...EventType) (cancel func()) {
	cancels := make([]func(), 0, len(eventTypes))
	for _, t := range eventTypes {
		cancels = append(cancels, d.Subscribe(t, listener))
	}
	return func() {
		for _, c := range cancels {
			c()
		}
	}
}

func (d *Dispatcher) remove(eventType EventType, id uint64) {
	subs := d.listeners[eventType]
	for i, s := range subs {
		if s.id == id {
			// новый срез: Dispatch может сейчас идти по старому
			next := make([]subscription, 0, len(subs)-1)
			next = append(next, subs[:i]...)
			d.listeners[eventType] = append(next, subs[i+1:]...)
			return
		}
	}
}

// Count — число подписчиков на тип.
func (d *Dispatcher) Count(eventType EventType) int {
	if d == nil {
		return 0
	}
	return len(d.listeners[eventType])
}

// Dispatch — отправка события всем подписчикам. nil-диспетчер молчит.
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	for _, s := range d.listeners[event.Type] {
		s.listener.OnEvent(event)
	}
}
