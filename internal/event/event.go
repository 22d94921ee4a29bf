// internal/event/event.go
package event

// EventType: тип события
type EventType string

// Event: структура события
type Event struct {
	Type EventType
	Data any // Данные события, если нужны
}

// Listener: интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher синхронный, Dispatch вызывает подписчиков сразу,
// в порядке подписки, в том же кадре.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher: создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe: подписка listener сразу на несколько типов событий
func (d *Dispatcher) Subscribe(listener Listener, eventTypes ...EventType) {
	for _, t := range eventTypes {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

// Unsubscribe: отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch: отправка события всем подписчикам
func (d *Dispatcher) Dispatch(e Event) {
	for _, listener := range d.listeners[e.Type] {
		listener.OnEvent(e)
	}
}

// Recorder запоминает полученные события по порядку.
type Recorder struct {
	Events []Event
}

func (r *Recorder) OnEvent(e Event) {
	r.Events = append(r.Events, e)
}

// Count: сколько событий типа t было получено.
func (r *Recorder) Count(t EventType) int {
	n := 0
	for _, e := range r.Events {
		if e.Type == t {
			n++
		}
	}
	return n
}
