// Package input fans user input events out to subscribed handlers. Event
// types mirror the gesture set the platform requires for unlocking
// playback: mousedown, pointerdown, touchdown, keydown.
package input

import "sync"

type EventType string

const (
	MouseDown   EventType = "mousedown"
	PointerDown EventType = "pointerdown"
	TouchDown   EventType = "touchdown"
	KeyDown     EventType = "keydown"
)

// Event is one user input occurrence.
type Event struct {
	Type EventType
}

type Handler func(Event)

type subscription struct {
	id      int
	handler Handler
}

// Dispatcher routes events by type to subscribed handlers.
type Dispatcher struct {
	mu     sync.Mutex
	nextID int
	subs   map[EventType][]subscription
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{subs: make(map[EventType][]subscription)}
}

// Subscribe registers a handler for one event type and returns an id for
// Unsubscribe.
func (d *Dispatcher) Subscribe(t EventType, h Handler) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	d.subs[t] = append(d.subs[t], subscription{id: d.nextID, handler: h})
	return d.nextID
}

func (d *Dispatcher) Unsubscribe(t EventType, id int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	subs := d.subs[t]
	for i, s := range subs {
		if s.id == id {
			d.subs[t] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

// Dispatch delivers the event to every handler subscribed to its type.
func (d *Dispatcher) Dispatch(e Event) {
	d.mu.Lock()
	subs := make([]subscription, len(d.subs[e.Type]))
	copy(subs, d.subs[e.Type])
	d.mu.Unlock()
	for _, s := range subs {
		s.handler(e)
	}
}

// HandlerCount reports how many handlers are attached for the type.
func (d *Dispatcher) HandlerCount(t EventType) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.subs[t])
}
