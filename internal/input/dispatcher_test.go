package input

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatcherSubscribeDispatch(t *testing.T) {
	d := NewDispatcher()
	var got []EventType
	d.Subscribe(KeyDown, func(e Event) { got = append(got, e.Type) })
	d.Subscribe(MouseDown, func(e Event) { got = append(got, e.Type) })

	d.Dispatch(Event{Type: KeyDown})
	d.Dispatch(Event{Type: PointerDown}) // nobody listening
	d.Dispatch(Event{Type: MouseDown})

	require.Equal(t, []EventType{KeyDown, MouseDown}, got)
}

func TestDispatcherUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	id := d.Subscribe(KeyDown, func(Event) { calls++ })
	d.Dispatch(Event{Type: KeyDown})
	d.Unsubscribe(KeyDown, id)
	d.Dispatch(Event{Type: KeyDown})
	require.Equal(t, 1, calls)
	require.Equal(t, 0, d.HandlerCount(KeyDown))
}

func TestDispatcherUnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	var id int
	calls := 0
	id = d.Subscribe(KeyDown, func(Event) {
		calls++
		d.Unsubscribe(KeyDown, id)
	})
	d.Dispatch(Event{Type: KeyDown})
	d.Dispatch(Event{Type: KeyDown})
	require.Equal(t, 1, calls)
}

func TestListenKeys(t *testing.T) {
	d := NewDispatcher()
	events := 0
	d.Subscribe(KeyDown, func(Event) { events++ })
	ListenKeys(strings.NewReader("abc"), d)
	require.Equal(t, 3, events)
}
