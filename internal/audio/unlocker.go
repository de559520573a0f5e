package audio

import (
	"sync"

	"github.com/raeve/gameboot/internal/input"
	"github.com/raeve/gameboot/utils"
)

// UnlockEvents is the fixed gesture set that qualifies for unlocking
// playback.
var UnlockEvents = []input.EventType{
	input.MouseDown,
	input.PointerDown,
	input.TouchDown,
	input.KeyDown,
}

// Unlocker resumes suspended contexts on the first qualifying input event
// and detaches its handlers once every registered context is running.
type Unlocker struct {
	registry   *Registry
	dispatcher *input.Dispatcher

	mu   sync.Mutex
	subs map[input.EventType]int
}

func NewUnlocker(registry *Registry, dispatcher *input.Dispatcher) *Unlocker {
	return &Unlocker{registry: registry, dispatcher: dispatcher}
}

// Attach registers one handler per unlock event type. Calling it twice
// without a detach in between is a no-op.
func (u *Unlocker) Attach() {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.subs != nil {
		return
	}
	u.subs = make(map[input.EventType]int, len(UnlockEvents))
	for _, t := range UnlockEvents {
		u.subs[t] = u.dispatcher.Subscribe(t, u.handle)
	}
}

// Attached reports whether any handlers are currently registered.
func (u *Unlocker) Attached() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.subs != nil
}

func (u *Unlocker) handle(input.Event) {
	log := utils.GetLogger("audio")
	running := 0
	contexts := u.registry.Contexts()
	for _, ctx := range contexts {
		if ctx.State() == StateRunning {
			running++
			continue
		}
		if err := ctx.Resume(); err != nil {
			log.Warn().Err(err).Msg("Failed to resume audio context")
		}
	}
	// Detach only once everything was already running when the event
	// arrived; an empty registry keeps the handlers attached.
	if running == len(contexts) && running > 0 {
		u.Detach()
		log.Debug().Int("contexts", running).Msg("All audio contexts running, unlock handlers detached")
	}
}

// Detach removes all handlers. Idempotent.
func (u *Unlocker) Detach() {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.subs == nil {
		return
	}
	for t, id := range u.subs {
		u.dispatcher.Unsubscribe(t, id)
	}
	u.subs = nil
}
