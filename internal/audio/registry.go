package audio

import "sync"

// Registry is the ordered collection of every context created through it.
// Contexts are appended exactly once, in creation order, never removed.
type Registry struct {
	mu       sync.Mutex
	contexts []Context
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a context created elsewhere, e.g. a test double.
func (r *Registry) Register(ctx Context) {
	r.mu.Lock()
	r.contexts = append(r.contexts, ctx)
	r.mu.Unlock()
}

// Contexts returns a snapshot in creation order.
func (r *Registry) Contexts() []Context {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Context, len(r.contexts))
	copy(out, r.contexts)
	return out
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.contexts)
}

// RunningCount reports how many registered contexts are running.
func (r *Registry) RunningCount() int {
	count := 0
	for _, ctx := range r.Contexts() {
		if ctx.State() == StateRunning {
			count++
		}
	}
	return count
}
