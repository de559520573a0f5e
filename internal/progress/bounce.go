package progress

import (
	"strings"
	"sync"
	"time"
	"unicode"
)

// Bounce uppercases the two runes at positions i and i+1 and lowercases
// the rest, producing one frame of the bouncing-capitalization effect.
func Bounce(text string, i int) string {
	runes := []rune(strings.ToLower(text))
	for j := i; j <= i+1 && j < len(runes); j++ {
		if j < 0 {
			continue
		}
		runes[j] = unicode.ToUpper(runes[j])
	}
	return string(runes)
}

// Animator cycles the bounce index across a label on a fixed period and
// pushes each frame to a render callback. It runs independently of the
// transfer it decorates and is stopped once progress is close enough to
// done (the boot flow treats >0.99 as finished).
type Animator struct {
	Label  string
	Period time.Duration

	mu      sync.Mutex
	stop    chan struct{}
	stopped bool
}

const defaultPeriod = 150 * time.Millisecond

func NewAnimator(label string) *Animator {
	return &Animator{Label: label, Period: defaultPeriod}
}

// Start begins the animation, invoking render with a new frame every
// period until Stop is called.
func (a *Animator) Start(render func(frame string)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stop != nil || a.stopped {
		return
	}
	a.stop = make(chan struct{})
	period := a.Period
	if period <= 0 {
		period = defaultPeriod
	}
	go func(stop chan struct{}) {
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		i := 0
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				render(Bounce(a.Label, i))
				i = (i + 1) % max(len([]rune(a.Label)), 1)
			}
		}
	}(a.stop)
}

// Stopped reports whether the animation was canceled.
func (a *Animator) Stopped() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stopped
}

// Stop cancels the animation. Safe to call more than once.
func (a *Animator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopped {
		return
	}
	a.stopped = true
	if a.stop != nil {
		close(a.stop)
	}
}
