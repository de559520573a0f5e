package input

import (
	"io"

	"github.com/raeve/gameboot/utils"
)

// ListenKeys reads bytes from r and dispatches one keydown event per byte
// until r is exhausted. Run it in its own goroutine; it returns on EOF or
// read error.
func ListenKeys(r io.Reader, d *Dispatcher) {
	log := utils.GetLogger("input")
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			d.Dispatch(Event{Type: KeyDown})
		}
		if err != nil {
			if err != io.EOF {
				log.Debug().Err(err).Msg("Key listener stopped")
			}
			return
		}
	}
}
