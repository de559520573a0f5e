// Package loader streams a binary module from a source, reports progress
// per chunk, assembles the payload, and hands it to the module's
// initialization entry point.
package loader

import (
	"context"
	"fmt"
	"io"

	"github.com/raeve/gameboot/internal/source"
	"github.com/raeve/gameboot/utils"
)

const readBufferSize = 64 * 1024

// InitFunc is the entry point of the loaded module. It receives the fully
// assembled payload as its sole argument.
type InitFunc func(module []byte) error

// ProgressFunc is called after every received chunk. fraction is NaN when
// the server did not report a total.
type ProgressFunc func(received, total int64, fraction float64)

// Loader drives one boot: open source, stream, assemble, init.
type Loader struct {
	Source   source.Source
	Init     InitFunc
	Progress ProgressFunc

	// OnReady runs after Init returns without error, e.g. to surface a
	// notice that was held back during loading.
	OnReady func()
}

// Run performs the transfer and initialization. Source, stream, and init
// errors propagate unchanged; there is no retry and no partial recovery.
func (l *Loader) Run(ctx context.Context) (*Session, error) {
	log := utils.GetLogger("loader")
	body, total, err := l.Source.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	session := NewSession(total)
	log.Debug().Str("session", session.ID).Int64("expectedBytes", total).Msg("Starting module transfer")

	buf := make([]byte, readBufferSize)
	for {
		n, err := body.Read(buf)
		if n > 0 {
			session.Append(buf[:n])
			if l.Progress != nil {
				l.Progress(session.Received(), total, session.Fraction())
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return session, fmt.Errorf("error reading module stream: %v", err)
		}
	}
	log.Debug().Str("session", session.ID).Int64("receivedBytes", session.Received()).Msg("Transfer complete")

	module := session.Assemble()
	if l.Init != nil {
		if err := l.Init(module); err != nil {
			return session, fmt.Errorf("error initializing module: %v", err)
		}
		log.Debug().Str("session", session.ID).Msg("Module initialized")
	}
	if l.OnReady != nil {
		l.OnReady()
	}
	return session, nil
}
