// Package boot wires the streaming loader to the terminal splash: bar and
// ring updates per chunk, the bouncing label on its own timer, and the
// post-init notice.
package boot

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/raeve/gameboot/internal/loader"
	"github.com/raeve/gameboot/internal/output"
	"github.com/raeve/gameboot/internal/progress"
	"github.com/raeve/gameboot/internal/source"
	"github.com/raeve/gameboot/utils"
)

// ResolutionNotice is held back while the splash is up and printed once
// the module is initialized.
const ResolutionNotice = "! best experienced in a window 1280x720 or larger"

type Options struct {
	URL              string
	OutputPath       string
	HTTPClientConfig utils.HTTPClientConfig

	// Init overrides the default entry point (write the payload to
	// OutputPath).
	Init loader.InitFunc

	// render overrides the terminal line writer in tests.
	render func(line string)
}

// splash owns the progress line: the bouncing label on its own timer and
// a bar/ring update per received chunk.
type splash struct {
	animator *progress.Animator
	render   func(line string)

	mu    sync.Mutex
	label string
}

func newSplash(render func(line string), period time.Duration) *splash {
	s := &splash{
		animator: progress.NewAnimator("loading"),
		render:   render,
		label:    "loading",
	}
	if period > 0 {
		s.animator.Period = period
	}
	s.animator.Start(func(frame string) {
		s.mu.Lock()
		s.label = frame
		s.mu.Unlock()
	})
	return s
}

func (s *splash) currentLabel() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.label
}

// progress renders one update per received chunk. The label animation is
// canceled once the fraction passes 0.99, regardless of when the stream
// actually finishes.
func (s *splash) progress(received, total int64, fraction float64) {
	if fraction > 0.99 {
		s.animator.Stop()
	}
	s.render(output.RenderProgress(received, total, fraction, s.currentLabel()))
}

func (s *splash) stop() {
	s.animator.Stop()
}

// Run streams the module at opts.URL, drawing progress while the bouncing
// "loading" label animates, and initializes the module once assembled.
func Run(ctx context.Context, opts Options) error {
	log := utils.GetLogger("boot")
	src, err := source.Resolve(opts.URL, nil, opts.HTTPClientConfig)
	if err != nil {
		return err
	}

	render := opts.render
	if render == nil {
		render = output.PrintLine
	}
	sp := newSplash(render, 0)
	defer sp.stop()

	initFunc := opts.Init
	if initFunc == nil {
		initFunc = writeModule(opts.OutputPath)
	}
	l := &loader.Loader{
		Source:   src,
		Init:     initFunc,
		Progress: sp.progress,
		OnReady: func() {
			fmt.Println()
			output.PrintWarning(ResolutionNotice)
		},
	}
	session, err := l.Run(ctx)
	if err != nil {
		return err
	}
	log.Info().Str("session", session.ID).Int64("bytes", session.Received()).Str("url", opts.URL).Msg("Module booted")
	output.PrintSuccess(fmt.Sprintf("%s %s ready", output.StyleSymbols["pass"], opts.OutputPath))
	return nil
}

func writeModule(outputPath string) loader.InitFunc {
	return func(module []byte) error {
		if err := os.WriteFile(outputPath, module, 0644); err != nil {
			return fmt.Errorf("error writing module: %v", err)
		}
		return nil
	}
}
