package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/raeve/gameboot/utils"
)

const (
	DefaultSampleRate = 48000
	DefaultChannels   = 2
)

type ContextOptions struct {
	SampleRate int
	Channels   int
	BufferSize time.Duration
}

// OtoContext backs a Context with real audio hardware. It is created
// suspended and stays that way until the unlocker (or the caller) resumes
// it.
type OtoContext struct {
	ctx *oto.Context

	mu    sync.Mutex
	state State
}

// NewContext constructs a hardware context and registers it in one call,
// so the registry sees every context ever created.
func (r *Registry) NewContext(opts ContextOptions) (*OtoContext, error) {
	log := utils.GetLogger("audio")
	if opts.SampleRate == 0 {
		opts.SampleRate = DefaultSampleRate
	}
	if opts.Channels == 0 {
		opts.Channels = DefaultChannels
	}
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   opts.SampleRate,
		ChannelCount: opts.Channels,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   opts.BufferSize,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating audio context: %v", err)
	}
	select {
	case <-ready:
	case <-time.After(5 * time.Second):
		return nil, fmt.Errorf("audio context initialization timeout")
	}
	if err := ctx.Suspend(); err != nil {
		return nil, fmt.Errorf("error suspending audio context: %v", err)
	}
	oc := &OtoContext{ctx: ctx, state: StateSuspended}
	r.Register(oc)
	log.Debug().Int("sampleRate", opts.SampleRate).Int("channels", opts.Channels).Msg("Audio context created suspended")
	return oc, nil
}

func (c *OtoContext) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *OtoContext) Resume() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateRunning {
		return nil
	}
	if err := c.ctx.Resume(); err != nil {
		return fmt.Errorf("error resuming audio context: %v", err)
	}
	c.state = StateRunning
	return nil
}

// NewPlayer starts a player for PCM data from r. Playback stays silent
// while the context is suspended.
func (c *OtoContext) NewPlayer(r io.Reader) *oto.Player {
	return c.ctx.NewPlayer(r)
}
