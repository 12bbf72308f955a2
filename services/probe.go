package services

import (
	"context"
	"sync"
	"time"

	"careerguide/builders"
	"careerguide/services/logger"
)

const probeMaxTokens = 5

var probePrompt = builders.Prompt{User: "Reply with the single word OK.", MaxTokens: probeMaxTokens}

// ProbeStatus is the last known state of the inference provider.
type ProbeStatus struct {
	Provider   string    `json:"provider"`
	Model      string    `json:"model,omitempty"`
	Configured bool      `json:"configured"`
	Available  bool      `json:"available"`
	LastError  string    `json:"lastError,omitempty"`
	CheckedAt  time.Time `json:"checkedAt"`
}

// Prober records whether the inference provider is usable. It never affects
// request handling; failed calls already fall back.
type Prober struct {
	provider  string
	inference *InferenceClient
	live      bool
	logger    logger.Logger
	now       func() time.Time

	mu     sync.RWMutex
	status ProbeStatus
}

type ProberOptions struct {
	Provider  string
	Inference *InferenceClient
	// Live sends a tiny completion on each run instead of only checking configuration.
	Live   bool
	Logger logger.Logger
}

func NewProber(opts ProberOptions) *Prober {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	p := &Prober{
		provider:  opts.Provider,
		inference: opts.Inference,
		live:      opts.Live,
		logger:    opts.Logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
	p.status = ProbeStatus{
		Provider:   opts.Provider,
		Model:      opts.Inference.ModelName(),
		Configured: opts.Inference.Configured(),
	}
	return p
}

func (p *Prober) Run(ctx context.Context) {
	st := ProbeStatus{
		Provider:   p.provider,
		Model:      p.inference.ModelName(),
		CheckedAt:  p.now(),
		Configured: p.inference.Configured(),
	}
	switch {
	case !st.Configured:
		st.LastError = "no model configured"
	case p.live:
		if _, err := p.inference.Chat(ctx, probePrompt); err != nil {
			st.LastError = err.Error()
			p.logger.Warn("provider %s probe failed: %v", p.provider, err)
		} else {
			st.Available = true
		}
	default:
		st.Available = true
	}
	p.mu.Lock()
	p.status = st
	p.mu.Unlock()
	p.logger.Debug("provider probe: %+v", st)
}

func (p *Prober) Snapshot() ProbeStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status
}
