package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"careerguide/services/logger"

	"github.com/stretchr/testify/assert"
)

func TestProberWithoutModel(t *testing.T) {
	p := NewProber(ProberOptions{Provider: "openai", Inference: NewInferenceClient(nil, 0), Logger: logger.Nop{}})
	p.Run(context.Background())

	st := p.Snapshot()
	assert.False(t, st.Configured)
	assert.False(t, st.Available)
	assert.Equal(t, "no model configured", st.LastError)
	assert.False(t, st.CheckedAt.IsZero())
}

func TestProberOpenAIWithoutKey(t *testing.T) {
	p := NewProber(ProberOptions{Provider: "openai", Inference: NewInferenceClient(NewGPTClient("", "", ""), time.Second), Logger: logger.Nop{}})
	p.Run(context.Background())

	st := p.Snapshot()
	assert.Equal(t, DefaultOpenAIModel, st.Model)
	assert.False(t, st.Configured)
	assert.False(t, st.Available)
	assert.Equal(t, "no model configured", st.LastError)
}

func TestProberConfigurationOnly(t *testing.T) {
	model := &fakeModel{reply: "OK"}
	p := NewProber(ProberOptions{Provider: "openai", Inference: NewInferenceClient(model, time.Second), Logger: logger.Nop{}})
	p.Run(context.Background())

	st := p.Snapshot()
	assert.True(t, st.Configured)
	assert.True(t, st.Available)
	assert.Equal(t, "fake-model", st.Model)
	assert.Zero(t, model.Calls())
}

func TestProberLive(t *testing.T) {
	model := &fakeModel{err: fmt.Errorf("quota exceeded")}
	p := NewProber(ProberOptions{Provider: "openai", Inference: NewInferenceClient(model, time.Second), Live: true, Logger: logger.Nop{}})
	p.Run(context.Background())

	st := p.Snapshot()
	assert.True(t, st.Configured)
	assert.False(t, st.Available)
	assert.Contains(t, st.LastError, "quota exceeded")
	assert.Equal(t, 1, model.Calls())
	assert.Equal(t, probeMaxTokens, model.prompts[0].MaxTokens)
}
