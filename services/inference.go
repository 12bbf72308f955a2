package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"careerguide/builders"
	"careerguide/dto"
	"careerguide/errors"
)

const DefaultInferenceTimeout = 30 * time.Second

// ChatModel is a hosted language model reachable with a single prompt.
type ChatModel interface {
	Name() string
	// Configured reports whether the model has the credentials it needs.
	Configured() bool
	Complete(ctx context.Context, prompt builders.Prompt) (string, error)
}

// InferenceClient calls the model under a deadline and turns every failure
// into errors.ErrInferenceUnavailable.
type InferenceClient struct {
	model   ChatModel
	timeout time.Duration
}

func NewInferenceClient(model ChatModel, timeout time.Duration) *InferenceClient {
	if timeout <= 0 {
		timeout = DefaultInferenceTimeout
	}
	return &InferenceClient{model: model, timeout: timeout}
}

// Configured reports whether a model with credentials is wired in.
func (c *InferenceClient) Configured() bool {
	return c != nil && c.model != nil && c.model.Configured()
}

// ModelName returns the configured provider model, or "" without one.
func (c *InferenceClient) ModelName() string {
	if c == nil || c.model == nil {
		return ""
	}
	return c.model.Name()
}

func (c *InferenceClient) complete(ctx context.Context, prompt builders.Prompt) (raw string, err error) {
	if !c.Configured() {
		return "", errors.Unavailable(fmt.Errorf("no model configured"))
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			raw, err = "", errors.Unavailable(fmt.Errorf("model panic: %v", r))
		}
	}()

	raw, err = c.model.Complete(ctx, prompt)
	if err != nil {
		return "", errors.Unavailable(err)
	}
	return raw, nil
}

// AnalyzeCareer returns schema-checked recommendations from the model.
func (c *InferenceClient) AnalyzeCareer(ctx context.Context, prompt builders.Prompt) (dto.CareerAnalysisResponse, error) {
	raw, err := c.complete(ctx, prompt)
	if err != nil {
		return dto.CareerAnalysisResponse{}, err
	}
	out, err := DecodeCareerReply(raw)
	if err != nil {
		return dto.CareerAnalysisResponse{}, errors.Unavailable(err)
	}
	return out, nil
}

// Chat returns the model's free-text reply.
func (c *InferenceClient) Chat(ctx context.Context, prompt builders.Prompt) (string, error) {
	raw, err := c.complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	reply := strings.TrimSpace(raw)
	if reply == "" {
		return "", errors.Unavailable(fmt.Errorf("empty model reply"))
	}
	return reply, nil
}
