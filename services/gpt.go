package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"careerguide/builders"

	json "github.com/goccy/go-json"
)

const (
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
	DefaultOpenAIModel   = "gpt-4o"
)

type GPTMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type GPTResponseFormat struct {
	Type string `json:"type"`
}

type GPTRequest struct {
	Model          string             `json:"model"`
	Messages       []GPTMessage       `json:"messages"`
	ResponseFormat *GPTResponseFormat `json:"response_format,omitempty"`
	MaxTokens      int                `json:"max_tokens,omitempty"`
}

type GPTResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type gptErrorBody struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// GPTClient talks to the OpenAI chat completions API.
type GPTClient struct {
	APIKey  string
	BaseURL string
	Model   string
	HTTP    *http.Client
}

func NewGPTClient(apiKey, baseURL, model string) *GPTClient {
	if baseURL == "" {
		baseURL = DefaultOpenAIBaseURL
	}
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &GPTClient{
		APIKey:  apiKey,
		BaseURL: strings.TrimRight(baseURL, "/"),
		Model:   model,
		// the per-call deadline comes from the context; this only caps a stuck connection
		HTTP: &http.Client{Timeout: 2 * time.Minute},
	}
}

func (c *GPTClient) Name() string { return c.Model }

func (c *GPTClient) Configured() bool { return c.APIKey != "" }

// Complete gửi prompt tới GPT và trả về nội dung trả lời
func (c *GPTClient) Complete(ctx context.Context, prompt builders.Prompt) (string, error) {
	if c.APIKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY is not set")
	}

	messages := make([]GPTMessage, 0, 2)
	if prompt.System != "" {
		messages = append(messages, GPTMessage{Role: "system", Content: prompt.System})
	}
	messages = append(messages, GPTMessage{Role: "user", Content: prompt.User})

	reqBody := GPTRequest{Model: c.Model, Messages: messages, MaxTokens: prompt.MaxTokens}
	if prompt.JSON {
		reqBody.ResponseFormat = &GPTResponseFormat{Type: "json_object"}
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr gptErrorBody
		_ = json.Unmarshal(body, &apiErr)
		if apiErr.Error.Message != "" {
			return "", fmt.Errorf("openai http %d (%s): %s", resp.StatusCode, apiErr.Error.Code, apiErr.Error.Message)
		}
		return "", fmt.Errorf("openai http %d", resp.StatusCode)
	}

	var gptResp GPTResponse
	if err := json.Unmarshal(body, &gptResp); err != nil {
		return "", fmt.Errorf("decode openai response: %w", err)
	}
	if len(gptResp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned by model")
	}
	return gptResp.Choices[0].Message.Content, nil
}
