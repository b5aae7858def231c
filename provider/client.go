// Package provider calls the OpenAI chat completions API with a face photo
// and returns the model's raw text reply.
package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL     = "https://api.openai.com/v1"
	DefaultModel       = "gpt-4o-mini"
	DefaultTemperature = 0.4
	DefaultTimeout     = 60 * time.Second
)

var ErrNoChoices = errors.New("provider: response has no choices")

// APIError is a non-2xx reply from the provider.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("provider: status %d", e.StatusCode)
	}
	return fmt.Sprintf("provider: status %d: %s", e.StatusCode, e.Message)
}

type Options struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	Timeout     time.Duration
}

type Client struct {
	http        *resty.Client
	model       string
	temperature float64
}

func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	rc := resty.New().
		SetBaseURL(opts.BaseURL).
		SetAuthToken(opts.APIKey).
		SetTimeout(opts.Timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{http: rc, model: opts.Model, temperature: opts.Temperature}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []requestPart `json:"content"`
}

type requestPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content Content `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Analyze sends the fixed prompt with the base64 JPEG and returns the text of
// the first choice.
func (c *Client) Analyze(ctx context.Context, frontImage string) (string, error) {
	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: []requestPart{{Type: "text", Text: systemPrompt}}},
			{Role: "user", Content: []requestPart{
				{Type: "text", Text: userPrompt},
				{Type: "image_url", ImageURL: &imageURL{URL: "data:image/jpeg;base64," + frontImage}},
			}},
		},
		Temperature: c.temperature,
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&chatResponse{}).
		SetError(&errorResponse{}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("provider: request failed: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode()}
		if e, ok := resp.Error().(*errorResponse); ok && e != nil {
			apiErr.Message = e.Error.Message
		}
		return "", apiErr
	}

	out, ok := resp.Result().(*chatResponse)
	if !ok || out == nil || len(out.Choices) == 0 {
		return "", ErrNoChoices
	}
	return out.Choices[0].Message.Content.Text(), nil
}
