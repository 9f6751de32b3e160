package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medassure/bill-verifier/internal/common"
)

// GenerateOptions tune one chat completion call.
type GenerateOptions struct {
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// ChatBackend is the collaborator contract for a local, stateless chat
// endpoint.
type ChatBackend interface {
	Generate(ctx context.Context, model, prompt string, opts GenerateOptions) (string, error)
}

// Client talks to an OpenAI-compatible chat/completions endpoint. Every
// call is correlated in the logs by a call id together with the model
// that served it, so primary/secondary arbiter fallbacks are traceable.
type Client struct {
	cfg        common.LLMConfig
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg common.LLMConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Messages    []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate posts one user prompt and returns the assistant text.
func (c *Client) Generate(ctx context.Context, model, prompt string, opts GenerateOptions) (string, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = c.cfg.Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	callID := uuid.New().String()
	start := time.Now()

	raw, err := c.postChat(ctx, callID, chatRequest{
		Model:       model,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}

	var cc chatResponse
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("chat.decode_error",
			"call_id", callID, "model", model, "raw_bytes", len(raw), "error", err)
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return "", fmt.Errorf("no choices in chat response")
	}
	c.logger.Debug("chat.ok",
		"call_id", callID,
		"model", model,
		"prompt_len", len(prompt),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return strings.TrimSpace(cc.Choices[0].Message.Content), nil
}

// postChat sends one completion request and returns the raw body.
func (c *Client) postChat(ctx context.Context, callID string, body chatRequest) ([]byte, error) {
	start := time.Now()

	bs, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode chat request: %w", err)
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bs))
	if err != nil {
		return nil, fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	c.logger.Debug("chat.request",
		"call_id", callID,
		"model", body.Model,
		"content_length", len(bs),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("chat.send_error",
			"call_id", callID,
			"model", body.Model,
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("chat.response_body_close_error", "call_id", callID, "error", cerr)
		}
	}()

	raw, _ := io.ReadAll(resp.Body)

	c.logger.Debug("chat.response",
		"call_id", callID,
		"model", body.Model,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("chat status %d: %s", resp.StatusCode, capBody(raw, 512))
	}
	return raw, nil
}

func capBody(b []byte, max int) string {
	if len(b) <= max {
		return string(b)
	}
	return string(b[:max]) + "...(truncated)"
}
