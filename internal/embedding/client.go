// Package embedding is the HTTP client for the embeddings backend. The
// backend speaks the OpenAI-compatible /embeddings wire shape, which both
// local (Ollama-style) and hosted providers expose.
package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/medassure/bill-verifier/internal/common"
)

// Embedder produces L2-normalized vectors for a batch of texts.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	ModelID() string
}

type apiRequest struct {
	Input []string `json:"input"`
	Model string   `json:"model"`
}

type apiResponse struct {
	Data []struct {
		Index     int       `json:"index"`
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

// Client calls the embeddings endpoint with batching and exponential
// backoff on 429/5xx.
type Client struct {
	cfg        common.EmbeddingConfig
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg common.EmbeddingConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxBatchSize <= 0 {
		cfg.MaxBatchSize = 20
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

func (c *Client) ModelID() string { return c.cfg.Model }

// Embed returns one vector per input text, in order. Batches of up to
// MaxBatchSize are sent sequentially; a batch is retried with exponential
// backoff before the whole call fails.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	out := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += c.cfg.MaxBatchSize {
		end := start + c.cfg.MaxBatchSize
		if end > len(texts) {
			end = len(texts)
		}
		vecs, err := c.embedBatch(ctx, texts[start:end])
		if err != nil {
			return nil, err
		}
		out = append(out, vecs...)
	}
	return out, nil
}

func (c *Client) embedBatch(ctx context.Context, batch []string) ([][]float32, error) {
	var lastErr error
	backoff := time.Second
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
			if backoff > time.Minute {
				backoff = time.Minute
			}
		}
		vecs, retryable, err := c.post(ctx, batch)
		if err == nil {
			return vecs, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
		c.logger.Warn("embedding.batch_retry",
			"attempt", attempt+1, "batch_size", len(batch), "error", err)
	}
	return nil, fmt.Errorf("embed batch after %d retries: %w", c.cfg.MaxRetries, lastErr)
}

func (c *Client) post(ctx context.Context, batch []string) ([][]float32, bool, error) {
	start := time.Now()
	body, err := json.Marshal(apiRequest{Input: batch, Model: c.cfg.Model})
	if err != nil {
		return nil, false, fmt.Errorf("marshal request: %w", err)
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/embeddings"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("embedding.response_body_close_error", "error", cerr)
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode/100 == 5 {
		return nil, true, fmt.Errorf("embeddings status %d: %s", resp.StatusCode, truncate(raw, 512))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("embeddings status %d: %s", resp.StatusCode, truncate(raw, 512))
	}

	var parsed apiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, false, fmt.Errorf("parse response: %w", err)
	}
	if len(parsed.Data) != len(batch) {
		return nil, false, fmt.Errorf("expected %d embeddings, got %d", len(batch), len(parsed.Data))
	}

	vecs := make([][]float32, len(batch))
	for _, d := range parsed.Data {
		if d.Index < 0 || d.Index >= len(batch) {
			return nil, false, fmt.Errorf("embedding index %d out of range", d.Index)
		}
		vecs[d.Index] = Normalize(d.Embedding)
	}
	c.logger.Debug("embedding.batch_ok",
		"batch_size", len(batch), "elapsed_ms", time.Since(start).Milliseconds())
	return vecs, false, nil
}

// Normalize L2-normalizes in place and returns v. Cosine similarity over
// normalized vectors reduces to a dot product.
func Normalize(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		return v
	}
	inv := 1.0 / math.Sqrt(sum)
	for i := range v {
		v[i] = float32(float64(v[i]) * inv)
	}
	return v
}

// Dot is the cosine similarity of two normalized vectors.
func Dot(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

func truncate(b []byte, max int) string {
	if len(b) <= max {
		return string(b)
	}
	return string(b[:max]) + "...(truncated)"
}
