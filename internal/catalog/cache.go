package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/medassure/bill-verifier/internal/embedding"
)

// EmbedCache is a disk-backed embedding cache keyed by sha256(model, text).
// One JSON file per key. The catalog loader is the only writer; a per-key
// lock covers first population so concurrent loads embed a text once.
type EmbedCache struct {
	dir    string
	logger *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

type cacheEntry struct {
	Model  string    `json:"model"`
	Text   string    `json:"text"`
	Vector []float32 `json:"vector"`
}

func NewEmbedCache(dir string, logger *slog.Logger) (*EmbedCache, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &EmbedCache{dir: dir, logger: logger, locks: map[string]*sync.Mutex{}}, nil
}

// Key is the cache key for (modelID, text).
func Key(modelID, text string) string {
	h := sha256.New()
	h.Write([]byte(modelID))
	h.Write([]byte{0})
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}

func (c *EmbedCache) path(key string) string {
	return filepath.Join(c.dir, key+".json")
}

func (c *EmbedCache) keyLock(key string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.locks[key]
	if !ok {
		l = &sync.Mutex{}
		c.locks[key] = l
	}
	return l
}

// Get returns the cached vector or nil.
func (c *EmbedCache) Get(modelID, text string) []float32 {
	raw, err := os.ReadFile(c.path(Key(modelID, text)))
	if err != nil {
		return nil
	}
	var e cacheEntry
	if err := json.Unmarshal(raw, &e); err != nil || e.Model != modelID {
		return nil
	}
	return e.Vector
}

// Put persists a vector. Write errors are logged, not fatal: the cache is
// an optimization, not a source of truth.
func (c *EmbedCache) Put(modelID, text string, vector []float32) {
	raw, err := json.Marshal(cacheEntry{Model: modelID, Text: text, Vector: vector})
	if err != nil {
		c.logger.Warn("embedcache.marshal_error", "error", err)
		return
	}
	key := Key(modelID, text)
	tmp := c.path(key) + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		c.logger.Warn("embedcache.write_error", "key", key, "error", err)
		return
	}
	if err := os.Rename(tmp, c.path(key)); err != nil {
		c.logger.Warn("embedcache.rename_error", "key", key, "error", err)
	}
}

// EmbedThrough resolves vectors for texts, consulting the cache first and
// batching only the misses through the embedder. Results are in input
// order.
func (c *EmbedCache) EmbedThrough(ctx context.Context, embedder embedding.Embedder, texts []string) ([][]float32, error) {
	model := embedder.ModelID()
	out := make([][]float32, len(texts))
	var missIdx []int
	var missTexts []string

	for i, t := range texts {
		lock := c.keyLock(Key(model, t))
		lock.Lock()
		v := c.Get(model, t)
		lock.Unlock()
		if v != nil {
			out[i] = v
			continue
		}
		missIdx = append(missIdx, i)
		missTexts = append(missTexts, t)
	}
	if len(missTexts) == 0 {
		return out, nil
	}

	vecs, err := embedder.Embed(ctx, missTexts)
	if err != nil {
		return nil, err
	}
	if len(vecs) != len(missTexts) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d texts", len(vecs), len(missTexts))
	}
	for j, i := range missIdx {
		out[i] = vecs[j]
		lock := c.keyLock(Key(model, texts[i]))
		lock.Lock()
		c.Put(model, texts[i], vecs[j])
		lock.Unlock()
	}
	c.logger.Debug("embedcache.populated",
		"requested", len(texts), "hits", len(texts)-len(missTexts), "misses", len(missTexts))
	return out, nil
}
