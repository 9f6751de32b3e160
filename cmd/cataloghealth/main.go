// cataloghealth loads the tie-up catalog and prints a per-hospital
// summary. Exits non-zero when any sheet fails validation.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/medassure/bill-verifier/internal/catalog"
	"github.com/medassure/bill-verifier/internal/common"
	"github.com/medassure/bill-verifier/internal/embedding"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	cfg := common.LoadConfig()
	ctx := context.Background()

	embedder := embedding.NewClient(cfg.Embedding, logger)
	cache, err := catalog.NewEmbedCache(cfg.Embedding.CacheDir, logger)
	if err != nil {
		logger.Error("open embedding cache", "error", err)
		os.Exit(1)
	}
	loader := catalog.Loader{Dir: cfg.Catalog.Dir, Embedder: embedder, Cache: cache, Logger: logger}

	cat, err := loader.Load(ctx)
	if err != nil {
		logger.Error("catalog load failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("catalog OK: %d hospitals (model %s)\n", len(cat.Hospitals), cat.ModelID)
	for _, h := range cat.Hospitals {
		items := 0
		for _, c := range h.Sheet.Categories {
			items += len(c.Items)
		}
		fmt.Printf("  %-40s %3d categories %5d items (%s.json)\n",
			h.Name, len(h.Sheet.Categories), items, h.Slug)
	}
}
