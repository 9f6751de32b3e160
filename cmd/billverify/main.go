// billverify processes one PDF end to end from the command line: OCR +
// extract, verify against the loaded rate catalog, print the rendered
// result. It works from a file path only: it does not open the upload
// store, and no upload record is marked processing or updated.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/medassure/bill-verifier/internal/billextract"
	"github.com/medassure/bill-verifier/internal/catalog"
	"github.com/medassure/bill-verifier/internal/common"
	"github.com/medassure/bill-verifier/internal/embedding"
	"github.com/medassure/bill-verifier/internal/llm"
	"github.com/medassure/bill-verifier/internal/ocr"
	"github.com/medassure/bill-verifier/internal/render"
	"github.com/medassure/bill-verifier/internal/verifier"
)

func main() {
	_ = godotenv.Load()

	var (
		pdfPath  = flag.String("pdf", "", "path to the bill PDF (required)")
		hospital = flag.String("hospital", "", "asserted hospital name (required)")
		debug    = flag.Bool("debug", false, "print the debug view with candidate scores")
	)
	flag.Parse()
	if *pdfPath == "" || *hospital == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)
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
		logger.Error("load rate catalog", "error", err)
		os.Exit(1)
	}

	extractor := ocr.NewExtractor(cfg.OCR, logger)
	pages, warnings, err := extractor.ExtractPages(ctx, *pdfPath)
	if err != nil {
		logger.Error("ocr failed", "error", err)
		os.Exit(1)
	}
	doc := billextract.NewParser(logger).Parse(pages, warnings)

	chat := llm.NewClient(cfg.LLM, logger)
	arbiter := llm.NewArbiter(chat, cfg.LLM, logger)
	v := verifier.New(cfg.Verifier, embedder, arbiter, logger)

	in := doc.ToBillInput(*hospital, doc.CategoryOrder)
	result, err := v.VerifyBill(ctx, in, cat)
	if err != nil {
		logger.Error("verification failed", "error", err)
		os.Exit(1)
	}

	if *debug {
		fmt.Print(render.Debug(result))
	} else {
		fmt.Print(render.Final(result))
	}
}
