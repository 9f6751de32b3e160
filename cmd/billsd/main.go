// billsd is the bill-verification daemon: state store, rate catalog,
// upload pipeline worker, retention worker, and the gRPC caller surface.
package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	billsv1 "github.com/medassure/bill-verifier/gen/bills/v1"

	"github.com/medassure/bill-verifier/internal/billextract"
	"github.com/medassure/bill-verifier/internal/catalog"
	"github.com/medassure/bill-verifier/internal/common"
	"github.com/medassure/bill-verifier/internal/embedding"
	"github.com/medassure/bill-verifier/internal/export"
	"github.com/medassure/bill-verifier/internal/llm"
	"github.com/medassure/bill-verifier/internal/ocr"
	"github.com/medassure/bill-verifier/internal/pipeline"
	"github.com/medassure/bill-verifier/internal/repository"
	"github.com/medassure/bill-verifier/internal/retention"
	"github.com/medassure/bill-verifier/internal/server"
	"github.com/medassure/bill-verifier/internal/verifier"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL env var is required")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// State store
	client, pool, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	defer func() { _ = client.Close() }()
	repo := repository.NewUploadRepository(client, logger)

	// Rate catalog + embedding cache
	embedder := embedding.NewClient(cfg.Embedding, logger)
	cache, err := catalog.NewEmbedCache(cfg.Embedding.CacheDir, logger)
	if err != nil {
		logger.Error("open embedding cache", "error", err)
		os.Exit(1)
	}
	catalogStore := catalog.NewStore(catalog.Loader{
		Dir:      cfg.Catalog.Dir,
		Embedder: embedder,
		Cache:    cache,
		Logger:   logger,
	})
	if err := catalogStore.Load(ctx); err != nil {
		logger.Error("load rate catalog", "error", err)
		os.Exit(1)
	}

	// Verification stack
	chat := llm.NewClient(cfg.LLM, logger)
	arbiter := llm.NewArbiter(chat, cfg.LLM, logger)
	v := verifier.New(cfg.Verifier, embedder, arbiter, logger)

	// Pipeline
	uploads := pipeline.NewService(repo, catalogStore, cfg.Pipeline, logger)
	extractor := ocr.NewExtractor(cfg.OCR, logger)
	parser := billextract.NewParser(logger)
	worker := pipeline.NewWorker(uploads, repo, extractor, parser, v, catalogStore, cfg.Pipeline, logger)
	go worker.Run(ctx)

	// Retention
	retentionWorker := retention.NewWorker(repo, uploads, cfg.Retention, logger)
	go retentionWorker.Run(ctx)

	// gRPC surface
	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	exporter := export.NewService(repo, logger)
	svc := server.NewBillsService(repo, uploads, worker, exporter, catalogStore, logger)
	billsv1.RegisterBillsServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
