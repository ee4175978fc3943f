package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	housingv1 "github.com/fyang93/housing-ocr/gen/proto/housing/v1"
	"github.com/fyang93/housing-ocr/gen/ent"
	"github.com/fyang93/housing-ocr/internal/common"
	"github.com/fyang93/housing-ocr/internal/export"
	"github.com/fyang93/housing-ocr/internal/ingest"
	"github.com/fyang93/housing-ocr/internal/llm"
	"github.com/fyang93/housing-ocr/internal/models"
	"github.com/fyang93/housing-ocr/internal/ocr"
	"github.com/fyang93/housing-ocr/internal/pipeline"
	"github.com/fyang93/housing-ocr/internal/repository"
	"github.com/fyang93/housing-ocr/internal/scheduler"
	"github.com/fyang93/housing-ocr/internal/server"
	"github.com/fyang93/housing-ocr/internal/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Ledger: Postgres when DB_URL is set, local sqlite otherwise.
	var entc *ent.Client
	if cfg.Database.DSN != "" {
		client, pool, err := repository.Open(ctx, repository.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
		if err != nil {
			logger.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		entc = client
	} else {
		client, err := repository.OpenSQLite(cfg.Database.SQLitePath, logger)
		if err != nil {
			logger.Error("sqlite open failed", "path", cfg.Database.SQLitePath, "error", err)
			os.Exit(1)
		}
		entc = client
	}
	defer func() {
		if err := entc.Close(); err != nil {
			logger.Warn("ledger close error", "error", err)
		}
	}()

	if err := repository.Migrate(ctx, entc); err != nil {
		logger.Error("schema migration failed", "error", err)
		os.Exit(1)
	}

	contentStore, err := store.New(cfg.Store.UploadDir, logger)
	if err != nil {
		logger.Error("content store init failed", "dir", cfg.Store.UploadDir, "error", err)
		os.Exit(1)
	}

	registry, err := models.NewRegistry(cfg.Store.ModelFile, cfg.LLM.Models, logger)
	if err != nil {
		logger.Error("model registry init failed", "path", cfg.Store.ModelFile, "error", err)
		os.Exit(1)
	}

	docs := repository.NewDocumentRepository(entc, logger)
	travel := repository.NewTravelRepository(entc, logger)
	ingestor := ingest.NewUsecase(docs, contentStore, logger)

	ocrClient := ocr.NewClient(ocr.Config{
		Endpoint:    cfg.OCR.Endpoint,
		Model:       cfg.OCR.Model,
		MaxRetries:  cfg.OCR.MaxRetries,
		RetryDelay:  cfg.OCR.RetryDelay,
		CallTimeout: cfg.OCR.CallTimeout,
	}, logger)
	llmClient := llm.NewClient(llm.ClientConfig{
		BaseURL:       cfg.LLM.BaseURL,
		APIKey:        cfg.LLM.APIKey,
		Temperature:   cfg.LLM.Temperature,
		CallTimeout:   cfg.LLM.CallTimeout,
		RateCooldown:  cfg.LLM.RateCooldown,
		MinFieldCount: cfg.LLM.MinFieldCount,
	}, registry, logger)

	proc := pipeline.NewProcessor(logger,
		pipeline.NewOCRStage(docs, ocrClient, logger),
		pipeline.NewParseStage(docs, llmClient, logger),
	)

	sched := scheduler.New(docs, proc, logger,
		scheduler.WithSweepInterval(cfg.Scheduler.SweepInterval),
		scheduler.WithWorkers(cfg.Scheduler.Workers),
		scheduler.WithBatchSize(cfg.Scheduler.BatchSize),
		scheduler.WithStaleThreshold(cfg.Scheduler.StaleThreshold),
		scheduler.WithStageTimeout(cfg.Scheduler.StageTimeout),
	)
	sched.Start(ctx)

	if cfg.Store.InboxDir != "" {
		err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Inbox:       cfg.Store.InboxDir,
			InitialScan: true,
		}, ingestor, logger)
		if err != nil {
			logger.Error("inbox watcher failed", "inbox", cfg.Store.InboxDir, "error", err)
			os.Exit(1)
		}
	}

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	exporter := export.NewService(docs, logger)
	housingv1.RegisterDocumentServiceServer(grpcServer, server.NewDocumentService(ingestor, docs, contentStore, exporter, logger))
	housingv1.RegisterModelServiceServer(grpcServer, server.NewModelService(registry, logger))
	housingv1.RegisterTravelTimeServiceServer(grpcServer, server.NewTravelTimeService(travel, logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	grpcServer.GracefulStop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	sched.Shutdown(shutdownCtx)
	logger.Info("stopped")
}
