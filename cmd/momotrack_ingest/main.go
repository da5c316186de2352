package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/rkabera/momotrack/internal/core/services"
	"github.com/rkabera/momotrack/internal/platform/xmlexport"
	"github.com/rkabera/momotrack/internal/repositories/database/pgsql"
	"github.com/rkabera/momotrack/pkg/config"
	"github.com/rkabera/momotrack/pkg/database"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	exportPath := flag.String("file", "", "path to the SMS export XML (overrides SMS_EXPORT_PATH)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *exportPath != "" {
		cfg.SMSExportPath = *exportPath
	}

	ctx := context.Background()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.RunMigrations(cfg.DatabaseURL, "file://migrations"); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// An unreadable or malformed export is the only batch-fatal condition.
	messages, err := xmlexport.ReadFile(cfg.SMSExportPath)
	if err != nil {
		logger.Error("Failed to read sms export", slog.String("path", cfg.SMSExportPath), slog.String("error", err.Error()))
		os.Exit(1)
	}

	pipeline := services.NewBatchPipeline(
		pgsql.NewRawMessageRepository(dbPool),
		pgsql.NewTransactionRepository(dbPool),
		pgsql.NewProcessingLogRepository(dbPool),
		logger,
		cfg.IngestChunkSize,
	)

	summary, err := pipeline.Run(ctx, messages)
	if err != nil {
		logger.Error("Ingestion aborted", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Ingestion finished",
		slog.String("run_id", summary.RunID),
		slog.Int("total", summary.Total),
		slog.Int("processed", summary.Processed),
		slog.Int("ignored", summary.Ignored),
		slog.Int("errors", summary.Errors),
	)
}
