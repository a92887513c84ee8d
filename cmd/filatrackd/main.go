package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/filatrack/filatrack/internal/common"
	"github.com/filatrack/filatrack/internal/export"
	"github.com/filatrack/filatrack/internal/invoice"
	"github.com/filatrack/filatrack/internal/ocr"
	"github.com/filatrack/filatrack/internal/repository"
	"github.com/filatrack/filatrack/internal/scan"
	"github.com/filatrack/filatrack/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		logger.Info("loaded .env file")
	}

	cfg := common.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	db, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer db.Close(logger)

	if err := db.Ping(ctx, cfg.Database.DialTimeout); err != nil {
		logger.Error("db health failed", "error", err)
		os.Exit(1)
	}
	if err := db.Migrate(ctx); err != nil {
		logger.Error("schema migration failed", "error", err)
		os.Exit(1)
	}
	logger.Info("db ready", "dsn_scheme", schemeOf(cfg.Database.DSN))

	products := repository.NewProductRepository(db.Client, logger)
	spools := repository.NewSpoolRepository(db.Client, logger)
	orders := repository.NewOrderRepository(db.Client, logger)

	recognizer := ocr.NewTesseract(ocr.Config{
		Tesseract:   cfg.OCR.Tesseract,
		TessdataDir: cfg.OCR.TessdataDir,
		Language:    cfg.OCR.Language,
		TempDir:     cfg.OCR.TempDir,
	}, logger)
	scanner := scan.NewScanner(recognizer, scan.Config{
		Threshold: cfg.OCR.ConfidenceThreshold,
	}, logger)

	runner := ocr.NewRunner()
	parser := invoice.NewParser(cfg.Invoice, runner, logger)
	importer := invoice.NewImporter(products, spools, orders, logger)
	exporter := export.NewService(products, spools, logger)

	srv := server.New(cfg.Server, server.Deps{
		Products: products,
		Spools:   spools,
		Orders:   orders,
		Scanner:  scanner,
		Parser:   parser,
		Importer: importer,
		Exporter: exporter,
		Logger:   logger,
	})

	go func() {
		logger.Info("http serving", "addr", cfg.Server.HTTPAddr)
		if err := srv.Listen(cfg.Server.HTTPAddr); err != nil {
			logger.Error("http serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")
	if err := srv.Shutdown(); err != nil {
		logger.Error("shutdown", "error", err)
	}
	logger.Info("bye")
}

func schemeOf(dsn string) string {
	for i := 0; i < len(dsn); i++ {
		if dsn[i] == ':' {
			return dsn[:i]
		}
	}
	return "file"
}
