package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/filatrack/filatrack/constants"
	"github.com/filatrack/filatrack/internal/common"
	"github.com/filatrack/filatrack/internal/ocr"
	"github.com/filatrack/filatrack/internal/scan"
)

// scanlabel runs the label pipeline on a single image file and prints the
// result as JSON. Useful for tuning preprocessing without the server.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "scanlabel <image-file>")
		os.Exit(2)
	}

	path := os.Args[1]
	if !constants.IsImageExt(filepath.Ext(path)) {
		logger.Error("unsupported file type", "path", path, "ext", filepath.Ext(path))
		os.Exit(2)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read image", "path", path, "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	recognizer := ocr.NewTesseract(ocr.Config{
		Tesseract:   cfg.OCR.Tesseract,
		TessdataDir: cfg.OCR.TessdataDir,
		Language:    cfg.OCR.Language,
		TempDir:     cfg.OCR.TempDir,
	}, logger)
	scanner := scan.NewScanner(recognizer, scan.Config{
		Threshold: cfg.OCR.ConfidenceThreshold,
	}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	start := time.Now()
	result, err := scanner.Scan(ctx, data)
	if err != nil {
		logger.Error("scan failed", "error", err, "duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
}
