package common

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.Database.DSN == "" {
		t.Fatalf("expected a sqlite default DSN")
	}
	if cfg.Server.HTTPAddr != ":8000" {
		t.Fatalf("HTTPAddr = %q, want :8000", cfg.Server.HTTPAddr)
	}
	if cfg.OCR.Tesseract != "tesseract" || cfg.OCR.Language != "eng" {
		t.Fatalf("ocr defaults = %+v", cfg.OCR)
	}
	if cfg.OCR.ConfidenceThreshold != 80 {
		t.Fatalf("ConfidenceThreshold = %v, want 80", cfg.OCR.ConfidenceThreshold)
	}
	if cfg.Invoice.Pdftotext != "pdftotext" || cfg.Invoice.MaxPages != 20 {
		t.Fatalf("invoice defaults = %+v", cfg.Invoice)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9001")
	t.Setenv("OCR_CONFIDENCE_THRESHOLD", "72.5")
	t.Setenv("DB_MAX_CONN_LIFETIME", "1h")
	t.Setenv("INVOICE_MAX_PAGES", "5")

	cfg := LoadConfig()
	if cfg.Server.HTTPAddr != ":9001" {
		t.Fatalf("HTTPAddr = %q", cfg.Server.HTTPAddr)
	}
	if cfg.OCR.ConfidenceThreshold != 72.5 {
		t.Fatalf("ConfidenceThreshold = %v", cfg.OCR.ConfidenceThreshold)
	}
	if cfg.Database.MaxConnLifetime != time.Hour {
		t.Fatalf("MaxConnLifetime = %v", cfg.Database.MaxConnLifetime)
	}
	if cfg.Invoice.MaxPages != 5 {
		t.Fatalf("MaxPages = %d", cfg.Invoice.MaxPages)
	}
}

func TestLoadConfigIgnoresMalformedValues(t *testing.T) {
	t.Setenv("OCR_CONFIDENCE_THRESHOLD", "very high")
	t.Setenv("MAX_UPLOAD_MB", "lots")

	cfg := LoadConfig()
	if cfg.OCR.ConfidenceThreshold != 80 {
		t.Fatalf("ConfidenceThreshold = %v, want default on parse failure", cfg.OCR.ConfidenceThreshold)
	}
	if cfg.Server.MaxUploadMB != 20 {
		t.Fatalf("MaxUploadMB = %d, want default on parse failure", cfg.Server.MaxUploadMB)
	}
}
