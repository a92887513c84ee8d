package ocr

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
)

// PageSegMode mirrors tesseract's --psm values.
type PageSegMode int

const (
	PSMAuto         PageSegMode = 3  // fully automatic page segmentation
	PSMUniformBlock PageSegMode = 6  // single uniform block of text
	PSMSingleLine   PageSegMode = 7  // single text line
	PSMSparseText   PageSegMode = 11 // sparse text, find as much as possible
)

func (m PageSegMode) String() string { return fmt.Sprintf("psm%d", int(m)) }

// OEM 2 runs the legacy and LSTM engines combined.
const engineMode = 2

// Recognizer turns a raster image into text with a mean word confidence
// in [0,100]. Implementations must report an empty string and confidence 0
// when no text is found.
type Recognizer interface {
	// Available reports whether the underlying engine can be invoked at all.
	Available(ctx context.Context) error
	Recognize(ctx context.Context, img image.Image, mode PageSegMode) (text string, confidence float64, err error)
}

// Config configures the tesseract binary invocation.
type Config struct {
	Tesseract   string // binary name or absolute path; if empty -> "tesseract"
	TessdataDir string
	Language    string // default "eng"
	TempDir     string // scratch dir for per-attempt PNGs; "" -> os.TempDir
}

// Tesseract shells out to the tesseract binary in TSV mode, one invocation
// per attempt, and derives text plus mean word confidence from the output.
type Tesseract struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewTesseract(cfg Config, logger *slog.Logger) *Tesseract {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Language == "" {
		cfg.Language = "eng"
	}
	return &Tesseract{cfg: cfg, runner: execRunner{}, logger: logger}
}

// NewTesseractWithRunner is NewTesseract with an injected Runner, for tests.
func NewTesseractWithRunner(cfg Config, runner Runner, logger *slog.Logger) *Tesseract {
	t := NewTesseract(cfg, logger)
	t.runner = runner
	return t
}

// Available runs `tesseract --version`; callers check this once per scan,
// not per attempt.
func (t *Tesseract) Available(ctx context.Context) error {
	if _, errb, err := t.runner.Run(ctx, t.cfg.Tesseract, "--version"); err != nil {
		return fmt.Errorf("tesseract not runnable (%s): %w", truncate(string(errb), 256), err)
	}
	return nil
}

// Recognize writes img to a scratch PNG and runs
// `tesseract <file> stdout -l <lang> --oem 2 --psm <mode> tsv`.
func (t *Tesseract) Recognize(ctx context.Context, img image.Image, mode PageSegMode) (string, float64, error) {
	tmpDir, err := os.MkdirTemp(t.cfg.TempDir, "filatrack-ocr-*")
	if err != nil {
		return "", 0, fmt.Errorf("scratch dir: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			t.logger.Warn("failed to remove scratch dir", "dir", tmpDir, "error", rmErr)
		}
	}()

	path := filepath.Join(tmpDir, "attempt.png")
	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("scratch file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return "", 0, fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", 0, fmt.Errorf("close scratch file: %w", err)
	}

	args := []string{path, "stdout", "-l", t.cfg.Language,
		"--oem", fmt.Sprintf("%d", engineMode),
		"--psm", fmt.Sprintf("%d", int(mode)),
	}
	if t.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", t.cfg.TessdataDir)
	}
	args = append(args, "tsv")

	out, errb, err := t.runner.Run(ctx, t.cfg.Tesseract, args...)
	if err != nil {
		return "", 0, fmt.Errorf("tesseract %s: %s: %w", mode, truncate(string(errb), 512), err)
	}

	text, conf := parseTSV(out)
	return text, conf, nil
}
