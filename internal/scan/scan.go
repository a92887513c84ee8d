// Package scan implements the label-scanning pipeline: decode and validate
// the upload, walk a fixed preprocessing-strategy x page-segmentation-mode
// grid through the OCR engine with a first-good-enough early stop, and
// extract structured label fields from the winning text.
package scan

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"strings"

	"github.com/filatrack/filatrack/internal/entity"
	"github.com/filatrack/filatrack/internal/label"
	"github.com/filatrack/filatrack/internal/ocr"
)

// DefaultThreshold is the early-stop confidence bound. A tuning choice, not
// a correctness one; override it through Config.
const DefaultThreshold = 80

// FallbackStrategy is the StrategyUsed sentinel for the last-ditch attempt
// on the original, unprocessed image.
const FallbackStrategy = "fallback-original"

// defaultModes is the per-strategy segmentation order. Labels are usually
// one coherent block, so the uniform-block mode leads; the rest are
// fallbacks for atypical layouts.
var defaultModes = []ocr.PageSegMode{
	ocr.PSMUniformBlock,
	ocr.PSMSparseText,
	ocr.PSMAuto,
	ocr.PSMSingleLine,
}

// Config holds the scanner's tunables. Zero values select the defaults.
type Config struct {
	Threshold  float64           // early-stop bound, exclusive; <=0 -> DefaultThreshold
	Strategies []Strategy        // nil -> the package strategy bank
	Modes      []ocr.PageSegMode // nil -> defaultModes
}

// Scanner drives one label scan end to end. It holds no per-scan state;
// concurrent Scan calls are independent.
type Scanner struct {
	rec    ocr.Recognizer
	cfg    Config
	logger *slog.Logger
}

func NewScanner(rec ocr.Recognizer, cfg Config, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Threshold <= 0 {
		cfg.Threshold = DefaultThreshold
	}
	if cfg.Strategies == nil {
		cfg.Strategies = Strategies
	}
	if cfg.Modes == nil {
		cfg.Modes = defaultModes
	}
	return &Scanner{rec: rec, cfg: cfg, logger: logger}
}

// attempt is one cell of the strategy-major grid.
type attempt struct {
	strategy Strategy
	mode     ocr.PageSegMode
}

// candidate records one attempt's outcome for the exhaustion pick.
type candidate struct {
	text string
	conf float64
	id   string
}

// Scan runs the full pipeline on raw upload bytes.
//
// Fatal conditions (bad image, engine missing) return an error wrapping
// ErrInvalidImage or ErrEngineUnavailable. Everything else comes back as a
// ScanResult: low confidence and no-text outcomes are results, not errors.
func (s *Scanner) Scan(ctx context.Context, data []byte) (entity.ScanResult, error) {
	img, err := DecodeImage(data)
	if err != nil {
		return entity.ScanResult{}, err
	}
	if err := s.rec.Available(ctx); err != nil {
		return entity.ScanResult{}, fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}

	// Explicit ordered grid, strategy-major. Worst case len(grid) engine
	// calls; typical case one, when the first attempt clears the threshold.
	grid := make([]attempt, 0, len(s.cfg.Strategies)*len(s.cfg.Modes))
	for _, st := range s.cfg.Strategies {
		for _, m := range s.cfg.Modes {
			grid = append(grid, attempt{strategy: st, mode: m})
		}
	}

	var (
		best        candidate
		haveBest    bool
		errored     int
		preprocessed = make(map[string]image.Image, len(s.cfg.Strategies))
	)
	for _, at := range grid {
		pre, ok := preprocessed[at.strategy.Name]
		if !ok {
			pre = at.strategy.Apply(img)
			preprocessed[at.strategy.Name] = pre
		}

		id := at.strategy.Name + "+" + at.mode.String()
		text, conf, err := s.rec.Recognize(ctx, pre, at.mode)
		if err != nil {
			// A per-attempt engine failure is just a zero-confidence
			// candidate; the loop keeps going.
			errored++
			s.logger.Warn("ocr attempt failed", "attempt", id, "error", err)
			text, conf = "", 0
		}
		text = strings.TrimSpace(text)
		if text == "" {
			conf = 0
		}

		c := candidate{text: text, conf: conf, id: id}
		// Strict > keeps the earliest-attempted candidate on ties.
		if !haveBest || c.conf > best.conf {
			best, haveBest = c, true
		}
		if c.conf > s.cfg.Threshold {
			s.logger.Info("scan early stop", "attempt", id, "confidence", conf)
			return s.finish(c), nil
		}
	}

	if errored == len(grid) {
		// Every attempt died at the engine level. One unconditional try on
		// the original, unprocessed image before giving up.
		text, conf, err := s.rec.Recognize(ctx, img, s.cfg.Modes[0])
		if err != nil {
			s.logger.Error("scan failed on all attempts", "attempts", len(grid)+1, "error", err)
			return entity.ScanResult{
				StrategyUsed: FallbackStrategy,
				Error:        fmt.Sprintf("ocr failed on every attempt: %v", err),
			}, nil
		}
		text = strings.TrimSpace(text)
		if text == "" {
			conf = 0
		}
		best = candidate{text: text, conf: conf, id: FallbackStrategy}
	}

	s.logger.Info("scan exhausted grid", "winner", best.id, "confidence", best.conf)
	return s.finish(best), nil
}

// finish turns the winning candidate into an immutable ScanResult. Fields
// are only ever populated from non-empty text.
func (s *Scanner) finish(c candidate) entity.ScanResult {
	res := entity.ScanResult{
		RawText:      c.text,
		Confidence:   c.conf,
		StrategyUsed: c.id,
	}
	if c.text == "" {
		res.Confidence = 0
		res.Error = "no text detected in image"
		return res
	}
	res.LabelFields = label.Extract(c.text)
	return res
}
