package scan

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"reflect"
	"testing"

	"github.com/filatrack/filatrack/internal/ocr"
)

// fakeRecognizer scripts per-call outcomes by call index.
type fakeRecognizer struct {
	availableErr error
	calls        int
	modes        []ocr.PageSegMode
	fn           func(call int, mode ocr.PageSegMode) (string, float64, error)
}

func (f *fakeRecognizer) Available(ctx context.Context) error { return f.availableErr }

func (f *fakeRecognizer) Recognize(ctx context.Context, img image.Image, mode ocr.PageSegMode) (string, float64, error) {
	call := f.calls
	f.calls++
	f.modes = append(f.modes, mode)
	return f.fn(call, mode)
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 120, 60))
	for y := 0; y < 60; y++ {
		for x := 0; x < 120; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func TestScanEarlyStopOnFirstGoodAttempt(t *testing.T) {
	rec := &fakeRecognizer{fn: func(call int, mode ocr.PageSegMode) (string, float64, error) {
		return "SUNLU PLA+ Yellow 1.75mm X1234ABCDEF", 95, nil
	}}
	s := NewScanner(rec, Config{}, nil)

	res, err := s.Scan(context.Background(), testPNG(t))
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if rec.calls != 1 {
		t.Fatalf("expected 1 engine call, got %d", rec.calls)
	}
	if res.StrategyUsed != "moderate+psm6" {
		t.Fatalf("StrategyUsed = %q, want moderate+psm6", res.StrategyUsed)
	}
	if res.Confidence != 95 {
		t.Fatalf("Confidence = %v, want 95", res.Confidence)
	}
	if res.Brand == nil || *res.Brand != "Sunlu" {
		t.Fatalf("Brand = %v, want Sunlu", res.Brand)
	}
	if res.Material == nil || *res.Material != "PLA+" {
		t.Fatalf("Material = %v, want PLA+", res.Material)
	}
	if res.DiameterMM == nil || *res.DiameterMM != 1.75 {
		t.Fatalf("DiameterMM = %v, want 1.75", res.DiameterMM)
	}
}

func TestScanInvalidImageSkipsEngine(t *testing.T) {
	rec := &fakeRecognizer{fn: func(call int, mode ocr.PageSegMode) (string, float64, error) {
		return "", 0, nil
	}}
	s := NewScanner(rec, Config{}, nil)

	_, err := s.Scan(context.Background(), []byte("not an image at all"))
	if !errors.Is(err, ErrInvalidImage) {
		t.Fatalf("Scan() error = %v, want ErrInvalidImage", err)
	}
	if rec.calls != 0 {
		t.Fatalf("engine called %d times on invalid image", rec.calls)
	}
}

func TestScanEngineUnavailable(t *testing.T) {
	rec := &fakeRecognizer{
		availableErr: errors.New("tesseract missing"),
		fn: func(call int, mode ocr.PageSegMode) (string, float64, error) {
			return "", 0, nil
		},
	}
	s := NewScanner(rec, Config{}, nil)

	_, err := s.Scan(context.Background(), testPNG(t))
	if !errors.Is(err, ErrEngineUnavailable) {
		t.Fatalf("Scan() error = %v, want ErrEngineUnavailable", err)
	}
}

func TestScanExhaustionKeepsEarliestOnTies(t *testing.T) {
	// Every attempt stays below the threshold with the same confidence;
	// the first attempted candidate must win.
	rec := &fakeRecognizer{fn: func(call int, mode ocr.PageSegMode) (string, float64, error) {
		if call == 0 {
			return "first attempt text PLA", 50, nil
		}
		return "later attempt text", 50, nil
	}}
	s := NewScanner(rec, Config{}, nil)

	res, err := s.Scan(context.Background(), testPNG(t))
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if rec.calls != 16 {
		t.Fatalf("expected full 16-attempt grid, got %d calls", rec.calls)
	}
	if res.StrategyUsed != "moderate+psm6" {
		t.Fatalf("StrategyUsed = %q, want moderate+psm6", res.StrategyUsed)
	}
	if res.RawText != "first attempt text PLA" {
		t.Fatalf("RawText = %q", res.RawText)
	}
}

func TestScanExhaustionPicksStrictMax(t *testing.T) {
	rec := &fakeRecognizer{fn: func(call int, mode ocr.PageSegMode) (string, float64, error) {
		if call == 10 {
			return "the best one", 70, nil
		}
		return "mediocre", 40, nil
	}}
	s := NewScanner(rec, Config{}, nil)

	res, err := s.Scan(context.Background(), testPNG(t))
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if res.Confidence != 70 || res.RawText != "the best one" {
		t.Fatalf("winner = %q/%v, want best one at 70", res.RawText, res.Confidence)
	}
	// Call 10 is strategy index 2 (grayscale-binarize), mode index 2 (psm3).
	if res.StrategyUsed != "grayscale-binarize+psm3" {
		t.Fatalf("StrategyUsed = %q", res.StrategyUsed)
	}
}

func TestScanNoTextYieldsZeroConfidence(t *testing.T) {
	rec := &fakeRecognizer{fn: func(call int, mode ocr.PageSegMode) (string, float64, error) {
		return "   ", 65, nil // whitespace only, engine claims confidence anyway
	}}
	s := NewScanner(rec, Config{}, nil)

	res, err := s.Scan(context.Background(), testPNG(t))
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if res.RawText != "" || res.Confidence != 0 {
		t.Fatalf("got text %q conf %v, want empty and 0", res.RawText, res.Confidence)
	}
	if res.Error == "" {
		t.Fatalf("expected a no-text error message")
	}
	if res.Brand != nil || res.Material != nil || res.ColorName != nil || res.DiameterMM != nil || res.Barcode != nil {
		t.Fatalf("fields populated from empty text: %+v", res.LabelFields)
	}
}

func TestScanPerAttemptErrorsBecomeZeroCandidates(t *testing.T) {
	// Half the grid errors; a later low-confidence success must still win.
	rec := &fakeRecognizer{fn: func(call int, mode ocr.PageSegMode) (string, float64, error) {
		if call < 8 {
			return "", 0, errors.New("engine crashed")
		}
		return "salvaged text", 30, nil
	}}
	s := NewScanner(rec, Config{}, nil)

	res, err := s.Scan(context.Background(), testPNG(t))
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if rec.calls != 16 {
		t.Fatalf("expected 16 calls, got %d", rec.calls)
	}
	if res.RawText != "salvaged text" || res.Confidence != 30 {
		t.Fatalf("got %q/%v, want salvaged text at 30", res.RawText, res.Confidence)
	}
}

func TestScanTotalFailureFallsBackToOriginal(t *testing.T) {
	rec := &fakeRecognizer{fn: func(call int, mode ocr.PageSegMode) (string, float64, error) {
		if call < 16 {
			return "", 0, errors.New("engine crashed")
		}
		return "fallback text PETG", 42, nil
	}}
	s := NewScanner(rec, Config{}, nil)

	res, err := s.Scan(context.Background(), testPNG(t))
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if rec.calls != 17 {
		t.Fatalf("expected 16 grid calls + 1 fallback, got %d", rec.calls)
	}
	if res.StrategyUsed != FallbackStrategy {
		t.Fatalf("StrategyUsed = %q, want %q", res.StrategyUsed, FallbackStrategy)
	}
	if res.Confidence != 42 || res.RawText != "fallback text PETG" {
		t.Fatalf("got %q/%v", res.RawText, res.Confidence)
	}
	// Fallback reuses the leading segmentation mode.
	if res.Material == nil || *res.Material != "PETG" {
		t.Fatalf("Material = %v, want PETG", res.Material)
	}
	if got := rec.modes[16]; got != ocr.PSMUniformBlock {
		t.Fatalf("fallback mode = %v, want PSMUniformBlock", got)
	}
}

func TestScanFallbackFailureReturnsErrorResult(t *testing.T) {
	rec := &fakeRecognizer{fn: func(call int, mode ocr.PageSegMode) (string, float64, error) {
		return "", 0, errors.New("engine crashed")
	}}
	s := NewScanner(rec, Config{}, nil)

	res, err := s.Scan(context.Background(), testPNG(t))
	if err != nil {
		t.Fatalf("Scan() error = %v, want nil (failure is a result, not an error)", err)
	}
	if res.StrategyUsed != FallbackStrategy {
		t.Fatalf("StrategyUsed = %q, want %q", res.StrategyUsed, FallbackStrategy)
	}
	if res.Confidence != 0 || res.RawText != "" {
		t.Fatalf("got %q/%v, want empty and 0", res.RawText, res.Confidence)
	}
	if res.Error == "" {
		t.Fatalf("expected error message on total failure")
	}
}

func TestScanIsDeterministic(t *testing.T) {
	mkRec := func() *fakeRecognizer {
		return &fakeRecognizer{fn: func(call int, mode ocr.PageSegMode) (string, float64, error) {
			return "PRUSAMENT PETG Orange 1.75 mm", float64(30 + call), nil
		}}
	}
	data := testPNG(t)

	first, err := NewScanner(mkRec(), Config{}, nil).Scan(context.Background(), data)
	if err != nil {
		t.Fatalf("first Scan() error = %v", err)
	}
	second, err := NewScanner(mkRec(), Config{}, nil).Scan(context.Background(), data)
	if err != nil {
		t.Fatalf("second Scan() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same input produced different results:\n%+v\n%+v", first, second)
	}
}

func TestScanThresholdIsExclusive(t *testing.T) {
	// Exactly the threshold must NOT early-stop.
	rec := &fakeRecognizer{fn: func(call int, mode ocr.PageSegMode) (string, float64, error) {
		return "exactly at threshold", 80, nil
	}}
	s := NewScanner(rec, Config{Threshold: 80}, nil)

	res, err := s.Scan(context.Background(), testPNG(t))
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if rec.calls != 16 {
		t.Fatalf("expected full grid at threshold confidence, got %d calls", rec.calls)
	}
	if res.Confidence != 80 {
		t.Fatalf("Confidence = %v", res.Confidence)
	}
}
