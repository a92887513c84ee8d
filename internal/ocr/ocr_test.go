package ocr

import (
	"context"
	"errors"
	"image"
	"os"
	"strings"
	"testing"
)

type fakeRunner struct {
	name string
	args []string
	out  []byte
	errb []byte
	err  error
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.name = name
	f.args = append([]string(nil), args...)
	return f.out, f.errb, f.err
}

func TestPageSegModeString(t *testing.T) {
	cases := map[PageSegMode]string{
		PSMAuto:         "psm3",
		PSMUniformBlock: "psm6",
		PSMSingleLine:   "psm7",
		PSMSparseText:   "psm11",
	}
	for mode, want := range cases {
		if got := mode.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(mode), got, want)
		}
	}
}

func TestRecognizeBuildsHybridEngineArgs(t *testing.T) {
	runner := &fakeRunner{out: []byte(tsvHeader + "\n" + tsvWord("1", "1", "1", "75", "PETG"))}
	rec := NewTesseractWithRunner(Config{TessdataDir: "/opt/tessdata", TempDir: t.TempDir()}, runner, nil)

	text, conf, err := rec.Recognize(context.Background(), image.NewRGBA(image.Rect(0, 0, 10, 10)), PSMSparseText)
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if text != "PETG" || conf != 75 {
		t.Fatalf("got %q/%v, want PETG/75", text, conf)
	}

	if runner.name != "tesseract" {
		t.Fatalf("binary = %q, want tesseract", runner.name)
	}
	joined := strings.Join(runner.args, " ")
	for _, want := range []string{
		"stdout",
		"-l eng",
		"--oem 2",
		"--psm 11",
		"--tessdata-dir /opt/tessdata",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("args %q missing %q", joined, want)
		}
	}
	if runner.args[len(runner.args)-1] != "tsv" {
		t.Fatalf("last arg = %q, want tsv output mode", runner.args[len(runner.args)-1])
	}

	// The scratch png is written before the engine runs, under a temp dir
	// that is removed afterwards.
	if _, err := os.Stat(runner.args[0]); !os.IsNotExist(err) {
		t.Fatalf("scratch file %q not cleaned up", runner.args[0])
	}
}

func TestRecognizeWrapsEngineFailure(t *testing.T) {
	runner := &fakeRunner{errb: []byte("boom"), err: errors.New("exit status 1")}
	rec := NewTesseractWithRunner(Config{TempDir: t.TempDir()}, runner, nil)

	_, _, err := rec.Recognize(context.Background(), image.NewRGBA(image.Rect(0, 0, 4, 4)), PSMAuto)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("error %q does not carry stderr", err)
	}
}

func TestRecognizeEmptyOutputIsZeroConfidence(t *testing.T) {
	runner := &fakeRunner{out: []byte(tsvHeader)}
	rec := NewTesseractWithRunner(Config{TempDir: t.TempDir()}, runner, nil)

	text, conf, err := rec.Recognize(context.Background(), image.NewRGBA(image.Rect(0, 0, 4, 4)), PSMAuto)
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if text != "" || conf != 0 {
		t.Fatalf("got %q/%v, want empty/0", text, conf)
	}
}

func TestAvailable(t *testing.T) {
	ok := NewTesseractWithRunner(Config{}, &fakeRunner{out: []byte("tesseract 5.3.0")}, nil)
	if err := ok.Available(context.Background()); err != nil {
		t.Fatalf("Available() error = %v", err)
	}

	missing := NewTesseractWithRunner(Config{}, &fakeRunner{err: errors.New("not found")}, nil)
	if err := missing.Available(context.Background()); err == nil {
		t.Fatalf("expected error when binary is missing")
	}
}
