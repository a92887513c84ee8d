package scan

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"testing"
)

func TestDecodeImageRejectsEmptyBuffer(t *testing.T) {
	if _, err := DecodeImage(nil); !errors.Is(err, ErrInvalidImage) {
		t.Fatalf("DecodeImage(nil) error = %v, want ErrInvalidImage", err)
	}
	if _, err := DecodeImage([]byte{}); !errors.Is(err, ErrInvalidImage) {
		t.Fatalf("DecodeImage(empty) error = %v, want ErrInvalidImage", err)
	}
}

func TestDecodeImageRejectsGarbage(t *testing.T) {
	if _, err := DecodeImage([]byte("definitely not an image")); !errors.Is(err, ErrInvalidImage) {
		t.Fatalf("error = %v, want ErrInvalidImage", err)
	}
}

func TestDecodeImageRejectsTruncatedPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 50, 50))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	truncated := buf.Bytes()[:buf.Len()/2]
	if _, err := DecodeImage(truncated); !errors.Is(err, ErrInvalidImage) {
		t.Fatalf("error = %v, want ErrInvalidImage", err)
	}
}

func TestDecodeImageAcceptsPNGAndJPEG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 30))

	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, src); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	img, err := DecodeImage(pngBuf.Bytes())
	if err != nil {
		t.Fatalf("DecodeImage(png) error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Fatalf("png bounds = %v", b)
	}

	var jpgBuf bytes.Buffer
	if err := jpeg.Encode(&jpgBuf, src, nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	if _, err := DecodeImage(jpgBuf.Bytes()); err != nil {
		t.Fatalf("DecodeImage(jpeg) error = %v", err)
	}
}
