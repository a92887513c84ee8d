package scan

import (
	"image"
	"testing"
)

func longEdge(img image.Image) int {
	b := img.Bounds()
	if b.Dx() >= b.Dy() {
		return b.Dx()
	}
	return b.Dy()
}

func TestFitWorkingBand(t *testing.T) {
	cases := []struct {
		name   string
		w, h   int
		wantLE int
	}{
		{"huge landscape downscaled", 4000, 3000, maxEdge},
		{"huge portrait downscaled", 1200, 5000, maxEdge},
		{"tiny upscaled", 200, 100, minEdge},
		{"in band untouched", 1024, 768, 1024},
		{"at lower bound untouched", 800, 600, 800},
		{"at upper bound untouched", 2000, 1500, 2000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := image.NewRGBA(image.Rect(0, 0, tc.w, tc.h))
			out := fitWorkingBand(in)
			if got := longEdge(out); got != tc.wantLE {
				t.Fatalf("longer edge = %d, want %d", got, tc.wantLE)
			}
		})
	}
}

func TestFitWorkingBandPreservesAspectRatio(t *testing.T) {
	in := image.NewRGBA(image.Rect(0, 0, 4000, 2000))
	out := fitWorkingBand(in)
	b := out.Bounds()
	if b.Dx() != 2000 || b.Dy() != 1000 {
		t.Fatalf("got %dx%d, want 2000x1000", b.Dx(), b.Dy())
	}
}

func TestStrategyBankOrder(t *testing.T) {
	want := []string{"moderate", "minimal", "grayscale-binarize", "aggressive"}
	if len(Strategies) != len(want) {
		t.Fatalf("bank has %d strategies, want %d", len(Strategies), len(want))
	}
	for i, name := range want {
		if Strategies[i].Name != name {
			t.Fatalf("Strategies[%d].Name = %q, want %q", i, Strategies[i].Name, name)
		}
	}
}

func TestStrategiesAreDeterministic(t *testing.T) {
	in := image.NewRGBA(image.Rect(0, 0, 300, 200))
	for _, st := range Strategies {
		first := st.Apply(in)
		second := st.Apply(in)
		fb, sb := first.Bounds(), second.Bounds()
		if fb != sb {
			t.Fatalf("%s: bounds differ between runs: %v vs %v", st.Name, fb, sb)
		}
		for y := fb.Min.Y; y < fb.Max.Y; y += 37 {
			for x := fb.Min.X; x < fb.Max.X; x += 37 {
				if first.At(x, y) != second.At(x, y) {
					t.Fatalf("%s: pixel (%d,%d) differs between runs", st.Name, x, y)
				}
			}
		}
	}
}

func TestGrayscaleBinarizeIsBlackAndWhite(t *testing.T) {
	in := image.NewRGBA(image.Rect(0, 0, 900, 900))
	for y := 0; y < 900; y++ {
		for x := 0; x < 900; x++ {
			in.Set(x, y, image.White)
		}
	}
	out := grayscaleBinarize(in)
	b := out.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += 53 {
		for x := b.Min.X; x < b.Max.X; x += 53 {
			r, g, bl, _ := out.At(x, y).RGBA()
			if !(r == g && g == bl) {
				t.Fatalf("pixel (%d,%d) not gray: %v", x, y, out.At(x, y))
			}
			v := uint8(r >> 8)
			if v != 0 && v != 255 {
				t.Fatalf("pixel (%d,%d) not binarized: %d", x, y, v)
			}
		}
	}
}
