package scan

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Working-resolution band: the longer edge is pulled into [minEdge, maxEdge]
// before any enhancement, bounding engine cost on huge photos and avoiding
// degenerate thumbnails.
const (
	minEdge = 800
	maxEdge = 2000

	binarizeThreshold = 128
)

// Strategy is a named, stateless image transform. Same input image and
// strategy always produce the same output; strategies share no state.
type Strategy struct {
	Name  string
	Apply func(image.Image) image.Image
}

// Strategies is the fixed bank in priority order: a clear, well-lit label
// should be handled by the first entry; later entries trade fidelity for
// legibility on progressively worse captures.
var Strategies = []Strategy{
	{Name: "moderate", Apply: moderate},
	{Name: "minimal", Apply: minimal},
	{Name: "grayscale-binarize", Apply: grayscaleBinarize},
	{Name: "aggressive", Apply: aggressive},
}

// moderate: mild sharpening plus 1.5x contrast. Default first attempt.
func moderate(img image.Image) image.Image {
	out := fitWorkingBand(img)
	out = imaging.Sharpen(out, 0.6)
	return contrast(out, 1.5)
}

// minimal: resize plus light sharpening only, for already-clean images.
func minimal(img image.Image) image.Image {
	out := fitWorkingBand(img)
	return imaging.Sharpen(out, 0.3)
}

// grayscaleBinarize: desaturate, 2.0x contrast, hard threshold to pure
// black/white. Works well on high-contrast printed labels.
func grayscaleBinarize(img image.Image) image.Image {
	var out image.Image = imaging.Grayscale(fitWorkingBand(img))
	out = contrast(out, 2.0)
	return imaging.AdjustFunc(out, func(c color.NRGBA) color.NRGBA {
		if c.R >= binarizeThreshold {
			return color.NRGBA{R: 255, G: 255, B: 255, A: c.A}
		}
		return color.NRGBA{A: c.A}
	})
}

// aggressive: sharpening, 2.5x contrast, 1.3x brightness. Last resort for
// poor captures; over-processes clean images, which is why it runs last.
func aggressive(img image.Image) image.Image {
	out := fitWorkingBand(img)
	out = imaging.Sharpen(out, 1.0)
	out = contrast(out, 2.5)
	return imaging.AdjustBrightness(out, 30)
}

// fitWorkingBand scales the image so its longer edge lands inside
// [minEdge, maxEdge], preserving aspect ratio. Lanczos for downscaling
// quality; small sources are upscaled so tesseract has enough pixels.
func fitWorkingBand(img image.Image) image.Image {
	b := img.Bounds()
	long := b.Dx()
	if b.Dy() > long {
		long = b.Dy()
	}
	switch {
	case long > maxEdge:
		if b.Dx() >= b.Dy() {
			return imaging.Resize(img, maxEdge, 0, imaging.Lanczos)
		}
		return imaging.Resize(img, 0, maxEdge, imaging.Lanczos)
	case long < minEdge:
		if b.Dx() >= b.Dy() {
			return imaging.Resize(img, minEdge, 0, imaging.Lanczos)
		}
		return imaging.Resize(img, 0, minEdge, imaging.Lanczos)
	default:
		return img
	}
}

// contrast maps a multiplier (1.0 = unchanged) onto imaging's percentage
// scale, so strategy definitions can speak in the familiar factor form.
func contrast(img image.Image, factor float64) image.Image {
	return imaging.AdjustContrast(img, (factor-1)*50)
}
