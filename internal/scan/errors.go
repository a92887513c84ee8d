package scan

import "errors"

// Fatal scan errors. Low confidence and no-text outcomes are not errors;
// they come back as a regular ScanResult.
var (
	// ErrInvalidImage means the upload did not decode as a raster image.
	// Nothing is attempted after this.
	ErrInvalidImage = errors.New("invalid image data")

	// ErrEngineUnavailable means the OCR engine binary is missing or
	// misconfigured. Checked once per scan, before any attempt.
	ErrEngineUnavailable = errors.New("ocr engine unavailable")
)
