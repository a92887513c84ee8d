package constants

import "strings"

// AllowedImageExtensions holds the image formats accepted for label uploads.
var AllowedImageExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"gif":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsImageExt reports whether ext (with or without dot) is an accepted image format.
func IsImageExt(ext string) bool {
	_, ok := AllowedImageExtensions[NormalizeExt(ext)]
	return ok
}
