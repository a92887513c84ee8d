// Package label extracts structured filament attributes from OCR text.
// Matching is pure and vocabulary-driven: the brand, material, and color
// tables below are process-wide constants built once at init, never scattered
// through the matching logic.
package label

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/filatrack/filatrack/internal/entity"
)

// brandTable maps canonical brand names to their label spellings, including
// the misreadings tesseract produces most often (inserted spaces, hyphens,
// S/5 confusion). First matching entry wins.
var brandTable = []struct {
	Canonical string
	Aliases   []string
}{
	{"Bambu Lab", []string{"bambu lab", "bambulab", "bambu"}},
	{"Sunlu", []string{"sunlu", "sun lu", "sun-lu", "5unlu"}},
	{"eSUN", []string{"esun", "e sun", "e-sun"}},
	{"Prusament", []string{"prusament", "prusa"}},
	{"Polymaker", []string{"polymaker", "poly maker", "polyterra", "polylite"}},
	{"Hatchbox", []string{"hatchbox", "hatch box"}},
	{"Overture", []string{"overture"}},
	{"Creality", []string{"creality"}},
	{"Anycubic", []string{"anycubic", "any cubic"}},
	{"Elegoo", []string{"elegoo"}},
	{"Inland", []string{"inland"}},
	{"Eryone", []string{"eryone"}},
}

// materialVocab is ordered longest-variant-first so PLA+ and PETG-CF are
// claimed before their plain prefixes.
var materialVocab = []string{
	"PLA+", "PLA-CF", "PLA", "PETG-CF", "PETG", "ABS", "ASA", "TPU",
	"PVA", "HIPS", "PC", "PA-CF", "NYLON",
}

var materialCanonical = map[string]string{
	"NYLON": "Nylon",
}

var colorVocab = []string{
	"black", "white", "grey", "gray", "silver", "red", "orange", "yellow",
	"green", "blue", "purple", "violet", "pink", "brown", "gold", "beige",
	"ivory", "magenta", "cyan", "teal", "lime", "navy", "maroon",
	"transparent", "clear", "natural",
}

var (
	materialRe = make(map[string]*regexp.Regexp, len(materialVocab))
	colorRe    = make(map[string]*regexp.Regexp, len(colorVocab))

	reDiameter = regexp.MustCompile(`(?i)(\d(?:[.,]\d{1,2})?)\s*mm\b`)
	reToken    = regexp.MustCompile(`[A-Za-z0-9]{8,}`)
	reDigit    = regexp.MustCompile(`\d`)
)

func init() {
	for _, m := range materialVocab {
		materialRe[m] = tokenPattern(m)
	}
	for _, c := range colorVocab {
		colorRe[c] = tokenPattern(c)
	}
}

// tokenPattern matches tok as a standalone token, tolerating adjacent
// punctuation noise but not letter/digit neighbors. '+' counts as part of a
// token so bare PLA never claims a PLA+ label.
func tokenPattern(tok string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:^|[^A-Za-z0-9+])` + regexp.QuoteMeta(tok) + `(?:[^A-Za-z0-9+]|$)`)
}

// Plausible filament diameters in millimeters; keeps spool-dimension
// numbers like "200mm" from being read as a diameter.
const (
	minDiameter = 1.0
	maxDiameter = 3.5
)

// Extract runs the independent field matchers against raw OCR text.
// It is a pure function of the text; a matcher that finds nothing leaves
// its field nil, which callers treat as absence, not failure.
func Extract(text string) entity.LabelFields {
	var f entity.LabelFields
	if strings.TrimSpace(text) == "" {
		return f
	}

	f.Brand = matchBrand(text)
	f.Material = matchMaterial(text)
	f.ColorName = matchColor(text)
	f.DiameterMM = matchDiameter(text)
	f.Barcode = matchBarcode(text)
	return f
}

func matchBrand(text string) *string {
	lower := strings.ToLower(text)
	for _, b := range brandTable {
		for _, alias := range b.Aliases {
			if strings.Contains(lower, alias) {
				v := b.Canonical
				return &v
			}
		}
	}
	return nil
}

func matchMaterial(text string) *string {
	for _, m := range materialVocab {
		if materialRe[m].MatchString(text) {
			v := m
			if c, ok := materialCanonical[m]; ok {
				v = c
			}
			return &v
		}
	}
	return nil
}

func matchColor(text string) *string {
	for _, c := range colorVocab {
		if colorRe[c].MatchString(text) {
			v := strings.ToUpper(c[:1]) + c[1:]
			return &v
		}
	}
	return nil
}

func matchDiameter(text string) *float64 {
	for _, m := range reDiameter.FindAllStringSubmatch(text, -1) {
		raw := strings.ReplaceAll(m[1], ",", ".")
		d, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		if d >= minDiameter && d <= maxDiameter {
			return &d
		}
	}
	return nil
}

// matchBarcode looks for a long alphanumeric run that contains a digit and
// is not itself a brand/material/color token.
func matchBarcode(text string) *string {
	for _, tok := range reToken.FindAllString(text, -1) {
		if !reDigit.MatchString(tok) {
			continue
		}
		if containsVocab(strings.ToLower(tok)) {
			continue
		}
		v := tok
		return &v
	}
	return nil
}

func containsVocab(lowerTok string) bool {
	for _, b := range brandTable {
		for _, alias := range b.Aliases {
			if strings.Contains(lowerTok, alias) {
				return true
			}
		}
	}
	for _, m := range materialVocab {
		if len(m) > 2 && strings.Contains(lowerTok, strings.ToLower(m)) {
			return true
		}
	}
	for _, c := range colorVocab {
		if strings.Contains(lowerTok, c) {
			return true
		}
	}
	return false
}
