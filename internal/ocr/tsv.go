package ocr

import (
	"strconv"
	"strings"
)

// TSV columns: level page_num block_num par_num line_num word_num
// left top width height conf text. Word rows have level 5.
const (
	tsvColumns  = 12
	colLevel    = 0
	colBlockNum = 2
	colParNum   = 3
	colLineNum  = 4
	colConf     = 10
	colText     = 11

	wordLevel = 5
)

// parseTSV assembles recognized text from tesseract TSV output and returns
// it with the mean word confidence (0..100). Words tesseract refused to
// score (conf -1) are skipped entirely; no scored words means no text.
func parseTSV(out []byte) (string, float64) {
	var (
		b        strings.Builder
		sum      float64
		n        int
		prevLine string
	)
	for i, ln := range strings.Split(string(out), "\n") {
		if i == 0 || ln == "" { // skip header
			continue
		}
		cols := strings.Split(ln, "\t")
		if len(cols) < tsvColumns {
			continue
		}
		if lvl, err := strconv.Atoi(cols[colLevel]); err != nil || lvl != wordLevel {
			continue
		}
		conf, err := strconv.ParseFloat(cols[colConf], 64)
		if err != nil || conf < 0 {
			continue
		}
		word := strings.TrimSpace(cols[colText])
		if word == "" {
			continue
		}

		lineKey := cols[colBlockNum] + ":" + cols[colParNum] + ":" + cols[colLineNum]
		if b.Len() > 0 {
			if lineKey != prevLine {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		prevLine = lineKey
		b.WriteString(word)

		sum += conf
		n++
	}
	if n == 0 {
		return "", 0
	}
	return b.String(), sum / float64(n)
}
