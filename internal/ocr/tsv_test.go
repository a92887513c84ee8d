package ocr

import (
	"strings"
	"testing"
)

const tsvHeader = "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext"

func tsvWord(block, par, line string, conf, text string) string {
	return strings.Join([]string{"5", "1", block, par, line, "1", "0", "0", "10", "10", conf, text}, "\t")
}

func TestParseTSVAssemblesLinesAndMeanConfidence(t *testing.T) {
	out := strings.Join([]string{
		tsvHeader,
		"1\t1\t0\t0\t0\t0\t0\t0\t100\t100\t-1\t", // page row, unscored
		tsvWord("1", "1", "1", "90", "SUNLU"),
		tsvWord("1", "1", "1", "80", "PLA+"),
		tsvWord("1", "1", "2", "70", "Yellow"),
		"",
	}, "\n")

	text, conf := parseTSV([]byte(out))
	if text != "SUNLU PLA+\nYellow" {
		t.Fatalf("text = %q, want lines joined by newline", text)
	}
	if conf != 80 {
		t.Fatalf("conf = %v, want 80 (mean of 90,80,70)", conf)
	}
}

func TestParseTSVSkipsUnscoredWords(t *testing.T) {
	out := strings.Join([]string{
		tsvHeader,
		tsvWord("1", "1", "1", "-1", "ghost"),
		tsvWord("1", "1", "1", "60", "real"),
	}, "\n")

	text, conf := parseTSV([]byte(out))
	if text != "real" || conf != 60 {
		t.Fatalf("got %q/%v, want real/60", text, conf)
	}
}

func TestParseTSVNoWordsMeansZero(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte(""),
		[]byte(tsvHeader),
		[]byte(tsvHeader + "\n" + tsvWord("1", "1", "1", "-1", "unscored")),
		[]byte(tsvHeader + "\n" + tsvWord("1", "1", "1", "88", "   ")),
	}
	for _, out := range cases {
		text, conf := parseTSV(out)
		if text != "" || conf != 0 {
			t.Fatalf("parseTSV(%q) = %q/%v, want empty/0", out, text, conf)
		}
	}
}

func TestParseTSVIgnoresMalformedRows(t *testing.T) {
	out := strings.Join([]string{
		tsvHeader,
		"not\ttab\tseparated",
		tsvWord("1", "1", "1", "notanumber", "bad"),
		tsvWord("1", "1", "1", "55", "good"),
	}, "\n")

	text, conf := parseTSV([]byte(out))
	if text != "good" || conf != 55 {
		t.Fatalf("got %q/%v, want good/55", text, conf)
	}
}

func TestParseTSVBlockBreaksStartNewLines(t *testing.T) {
	out := strings.Join([]string{
		tsvHeader,
		tsvWord("1", "1", "1", "90", "first"),
		tsvWord("2", "1", "1", "90", "second"),
	}, "\n")

	text, _ := parseTSV([]byte(out))
	if text != "first\nsecond" {
		t.Fatalf("text = %q, want block break as newline", text)
	}
}
