package label

import (
	"testing"
)

func strPtr(t *testing.T, p *string) string {
	t.Helper()
	if p == nil {
		return "<nil>"
	}
	return *p
}

func TestExtractTypicalLabel(t *testing.T) {
	f := Extract("SUNLU PLA+ Yellow 1.75mm X1234ABCDEF")

	if f.Brand == nil || *f.Brand != "Sunlu" {
		t.Fatalf("Brand = %s, want Sunlu", strPtr(t, f.Brand))
	}
	if f.Material == nil || *f.Material != "PLA+" {
		t.Fatalf("Material = %s, want PLA+", strPtr(t, f.Material))
	}
	if f.ColorName == nil || *f.ColorName != "Yellow" {
		t.Fatalf("ColorName = %s, want Yellow", strPtr(t, f.ColorName))
	}
	if f.DiameterMM == nil || *f.DiameterMM != 1.75 {
		t.Fatalf("DiameterMM = %v, want 1.75", f.DiameterMM)
	}
	if f.Barcode == nil || *f.Barcode != "X1234ABCDEF" {
		t.Fatalf("Barcode = %s, want X1234ABCDEF", strPtr(t, f.Barcode))
	}
}

func TestExtractNoMatches(t *testing.T) {
	f := Extract("random unrelated text")
	if f.Brand != nil || f.Material != nil || f.ColorName != nil || f.DiameterMM != nil || f.Barcode != nil {
		t.Fatalf("expected all nil fields, got %+v", f)
	}
}

func TestExtractEmptyText(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		f := Extract(text)
		if f.Brand != nil || f.Material != nil || f.ColorName != nil || f.DiameterMM != nil || f.Barcode != nil {
			t.Fatalf("Extract(%q): expected zero fields, got %+v", text, f)
		}
	}
}

func TestExtractBrandAliases(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"5UNLU premium filament", "Sunlu"},
		{"sun-lu PLA", "Sunlu"},
		{"BAMBULAB PETG Basic", "Bambu Lab"},
		{"Original Prusament by Prusa", "Prusament"},
		{"PolyTerra matte", "Polymaker"},
		{"eSun brand spool", "eSUN"},
	}
	for _, tc := range cases {
		f := Extract(tc.text)
		if f.Brand == nil || *f.Brand != tc.want {
			t.Errorf("Extract(%q).Brand = %s, want %s", tc.text, strPtr(t, f.Brand), tc.want)
		}
	}
}

func TestExtractMaterialLongestVariantWins(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"SUNLU PLA+ filament", "PLA+"},
		{"plain PLA roll", "PLA"},
		{"PETG-CF carbon", "PETG-CF"},
		{"PETG clear", "PETG"},
		{"NYLON strong", "Nylon"},
		{"pla+ lowercase", "PLA+"},
	}
	for _, tc := range cases {
		f := Extract(tc.text)
		if f.Material == nil || *f.Material != tc.want {
			t.Errorf("Extract(%q).Material = %s, want %s", tc.text, strPtr(t, f.Material), tc.want)
		}
	}
}

func TestExtractMaterialNotSubstring(t *testing.T) {
	// "PLASTIC" must not read as PLA.
	if f := Extract("generic PLASTIC spool"); f.Material != nil {
		t.Fatalf("Material = %s, want nil", *f.Material)
	}
}

func TestExtractDiameterBand(t *testing.T) {
	cases := []struct {
		text string
		want float64
		nil_ bool
	}{
		{"diameter 1.75mm", 1.75, false},
		{"diameter 1,75 mm", 1.75, false},
		{"big 2.85mm spool", 2.85, false},
		{"3mm legacy", 3, false},
		{"spool width 200mm", 0, true},
		{"0.4mm nozzle", 0, true},
	}
	for _, tc := range cases {
		f := Extract(tc.text)
		if tc.nil_ {
			if f.DiameterMM != nil {
				t.Errorf("Extract(%q).DiameterMM = %v, want nil", tc.text, *f.DiameterMM)
			}
			continue
		}
		if f.DiameterMM == nil || *f.DiameterMM != tc.want {
			t.Errorf("Extract(%q).DiameterMM = %v, want %v", tc.text, f.DiameterMM, tc.want)
		}
	}
}

func TestExtractBarcodeRules(t *testing.T) {
	// Needs >=8 alphanumerics including a digit, and must not be a
	// vocabulary word.
	if f := Extract("code AB12CD34EF"); f.Barcode == nil || *f.Barcode != "AB12CD34EF" {
		t.Fatalf("Barcode = %v, want AB12CD34EF", f.Barcode)
	}
	if f := Extract("short A1B2"); f.Barcode != nil {
		t.Fatalf("short token matched as barcode: %s", *f.Barcode)
	}
	if f := Extract("lettersonly ABCDEFGHIJ"); f.Barcode != nil {
		t.Fatalf("digitless token matched as barcode: %s", *f.Barcode)
	}
	if f := Extract("transparent1 filament"); f.Barcode != nil {
		t.Fatalf("vocab-bearing token matched as barcode: %s", *f.Barcode)
	}
}

func TestExtractColorCanonicalCase(t *testing.T) {
	f := Extract("matte BLACK finish")
	if f.ColorName == nil || *f.ColorName != "Black" {
		t.Fatalf("ColorName = %s, want Black", strPtr(t, f.ColorName))
	}
}
