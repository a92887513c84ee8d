package invoice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/filatrack/filatrack/internal/common"
)

const sampleInvoiceText = `Amazon.com order confirmation
Order #112-9876543-1234567
Order placed: 2024-03-18

SUNLU PLA+ Yellow 1.75mm 1kg Spool    x2    $18.99
Overture PETG Black 1.75 mm Filament  Qty: 1  $21.49
Spool holder, metal, adjustable               $9.99

Grand Total: $59.47
`

func TestParseTextExtractsHeaderAndItems(t *testing.T) {
	inv := ParseText(sampleInvoiceText)

	if inv.Vendor != "Amazon" {
		t.Fatalf("Vendor = %q, want Amazon", inv.Vendor)
	}
	if inv.OrderNumber != "112-9876543-1234567" {
		t.Fatalf("OrderNumber = %q", inv.OrderNumber)
	}
	if inv.OrderDate == nil || inv.OrderDate.Format("2006-01-02") != "2024-03-18" {
		t.Fatalf("OrderDate = %v", inv.OrderDate)
	}
	if inv.TotalAmount == nil || *inv.TotalAmount != 59.47 {
		t.Fatalf("TotalAmount = %v", inv.TotalAmount)
	}
	if inv.Currency != "USD" {
		t.Fatalf("Currency = %q", inv.Currency)
	}

	// The spool holder line has no material, so it is not an item.
	if len(inv.Items) != 2 {
		t.Fatalf("got %d items, want 2: %+v", len(inv.Items), inv.Items)
	}

	first := inv.Items[0]
	if first.Brand != "Sunlu" || first.Material != "PLA+" || first.ColorName != "Yellow" {
		t.Fatalf("first item fields = %+v", first)
	}
	if first.DiameterMM != 1.75 || first.Quantity != 2 {
		t.Fatalf("first item diameter/qty = %v/%d", first.DiameterMM, first.Quantity)
	}
	if first.Price == nil || *first.Price != 18.99 {
		t.Fatalf("first item price = %v", first.Price)
	}

	second := inv.Items[1]
	if second.Brand != "Overture" || second.Material != "PETG" || second.Quantity != 1 {
		t.Fatalf("second item = %+v", second)
	}
}

func TestParseTextEuroInvoice(t *testing.T) {
	inv := ParseText("Prusament PETG Orange 1.75mm x1 €29.99\nTotal: €29.99")
	if inv.Currency != "EUR" {
		t.Fatalf("Currency = %q, want EUR", inv.Currency)
	}
	if inv.Vendor != "Prusament" {
		t.Fatalf("Vendor = %q, want brand fallback", inv.Vendor)
	}
	if len(inv.Items) != 1 || inv.Items[0].Price == nil || *inv.Items[0].Price != 29.99 {
		t.Fatalf("items = %+v", inv.Items)
	}
}

func TestParseTextQuantityDefaultsToOne(t *testing.T) {
	inv := ParseText("eSUN ABS White 1.75mm spool $15.00")
	if len(inv.Items) != 1 || inv.Items[0].Quantity != 1 {
		t.Fatalf("items = %+v", inv.Items)
	}
}

type scriptRunner struct {
	out  []byte
	errb []byte
	err  error
	name string
	args []string
}

func (s *scriptRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.name = name
	s.args = append([]string(nil), args...)
	return s.out, s.errb, s.err
}

func TestParseRunsPdftotext(t *testing.T) {
	runner := &scriptRunner{out: []byte(sampleInvoiceText)}
	p := NewParser(common.InvoiceConfig{Pdftotext: "pdftotext", MaxPages: 20}, runner, nil)

	inv, err := p.Parse(context.Background(), []byte("%PDF-1.4 fake"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(inv.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(inv.Items))
	}

	if runner.name != "pdftotext" {
		t.Fatalf("binary = %q", runner.name)
	}
	joined := strings.Join(runner.args, " ")
	for _, want := range []string{"-layout", "-enc UTF-8", "-eol unix"} {
		if !strings.Contains(joined, want) {
			t.Errorf("args %q missing %q", joined, want)
		}
	}
	if runner.args[len(runner.args)-1] != "-" {
		t.Fatalf("expected stdout sink as last arg, got %q", runner.args[len(runner.args)-1])
	}
}

func TestParseRejectsNoItems(t *testing.T) {
	runner := &scriptRunner{out: []byte("a receipt for garden tools\nTotal: $12.00")}
	p := NewParser(common.InvoiceConfig{MaxPages: 20}, runner, nil)

	_, err := p.Parse(context.Background(), []byte("%PDF"))
	if !errors.Is(err, ErrNoItems) {
		t.Fatalf("error = %v, want ErrNoItems", err)
	}
}

func TestParseEnforcesPageLimit(t *testing.T) {
	many := strings.Repeat("page text\f", 30)
	runner := &scriptRunner{out: []byte(many)}
	p := NewParser(common.InvoiceConfig{MaxPages: 20}, runner, nil)

	_, err := p.Parse(context.Background(), []byte("%PDF"))
	if !errors.Is(err, ErrTooManyPages) {
		t.Fatalf("error = %v, want ErrTooManyPages", err)
	}
}

func TestParsePropagatesExecFailure(t *testing.T) {
	runner := &scriptRunner{errb: []byte("bad pdf"), err: errors.New("exit status 1")}
	p := NewParser(common.InvoiceConfig{}, runner, nil)

	_, err := p.Parse(context.Background(), []byte("%PDF"))
	if err == nil || !strings.Contains(err.Error(), "bad pdf") {
		t.Fatalf("error = %v, want stderr carried", err)
	}
}
