// Package invoice turns vendor invoice PDFs into orders, products and spools.
package invoice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/filatrack/filatrack/internal/common"
	"github.com/filatrack/filatrack/internal/entity"
	"github.com/filatrack/filatrack/internal/label"
	"github.com/filatrack/filatrack/internal/ocr"
)

var (
	// ErrNoItems means the PDF produced text but no filament line items.
	ErrNoItems = errors.New("no filament items found in invoice")
	// ErrTooManyPages means the PDF exceeds the configured page limit.
	ErrTooManyPages = errors.New("invoice exceeds page limit")
)

// Parser extracts an order header and filament line items from a PDF using
// pdftotext behind the shared exec Runner.
type Parser struct {
	cfg    common.InvoiceConfig
	runner ocr.Runner
	logger *slog.Logger
}

func NewParser(cfg common.InvoiceConfig, runner ocr.Runner, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if runner == nil {
		runner = ocr.NewRunner()
	}
	return &Parser{cfg: cfg, runner: runner, logger: logger}
}

// Parse writes pdf to a scratch file, extracts its text and parses it.
func (p *Parser) Parse(ctx context.Context, pdf []byte) (*entity.ParsedInvoice, error) {
	tmpDir, err := os.MkdirTemp("", "ft-inv-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			p.logger.Warn("failed to remove temp dir", "path", tmpDir, "error", err)
		}
	}()

	path := filepath.Join(tmpDir, "invoice.pdf")
	if err := os.WriteFile(path, pdf, 0o600); err != nil {
		return nil, fmt.Errorf("write temp pdf: %w", err)
	}

	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := p.runner.Run(ctx, p.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return nil, fmt.Errorf("pdftotext failed (%s): %w", strings.TrimSpace(string(errb)), err)
	}
	text := string(out)

	// A form-feed \f is used as page separator by default.
	pages := 1 + strings.Count(text, "\f")
	if p.cfg.MaxPages > 0 && pages > p.cfg.MaxPages {
		return nil, fmt.Errorf("%w: %d pages, limit %d", ErrTooManyPages, pages, p.cfg.MaxPages)
	}

	inv := ParseText(text)
	if len(inv.Items) == 0 {
		return nil, ErrNoItems
	}
	p.logger.Info("invoice parsed",
		"vendor", inv.Vendor,
		"order_number", inv.OrderNumber,
		"items", len(inv.Items),
		"pages", pages)
	return inv, nil
}

var (
	reOrderNumber = regexp.MustCompile(`(?i)order\s*(?:#|no\.?|number|id)?\s*[:#]?\s*([A-Z0-9][A-Z0-9-]{4,})`)
	reHasDigit    = regexp.MustCompile(`\d`)
	reISODate     = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	reLongDate    = regexp.MustCompile(`(?i)\b(January|February|March|April|May|June|July|August|September|October|November|December)\s+(\d{1,2}),?\s+(\d{4})\b`)
	reTotal       = regexp.MustCompile(`(?i)(?:grand\s+)?total[:\s]*(?:[$€£]|USD|EUR|GBP)?\s*(\d+(?:[.,]\d{2})?)`)
	rePrice       = regexp.MustCompile(`(?:[$€£]|USD|EUR|GBP)\s*(\d+(?:[.,]\d{2})?)`)
	reQuantity    = regexp.MustCompile(`(?i)(?:\bqty\s*[:.]?\s*(\d{1,3})\b|\bx\s*(\d{1,3})\b|\b(\d{1,3})\s*x\b|\b(\d{1,3})\s*(?:pcs|rolls?|spools?)\b)`)
)

// Known storefronts that appear on invoices but are not filament brands.
var vendorNames = []string{"Amazon", "AliExpress", "MatterHackers", "Printed Solid"}

// ParseText parses already-extracted invoice text. Exposed for tests.
func ParseText(text string) *entity.ParsedInvoice {
	inv := &entity.ParsedInvoice{Currency: detectCurrency(text)}

	// First "order ..." token that actually carries a digit; plain words
	// like "order confirmation" are not order numbers.
	for _, m := range reOrderNumber.FindAllStringSubmatch(text, -1) {
		if reHasDigit.MatchString(m[1]) {
			inv.OrderNumber = m[1]
			break
		}
	}
	inv.OrderDate = matchDate(text)
	if m := reTotal.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64); err == nil {
			inv.TotalAmount = &v
		}
	}
	inv.Vendor = matchVendor(text)

	for _, line := range strings.Split(text, "\n") {
		if item, ok := parseItemLine(line); ok {
			inv.Items = append(inv.Items, item)
		}
	}
	return inv
}

// parseItemLine treats a line as a filament item when the label matcher
// recognizes a material on it.
func parseItemLine(line string) (entity.ParsedItem, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return entity.ParsedItem{}, false
	}
	fields := label.Extract(trimmed)
	if fields.Material == nil {
		return entity.ParsedItem{}, false
	}

	item := entity.ParsedItem{
		TitleRaw: trimmed,
		Material: *fields.Material,
		Quantity: 1,
	}
	if fields.Brand != nil {
		item.Brand = *fields.Brand
	}
	if fields.ColorName != nil {
		item.ColorName = *fields.ColorName
	}
	if fields.DiameterMM != nil {
		item.DiameterMM = *fields.DiameterMM
	}
	if m := reQuantity.FindStringSubmatch(trimmed); m != nil {
		for _, g := range m[1:] {
			if g == "" {
				continue
			}
			if q, err := strconv.Atoi(g); err == nil && q > 0 {
				item.Quantity = q
			}
			break
		}
	}
	if m := rePrice.FindStringSubmatch(trimmed); m != nil {
		if v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64); err == nil {
			item.Price = &v
		}
	}
	return item, true
}

func matchVendor(text string) string {
	for _, v := range vendorNames {
		if strings.Contains(strings.ToLower(text), strings.ToLower(v)) {
			return v
		}
	}
	// Fall back to a filament brand selling direct (e.g. a Bambu Lab store
	// invoice names no separate storefront).
	if b := label.Extract(text).Brand; b != nil {
		return *b
	}
	return "Unknown"
}

func matchDate(text string) *time.Time {
	if m := reISODate.FindStringSubmatch(text); m != nil {
		if t, err := time.Parse("2006-01-02", m[0]); err == nil {
			return &t
		}
	}
	if m := reLongDate.FindStringSubmatch(text); m != nil {
		month := strings.ToUpper(m[1][:1]) + strings.ToLower(m[1][1:])
		raw := fmt.Sprintf("%s %s %s", month, m[2], m[3])
		if t, err := time.Parse("January 2 2006", raw); err == nil {
			return &t
		}
	}
	return nil
}

func detectCurrency(text string) string {
	switch {
	case strings.ContainsRune(text, '€') || strings.Contains(text, "EUR"):
		return "EUR"
	case strings.ContainsRune(text, '£') || strings.Contains(text, "GBP"):
		return "GBP"
	default:
		return "USD"
	}
}
