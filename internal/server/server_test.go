package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/filatrack/filatrack/constants"
	"github.com/filatrack/filatrack/internal/common"
	"github.com/filatrack/filatrack/internal/entity"
	"github.com/filatrack/filatrack/internal/ocr"
	"github.com/filatrack/filatrack/internal/repository"
	"github.com/filatrack/filatrack/internal/scan"
)

type stubProducts struct {
	product *entity.Product
}

func (s *stubProducts) Create(ctx context.Context, req repository.CreateProductRequest) (*entity.Product, error) {
	return &entity.Product{ID: uuid.New(), Brand: req.Brand, Material: req.Material, ColorName: req.ColorName, DiameterMM: req.DiameterMM}, nil
}

func (s *stubProducts) List(ctx context.Context, _ repository.ProductFilter) ([]*entity.Product, error) {
	if s.product == nil {
		return []*entity.Product{}, nil
	}
	return []*entity.Product{s.product}, nil
}

func (s *stubProducts) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	if s.product != nil && s.product.ID == id {
		return s.product, nil
	}
	return nil, fmt.Errorf("product %s: %w", id, common.ErrNotFound)
}

func (s *stubProducts) Update(ctx context.Context, id uuid.UUID, req repository.UpdateProductRequest) (*entity.Product, error) {
	return nil, fmt.Errorf("product %s: %w", id, common.ErrNotFound)
}

func (s *stubProducts) Delete(ctx context.Context, id uuid.UUID) error {
	return fmt.Errorf("product %s: %w", id, common.ErrNotFound)
}

func (s *stubProducts) FindExact(ctx context.Context, brand, material, colorName string, diameterMM float64) (*entity.Product, error) {
	return nil, nil
}

type stubSpools struct{}

func (stubSpools) Create(ctx context.Context, req repository.CreateSpoolRequest) (*entity.Spool, error) {
	return nil, fmt.Errorf("spool: %w", common.ErrNotFound)
}

func (stubSpools) List(ctx context.Context, _ repository.SpoolFilter) ([]*entity.Spool, error) {
	return []*entity.Spool{}, nil
}

func (stubSpools) GetByID(ctx context.Context, id uuid.UUID) (*entity.Spool, error) {
	return nil, fmt.Errorf("spool %s: %w", id, common.ErrNotFound)
}

func (stubSpools) Update(ctx context.Context, id uuid.UUID, req repository.UpdateSpoolRequest) (*entity.Spool, error) {
	return nil, fmt.Errorf("spool %s: %w", id, common.ErrNotFound)
}

func (stubSpools) Delete(ctx context.Context, id uuid.UUID) error {
	return fmt.Errorf("spool %s: %w", id, common.ErrNotFound)
}

func (stubSpools) MarkUsed(ctx context.Context, id uuid.UUID) (*entity.Spool, error) {
	return &entity.Spool{ID: id, Status: string(constants.SpoolStatusUsedUp)}, nil
}

type happyRecognizer struct{}

func (happyRecognizer) Available(ctx context.Context) error { return nil }

func (happyRecognizer) Recognize(ctx context.Context, img image.Image, mode ocr.PageSegMode) (string, float64, error) {
	return "SUNLU PLA+ Yellow 1.75mm", 95, nil
}

func testServer(products repository.ProductRepository) *Server {
	return New(common.ServerConfig{
		MaxUploadMB:  8,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}, Deps{
		Products: products,
		Spools:   stubSpools{},
		Scanner:  scan.NewScanner(happyRecognizer{}, scan.Config{}, nil),
	})
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("decode body %q: %v", body, err)
	}
}

func TestGetProductNotFound(t *testing.T) {
	srv := testServer(&stubProducts{})

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/products/"+uuid.NewString(), nil)
	resp, err := srv.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	var body map[string]string
	decodeBody(t, resp, &body)
	if body["detail"] != "Product not found" {
		t.Fatalf("body = %v", body)
	}
}

func TestGetProductMalformedIDReadsAsNotFound(t *testing.T) {
	srv := testServer(&stubProducts{})

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/products/42", nil)
	resp, err := srv.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestCreateProductValidation(t *testing.T) {
	srv := testServer(&stubProducts{})

	payload := `{"brand":"","material":"PLA","color_name":"Red","diameter_mm":1.75}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestCreateProductOK(t *testing.T) {
	srv := testServer(&stubProducts{})

	payload := `{"brand":"Sunlu","material":"PLA+","color_name":"Yellow","diameter_mm":1.75}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var product entity.Product
	decodeBody(t, resp, &product)
	if product.Brand != "Sunlu" || product.Material != "PLA+" {
		t.Fatalf("product = %+v", product)
	}
}

func TestMarkSpoolUsed(t *testing.T) {
	srv := testServer(&stubProducts{})

	id := uuid.New()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/spools/"+id.String()+"/mark-used", nil)
	resp, err := srv.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var spool entity.Spool
	decodeBody(t, resp, &spool)
	if spool.Status != string(constants.SpoolStatusUsedUp) {
		t.Fatalf("status = %q, want used_up", spool.Status)
	}
}

func TestListSpoolsRejectsBadStatus(t *testing.T) {
	srv := testServer(&stubProducts{})

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/spools?status=vaporized", nil)
	resp, err := srv.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func multipartImage(t *testing.T, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="file"; filename="label.png"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestParseLabelEndpoint(t *testing.T) {
	srv := testServer(&stubProducts{})

	img := image.NewRGBA(image.Rect(0, 0, 100, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 100; x++ {
			img.Set(x, y, color.White)
		}
	}
	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	body, contentType := multipartImage(t, "image/png", pngBuf.Bytes())
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/ocr/parse-label", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := srv.app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var result entity.ScanResult
	decodeBody(t, resp, &result)
	if result.StrategyUsed != "moderate+psm6" {
		t.Fatalf("strategy_used = %q", result.StrategyUsed)
	}
	if result.Brand == nil || *result.Brand != "Sunlu" {
		t.Fatalf("brand = %v", result.Brand)
	}
}

func TestParseLabelRejectsNonImage(t *testing.T) {
	srv := testServer(&stubProducts{})

	body, contentType := multipartImage(t, "text/plain", []byte("hello"))
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/ocr/parse-label", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := srv.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var bodyMap map[string]string
	decodeBody(t, resp, &bodyMap)
	if bodyMap["detail"] != "File must be an image" {
		t.Fatalf("body = %v", bodyMap)
	}
}

func TestParseLabelRejectsEmptyFile(t *testing.T) {
	srv := testServer(&stubProducts{})

	body, contentType := multipartImage(t, "image/png", nil)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/ocr/parse-label", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := srv.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestParseLabelCorruptImage(t *testing.T) {
	srv := testServer(&stubProducts{})

	body, contentType := multipartImage(t, "image/png", []byte("not a real png"))
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/ocr/parse-label", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := srv.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHealth(t *testing.T) {
	srv := testServer(&stubProducts{})

	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	resp, err := srv.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body map[string]string
	decodeBody(t, resp, &body)
	if body["status"] != "ok" {
		t.Fatalf("body = %v", body)
	}
}
