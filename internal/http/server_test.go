package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"billsplit/internal/models"
	"billsplit/internal/ocr"
	"billsplit/internal/service"
)

// stubExtractor returns a canned OCR result without calling out anywhere.
type stubExtractor struct {
	bill *models.OCRBill
	err  error
}

func (s *stubExtractor) Extract(ctx context.Context, image []byte, mimeType string) (*models.OCRBill, error) {
	return s.bill, s.err
}

func newTestServer(t *testing.T, extractor ocr.Extractor) *httptest.Server {
	t.Helper()
	srv := NewServer(":0", service.NewSplitService(), extractor, "*")
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestHandleSplit(t *testing.T) {
	ts := newTestServer(t, nil)

	body := `{
		"bills": [
			{
				"id": "b1",
				"paid_by": "A",
				"tax_rate": 0.05,
				"service_charge": 0,
				"items": [
					{"name": "Pizza", "price": 20.00, "quantity": 1, "consumed_by": ["A", "B"]}
				]
			}
		]
	}`

	resp, err := http.Post(ts.URL+"/api/v1/bills/split", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var result struct {
		PaymentPlans []struct {
			Name     string `json:"name"`
			Payments []struct {
				To     string  `json:"to"`
				Amount float64 `json:"amount"`
			} `json:"payments"`
		} `json:"payment_plans"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(result.PaymentPlans) != 1 {
		t.Fatalf("got %d plans, want 1", len(result.PaymentPlans))
	}
	plan := result.PaymentPlans[0]
	if plan.Name != "B" {
		t.Errorf("plan name = %q, want B", plan.Name)
	}
	if len(plan.Payments) != 1 || plan.Payments[0].To != "A" || plan.Payments[0].Amount != 10.50 {
		t.Errorf("payments = %+v, want 10.50 to A", plan.Payments)
	}
}

func TestHandleSplit_Idempotent(t *testing.T) {
	ts := newTestServer(t, nil)

	body := `{"bills":[{"id":"b1","paid_by":"Dana","tax_rate":0.08,"service_charge":0.12,"items":[{"name":"Platter","price":10.00,"quantity":1,"consumed_by":["Ana","Ben","Cal"]}]}]}`

	var responses []string
	for i := 0; i < 2; i++ {
		resp, err := http.Post(ts.URL+"/api/v1/bills/split", "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatalf("POST failed: %v", err)
		}
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(resp.Body); err != nil {
			t.Fatalf("read response: %v", err)
		}
		resp.Body.Close()
		responses = append(responses, buf.String())
	}

	if responses[0] != responses[1] {
		t.Errorf("responses differ:\n%s\n%s", responses[0], responses[1])
	}
}

func TestHandleSplit_Errors(t *testing.T) {
	ts := newTestServer(t, nil)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "malformed JSON",
			body:       `{"bills": [`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty bills",
			body:       `{"bills": []}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid item",
			body:       `{"bills":[{"id":"b1","paid_by":"A","items":[{"name":"","price":5,"quantity":1,"consumed_by":["B"]}]}]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative tax rate",
			body:       `{"bills":[{"id":"b1","paid_by":"A","tax_rate":-0.1,"items":[{"name":"X","price":5,"quantity":1,"consumed_by":["B"]}]}]}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/api/v1/bills/split", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatalf("POST failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			var body errorResponse
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if body.Error == "" {
				t.Error("error response has no message")
			}
		})
	}
}

func postReceipt(t *testing.T, url string, contentType string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="receipt.png"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	fmt.Fprint(part, "fake image bytes")
	mw.Close()

	resp, err := http.Post(url+"/api/v1/bills/ocr", mw.FormDataContentType(), &buf)
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	return resp
}

func TestHandleOCR(t *testing.T) {
	extractor := &stubExtractor{bill: &models.OCRBill{
		TaxRate: 0.05,
		Items:   []models.OCRItem{{Name: "Pizza", Price: 20, Quantity: 1}},
	}}
	ts := newTestServer(t, extractor)

	resp := postReceipt(t, ts.URL, "image/png")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var bill models.OCRBill
	if err := json.NewDecoder(resp.Body).Decode(&bill); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(bill.Items) != 1 || bill.Items[0].Name != "Pizza" {
		t.Errorf("items = %v, want Pizza", bill.Items)
	}
	if bill.TaxRate != 0.05 {
		t.Errorf("tax_rate = %v, want 0.05", bill.TaxRate)
	}
}

func TestHandleOCR_RejectsNonImage(t *testing.T) {
	ts := newTestServer(t, &stubExtractor{bill: &models.OCRBill{}})

	resp := postReceipt(t, ts.URL, "application/pdf")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHandleOCR_NotConfigured(t *testing.T) {
	ts := newTestServer(t, nil)

	resp := postReceipt(t, ts.URL, "image/png")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", resp.StatusCode)
	}
}

func TestHandleHealth(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/api/v1/health")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var health map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if health["status"] != "ok" {
		t.Errorf("status = %q, want ok", health["status"])
	}
}
