package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"billsplit/internal/calculator"
	"billsplit/internal/models"
)

// maxUploadBytes caps receipt uploads at 10 MiB.
const maxUploadBytes = 10 << 20

type splitRequest struct {
	Bills []models.Bill `json:"bills"`
}

type paymentResponse struct {
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

type planResponse struct {
	Name     string            `json:"name"`
	Payments []paymentResponse `json:"payments"`
}

type splitResponse struct {
	PaymentPlans []planResponse `json:"payment_plans"`
}

// handleSplit computes payment plans from the submitted bills.
func (s *Server) handleSplit(w http.ResponseWriter, r *http.Request) {
	var req splitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	plans, err := s.split.ComputePlans(r.Context(), req.Bills)
	if err != nil {
		var ve *models.ValidationError
		switch {
		case errors.As(err, &ve):
			writeError(w, http.StatusBadRequest, ve.Error())
		case errors.Is(err, calculator.ErrUnbalanced):
			// Allocation bug, not a caller problem; details stay in the log.
			slog.Error("Split computation failed", "error", err)
			writeError(w, http.StatusInternalServerError, "internal settlement error")
		default:
			slog.Error("Split computation failed", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	resp := splitResponse{PaymentPlans: make([]planResponse, 0, len(plans))}
	for _, plan := range plans {
		payments := make([]paymentResponse, 0, len(plan.Payments))
		for _, p := range plan.Payments {
			payments = append(payments, paymentResponse{To: p.To, Amount: p.Amount.Float()})
		}
		resp.PaymentPlans = append(resp.PaymentPlans, planResponse{Name: plan.Name, Payments: payments})
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleOCR extracts bill details from an uploaded receipt image.
func (s *Server) handleOCR(w http.ResponseWriter, r *http.Request) {
	if s.extractor == nil {
		writeError(w, http.StatusServiceUnavailable, "receipt scanning is not configured")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "expected a multipart upload with a file field")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") {
		writeError(w, http.StatusBadRequest, "invalid file type, upload an image")
		return
	}

	image, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	bill, err := s.extractor.Extract(r.Context(), image, mimeType)
	if err != nil {
		slog.Error("Receipt extraction failed", "error", err)
		writeError(w, http.StatusBadGateway, "failed to scan receipt")
		return
	}
	writeJSON(w, http.StatusOK, bill)
}

// handleHealth performs a basic liveness check.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
