// Package http exposes the settlement pipeline and the receipt scanner
// over a JSON HTTP API.
package http

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"billsplit/internal/middleware"
	"billsplit/internal/ocr"
	"billsplit/internal/service"
)

// Server serves the bill splitter API:
//
//	POST /api/v1/bills/split  compute payment plans from a set of bills
//	POST /api/v1/bills/ocr    extract bill details from a receipt image
//	GET  /api/v1/health       liveness check
//	GET  /metrics             Prometheus metrics
type Server struct {
	http.Server

	split     *service.SplitService
	extractor ocr.Extractor // nil disables the OCR endpoint
}

// NewServer wires handlers, middleware, and h2c support into a server
// listening on addr. extractor may be nil when no scanner is configured;
// the OCR endpoint then answers 503.
func NewServer(addr string, split *service.SplitService, extractor ocr.Extractor, allowOrigin string) *Server {
	s := &Server{
		split:     split,
		extractor: extractor,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/bills/split", s.handleSplit)
	mux.HandleFunc("POST /api/v1/bills/ocr", s.handleOCR)
	mux.HandleFunc("GET /api/v1/health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	handler := middleware.Logging(middleware.Metrics(middleware.CORS(mux, allowOrigin)))

	s.Server = http.Server{
		Addr: addr,
		// h2c allows HTTP/2 without TLS behind a terminating proxy.
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the fully wired handler, used by tests to run the API
// on an httptest server.
func (s *Server) Handler() http.Handler {
	return s.Server.Handler
}
