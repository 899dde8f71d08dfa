// Package middleware provides HTTP middleware for request logging, CORS,
// and Prometheus metrics.
package middleware

import "net/http"

// statusRecorder captures the response status code for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
