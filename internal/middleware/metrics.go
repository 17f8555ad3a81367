package middleware

import (
	"net/http"

	"bhajaj.dev/internal/metrics"
)

// Metrics counts responses by status code
func Metrics(rec metrics.Recorder) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sr := newStatusRecorder(w)
			next.ServeHTTP(sr, r)
			rec.RecordHTTPStatus(sr.statusCode)
		})
	}
}
