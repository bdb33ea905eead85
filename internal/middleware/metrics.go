package middleware

import (
	"net/http"
	"time"
)

// HTTPMetrics records one served request.
type HTTPMetrics interface {
	RecordHTTPRequest(method string, statusCode int, duration time.Duration)
}

func Metrics(collector HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rec, r)

			collector.RecordHTTPRequest(r.Method, rec.statusCode, time.Since(start))
		})
	}
}
