package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jaekwang-park/todo-cloud/internal/middleware"
)

type capturedRequest struct {
	method string
	status int
}

type fakeHTTPMetrics struct {
	requests []capturedRequest
}

func (f *fakeHTTPMetrics) RecordHTTPRequest(method string, statusCode int, duration time.Duration) {
	f.requests = append(f.requests, capturedRequest{method: method, status: statusCode})
}

func TestMetrics_RecordsStatusAndMethod(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		status     int
		wantStatus int
	}{
		{"ok", http.MethodGet, http.StatusOK, http.StatusOK},
		{"created", http.MethodPost, http.StatusCreated, http.StatusCreated},
		{"not found", http.MethodDelete, http.StatusNotFound, http.StatusNotFound},
		{"implicit 200", http.MethodGet, 0, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeHTTPMetrics{}
			inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				w.Write([]byte("{}"))
			})

			req := httptest.NewRequest(tt.method, "/todos", nil)
			w := httptest.NewRecorder()
			middleware.Metrics(fake)(inner).ServeHTTP(w, req)

			if len(fake.requests) != 1 {
				t.Fatalf("expected 1 recorded request, got %d", len(fake.requests))
			}
			got := fake.requests[0]
			if got.method != tt.method || got.status != tt.wantStatus {
				t.Errorf("recorded %+v, want method=%s status=%d", got, tt.method, tt.wantStatus)
			}
		})
	}
}
