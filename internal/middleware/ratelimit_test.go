package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func requestFrom(remoteAddr string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.RemoteAddr = remoteAddr
	return req
}

func TestRateLimiter_AllowsRequestsWithinBurst(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Rate: 1, Burst: 5, CleanupInterval: time.Minute})
	defer rl.Stop()

	handler := rl.Middleware(okHandler())

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, requestFrom("192.0.2.1:1234"))
		if w.Code != http.StatusOK {
			t.Errorf("request %d: status = %d, want %d", i, w.Code, http.StatusOK)
		}
	}
}

func TestRateLimiter_Returns429WhenExceeded(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Rate: 0.5, Burst: 2, CleanupInterval: time.Minute})
	defer rl.Stop()

	handler := rl.Middleware(okHandler())

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, requestFrom("192.0.2.1:1234"))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want %d", i, w.Code, http.StatusOK)
		}
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, requestFrom("192.0.2.1:1234"))

	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusTooManyRequests)
	}
	if got := w.Header().Get("Retry-After"); got != "2" {
		t.Errorf("Retry-After = %q, want %q", got, "2")
	}
	if got := w.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", got)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["error"] == "" {
		t.Error("expected error message in body")
	}
}

func TestRateLimiter_ClientsAreIndependent(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Rate: 0.1, Burst: 1, CleanupInterval: time.Minute})
	defer rl.Stop()

	handler := rl.Middleware(okHandler())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, requestFrom("192.0.2.1:1000"))
	if w.Code != http.StatusOK {
		t.Fatalf("first client status = %d, want %d", w.Code, http.StatusOK)
	}

	// Same IP on a different port shares the bucket.
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, requestFrom("192.0.2.1:2000"))
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("same client status = %d, want %d", w.Code, http.StatusTooManyRequests)
	}

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, requestFrom("198.51.100.7:1000"))
	if w.Code != http.StatusOK {
		t.Errorf("second client status = %d, want %d", w.Code, http.StatusOK)
	}

	if got := rl.LimiterCount(); got != 2 {
		t.Errorf("LimiterCount() = %d, want 2", got)
	}
}

func TestRateLimiter_CleanupRemovesIdleClients(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Rate: 1, Burst: 1, CleanupInterval: time.Minute})
	defer rl.Stop()

	rl.limiterFor("192.0.2.1")
	rl.limiterFor("192.0.2.2")

	rl.cleanup(time.Now())
	if got := rl.LimiterCount(); got != 2 {
		t.Fatalf("fresh entries should survive cleanup, count = %d", got)
	}

	rl.cleanup(time.Now().Add(3 * time.Minute))
	if got := rl.LimiterCount(); got != 0 {
		t.Errorf("idle entries should be removed, count = %d", got)
	}
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Rate: 1, Burst: 1})
	rl.Stop()
	rl.Stop()
}

func TestRateLimiterConfigPerMinute(t *testing.T) {
	cfg := RateLimiterConfigPerMinute(120, 60)
	if cfg.Rate != 2 {
		t.Errorf("Rate = %v, want 2", cfg.Rate)
	}
	if cfg.Burst != 60 {
		t.Errorf("Burst = %d, want 60", cfg.Burst)
	}
	if cfg.CleanupInterval <= 0 {
		t.Error("CleanupInterval should be positive")
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		remoteAddr string
		want       string
	}{
		{"192.0.2.1:8080", "192.0.2.1"},
		{"[2001:db8::1]:443", "2001:db8::1"},
		{"192.0.2.9", "192.0.2.9"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = tt.remoteAddr
		if got := clientIP(req); got != tt.want {
			t.Errorf("clientIP(%q) = %q, want %q", tt.remoteAddr, got, tt.want)
		}
	}
}
