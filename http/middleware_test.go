package http

import (
	"compress/gzip"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestTimeoutResponseStaysGzipConsistent(t *testing.T) {
	release := make(chan struct{})
	lateWrite := make(chan error, 1)
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		_, err := w.Write([]byte("late body"))
		lateWrite <- err
	})

	chain := Chain(GzipMiddleware, TimeoutMiddleware(50*time.Millisecond))
	handler := chain(slow)

	req := httptest.NewRequest(http.MethodGet, "/api/predict", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusGatewayTimeout {
		t.Fatalf("expected 504, got %d", w.Code)
	}
	if w.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip content encoding, got %q", w.Header().Get("Content-Encoding"))
	}

	// The advertised encoding must match the body: a gzip reader has to
	// decode the timeout payload.
	reader, err := gzip.NewReader(w.Body)
	if err != nil {
		t.Fatalf("timeout body is not valid gzip: %v", err)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(body), "request timeout") {
		t.Fatalf("unexpected timeout body: %s", body)
	}

	// Once the timeout response is written, the handler's late write must
	// be discarded instead of reaching the response writer.
	close(release)
	if err := <-lateWrite; !errors.Is(err, http.ErrHandlerTimeout) {
		t.Fatalf("expected late write to be rejected with ErrHandlerTimeout, got %v", err)
	}
}

func TestTimeoutMiddlewarePassesFastRequests(t *testing.T) {
	fast := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"ok":true}`))
	})

	handler := TimeoutMiddleware(time.Second)(fast)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if w.Header().Get("Content-Type") != "application/json" {
		t.Fatalf("handler headers must reach the response, got %q", w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Body.String(), `"ok":true`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
