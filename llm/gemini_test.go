package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestGeminiClientGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "gemini-1.5-flash") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing api key in query")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Track every expense."}]}}]}`))
	}))
	defer server.Close()

	client := NewGeminiClient("test-key", "gemini-1.5-flash", time.Second, 256)
	client.baseURL = server.URL

	reply, err := client.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Track every expense." {
		t.Fatalf("unexpected reply: %q", reply)
	}
}

func TestGeminiClientSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"message":"API key not valid"}}`))
	}))
	defer server.Close()

	client := NewGeminiClient("bad-key", "", time.Second, 0)
	client.baseURL = server.URL

	_, err := client.Generate(context.Background(), "prompt")
	if err == nil || !strings.Contains(err.Error(), "API key not valid") {
		t.Fatalf("expected api error message, got %v", err)
	}
}

func TestGeminiClientRequiresAPIKey(t *testing.T) {
	client := NewGeminiClient("", "", time.Second, 0)
	if _, err := client.Generate(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error without api key")
	}
}
