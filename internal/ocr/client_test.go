package ocr

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func writeTestImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flyer.png")
	if err := os.WriteFile(path, []byte("not really a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func ocrReply(text string) []byte {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": text}},
		},
	})
	return b
}

func newTestOCRClient(t *testing.T, endpoint string) *Client {
	t.Helper()
	return NewClient(Config{
		Endpoint:    endpoint,
		Model:       "test-model",
		MaxRetries:  3,
		RetryDelay:  10 * time.Millisecond,
		CallTimeout: 5 * time.Second,
	}, nil)
}

func TestExtractTextRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write(ocrReply("物件概要 品川区..."))
	}))
	defer srv.Close()

	c := newTestOCRClient(t, srv.URL)
	text, err := c.ExtractText(context.Background(), writeTestImage(t))
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if text != "物件概要 品川区..." {
		t.Errorf("text = %q", text)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
}

func TestExtractTextFailsFastOnClientError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad payload", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := newTestOCRClient(t, srv.URL)
	_, err := c.ExtractText(context.Background(), writeTestImage(t))
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1 (no retry on 4xx)", got)
	}
}

func TestExtractTextExhaustsRetryBudget(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "still overloaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestOCRClient(t, srv.URL)
	_, err := c.ExtractText(context.Background(), writeTestImage(t))
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("calls = %d, want 3 (full budget)", got)
	}
}

func TestExtractTextMissingFile(t *testing.T) {
	c := newTestOCRClient(t, "http://localhost:1")
	if _, err := c.ExtractText(context.Background(), filepath.Join(t.TempDir(), "gone.pdf")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
