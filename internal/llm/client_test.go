package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

type fakeProvider struct {
	mu       sync.Mutex
	calls    []string
	respond  map[string]func(w http.ResponseWriter)
	fallback func(w http.ResponseWriter)
}

func (p *fakeProvider) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		p.mu.Lock()
		p.calls = append(p.calls, req.Model)
		fn := p.respond[req.Model]
		p.mu.Unlock()
		if fn == nil {
			fn = p.fallback
		}
		fn(w)
	}
}

func (p *fakeProvider) callsFor(model string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, c := range p.calls {
		if c == model {
			n++
		}
	}
	return n
}

func chatReply(content string) func(w http.ResponseWriter) {
	return func(w http.ResponseWriter) {
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func newTestClient(t *testing.T, url string, models []string) *Client {
	t.Helper()
	return NewClient(ClientConfig{
		BaseURL:       url,
		Temperature:   0.1,
		CallTimeout:   5 * time.Second,
		RateCooldown:  time.Minute,
		MinFieldCount: 3,
	}, StaticModels(models), nil)
}

const goodReply = `{"property_type":"中古マンション","price":3480,"room_layout":"2LDK","exclusive_area":65.3}`

func TestExtractPropertiesFallsBackAcrossModels(t *testing.T) {
	p := &fakeProvider{respond: map[string]func(w http.ResponseWriter){
		"model-a": func(w http.ResponseWriter) { http.Error(w, "boom", http.StatusInternalServerError) },
		"model-b": chatReply("sorry, I cannot help with that"),
		"model-c": chatReply("```json\n" + goodReply + "\n```"),
	}}
	srv := httptest.NewServer(p.handler())
	defer srv.Close()

	c := newTestClient(t, srv.URL, []string{"model-a", "model-b", "model-c"})
	res, err := c.ExtractProperties(context.Background(), "ocr text")
	if err != nil {
		t.Fatalf("ExtractProperties: %v", err)
	}
	if res.Model != "model-c" {
		t.Errorf("winning model = %s, want model-c", res.Model)
	}
	if res.Fields.Price == nil || *res.Fields.Price != 3480 {
		t.Errorf("price = %v, want 3480", res.Fields.Price)
	}
	for _, m := range []string{"model-a", "model-b", "model-c"} {
		if got := p.callsFor(m); got != 1 {
			t.Errorf("calls to %s = %d, want 1", m, got)
		}
	}
}

func TestExtractPropertiesRejectsSparseResults(t *testing.T) {
	p := &fakeProvider{respond: map[string]func(w http.ResponseWriter){
		"sparse": chatReply(`{"property_type":"マンション"}`),
		"full":   chatReply(goodReply),
	}}
	srv := httptest.NewServer(p.handler())
	defer srv.Close()

	c := newTestClient(t, srv.URL, []string{"sparse", "full"})
	res, err := c.ExtractProperties(context.Background(), "ocr text")
	if err != nil {
		t.Fatalf("ExtractProperties: %v", err)
	}
	if res.Model != "full" {
		t.Errorf("winning model = %s, want full", res.Model)
	}
}

func TestExtractPropertiesExhaustsAllModels(t *testing.T) {
	p := &fakeProvider{fallback: chatReply("no json here")}
	srv := httptest.NewServer(p.handler())
	defer srv.Close()

	c := newTestClient(t, srv.URL, []string{"model-a", "model-b"})
	_, err := c.ExtractProperties(context.Background(), "ocr text")
	if !errors.Is(err, ErrAllModelsExhausted) {
		t.Fatalf("err = %v, want ErrAllModelsExhausted", err)
	}
	if len(p.calls) != 2 {
		t.Errorf("calls = %d, want 2", len(p.calls))
	}
}

func TestExtractPropertiesRateLimitCooldown(t *testing.T) {
	p := &fakeProvider{respond: map[string]func(w http.ResponseWriter){
		"limited": func(w http.ResponseWriter) { http.Error(w, "slow down", http.StatusTooManyRequests) },
		"backup":  chatReply(goodReply),
	}}
	srv := httptest.NewServer(p.handler())
	defer srv.Close()

	c := newTestClient(t, srv.URL, []string{"limited", "backup"})

	for i := 0; i < 2; i++ {
		res, err := c.ExtractProperties(context.Background(), fmt.Sprintf("doc %d", i))
		if err != nil {
			t.Fatalf("extraction %d: %v", i, err)
		}
		if res.Model != "backup" {
			t.Errorf("extraction %d model = %s, want backup", i, res.Model)
		}
	}
	// first call hits the limit and starts the cooldown; the second skips it
	if got := p.callsFor("limited"); got != 1 {
		t.Errorf("calls to limited = %d, want 1 (cooldown active)", got)
	}

	// once the cooldown lapses the model is tried again
	c.mu.Lock()
	c.cooldowns["limited"] = time.Now().Add(-time.Second)
	c.mu.Unlock()
	if _, err := c.ExtractProperties(context.Background(), "doc 3"); err != nil {
		t.Fatalf("extraction after cooldown: %v", err)
	}
	if got := p.callsFor("limited"); got != 2 {
		t.Errorf("calls to limited = %d, want 2 (cooldown expired)", got)
	}
}
