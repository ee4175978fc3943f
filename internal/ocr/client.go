// Package ocr wraps the external OCR inference endpoint. The backend is a
// vLLM-style vision model reached over chat/completions; it may be cold or
// briefly unreachable, which the bounded retry loop absorbs.
package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

// ErrUnavailable is returned after the retry budget is exhausted. The caller
// marks the stage failed; further attempts require an explicit user retry.
var ErrUnavailable = errors.New("ocr backend unavailable")

const extractionPrompt = `Please output the layout information from the document image, including each layout element's category, and the corresponding text content within. IMPORTANT: Extract ALL text content from the image, including headers, titles, small text, and any other text near the edges of the document.

1. Layout Categories: The possible categories are ['Caption', 'Footnote', 'List-item', 'Page-footer', 'Page-header', 'Title', 'Table', 'Text'].

2. Text Extraction & Formatting Rules:
   - Table: Format its text as HTML.
   - All Others (Text, Title, etc.): Format their text as Markdown.

3. Constraints:
   - The output text must be the original text from the image, with no translation.
   - All layout elements must be sorted according to human reading order.
   - CRITICAL: Ensure ALL text is captured, including headers, footers, and any small text near document edges.

4. Final Output: The entire output must be a single JSON object.`

// TextExtractor is what the pipeline depends on: file path in, raw text out.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

type Config struct {
	Endpoint    string        // base URL, e.g. http://localhost:8000/v1
	Model       string        // vision model identifier
	MaxRetries  int           // attempts per document, default 3
	RetryDelay  time.Duration // fixed delay between attempts, default 5s
	CallTimeout time.Duration // per-attempt budget, default 5m
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 5 * time.Second
	}
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = 5 * time.Minute
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// ExtractText reads the stored file and runs it through the OCR backend,
// retrying transient failures up to the configured budget. Non-transient
// responses (4xx) fail immediately; a drained budget returns ErrUnavailable.
func (c *Client) ExtractText(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read stored file: %w", err)
	}
	mime := mimeFor(path)

	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxRetries; attempt++ {
		start := time.Now()
		text, err := c.extractOnce(ctx, data, mime)
		if err == nil {
			c.logger.Info("ocr extract ok",
				"path", path, "attempt", attempt,
				"chars", len(text), "elapsed_ms", time.Since(start).Milliseconds(),
			)
			return text, nil
		}
		lastErr = err

		if !retryable(err) {
			c.logger.Error("ocr extract failed (not retryable)", "path", path, "error", err)
			return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		c.logger.Warn("ocr attempt failed",
			"path", path, "attempt", attempt, "max", c.cfg.MaxRetries, "error", err,
		)
		if attempt < c.cfg.MaxRetries {
			select {
			case <-time.After(c.cfg.RetryDelay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}
	return "", fmt.Errorf("%w after %d attempts: %v", ErrUnavailable, c.cfg.MaxRetries, lastErr)
}

func (c *Client) extractOnce(ctx context.Context, data []byte, mime string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.CallTimeout)
	defer cancel()

	encoded := base64.StdEncoding.EncodeToString(data)
	body := map[string]any{
		"model": c.cfg.Model,
		"messages": []map[string]any{
			{
				"role": "user",
				"content": []map[string]any{
					{"type": "text", "text": extractionPrompt},
					{
						"type":      "image_url",
						"image_url": map[string]any{"url": "data:" + mime + ";base64," + encoded},
					},
				},
			},
		},
		"max_tokens":  16384,
		"temperature": 0.1,
	}

	bs, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}
	endpoint := strings.TrimRight(c.cfg.Endpoint, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bs))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &transientError{err}
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.logger.Warn("ocr response body close error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		err := fmt.Errorf("ocr status %d: %s", resp.StatusCode, truncate(string(raw), 512))
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return "", &transientError{err}
		}
		return "", err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return "", fmt.Errorf("decode ocr response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return "", &transientError{errors.New("no choices in ocr response")}
	}
	return cc.Choices[0].Message.Content, nil
}

// transientError marks connection failures, timeouts and 5xx responses as
// worth another attempt.
type transientError struct{ err error }

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

func retryable(err error) bool {
	var te *transientError
	if errors.As(err, &te) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

func mimeFor(path string) string {
	switch {
	case strings.HasSuffix(strings.ToLower(path), ".png"):
		return "image/png"
	case strings.HasSuffix(strings.ToLower(path), ".pdf"):
		return "application/pdf"
	default:
		return "image/jpeg"
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
