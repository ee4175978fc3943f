package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

// ErrAllModelsExhausted indicates every configured model either failed or was
// cooling down, so extraction could not produce a usable result.
var ErrAllModelsExhausted = errors.New("llm: all models exhausted")

const systemPrompt = "You are a precise data-extraction assistant for Japanese real-estate listings. You reply with a single JSON object and nothing else."

const extractionPromptHeader = `Below is OCR text taken from a Japanese real-estate flyer or listing document.
Extract the property information into a JSON object with exactly these keys
(omit a key entirely when the document does not state it, never guess):

property_type, property_name, address, prefecture, city, land_rights,
current_status, handover_date, build_year, structure, total_floors,
floor_number, room_layout, orientation, price, management_fee, repair_fee,
exclusive_area, balcony_area, land_area, building_area, parking, pet_policy,
corner_room, stations

Rules:
- price is a number in units of 10,000 yen (万円). "3,480万円" becomes 3480.
- management_fee and repair_fee are monthly amounts in yen as integers.
- Areas (exclusive_area, balcony_area, land_area, building_area) are numbers
  in square meters. Convert tatami counts with 1畳 = 1.62m² and tsubo with
  1坪 = 3.3m², rounding to two decimals.
- build_year is a 4-digit Gregorian year. Convert Japanese era years:
  令和N = 2018+N, 平成N = 1988+N, 昭和N = 1925+N.
- stations is an array of {"name", "lines", "walking_minutes"} objects.
  Include walking_minutes only when the document gives a walking time
  (徒歩N分). Ignore bus or car access times entirely. lines is an array of
  railway line names serving that station.
- corner_room is a boolean.
- All other values are strings copied from the document.

Example output:
{"property_type":"中古マンション","property_name":"グランドパレス品川","price":3480,"exclusive_area":65.32,"room_layout":"2LDK","build_year":2008,"stations":[{"name":"品川","lines":["JR山手線"],"walking_minutes":8}]}

OCR text:
`

// ClientConfig carries the provider endpoint and fallback-policy tunables.
type ClientConfig struct {
	BaseURL       string
	APIKey        string
	Temperature   float32
	CallTimeout   time.Duration
	RateCooldown  time.Duration
	MinFieldCount int
}

// Client extracts structured property fields from OCR text by walking an
// ordered list of models and falling back to the next on any failure.
type Client struct {
	cfg    ClientConfig
	models ModelSource
	http   *http.Client
	logger *slog.Logger

	schema map[string]any

	mu        sync.Mutex
	cooldowns map[string]time.Time
	now       func() time.Time
}

func NewClient(cfg ClientConfig, models ModelSource, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = 2 * time.Minute
	}
	if cfg.RateCooldown <= 0 {
		cfg.RateCooldown = time.Minute
	}
	if cfg.MinFieldCount <= 0 {
		cfg.MinFieldCount = 3
	}
	return &Client{
		cfg:       cfg,
		models:    models,
		http:      &http.Client{Timeout: cfg.CallTimeout},
		logger:    logger,
		schema:    BuildPropertyJSONSchema(),
		cooldowns: make(map[string]time.Time),
		now:       time.Now,
	}
}

var _ FieldExtractor = (*Client)(nil)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ExtractProperties tries each configured model in order until one yields a
// JSON object that survives sanitization, validates against the property
// schema, and carries at least MinFieldCount meaningful fields. A model on
// rate-limit cooldown is skipped without counting as an attempt.
func (c *Client) ExtractProperties(ctx context.Context, ocrText string) (ExtractResult, error) {
	models := c.models.Models()
	if len(models) == 0 {
		return ExtractResult{}, fmt.Errorf("%w: no models configured", ErrAllModelsExhausted)
	}

	var lastErr error
	for _, model := range models {
		if until, cooling := c.coolingDown(model); cooling {
			c.logger.Debug("llm.model_cooling_down", "model", model, "until", until)
			lastErr = fmt.Errorf("model %s rate-limited until %s", model, until.Format(time.RFC3339))
			continue
		}

		res, err := c.extractWithModel(ctx, model, ocrText)
		if err == nil {
			return res, nil
		}
		if ctx.Err() != nil {
			return ExtractResult{}, ctx.Err()
		}
		lastErr = err
		c.logger.Warn("llm.model_failed", "model", model, "error", err)
	}

	if lastErr != nil {
		return ExtractResult{}, fmt.Errorf("%w: last error: %v", ErrAllModelsExhausted, lastErr)
	}
	return ExtractResult{}, ErrAllModelsExhausted
}

func (c *Client) extractWithModel(ctx context.Context, model, ocrText string) (ExtractResult, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.cfg.CallTimeout)
	defer cancel()

	req := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: extractionPromptHeader + ocrText},
		},
		Temperature: c.cfg.Temperature,
	}

	headers := map[string]string{}
	if c.cfg.APIKey != "" {
		headers["Authorization"] = "Bearer " + c.cfg.APIKey
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, status, err := SendJSON(callCtx, c.http, url, req, headers, c.logger)
	if err != nil {
		if status == http.StatusTooManyRequests {
			c.setCooldown(model)
			return ExtractResult{}, fmt.Errorf("model %s rate-limited (429)", model)
		}
		return ExtractResult{}, fmt.Errorf("model %s request: %w", model, err)
	}

	var resp chatResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return ExtractResult{}, fmt.Errorf("model %s: decode response: %w", model, err)
	}
	if len(resp.Choices) == 0 {
		return ExtractResult{}, fmt.Errorf("model %s: empty choices", model)
	}

	content := resp.Choices[0].Message.Content
	obj, err := extractJSONObject(content)
	if err != nil {
		return ExtractResult{}, fmt.Errorf("model %s: %w", model, err)
	}

	sanitized, meaningful, err := SanitizeProperties(obj)
	if err != nil {
		return ExtractResult{}, fmt.Errorf("model %s: sanitize: %w", model, err)
	}
	if meaningful < c.cfg.MinFieldCount {
		return ExtractResult{}, fmt.Errorf("model %s: only %d meaningful fields (need %d)", model, meaningful, c.cfg.MinFieldCount)
	}
	if err := ValidateJSONAgainstSchema(c.schema, sanitized); err != nil {
		return ExtractResult{}, fmt.Errorf("model %s: schema: %w", model, err)
	}

	var fields PropertyFields
	if err := json.Unmarshal(sanitized, &fields); err != nil {
		return ExtractResult{}, fmt.Errorf("model %s: decode fields: %w", model, err)
	}

	c.logger.Info("llm.extract_ok", "model", model, "meaningful_fields", meaningful)
	return ExtractResult{Fields: fields, Raw: sanitized, Model: model}, nil
}

func (c *Client) coolingDown(model string) (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	until, ok := c.cooldowns[model]
	if !ok {
		return time.Time{}, false
	}
	if c.now().After(until) {
		delete(c.cooldowns, model)
		return time.Time{}, false
	}
	return until, true
}

func (c *Client) setCooldown(model string) {
	c.mu.Lock()
	c.cooldowns[model] = c.now().Add(c.cfg.RateCooldown)
	c.mu.Unlock()
}

// extractJSONObject pulls the first JSON object out of a model reply,
// tolerating markdown code fences and surrounding prose.
func extractJSONObject(content string) ([]byte, error) {
	s := strings.TrimSpace(content)
	if i := strings.Index(s, "```"); i >= 0 {
		s = s[i+3:]
		s = strings.TrimPrefix(s, "json")
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
	}
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return nil, errors.New("no JSON object in reply")
	}
	obj := []byte(s[start : end+1])
	if !json.Valid(obj) {
		return nil, errors.New("malformed JSON object in reply")
	}
	return obj, nil
}
