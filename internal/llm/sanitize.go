package llm

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Japanese area units to square meters.
const (
	TatamiToM2 = 1.62 // 畳 (jo), one tatami mat
	TsuboToM2  = 3.3  // 坪 (tsubo)
)

var (
	reTatami = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*畳$`)
	reTsubo  = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*坪$`)
	reNumber = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

	// Era patterns with the first year of each era.
	eraPatterns = []struct {
		re   *regexp.Regexp
		base int
	}{
		{regexp.MustCompile(`令和\s*(\d+)\s*年?`), 2019},
		{regexp.MustCompile(`平成\s*(\d+)\s*年?`), 1989},
		{regexp.MustCompile(`昭和\s*(\d+)\s*年?`), 1926},
		{regexp.MustCompile(`大正\s*(\d+)\s*年?`), 1912},
		{regexp.MustCompile(`明治\s*(\d+)\s*年?`), 1867},
	}

	intFields = map[string]struct{}{
		"build_year": {}, "total_floors": {}, "floor_number": {},
		"management_fee": {}, "repair_fee": {},
	}
	numberFields = map[string]struct{}{
		"price": {}, "exclusive_area": {}, "balcony_area": {},
		"land_area": {}, "building_area": {},
	}
	areaFields = map[string]struct{}{
		"exclusive_area": {}, "balcony_area": {},
		"land_area": {}, "building_area": {},
	}
	stringFields = map[string]struct{}{
		"property_type": {}, "property_name": {}, "address": {}, "prefecture": {},
		"city": {}, "land_rights": {}, "current_status": {}, "handover_date": {},
		"structure": {}, "room_layout": {}, "orientation": {}, "parking": {},
		"pet_policy": {},
	}
)

// ConvertAreaToSquareMeters converts a value carrying a traditional unit
// suffix to m². Bare numbers pass through unchanged.
func ConvertAreaToSquareMeters(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if m := reTatami.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		return round2(v * TatamiToM2), true
	}
	if m := reTsubo.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		return round2(v * TsuboToM2), true
	}
	if v, err := strconv.ParseFloat(strings.TrimSuffix(s, "m²"), 64); err == nil {
		return v, true
	}
	return 0, false
}

// ConvertEraYear maps a Japanese era year (令和3年) to a western year.
// Returns false when s carries no recognizable era.
func ConvertEraYear(s string) (int, bool) {
	for _, p := range eraPatterns {
		if m := p.re.FindStringSubmatch(s); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return 0, false
			}
			return p.base + n - 1, true
		}
	}
	return 0, false
}

// SanitizeProperties normalizes a model's raw extraction object so it can
// validate against the schema: nulls and empty strings are dropped, numbers
// arriving as strings are coerced leniently, traditional area units are
// converted to m², era build years become western years, and duplicate
// station entries are merged. Unknown keys are dropped. The cleaned JSON and
// the count of meaningful fields are returned.
func SanitizeProperties(doc []byte) ([]byte, int, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, 0, fmt.Errorf("parse extraction: %w", err)
	}

	out := make(map[string]any, len(m))

	for k := range stringFields {
		if s, ok := stringValue(m[k]); ok {
			out[k] = s
		}
	}

	for k := range numberFields {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case float64:
			out[k] = t
		case string:
			if _, isArea := areaFields[k]; isArea {
				if f, ok := ConvertAreaToSquareMeters(t); ok {
					out[k] = f
					continue
				}
			}
			if f, ok := lenientFloat(t); ok {
				out[k] = f
			}
		}
	}

	for k := range intFields {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case float64:
			out[k] = int(t)
		case string:
			if k == "build_year" {
				if y, ok := ConvertEraYear(t); ok {
					out[k] = y
					continue
				}
			}
			if f, ok := lenientFloat(t); ok {
				out[k] = int(f)
			}
		}
	}

	if b, ok := m["corner_room"]; ok && b != nil {
		switch t := b.(type) {
		case bool:
			out["corner_room"] = t
		case string:
			switch strings.TrimSpace(t) {
			case "true", "yes", "はい", "あり", "角部屋":
				out["corner_room"] = true
			case "false", "no", "いいえ", "なし":
				out["corner_room"] = false
			}
		}
	}

	if stations := sanitizeStations(m["stations"]); len(stations) > 0 {
		out["stations"] = stations
	}

	meaningful := 0
	for _, v := range out {
		if v != nil {
			meaningful++
		}
	}

	b, err := json.Marshal(out)
	if err != nil {
		return nil, 0, err
	}
	return b, meaningful, nil
}

// sanitizeStations keeps well-formed entries and merges duplicates by
// station name: line lists union, shortest walk wins.
func sanitizeStations(v any) []map[string]any {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	var order []string
	merged := map[string]map[string]any{}
	for _, e := range arr {
		obj, ok := e.(map[string]any)
		if !ok {
			continue
		}
		name, ok := stringValue(obj["name"])
		if !ok {
			continue
		}
		entry, seen := merged[name]
		if !seen {
			entry = map[string]any{"name": name}
			merged[name] = entry
			order = append(order, name)
		}

		if lines, ok := obj["lines"].([]any); ok {
			existing, _ := entry["lines"].([]string)
			for _, l := range lines {
				if s, ok := stringValue(l); ok && !contains(existing, s) {
					existing = append(existing, s)
				}
			}
			if len(existing) > 0 {
				entry["lines"] = existing
			}
		}

		if w, ok := intValue(obj["walking_minutes"]); ok {
			if prev, has := entry["walking_minutes"].(int); !has || w < prev {
				entry["walking_minutes"] = w
			}
		}
	}

	out := make([]map[string]any, 0, len(order))
	for _, name := range order {
		out = append(out, merged[name])
	}
	return out
}

func stringValue(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "null") {
		return "", false
	}
	return s, true
}

func intValue(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), true
	case string:
		if f, ok := lenientFloat(t); ok {
			return int(f), true
		}
	}
	return 0, false
}

// lenientFloat pulls the first number out of strings like "5,800万円" or
// "65.8m²".
func lenientFloat(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	match := reNumber.FindString(s)
	if match == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func contains(ss []string, s string) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}
	return false
}
