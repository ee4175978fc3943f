package llm

import (
	"encoding/json"
	"testing"
)

func TestConvertAreaToSquareMeters(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"10畳", 16.2, true},
		{"5坪", 16.5, true},
		{"6.5畳", 10.53, true},
		{"65.32", 65.32, true},
		{"65.32m²", 65.32, true},
		{"広い", 0, false},
	}
	for _, c := range cases {
		got, ok := ConvertAreaToSquareMeters(c.in)
		if ok != c.ok {
			t.Errorf("ConvertAreaToSquareMeters(%q) ok = %v, want %v", c.in, ok, c.ok)
			continue
		}
		if ok && got != c.want {
			t.Errorf("ConvertAreaToSquareMeters(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestConvertEraYear(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"令和3年", 2021, true},
		{"令和1年", 2019, true},
		{"平成7年", 1995, true},
		{"昭和55年", 1980, true},
		{"大正10年", 1921, true},
		{"明治40年", 1906, true},
		{"2005年", 0, false},
	}
	for _, c := range cases {
		got, ok := ConvertEraYear(c.in)
		if ok != c.ok {
			t.Errorf("ConvertEraYear(%q) ok = %v, want %v", c.in, ok, c.ok)
			continue
		}
		if ok && got != c.want {
			t.Errorf("ConvertEraYear(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestSanitizePropertiesCoercion(t *testing.T) {
	raw := []byte(`{
		"property_name": "グランドパレス品川",
		"price": "3,480万円",
		"exclusive_area": "10畳",
		"build_year": "平成20年",
		"management_fee": "12,000円",
		"corner_room": "あり",
		"address": null,
		"pet_policy": ""
	}`)

	out, meaningful, err := SanitizeProperties(raw)
	if err != nil {
		t.Fatalf("SanitizeProperties: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}

	if m["property_name"] != "グランドパレス品川" {
		t.Errorf("property_name = %v", m["property_name"])
	}
	if m["price"] != 3480.0 {
		t.Errorf("price = %v, want 3480", m["price"])
	}
	if m["exclusive_area"] != 16.2 {
		t.Errorf("exclusive_area = %v, want 16.2", m["exclusive_area"])
	}
	if m["build_year"] != 2008.0 {
		t.Errorf("build_year = %v, want 2008", m["build_year"])
	}
	if m["management_fee"] != 12000.0 {
		t.Errorf("management_fee = %v, want 12000", m["management_fee"])
	}
	if m["corner_room"] != true {
		t.Errorf("corner_room = %v, want true", m["corner_room"])
	}
	if _, present := m["address"]; present {
		t.Error("null address should be dropped")
	}
	if _, present := m["pet_policy"]; present {
		t.Error("empty pet_policy should be dropped")
	}
	if meaningful != 6 {
		t.Errorf("meaningful = %d, want 6", meaningful)
	}
}

func TestSanitizePropertiesMergesStations(t *testing.T) {
	raw := []byte(`{
		"stations": [
			{"name": "品川", "lines": ["JR山手線"], "walking_minutes": 8},
			{"name": "品川", "lines": ["京急本線"], "walking_minutes": 6},
			{"name": "北品川", "lines": ["京急本線"]}
		]
	}`)

	out, _, err := SanitizeProperties(raw)
	if err != nil {
		t.Fatalf("SanitizeProperties: %v", err)
	}

	var fields PropertyFields
	if err := json.Unmarshal(out, &fields); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}

	if len(fields.Stations) != 2 {
		t.Fatalf("stations = %d, want 2", len(fields.Stations))
	}
	first := fields.Stations[0]
	if first.Name != "品川" {
		t.Errorf("first station = %s, want 品川 (order preserved)", first.Name)
	}
	if len(first.Lines) != 2 {
		t.Errorf("merged lines = %v, want both", first.Lines)
	}
	if first.WalkingMinutes == nil || *first.WalkingMinutes != 6 {
		t.Errorf("walking_minutes = %v, want 6 (shortest wins)", first.WalkingMinutes)
	}
	if fields.Stations[1].WalkingMinutes != nil {
		t.Error("station without walking time should stay without one")
	}
}

func TestSanitizePropertiesValidatesAgainstSchema(t *testing.T) {
	raw := []byte(`{
		"property_type": "中古マンション",
		"price": 3480,
		"room_layout": "2LDK",
		"unknown_field": {"nested": true}
	}`)

	out, meaningful, err := SanitizeProperties(raw)
	if err != nil {
		t.Fatalf("SanitizeProperties: %v", err)
	}
	if meaningful != 3 {
		t.Errorf("meaningful = %d, want 3 (unknown keys dropped)", meaningful)
	}
	if err := ValidateJSONAgainstSchema(BuildPropertyJSONSchema(), out); err != nil {
		t.Errorf("sanitized output should validate: %v", err)
	}
}
