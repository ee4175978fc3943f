package server

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fyang93/housing-ocr/gen/ent"
)

func TestToProtoDocumentMapsFields(t *testing.T) {
	id := uuid.New()
	text := "物件概要 テキスト"
	model := "model-x"
	ocrErr := "backend unavailable"
	uploaded := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	d := &ent.Document{
		ID:               id,
		ContentHash:      []byte{0xde, 0xad, 0xbe, 0xef},
		OriginalFilename: "flyer.pdf",
		FileExt:          "pdf",
		FileSize:         123456,
		OcrStatus:        "done",
		LlmStatus:        "done",
		OcrText:          &text,
		Properties:       []byte(`{"price":3480}`),
		ExtractedModel:   &model,
		OcrError:         &ocrErr,
		OcrRetryCount:    2,
		Favorite:         true,
		UploadedAt:       uploaded,
	}

	got := toProtoDocument(d, false)
	if got.Id != id.String() {
		t.Errorf("id = %s", got.Id)
	}
	if got.FileSize != 123456 {
		t.Errorf("file_size = %d, want 123456", got.FileSize)
	}
	if got.ContentHashHex != hex.EncodeToString(d.ContentHash) {
		t.Errorf("content_hash_hex = %s", got.ContentHashHex)
	}
	if got.UploadedAt != "2026-03-01T09:30:00Z" {
		t.Errorf("uploaded_at = %s", got.UploadedAt)
	}
	if got.OcrText != text {
		t.Errorf("ocr_text = %q", got.OcrText)
	}
	if got.PropertiesJson != `{"price":3480}` {
		t.Errorf("properties_json = %s", got.PropertiesJson)
	}
	if got.ExtractedModel != model || got.OcrError != ocrErr {
		t.Errorf("model = %q, ocr_error = %q", got.ExtractedModel, got.OcrError)
	}
	if got.OcrRetryCount != 2 || !got.Favorite {
		t.Errorf("retry = %d, favorite = %v", got.OcrRetryCount, got.Favorite)
	}
}

func TestToProtoDocumentSummaryOmitsPayloads(t *testing.T) {
	text := "long ocr text"
	d := &ent.Document{
		ID:               uuid.New(),
		OriginalFilename: "flyer.pdf",
		OcrStatus:        "done",
		LlmStatus:        "done",
		OcrText:          &text,
		Properties:       []byte(`{"price":3480}`),
		UploadedAt:       time.Now().UTC(),
	}

	got := toProtoDocument(d, true)
	if got.OcrText != "" {
		t.Errorf("summary ocr_text = %q, want empty", got.OcrText)
	}
	if got.PropertiesJson != "" {
		t.Errorf("summary properties_json = %q, want empty", got.PropertiesJson)
	}
	if got.OcrStatus != "done" || got.LlmStatus != "done" {
		t.Errorf("summary statuses = %s/%s", got.OcrStatus, got.LlmStatus)
	}
}
