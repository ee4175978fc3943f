package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/fyang93/housing-ocr/internal/llm"
	"github.com/fyang93/housing-ocr/internal/repository"
)

// ParseStage turns OCR text into structured property fields. The caller must
// already hold the LLM claim; the repository guarantees the OCR stage is done
// before a claim succeeds.
type ParseStage struct {
	Docs      repository.DocumentRepository
	Extractor llm.FieldExtractor
	Logger    *slog.Logger
}

func NewParseStage(docs repository.DocumentRepository, extractor llm.FieldExtractor, logger *slog.Logger) *ParseStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParseStage{Docs: docs, Extractor: extractor, Logger: logger}
}

// Run feeds the document's OCR text through the field extractor and persists
// the sanitized properties (done) or the failure reason (failed). claimedAt
// conditions the finish writes on this worker's own claim.
func (s *ParseStage) Run(ctx context.Context, id uuid.UUID, claimedAt time.Time) error {
	doc, err := s.Docs.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get document: %w", err)
	}
	if doc.OcrText == nil || *doc.OcrText == "" {
		reason := "no ocr text to parse"
		if ferr := s.Docs.FinishLLMFailure(ctx, id, claimedAt, reason); ferr != nil {
			s.Logger.Error("pipeline.parse.persist_failure_error", "document_id", id, "error", ferr)
		}
		return fmt.Errorf("%s", reason)
	}

	res, err := s.Extractor.ExtractProperties(ctx, *doc.OcrText)
	if err != nil {
		if ferr := s.Docs.FinishLLMFailure(ctx, id, claimedAt, err.Error()); ferr != nil {
			s.Logger.Error("pipeline.parse.persist_failure_error", "document_id", id, "error", ferr)
		}
		return fmt.Errorf("extract properties: %w", err)
	}

	if err := s.Docs.FinishLLMSuccess(ctx, id, claimedAt, res.Raw, res.Model); err != nil {
		return fmt.Errorf("persist properties: %w", err)
	}
	s.Logger.Info("pipeline.parse.ok", "document_id", id, "model", res.Model)
	return nil
}
