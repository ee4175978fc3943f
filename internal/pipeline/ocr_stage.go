package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/fyang93/housing-ocr/internal/ocr"
	"github.com/fyang93/housing-ocr/internal/repository"
)

// OCRStage turns a stored document file into raw text and records the
// outcome on the document row. The caller must already hold the OCR claim.
type OCRStage struct {
	Docs      repository.DocumentRepository
	Extractor ocr.TextExtractor
	Logger    *slog.Logger
}

func NewOCRStage(docs repository.DocumentRepository, extractor ocr.TextExtractor, logger *slog.Logger) *OCRStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRStage{Docs: docs, Extractor: extractor, Logger: logger}
}

// Run reads the stored file, extracts its text, and persists either the text
// (done) or the failure reason (failed). claimedAt is the timestamp this
// worker won its claim with; the finish writes are conditioned on it so a
// superseded worker cannot overwrite a newer claim. Empty extractor output
// counts as a failure; a document with no recoverable text cannot feed the
// parse stage.
func (s *OCRStage) Run(ctx context.Context, id uuid.UUID, claimedAt time.Time) error {
	doc, err := s.Docs.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get document: %w", err)
	}

	text, err := s.Extractor.ExtractText(ctx, doc.StoredPath)
	if err != nil {
		if ferr := s.Docs.FinishOCRFailure(ctx, id, claimedAt, err.Error()); ferr != nil {
			s.Logger.Error("pipeline.ocr.persist_failure_error", "document_id", id, "error", ferr)
		}
		return fmt.Errorf("extract text: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		reason := "ocr returned empty text"
		if ferr := s.Docs.FinishOCRFailure(ctx, id, claimedAt, reason); ferr != nil {
			s.Logger.Error("pipeline.ocr.persist_failure_error", "document_id", id, "error", ferr)
		}
		return fmt.Errorf("%s", reason)
	}

	if err := s.Docs.FinishOCRSuccess(ctx, id, claimedAt, text); err != nil {
		return fmt.Errorf("persist ocr text: %w", err)
	}
	s.Logger.Info("pipeline.ocr.ok", "document_id", id, "chars", len(text))
	return nil
}
