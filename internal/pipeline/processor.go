package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fyang93/housing-ocr/constants"
)

// Processor is the facade scheduler workers run a claimed document through.
// Exactly one stage executes per call; the next sweep picks the document up
// again once its state advances.
type Processor struct {
	Logger *slog.Logger
	OCR    *OCRStage
	Parse  *ParseStage
}

func NewProcessor(logger *slog.Logger, ocr *OCRStage, parse *ParseStage) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, OCR: ocr, Parse: parse}
}

// RunStage executes the named stage for a document the caller has claimed
// at claimedAt.
func (p *Processor) RunStage(ctx context.Context, stage constants.Stage, id uuid.UUID, claimedAt time.Time) error {
	switch stage {
	case constants.StageOCR:
		if err := p.OCR.Run(ctx, id, claimedAt); err != nil {
			p.Logger.Error("processor.ocr.failed", "document_id", id, "error", err)
			return err
		}
	case constants.StageLLM:
		if err := p.Parse.Run(ctx, id, claimedAt); err != nil {
			p.Logger.Error("processor.parse.failed", "document_id", id, "error", err)
			return err
		}
	}
	return nil
}
