package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/fyang93/housing-ocr/constants"
	"github.com/fyang93/housing-ocr/internal/common"
	"github.com/fyang93/housing-ocr/gen/ent"
	entdoc "github.com/fyang93/housing-ocr/gen/ent/document"
)

// CreateDocumentRequest carries everything Intake knows about a new upload.
type CreateDocumentRequest struct {
	ContentHash      []byte
	OriginalFilename string
	StoredPath       string
	FileExt          string
	FileSize         int
	UploadedAt       time.Time
}

// DocumentRepository is the ledger. All status transitions go through it;
// the conditional updates here are the pipeline's only mutual exclusion.
type DocumentRepository interface {
	Create(ctx context.Context, req CreateDocumentRequest) (*ent.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error)
	GetByHash(ctx context.Context, hash []byte) (*ent.Document, error)
	List(ctx context.Context) ([]*ent.Document, error)

	// ListRunnable returns documents the sweep should consider: OCR pending,
	// OCR done with LLM pending, or either stage stuck in processing since
	// before staleBefore.
	ListRunnable(ctx context.Context, staleBefore time.Time, limit int) ([]*ent.Document, error)

	// ClaimOCR and ClaimLLM atomically transition a stage to processing.
	// They return false when another sweep won the race (not an error).
	ClaimOCR(ctx context.Context, id uuid.UUID, now, staleBefore time.Time) (bool, error)
	ClaimLLM(ctx context.Context, id uuid.UUID, now, staleBefore time.Time) (bool, error)

	// Finish* take the claimedAt the worker won its claim with; a write from
	// a worker whose claim was superseded matches zero rows.
	FinishOCRSuccess(ctx context.Context, id uuid.UUID, claimedAt time.Time, text string) error
	FinishOCRFailure(ctx context.Context, id uuid.UUID, claimedAt time.Time, reason string) error
	FinishLLMSuccess(ctx context.Context, id uuid.UUID, claimedAt time.Time, properties json.RawMessage, model string) error
	FinishLLMFailure(ctx context.Context, id uuid.UUID, claimedAt time.Time, reason string) error

	ResetOCR(ctx context.Context, id uuid.UUID) error
	ResetLLM(ctx context.Context, id uuid.UUID) error

	ToggleFavorite(ctx context.Context, id uuid.UUID) (bool, error)
	UpdateProperties(ctx context.Context, id uuid.UUID, properties json.RawMessage) error

	Delete(ctx context.Context, id uuid.UUID) (*ent.Document, error)
	// DeleteNonFavorites removes every non-favorite document and returns the
	// removed rows so the caller can unlink their stored files.
	DeleteNonFavorites(ctx context.Context) ([]*ent.Document, error)
}

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) DocumentRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &documentRepo{ent: entc, logger: logger}
}

func (r *documentRepo) Create(ctx context.Context, req CreateDocumentRequest) (*ent.Document, error) {
	row, err := r.ent.Document.Create().
		SetContentHash(req.ContentHash).
		SetOriginalFilename(req.OriginalFilename).
		SetStoredPath(req.StoredPath).
		SetFileExt(req.FileExt).
		SetFileSize(req.FileSize).
		SetUploadedAt(req.UploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "filename", req.OriginalFilename, "error", err)
		return nil, err
	}
	r.logger.Info("document created", "doc_id", row.ID, "filename", req.OriginalFilename)
	return row, nil
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error) {
	return r.ent.Document.Get(ctx, id)
}

func (r *documentRepo) GetByHash(ctx context.Context, hash []byte) (*ent.Document, error) {
	row, err := r.ent.Document.Query().
		Where(entdoc.ContentHashEQ(hash)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, err
		}
		r.logger.Error("failed to get document by hash", "error", err)
		return nil, err
	}
	return row, nil
}

// List returns all documents in display order: favorites first, then by
// pipeline progress (extracted, pending, processing, rest), newest upload
// first within each group.
func (r *documentRepo) List(ctx context.Context) ([]*ent.Document, error) {
	rows, err := r.ent.Document.Query().All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "error", err)
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Favorite != b.Favorite {
			return a.Favorite
		}
		ra, rb := displayRank(a), displayRank(b)
		if ra != rb {
			return ra < rb
		}
		return a.UploadedAt.After(b.UploadedAt)
	})
	return rows, nil
}

func displayRank(d *ent.Document) int {
	switch {
	case d.LlmStatus == string(constants.StatusDone):
		return 1
	case d.OcrStatus == string(constants.StatusPending) || d.LlmStatus == string(constants.StatusPending):
		return 2
	case d.OcrStatus == string(constants.StatusProcessing) || d.LlmStatus == string(constants.StatusProcessing):
		return 3
	default:
		return 4
	}
}

func (r *documentRepo) ListRunnable(ctx context.Context, staleBefore time.Time, limit int) ([]*ent.Document, error) {
	rows, err := r.ent.Document.Query().
		Where(entdoc.Or(
			entdoc.OcrStatusEQ(string(constants.StatusPending)),
			entdoc.And(
				entdoc.OcrStatusEQ(string(constants.StatusDone)),
				entdoc.LlmStatusEQ(string(constants.StatusPending)),
			),
			entdoc.And(
				entdoc.OcrStatusEQ(string(constants.StatusProcessing)),
				entdoc.Or(entdoc.OcrClaimedAtIsNil(), entdoc.OcrClaimedAtLT(staleBefore)),
			),
			entdoc.And(
				entdoc.LlmStatusEQ(string(constants.StatusProcessing)),
				entdoc.Or(entdoc.LlmClaimedAtIsNil(), entdoc.LlmClaimedAtLT(staleBefore)),
			),
		)).
		Order(ent.Desc(entdoc.FieldFavorite), ent.Asc(entdoc.FieldUploadedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list runnable documents", "error", err)
		return nil, err
	}
	return rows, nil
}

// ClaimOCR transitions ocr_status pending->processing, or re-claims a stale
// processing row. The affected-row count decides the winner of a race.
func (r *documentRepo) ClaimOCR(ctx context.Context, id uuid.UUID, now, staleBefore time.Time) (bool, error) {
	n, err := r.ent.Document.Update().
		Where(
			entdoc.ID(id),
			entdoc.Or(
				entdoc.OcrStatusEQ(string(constants.StatusPending)),
				entdoc.And(
					entdoc.OcrStatusEQ(string(constants.StatusProcessing)),
					entdoc.Or(entdoc.OcrClaimedAtIsNil(), entdoc.OcrClaimedAtLT(staleBefore)),
				),
			),
		).
		SetOcrStatus(string(constants.StatusProcessing)).
		SetOcrClaimedAt(now).
		Save(ctx)
	if err != nil {
		r.logger.Error("ocr claim failed", "doc_id", id, "error", err)
		return false, err
	}
	return n == 1, nil
}

// ClaimLLM is gated on ocr_status=done, so a document can never be in LLM
// processing before its OCR stage finished.
func (r *documentRepo) ClaimLLM(ctx context.Context, id uuid.UUID, now, staleBefore time.Time) (bool, error) {
	n, err := r.ent.Document.Update().
		Where(
			entdoc.ID(id),
			entdoc.OcrStatusEQ(string(constants.StatusDone)),
			entdoc.Or(
				entdoc.LlmStatusEQ(string(constants.StatusPending)),
				entdoc.And(
					entdoc.LlmStatusEQ(string(constants.StatusProcessing)),
					entdoc.Or(entdoc.LlmClaimedAtIsNil(), entdoc.LlmClaimedAtLT(staleBefore)),
				),
			),
		).
		SetLlmStatus(string(constants.StatusProcessing)).
		SetLlmClaimedAt(now).
		Save(ctx)
	if err != nil {
		r.logger.Error("llm claim failed", "doc_id", id, "error", err)
		return false, err
	}
	return n == 1, nil
}

// FinishOCRSuccess persists OCR output. The update is conditional on the row
// still being in processing under the caller's own claim timestamp, so a
// write racing a delete, a re-claim, or a retry is a clean no-op.
func (r *documentRepo) FinishOCRSuccess(ctx context.Context, id uuid.UUID, claimedAt time.Time, text string) error {
	n, err := r.ent.Document.Update().
		Where(
			entdoc.ID(id),
			entdoc.OcrStatusEQ(string(constants.StatusProcessing)),
			entdoc.OcrClaimedAtEQ(claimedAt),
		).
		SetOcrStatus(string(constants.StatusDone)).
		SetOcrText(text).
		ClearOcrError().
		ClearOcrClaimedAt().
		Save(ctx)
	if err != nil {
		r.logger.Error("ocr finish(done) failed", "doc_id", id, "error", err)
		return err
	}
	if n == 0 {
		r.logger.Warn("ocr result dropped, row gone or reclaimed", "doc_id", id)
		return nil
	}
	r.logger.Info("ocr done", "doc_id", id, "chars", len(text))
	return nil
}

func (r *documentRepo) FinishOCRFailure(ctx context.Context, id uuid.UUID, claimedAt time.Time, reason string) error {
	n, err := r.ent.Document.Update().
		Where(
			entdoc.ID(id),
			entdoc.OcrStatusEQ(string(constants.StatusProcessing)),
			entdoc.OcrClaimedAtEQ(claimedAt),
		).
		SetOcrStatus(string(constants.StatusFailed)).
		SetOcrError(reason).
		AddOcrRetryCount(1).
		ClearOcrClaimedAt().
		Save(ctx)
	if err != nil {
		r.logger.Error("ocr finish(failed) failed", "doc_id", id, "error", err)
		return err
	}
	if n == 0 {
		r.logger.Warn("ocr failure dropped, row gone or reclaimed", "doc_id", id)
		return nil
	}
	r.logger.Warn("ocr failed", "doc_id", id, "reason", reason)
	return nil
}

func (r *documentRepo) FinishLLMSuccess(ctx context.Context, id uuid.UUID, claimedAt time.Time, properties json.RawMessage, model string) error {
	n, err := r.ent.Document.Update().
		Where(
			entdoc.ID(id),
			entdoc.LlmStatusEQ(string(constants.StatusProcessing)),
			entdoc.LlmClaimedAtEQ(claimedAt),
		).
		SetLlmStatus(string(constants.StatusDone)).
		SetProperties(properties).
		SetExtractedModel(model).
		ClearLlmError().
		ClearLlmClaimedAt().
		Save(ctx)
	if err != nil {
		r.logger.Error("llm finish(done) failed", "doc_id", id, "error", err)
		return err
	}
	if n == 0 {
		r.logger.Warn("llm result dropped, row gone or reclaimed", "doc_id", id)
		return nil
	}
	r.logger.Info("llm done", "doc_id", id, "model", model)
	return nil
}

func (r *documentRepo) FinishLLMFailure(ctx context.Context, id uuid.UUID, claimedAt time.Time, reason string) error {
	n, err := r.ent.Document.Update().
		Where(
			entdoc.ID(id),
			entdoc.LlmStatusEQ(string(constants.StatusProcessing)),
			entdoc.LlmClaimedAtEQ(claimedAt),
		).
		SetLlmStatus(string(constants.StatusFailed)).
		SetLlmError(reason).
		AddLlmRetryCount(1).
		ClearLlmClaimedAt().
		Save(ctx)
	if err != nil {
		r.logger.Error("llm finish(failed) failed", "doc_id", id, "error", err)
		return err
	}
	if n == 0 {
		r.logger.Warn("llm failure dropped, row gone or reclaimed", "doc_id", id)
		return nil
	}
	r.logger.Warn("llm failed", "doc_id", id, "reason", reason)
	return nil
}

// ResetOCR puts a document back at the start of the pipeline. The LLM stage
// is reset too since its input text is invalidated. Favorite and uploaded_at
// are untouched. A document with a stage currently processing is rejected;
// its worker still holds the claim, and resetting under it would let the
// sweep start a second one.
func (r *documentRepo) ResetOCR(ctx context.Context, id uuid.UUID) error {
	n, err := r.ent.Document.Update().
		Where(
			entdoc.ID(id),
			entdoc.OcrStatusNEQ(string(constants.StatusProcessing)),
			entdoc.LlmStatusNEQ(string(constants.StatusProcessing)),
		).
		SetOcrStatus(string(constants.StatusPending)).
		ClearOcrText().
		ClearOcrError().
		ClearOcrClaimedAt().
		SetLlmStatus(string(constants.StatusPending)).
		ClearProperties().
		ClearExtractedModel().
		ClearLlmError().
		ClearLlmClaimedAt().
		Save(ctx)
	if err != nil {
		r.logger.Error("ocr reset failed", "doc_id", id, "error", err)
		return err
	}
	if n == 0 {
		return r.resetMiss(ctx, id)
	}
	r.logger.Info("ocr reset to pending", "doc_id", id)
	return nil
}

func (r *documentRepo) ResetLLM(ctx context.Context, id uuid.UUID) error {
	n, err := r.ent.Document.Update().
		Where(
			entdoc.ID(id),
			entdoc.LlmStatusNEQ(string(constants.StatusProcessing)),
		).
		SetLlmStatus(string(constants.StatusPending)).
		ClearProperties().
		ClearExtractedModel().
		ClearLlmError().
		ClearLlmClaimedAt().
		Save(ctx)
	if err != nil {
		r.logger.Error("llm reset failed", "doc_id", id, "error", err)
		return err
	}
	if n == 0 {
		return r.resetMiss(ctx, id)
	}
	r.logger.Info("llm reset to pending", "doc_id", id)
	return nil
}

// resetMiss distinguishes the two ways a conditional reset matches no rows.
func (r *documentRepo) resetMiss(ctx context.Context, id uuid.UUID) error {
	exists, err := r.ent.Document.Query().Where(entdoc.ID(id)).Exist(ctx)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: stage is processing, wait for it to finish", common.ErrInvalidInput)
	}
	return common.ErrNotFound
}

func (r *documentRepo) ToggleFavorite(ctx context.Context, id uuid.UUID) (bool, error) {
	row, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		return false, err
	}
	updated, err := row.Update().SetFavorite(!row.Favorite).Save(ctx)
	if err != nil {
		r.logger.Error("toggle favorite failed", "doc_id", id, "error", err)
		return false, err
	}
	return updated.Favorite, nil
}

// UpdateProperties is the manual-edit path: the user's record overrides the
// extraction and the LLM stage is marked done.
func (r *documentRepo) UpdateProperties(ctx context.Context, id uuid.UUID, properties json.RawMessage) error {
	_, err := r.ent.Document.UpdateOneID(id).
		SetProperties(properties).
		SetLlmStatus(string(constants.StatusDone)).
		Save(ctx)
	if err != nil {
		r.logger.Error("manual property update failed", "doc_id", id, "error", err)
	}
	return err
}

func (r *documentRepo) Delete(ctx context.Context, id uuid.UUID) (*ent.Document, error) {
	row, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.ent.Document.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("delete document failed", "doc_id", id, "error", err)
		return nil, err
	}
	r.logger.Info("document deleted", "doc_id", id)
	return row, nil
}

func (r *documentRepo) DeleteNonFavorites(ctx context.Context) ([]*ent.Document, error) {
	rows, err := r.ent.Document.Query().
		Where(entdoc.FavoriteEQ(false)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	_, err = r.ent.Document.Delete().
		Where(entdoc.FavoriteEQ(false)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("cleanup delete failed", "error", err)
		return nil, err
	}
	r.logger.Info("cleanup removed documents", "count", len(rows))
	return rows, nil
}
