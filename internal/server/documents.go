package server

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	housingv1 "github.com/fyang93/housing-ocr/gen/proto/housing/v1"
	"github.com/fyang93/housing-ocr/gen/ent"
	"github.com/fyang93/housing-ocr/internal/common"
	"github.com/fyang93/housing-ocr/internal/export"
	"github.com/fyang93/housing-ocr/internal/ingest"
	"github.com/fyang93/housing-ocr/internal/llm"
	"github.com/fyang93/housing-ocr/internal/repository"
	"github.com/fyang93/housing-ocr/internal/store"
)

type DocumentService struct {
	housingv1.UnimplementedDocumentServiceServer
	ingestor ingest.Ingestor
	docs     repository.DocumentRepository
	store    *store.ContentStore
	exporter *export.Service
	logger   *slog.Logger
}

func NewDocumentService(ing ingest.Ingestor, docs repository.DocumentRepository, st *store.ContentStore, exporter *export.Service, logger *slog.Logger) *DocumentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentService{ingestor: ing, docs: docs, store: st, exporter: exporter, logger: logger}
}

func (s *DocumentService) UploadDocument(ctx context.Context, req *housingv1.UploadDocumentRequest) (*housingv1.UploadDocumentResponse, error) {
	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		return nil, common.InvalidArgumentError("filename is required")
	}
	if len(req.GetContent()) == 0 {
		return nil, common.InvalidArgumentError("content is required")
	}

	res, err := s.ingestor.Ingest(ctx, req.GetContent(), filename)
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			return nil, common.InvalidArgumentError(err.Error())
		}
		s.logger.Error("upload.failed", "filename", filename, "error", err)
		return nil, common.InternalError("upload failed")
	}

	docID, err := uuid.Parse(res.DocumentID)
	if err != nil {
		return nil, common.InternalError("upload failed")
	}
	doc, err := s.docs.GetByID(ctx, docID)
	if err != nil {
		s.logger.Error("upload.readback_failed", "document_id", res.DocumentID, "error", err)
		return nil, common.InternalError("upload failed")
	}

	return &housingv1.UploadDocumentResponse{
		Document:  toProtoDocument(doc, false),
		Duplicate: res.Duplicate,
	}, nil
}

func (s *DocumentService) GetDocument(ctx context.Context, req *housingv1.GetDocumentRequest) (*housingv1.Document, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("document not found")
		}
		return nil, common.InternalError("get document failed")
	}
	return toProtoDocument(doc, false), nil
}

func (s *DocumentService) ListDocuments(ctx context.Context, req *housingv1.ListDocumentsRequest) (*housingv1.ListDocumentsResponse, error) {
	docs, err := s.docs.List(ctx)
	if err != nil {
		s.logger.Error("list.failed", "error", err)
		return nil, common.InternalError("list documents failed")
	}
	out := make([]*housingv1.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, toProtoDocument(d, req.GetSummaryOnly()))
	}
	return &housingv1.ListDocumentsResponse{Documents: out}, nil
}

func (s *DocumentService) DeleteDocument(ctx context.Context, req *housingv1.DeleteDocumentRequest) (*housingv1.DeleteDocumentResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	doc, err := s.docs.Delete(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) || errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("document not found")
		}
		s.logger.Error("delete.failed", "document_id", id, "error", err)
		return nil, common.InternalError("delete failed")
	}
	if err := s.store.Remove(doc.StoredPath); err != nil {
		s.logger.Warn("delete.stored_file_error", "document_id", id, "path", doc.StoredPath, "error", err)
	}
	return &housingv1.DeleteDocumentResponse{Deleted: true}, nil
}

func (s *DocumentService) RetryOCR(ctx context.Context, req *housingv1.RetryRequest) (*housingv1.RetryResponse, error) {
	return s.retry(ctx, req.GetId(), s.docs.ResetOCR)
}

func (s *DocumentService) RetryExtraction(ctx context.Context, req *housingv1.RetryRequest) (*housingv1.RetryResponse, error) {
	return s.retry(ctx, req.GetId(), s.docs.ResetLLM)
}

func (s *DocumentService) retry(ctx context.Context, rawID string, reset func(context.Context, uuid.UUID) error) (*housingv1.RetryResponse, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	if err := reset(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("document not found")
		}
		if errors.Is(err, common.ErrInvalidInput) {
			return nil, common.FailedPreconditionError("document is currently processing")
		}
		s.logger.Error("retry.failed", "document_id", id, "error", err)
		return nil, common.InternalError("retry failed")
	}
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return nil, common.InternalError("retry failed")
	}
	return &housingv1.RetryResponse{Document: toProtoDocument(doc, false)}, nil
}

func (s *DocumentService) ToggleFavorite(ctx context.Context, req *housingv1.ToggleFavoriteRequest) (*housingv1.ToggleFavoriteResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	fav, err := s.docs.ToggleFavorite(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) || errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("document not found")
		}
		return nil, common.InternalError("toggle favorite failed")
	}
	return &housingv1.ToggleFavoriteResponse{Favorite: fav}, nil
}

func (s *DocumentService) UpdateProperties(ctx context.Context, req *housingv1.UpdatePropertiesRequest) (*housingv1.Document, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	raw := []byte(req.GetPropertiesJson())
	var fields llm.PropertyFields
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, common.InvalidArgumentError("properties_json must be a valid property object")
	}
	if err := s.docs.UpdateProperties(ctx, id, raw); err != nil {
		if ent.IsNotFound(err) || errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("document not found")
		}
		s.logger.Error("update_properties.failed", "document_id", id, "error", err)
		return nil, common.InternalError("update properties failed")
	}
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return nil, common.InternalError("update properties failed")
	}
	return toProtoDocument(doc, false), nil
}

// Cleanup deletes every non-favorite document and its stored file.
func (s *DocumentService) Cleanup(ctx context.Context, _ *housingv1.CleanupRequest) (*housingv1.CleanupResponse, error) {
	deleted, err := s.docs.DeleteNonFavorites(ctx)
	if err != nil {
		s.logger.Error("cleanup.failed", "error", err)
		return nil, common.InternalError("cleanup failed")
	}
	for _, doc := range deleted {
		if err := s.store.Remove(doc.StoredPath); err != nil {
			s.logger.Warn("cleanup.stored_file_error", "document_id", doc.ID, "path", doc.StoredPath, "error", err)
		}
	}
	s.logger.Info("cleanup.ok", "deleted", len(deleted))
	return &housingv1.CleanupResponse{DeletedCount: int32(len(deleted))}, nil
}

func (s *DocumentService) ExportDocuments(ctx context.Context, _ *housingv1.ExportDocumentsRequest) (*housingv1.ExportDocumentsResponse, error) {
	xlsx, err := s.exporter.ExportDocumentsXLSX(ctx)
	if err != nil {
		s.logger.Error("export.failed", "error", err)
		return nil, common.InternalError("export failed")
	}
	return &housingv1.ExportDocumentsResponse{
		Xlsx:     xlsx,
		Filename: fmt.Sprintf("documents-%s.xlsx", time.Now().UTC().Format("20060102-150405")),
	}, nil
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError("id must be a UUID")
	}
	return id, nil
}

func toProtoDocument(d *ent.Document, summaryOnly bool) *housingv1.Document {
	out := &housingv1.Document{
		Id:               d.ID.String(),
		OriginalFilename: d.OriginalFilename,
		ContentHashHex:   hex.EncodeToString(d.ContentHash),
		FileExt:          d.FileExt,
		FileSize:         int64(d.FileSize),
		OcrStatus:        d.OcrStatus,
		LlmStatus:        d.LlmStatus,
		OcrRetryCount:    int32(d.OcrRetryCount),
		LlmRetryCount:    int32(d.LlmRetryCount),
		Favorite:         d.Favorite,
		UploadedAt:       d.UploadedAt.UTC().Format(time.RFC3339),
	}
	if d.ExtractedModel != nil {
		out.ExtractedModel = *d.ExtractedModel
	}
	if d.OcrError != nil {
		out.OcrError = *d.OcrError
	}
	if d.LlmError != nil {
		out.LlmError = *d.LlmError
	}
	if !summaryOnly {
		if d.OcrText != nil {
			out.OcrText = *d.OcrText
		}
		if len(d.Properties) > 0 {
			out.PropertiesJson = string(d.Properties)
		}
	}
	return out
}
