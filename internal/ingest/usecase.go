package ingest

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fyang93/housing-ocr/constants"
	"github.com/fyang93/housing-ocr/gen/ent"
	"github.com/fyang93/housing-ocr/internal/common"
	"github.com/fyang93/housing-ocr/internal/repository"
	"github.com/fyang93/housing-ocr/internal/store"
)

type Usecase struct {
	Documents repository.DocumentRepository
	Store     *store.ContentStore
	Logger    *slog.Logger
}

func NewUsecase(docs repository.DocumentRepository, cs *store.ContentStore, logger *slog.Logger) *Usecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &Usecase{Documents: docs, Store: cs, Logger: logger}
}

// Ingest hashes the bytes, short-circuits on a known hash, and otherwise
// stores the file before inserting the ledger row. The ordering matters: a
// failed store write must never leave a row pointing at a missing file.
func (u *Usecase) Ingest(ctx context.Context, data []byte, filename string) (IngestResult, error) {
	if len(data) == 0 {
		return IngestResult{}, fmt.Errorf("%w: empty upload %s", common.ErrInvalidInput, filename)
	}
	ext := constants.NormalizeExt(filepath.Ext(filename))
	if !constants.ExtAllowed(ext) {
		return IngestResult{}, fmt.Errorf("%w: unsupported or missing extension %q", common.ErrInvalidInput, ext)
	}

	sum := store.Hash(data)
	hexHash := hex.EncodeToString(sum)

	if existing, err := u.Documents.GetByHash(ctx, sum); err == nil {
		u.Logger.Info("duplicate upload", "doc_id", existing.ID, "filename", filename, "hash", hexHash)
		return resultFrom(existing, true, hexHash), nil
	} else if !ent.IsNotFound(err) {
		return IngestResult{}, fmt.Errorf("dedup lookup: %w", err)
	}

	path, err := u.Store.Save(sum, ext, data)
	if err != nil {
		return IngestResult{}, fmt.Errorf("store upload: %w", err)
	}

	now := time.Now().UTC()
	row, err := u.Documents.Create(ctx, repository.CreateDocumentRequest{
		ContentHash:      sum,
		OriginalFilename: filepath.Base(filename),
		StoredPath:       path,
		FileExt:          ext,
		FileSize:         len(data),
		UploadedAt:       now,
	})
	if err != nil {
		// Two uploads of the same new bytes can race past the lookup; the
		// unique hash index decides, and the loser resolves to the winner.
		if ent.IsConstraintError(err) {
			if existing, lookupErr := u.Documents.GetByHash(ctx, sum); lookupErr == nil {
				return resultFrom(existing, true, hexHash), nil
			}
		}
		return IngestResult{}, fmt.Errorf("register document: %w", err)
	}

	u.Logger.Info("upload registered", "doc_id", row.ID, "filename", filename, "hash", hexHash, "bytes", len(data))
	return resultFrom(row, false, hexHash), nil
}

// IngestPath reads a file from disk (the watched inbox) and ingests it.
func (u *Usecase) IngestPath(ctx context.Context, path string) (IngestResult, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return IngestResult{}, fmt.Errorf("abs path: %w", err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return IngestResult{}, fmt.Errorf("read: %w", err)
	}
	return u.Ingest(ctx, data, filepath.Base(abs))
}

func resultFrom(row *ent.Document, dup bool, hexHash string) IngestResult {
	return IngestResult{
		DocumentID: row.ID.String(),
		Duplicate:  dup,
		HashHex:    hexHash,
		StoredPath: row.StoredPath,
		FileExt:    row.FileExt,
		UploadedAt: row.UploadedAt,
	}
}
