package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/fyang93/housing-ocr/gen/ent"
	"github.com/fyang93/housing-ocr/internal/repository"
	"github.com/fyang93/housing-ocr/internal/store"
)

func mustUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	if err != nil {
		t.Fatalf("parse uuid %q: %v", s, err)
	}
	return id
}

func newTestUsecase(t *testing.T) *Usecase {
	t.Helper()
	client, err := repository.OpenSQLite(filepath.Join(t.TempDir(), "test.db"), nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	if err := repository.Migrate(context.Background(), client); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	cs, err := store.New(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	return NewUsecase(repository.NewDocumentRepository(client, nil), cs, nil)
}

func TestIngestRegistersDocument(t *testing.T) {
	u := newTestUsecase(t)
	data := []byte("%PDF-1.4 fake flyer")

	res, err := u.Ingest(context.Background(), data, "flyer.PDF")
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if res.Duplicate {
		t.Error("first upload flagged as duplicate")
	}
	if res.FileExt != "pdf" {
		t.Errorf("file_ext = %s, want pdf (normalized)", res.FileExt)
	}
	if _, err := os.Stat(res.StoredPath); err != nil {
		t.Errorf("stored file missing: %v", err)
	}

	row, err := u.Documents.GetByID(context.Background(), mustUUID(t, res.DocumentID))
	if err != nil {
		t.Fatalf("readback: %v", err)
	}
	if row.OriginalFilename != "flyer.PDF" {
		t.Errorf("original_filename = %s", row.OriginalFilename)
	}
	if row.StoredPath != res.StoredPath {
		t.Errorf("stored_path mismatch: %s vs %s", row.StoredPath, res.StoredPath)
	}
}

func TestIngestSameBytesIsDuplicate(t *testing.T) {
	u := newTestUsecase(t)
	ctx := context.Background()
	data := []byte("identical bytes")

	first, err := u.Ingest(ctx, data, "a.jpg")
	if err != nil {
		t.Fatal(err)
	}
	// same bytes under a different name still dedup
	second, err := u.Ingest(ctx, data, "b.jpg")
	if err != nil {
		t.Fatal(err)
	}
	if !second.Duplicate {
		t.Error("second upload should be a duplicate")
	}
	if second.DocumentID != first.DocumentID {
		t.Errorf("duplicate resolved to %s, want %s", second.DocumentID, first.DocumentID)
	}

	rows, err := u.Documents.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("documents = %d, want 1", len(rows))
	}
}

func TestIngestRejectsBadInput(t *testing.T) {
	u := newTestUsecase(t)
	ctx := context.Background()

	if _, err := u.Ingest(ctx, nil, "flyer.pdf"); err == nil {
		t.Error("empty upload should be rejected")
	}
	if _, err := u.Ingest(ctx, []byte("x"), "script.exe"); err == nil {
		t.Error("disallowed extension should be rejected")
	}
	if _, err := u.Ingest(ctx, []byte("x"), "noext"); err == nil {
		t.Error("missing extension should be rejected")
	}
}

func TestIngestPathReadsFromDisk(t *testing.T) {
	u := newTestUsecase(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "dropped.png")
	if err := os.WriteFile(path, []byte("png bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := u.IngestPath(context.Background(), path)
	if err != nil {
		t.Fatalf("IngestPath: %v", err)
	}
	if res.FileExt != "png" {
		t.Errorf("file_ext = %s, want png", res.FileExt)
	}
}

func TestIngestStoreFailureLeavesNoLedgerRow(t *testing.T) {
	u := newTestUsecase(t)
	ctx := context.Background()
	data := []byte("bytes that never reach disk")

	// break the store out from under the usecase: with the root gone the
	// temp-file write fails before any ledger insert can happen
	root := t.TempDir()
	broken, err := store.New(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.RemoveAll(root); err != nil {
		t.Fatal(err)
	}
	working := u.Store
	u.Store = broken

	if _, err := u.Ingest(ctx, data, "doomed.pdf"); err == nil {
		t.Fatal("ingest with a broken store should fail")
	}
	if _, err := u.Documents.GetByHash(ctx, store.Hash(data)); !ent.IsNotFound(err) {
		t.Errorf("ledger row present after failed store write: err=%v", err)
	}

	// the same bytes go through cleanly once the store is healthy again
	u.Store = working
	res, err := u.Ingest(ctx, data, "doomed.pdf")
	if err != nil {
		t.Fatalf("reingest after store recovery: %v", err)
	}
	if res.Duplicate {
		t.Error("reingest flagged as duplicate, but no row should have existed")
	}
	if _, err := os.Stat(res.StoredPath); err != nil {
		t.Errorf("stored file missing after recovery: %v", err)
	}
}
