package export

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/fyang93/housing-ocr/internal/repository"
)

func newTestExport(t *testing.T) (*Service, repository.DocumentRepository) {
	t.Helper()
	client, err := repository.OpenSQLite(filepath.Join(t.TempDir(), "test.db"), nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	if err := repository.Migrate(context.Background(), client); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	docs := repository.NewDocumentRepository(client, nil)
	return NewService(docs, nil), docs
}

func TestExportDocumentsXLSX(t *testing.T) {
	svc, docs := newTestExport(t)
	ctx := context.Background()

	row, err := docs.Create(ctx, repository.CreateDocumentRequest{
		ContentHash:      []byte("export-hash"),
		OriginalFilename: "flyer.pdf",
		StoredPath:       "/tmp/flyer.pdf",
		FileExt:          "pdf",
		FileSize:         100,
		UploadedAt:       time.Now().UTC(),
	})
	if err != nil {
		t.Fatal(err)
	}
	props := json.RawMessage(`{"property_name":"グランドパレス","price":3480,"room_layout":"2LDK","stations":[{"name":"品川","walking_minutes":8}]}`)
	if err := docs.UpdateProperties(ctx, row.ID, props); err != nil {
		t.Fatal(err)
	}

	xlsx, err := svc.ExportDocumentsXLSX(ctx)
	if err != nil {
		t.Fatalf("ExportDocumentsXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(xlsx))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Documents")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(rows))
	}
	if rows[0][0] != "Uploaded At" {
		t.Errorf("header[0] = %s", rows[0][0])
	}
	data := rows[1]
	if data[1] != "flyer.pdf" {
		t.Errorf("filename cell = %s", data[1])
	}
	if data[6] != "グランドパレス" {
		t.Errorf("property name cell = %s", data[6])
	}
	if data[13] != "品川 (8 min)" {
		t.Errorf("stations cell = %s", data[13])
	}
}

func TestExportWithoutPropertiesStillListsDocument(t *testing.T) {
	svc, docs := newTestExport(t)
	ctx := context.Background()

	if _, err := docs.Create(ctx, repository.CreateDocumentRequest{
		ContentHash:      []byte("pending-hash"),
		OriginalFilename: "pending.jpg",
		StoredPath:       "/tmp/pending.jpg",
		FileExt:          "jpg",
		FileSize:         10,
		UploadedAt:       time.Now().UTC(),
	}); err != nil {
		t.Fatal(err)
	}

	xlsx, err := svc.ExportDocumentsXLSX(ctx)
	if err != nil {
		t.Fatalf("ExportDocumentsXLSX: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(xlsx))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := f.GetRows("Documents")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[1][4] != "pending" {
		t.Errorf("extraction status cell = %s, want pending", rows[1][4])
	}
}
