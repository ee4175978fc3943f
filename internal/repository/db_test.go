package repository

import (
	"context"
	"path/filepath"
	"testing"
)

func TestOpenSQLiteDefaultsNilLogger(t *testing.T) {
	client, err := OpenSQLite(filepath.Join(t.TempDir(), "ledger.db"), nil)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer client.Close()

	if err := Migrate(context.Background(), client); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := client.Document.Query().Count(context.Background()); err != nil {
		t.Errorf("query on fresh ledger: %v", err)
	}
}
