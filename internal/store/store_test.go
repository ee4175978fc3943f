package store

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *ContentStore {
	t.Helper()
	s, err := New(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSaveIsContentAddressed(t *testing.T) {
	s := newTestStore(t)
	data := []byte("pdf bytes")
	hash := Hash(data)

	path, err := s.Save(hash, "pdf", data)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if path != s.PathFor(hash, "pdf") {
		t.Errorf("path = %s, want %s", path, s.PathFor(hash, "pdf"))
	}
	if !strings.HasSuffix(path, ".pdf") {
		t.Errorf("path %s should carry the extension", path)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, data) {
		t.Error("stored bytes differ from input")
	}
}

func TestSaveSameContentTwiceHitsOnePath(t *testing.T) {
	s := newTestStore(t)
	data := []byte("same bytes")
	hash := Hash(data)

	p1, err := s.Save(hash, "jpg", data)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := s.Save(hash, "jpg", data)
	if err != nil {
		t.Fatal(err)
	}
	if p1 != p2 {
		t.Errorf("paths differ: %s vs %s", p1, p2)
	}

	entries, err := os.ReadDir(filepath.Dir(p1))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("store has %d files, want 1", len(entries))
	}
}

func TestSaveLeavesNoTempFileBehind(t *testing.T) {
	s := newTestStore(t)
	data := []byte("x")
	if _, err := s.Save(Hash(data), "png", data); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(s.root)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".upload-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestRemoveMissingIsNotAnError(t *testing.T) {
	s := newTestStore(t)
	if err := s.Remove(filepath.Join(s.root, "nope.pdf")); err != nil {
		t.Errorf("Remove missing: %v", err)
	}
	if err := s.Remove(""); err != nil {
		t.Errorf("Remove empty path: %v", err)
	}
}

func TestHashIsStable(t *testing.T) {
	a := Hash([]byte("doc"))
	b := Hash([]byte("doc"))
	c := Hash([]byte("other"))
	if !bytes.Equal(a, b) {
		t.Error("same input hashed differently")
	}
	if bytes.Equal(a, c) {
		t.Error("different inputs collided")
	}
}
