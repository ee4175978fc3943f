package ingest

import (
	"context"
	"time"
)

// IngestResult is the per-upload outcome. Duplicate is a normal outcome, not
// an error: the ID then points at the already-registered document.
type IngestResult struct {
	DocumentID string
	Duplicate  bool
	HashHex    string
	StoredPath string
	FileExt    string
	UploadedAt time.Time
}

// Ingestor is the behavior the server and the inbox watcher depend on.
type Ingestor interface {
	// Ingest registers raw upload bytes under their original filename.
	Ingest(ctx context.Context, data []byte, filename string) (IngestResult, error)
	// IngestPath reads and registers a file already on disk (inbox flow).
	IngestPath(ctx context.Context, path string) (IngestResult, error)
}
