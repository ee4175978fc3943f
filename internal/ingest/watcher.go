package ingest

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/fyang93/housing-ocr/constants"
)

// WatchConfig configures the inbox watcher. Files dropped into the inbox are
// ingested as if they had been uploaded.
type WatchConfig struct {
	Inbox       string
	InitialScan bool          // ingest files already present at startup
	Settle      time.Duration // wait for the writer to finish before reading
}

// StartWatcher watches the inbox and feeds matching files into ing. It
// returns after the watcher goroutine is running and stops when ctx is done.
func StartWatcher(ctx context.Context, cfg WatchConfig, ing Ingestor, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Settle <= 0 {
		cfg.Settle = 500 * time.Millisecond
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Error("failed to create inbox watcher", "error", err)
		return err
	}
	if err := w.Add(cfg.Inbox); err != nil {
		logger.Error("failed to watch inbox", "inbox", cfg.Inbox, "error", err)
		_ = w.Close()
		return err
	}

	ingestOne := func(path string) {
		if isHidden(path) || !constants.ExtAllowed(filepath.Ext(path)) {
			return
		}
		res, err := ing.IngestPath(ctx, path)
		if err != nil {
			logger.Error("inbox ingest failed", "path", path, "error", err)
			return
		}
		logger.Info("inbox file ingested", "path", path, "doc_id", res.DocumentID, "duplicate", res.Duplicate)
	}

	if cfg.InitialScan {
		_ = filepath.WalkDir(cfg.Inbox, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil || d.IsDir() {
				return walkErr
			}
			ingestOne(path)
			return nil
		})
	}

	go func() {
		defer func() {
			if err := w.Close(); err != nil {
				logger.Warn("inbox watcher close error", "error", err)
			}
		}()
		logger.Info("inbox watcher started", "inbox", cfg.Inbox)
		for {
			select {
			case <-ctx.Done():
				logger.Info("inbox watcher stopped")
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename) {
					// Writers may still be flushing right after create.
					time.Sleep(cfg.Settle)
					ingestOne(ev.Name)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Error("inbox watcher error", "error", err)
			}
		}
	}()
	return nil
}

func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
