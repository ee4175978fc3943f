// Package models persists the ordered LLM model list that the extractor
// falls back through. The list survives restarts as a small JSON file.
package models

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fyang93/housing-ocr/internal/common"
)

// DefaultModels seeds a fresh registry file.
var DefaultModels = []string{
	"google/gemini-2.0-flash-001",
	"deepseek/deepseek-chat-v3-0324",
	"qwen/qwen2.5-vl-72b-instruct",
}

// Registry is a mutex-guarded, file-backed ordered model list. It implements
// llm.ModelSource. The list is never allowed to become empty.
type Registry struct {
	path   string
	seed   []string
	logger *slog.Logger

	mu   sync.RWMutex
	list []string
}

// NewRegistry loads the list from path, seeding a missing file with seed
// (or DefaultModels when seed is empty).
func NewRegistry(path string, seed []string, logger *slog.Logger) (*Registry, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if len(seed) == 0 {
		seed = DefaultModels
	}
	r := &Registry{path: path, seed: seed, logger: logger}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Registry) load() error {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		r.list = append([]string(nil), r.seed...)
		r.logger.Info("models.registry_seeded", "path", r.path, "count", len(r.list))
		return r.persistLocked()
	}
	if err != nil {
		return fmt.Errorf("read model file: %w", err)
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("parse model file %s: %w", r.path, err)
	}
	if len(list) == 0 {
		list = append([]string(nil), r.seed...)
	}
	r.list = list
	return nil
}

func (r *Registry) persistLocked() error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create model dir: %w", err)
	}
	data, err := json.MarshalIndent(r.list, "", "  ")
	if err != nil {
		return fmt.Errorf("encode model list: %w", err)
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write model file: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace model file: %w", err)
	}
	return nil
}

// Models returns a copy of the current ordered list.
func (r *Registry) Models() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.list))
	copy(out, r.list)
	return out
}

// Add appends a model at the end of the fallback order. Adding a model that
// is already present is a no-op.
func (r *Registry) Add(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty model name", common.ErrInvalidInput)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.list {
		if m == name {
			return nil
		}
	}
	r.list = append(r.list, name)
	return r.persistLocked()
}

// Remove deletes a model from the list. Removing the last remaining model is
// rejected so extraction always has at least one candidate.
func (r *Registry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := -1
	for i, m := range r.list {
		if m == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: model %s", common.ErrNotFound, name)
	}
	if len(r.list) == 1 {
		return fmt.Errorf("%w: cannot remove the last model", common.ErrInvalidInput)
	}
	r.list = append(r.list[:idx], r.list[idx+1:]...)
	return r.persistLocked()
}

// Reorder replaces the fallback order. The new order must be a permutation
// of the current list.
func (r *Registry) Reorder(order []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(order) != len(r.list) {
		return fmt.Errorf("%w: order has %d models, registry has %d", common.ErrInvalidInput, len(order), len(r.list))
	}
	have := make(map[string]bool, len(r.list))
	for _, m := range r.list {
		have[m] = true
	}
	seen := make(map[string]bool, len(order))
	for _, m := range order {
		if !have[m] {
			return fmt.Errorf("%w: unknown model %s", common.ErrInvalidInput, m)
		}
		if seen[m] {
			return fmt.Errorf("%w: duplicate model %s", common.ErrInvalidInput, m)
		}
		seen[m] = true
	}
	r.list = append([]string(nil), order...)
	return r.persistLocked()
}
