// Package scheduler drives documents through the OCR and parse stages. A
// periodic sweep claims runnable work through conditional updates, so any
// number of scheduler instances can share one database without double
// processing.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fyang93/housing-ocr/constants"
	"github.com/fyang93/housing-ocr/gen/ent"
	"github.com/fyang93/housing-ocr/internal/pipeline"
	"github.com/fyang93/housing-ocr/internal/repository"
)

type job struct {
	Stage      constants.Stage
	DocumentID uuid.UUID
	ClaimedAt  time.Time
}

type Scheduler struct {
	docs   repository.DocumentRepository
	proc   *pipeline.Processor
	logger *slog.Logger

	sweepInterval  time.Duration
	workers        int
	batchSize      int
	staleThreshold time.Duration
	stageTimeout   time.Duration

	ch   chan job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*Scheduler)

func WithSweepInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.sweepInterval = d
		}
	}
}
func WithWorkers(n int) Option {
	return func(s *Scheduler) {
		if n > 0 {
			s.workers = n
		}
	}
}
func WithBatchSize(n int) Option {
	return func(s *Scheduler) {
		if n > 0 {
			s.batchSize = n
		}
	}
}
func WithStaleThreshold(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.staleThreshold = d
		}
	}
}
func WithStageTimeout(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.stageTimeout = d
		}
	}
}

func New(docs repository.DocumentRepository, proc *pipeline.Processor, logger *slog.Logger, opts ...Option) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Scheduler{
		docs:           docs,
		proc:           proc,
		logger:         logger,
		sweepInterval:  3 * time.Second,
		workers:        3,
		batchSize:      10,
		staleThreshold: 30 * time.Minute,
		stageTimeout:   20 * time.Minute,
	}
	for _, o := range opts {
		o(s)
	}
	// A staleness window shorter than the stage timeout would let the sweep
	// re-claim a document whose worker is still alive inside its deadline.
	if s.staleThreshold <= s.stageTimeout {
		s.staleThreshold = s.stageTimeout + s.sweepInterval
		logger.Warn("stale threshold below stage timeout, raising it",
			"stale_threshold", s.staleThreshold,
			"stage_timeout", s.stageTimeout,
		)
	}
	s.ch = make(chan job, s.batchSize)
	return s
}

// Start launches the worker pool and the sweep loop. It returns immediately;
// the loop runs until ctx is cancelled or Shutdown is called.
func (s *Scheduler) Start(ctx context.Context) {
	s.once.Do(func() {
		for i := 0; i < s.workers; i++ {
			s.wg.Add(1)
			go s.worker(i + 1)
		}
		go s.sweepLoop(ctx)
		s.logger.Info("scheduler started",
			"workers", s.workers,
			"sweep_interval", s.sweepInterval,
			"batch_size", s.batchSize,
		)
	})
}

func (s *Scheduler) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	// first sweep without waiting a full interval
	s.Sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep lists runnable documents, claims each through a conditional update,
// and hands winners to the worker pool. Claim losers are skipped silently;
// another scheduler got there first.
func (s *Scheduler) Sweep(ctx context.Context) {
	now := time.Now().UTC()
	staleBefore := now.Add(-s.staleThreshold)

	docs, err := s.docs.ListRunnable(ctx, staleBefore, s.batchSize)
	if err != nil {
		s.logger.Error("scheduler.sweep.list_error", "error", err)
		return
	}

	for _, doc := range docs {
		stage, ok := s.stageFor(doc)
		if !ok {
			continue
		}

		var claimed bool
		switch stage {
		case constants.StageOCR:
			claimed, err = s.docs.ClaimOCR(ctx, doc.ID, now, staleBefore)
		case constants.StageLLM:
			claimed, err = s.docs.ClaimLLM(ctx, doc.ID, now, staleBefore)
		}
		if err != nil {
			s.logger.Error("scheduler.claim_error", "document_id", doc.ID, "stage", stage, "error", err)
			continue
		}
		if !claimed {
			continue
		}

		if !s.enqueue(job{Stage: stage, DocumentID: doc.ID, ClaimedAt: now}) {
			return
		}
	}
}

// stageFor picks the next stage a listed document needs. OCR recovery takes
// priority over the parse stage when both ended up stale.
func (s *Scheduler) stageFor(doc *ent.Document) (constants.Stage, bool) {
	switch doc.OcrStatus {
	case string(constants.StatusPending), string(constants.StatusProcessing):
		return constants.StageOCR, true
	case string(constants.StatusDone):
		switch doc.LlmStatus {
		case string(constants.StatusPending), string(constants.StatusProcessing):
			return constants.StageLLM, true
		}
	}
	return "", false
}

func (s *Scheduler) enqueue(j job) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	// Block rather than drop: the claim is already held, and the stale
	// sweep would only recover it after the threshold.
	s.ch <- j
	return true
}

func (s *Scheduler) worker(workerID int) {
	defer s.wg.Done()
	s.logger.Info("scheduler worker started", "worker_id", workerID)

	for j := range s.ch {
		ctx, cancel := context.WithTimeout(context.Background(), s.stageTimeout)
		err := s.proc.RunStage(ctx, j.Stage, j.DocumentID, j.ClaimedAt)
		cancel()

		if err != nil {
			s.logger.Warn("scheduler.stage_failed",
				"worker_id", workerID,
				"document_id", j.DocumentID,
				"stage", j.Stage,
				"error", err,
			)
		}
	}

	s.logger.Info("scheduler worker stopped", "worker_id", workerID)
}

// Shutdown stops accepting work and waits for in-flight stages to finish, up
// to the deadline on ctx.
func (s *Scheduler) Shutdown(ctx context.Context) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.ch)
	s.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); s.wg.Wait() }()

	select {
	case <-ctx.Done():
		s.logger.Warn("scheduler shutdown interrupted by context")
	case <-done:
		s.logger.Info("scheduler drained, shutdown complete")
	}
}
