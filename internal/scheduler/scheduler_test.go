package scheduler

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fyang93/housing-ocr/constants"
	"github.com/fyang93/housing-ocr/gen/ent"
	"github.com/fyang93/housing-ocr/internal/llm"
	"github.com/fyang93/housing-ocr/internal/pipeline"
	"github.com/fyang93/housing-ocr/internal/repository"
)

type fakeOCR struct {
	mu    sync.Mutex
	calls int
	text  string
	err   error
}

func (f *fakeOCR) ExtractText(_ context.Context, _ string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.text, f.err
}

func (f *fakeOCR) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeLLM struct {
	mu    sync.Mutex
	calls int
	res   llm.ExtractResult
	err   error
}

func (f *fakeLLM) ExtractProperties(_ context.Context, _ string) (llm.ExtractResult, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.res, f.err
}

func (f *fakeLLM) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestPipeline(t *testing.T, ocr *fakeOCR, extractor *fakeLLM) (repository.DocumentRepository, *pipeline.Processor) {
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
	proc := pipeline.NewProcessor(nil,
		pipeline.NewOCRStage(docs, ocr, nil),
		pipeline.NewParseStage(docs, extractor, nil),
	)
	return docs, proc
}

var seq int

func createDoc(t *testing.T, docs repository.DocumentRepository) *ent.Document {
	t.Helper()
	seq++
	row, err := docs.Create(context.Background(), repository.CreateDocumentRequest{
		ContentHash:      []byte(fmt.Sprintf("hash-%d", seq)),
		OriginalFilename: fmt.Sprintf("doc-%d.pdf", seq),
		StoredPath:       fmt.Sprintf("/tmp/%d.pdf", seq),
		FileExt:          "pdf",
		FileSize:         10,
		UploadedAt:       time.Now().UTC(),
	})
	if err != nil {
		t.Fatal(err)
	}
	return row
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestSchedulerRunsDocumentToDone(t *testing.T) {
	ocr := &fakeOCR{text: "物件概要..."}
	extractor := &fakeLLM{res: llm.ExtractResult{
		Raw:   []byte(`{"price":3480,"room_layout":"2LDK","property_type":"マンション"}`),
		Model: "model-x",
	}}
	docs, proc := newTestPipeline(t, ocr, extractor)
	row := createDoc(t, docs)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := New(docs, proc, nil, WithSweepInterval(20*time.Millisecond), WithWorkers(2))
	s.Start(ctx)
	defer s.Shutdown(context.Background())

	waitFor(t, 5*time.Second, func() bool {
		got, err := docs.GetByID(context.Background(), row.ID)
		return err == nil &&
			got.OcrStatus == string(constants.StatusDone) &&
			got.LlmStatus == string(constants.StatusDone)
	})

	got, err := docs.GetByID(context.Background(), row.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.OcrText == nil || *got.OcrText != "物件概要..." {
		t.Errorf("ocr_text = %v", got.OcrText)
	}
	if got.ExtractedModel == nil || *got.ExtractedModel != "model-x" {
		t.Errorf("extracted_model = %v", got.ExtractedModel)
	}
	if n := ocr.callCount(); n != 1 {
		t.Errorf("ocr calls = %d, want 1 (claim prevents double work)", n)
	}
	if n := extractor.callCount(); n != 1 {
		t.Errorf("llm calls = %d, want 1", n)
	}
}

func TestSchedulerRecordsStageFailure(t *testing.T) {
	ocr := &fakeOCR{err: errors.New("backend down")}
	docs, proc := newTestPipeline(t, ocr, &fakeLLM{})
	row := createDoc(t, docs)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := New(docs, proc, nil, WithSweepInterval(20*time.Millisecond))
	s.Start(ctx)
	defer s.Shutdown(context.Background())

	waitFor(t, 5*time.Second, func() bool {
		got, err := docs.GetByID(context.Background(), row.ID)
		return err == nil && got.OcrStatus == string(constants.StatusFailed)
	})

	got, err := docs.GetByID(context.Background(), row.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.OcrError == nil {
		t.Error("ocr_error should be recorded")
	}
	if got.OcrRetryCount != 1 {
		t.Errorf("ocr_retry_count = %d, want 1", got.OcrRetryCount)
	}
	if got.LlmStatus != string(constants.StatusPending) {
		t.Errorf("llm_status = %s, want pending (never runs without text)", got.LlmStatus)
	}
}

func TestSchedulerEmptyOCRTextFailsStage(t *testing.T) {
	ocr := &fakeOCR{text: "   "}
	docs, proc := newTestPipeline(t, ocr, &fakeLLM{})
	row := createDoc(t, docs)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := New(docs, proc, nil, WithSweepInterval(20*time.Millisecond))
	s.Start(ctx)
	defer s.Shutdown(context.Background())

	waitFor(t, 5*time.Second, func() bool {
		got, err := docs.GetByID(context.Background(), row.ID)
		return err == nil && got.OcrStatus == string(constants.StatusFailed)
	})
}

func TestSchedulerReclaimsStaleClaim(t *testing.T) {
	ocr := &fakeOCR{text: "recovered text"}
	extractor := &fakeLLM{res: llm.ExtractResult{Raw: []byte(`{"price":1}`), Model: "m"}}
	docs, proc := newTestPipeline(t, ocr, extractor)
	row := createDoc(t, docs)

	// simulate a crashed worker: claim held for an hour, never finished
	staleNow := time.Now().UTC().Add(-time.Hour)
	won, err := docs.ClaimOCR(context.Background(), row.ID, staleNow, staleNow.Add(-10*time.Minute))
	if err != nil || !won {
		t.Fatalf("seed claim: won=%v err=%v", won, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := New(docs, proc, nil,
		WithSweepInterval(20*time.Millisecond),
		WithStaleThreshold(10*time.Minute),
	)
	s.Start(ctx)
	defer s.Shutdown(context.Background())

	waitFor(t, 5*time.Second, func() bool {
		got, err := docs.GetByID(context.Background(), row.ID)
		return err == nil && got.OcrStatus == string(constants.StatusDone)
	})
}

func TestSweepClaimLoserSkips(t *testing.T) {
	ocr := &fakeOCR{text: "text"}
	docs, proc := newTestPipeline(t, ocr, &fakeLLM{res: llm.ExtractResult{Raw: []byte(`{}`), Model: "m"}})
	row := createDoc(t, docs)

	// another instance already holds a fresh claim
	now := time.Now().UTC()
	if won, _ := docs.ClaimOCR(context.Background(), row.ID, now, now.Add(-10*time.Minute)); !won {
		t.Fatal("seed claim lost")
	}

	s := New(docs, proc, nil)
	s.Sweep(context.Background())

	if n := ocr.callCount(); n != 0 {
		t.Errorf("ocr calls = %d, want 0 (fresh claim held elsewhere)", n)
	}
}
