package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fyang93/housing-ocr/constants"
	"github.com/fyang93/housing-ocr/gen/ent"
	"github.com/fyang93/housing-ocr/internal/common"
)

func newTestRepo(t *testing.T) (DocumentRepository, *ent.Client) {
	t.Helper()
	client, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"), nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	if err := Migrate(context.Background(), client); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewDocumentRepository(client, nil), client
}

var docSeq int

func createDoc(t *testing.T, repo DocumentRepository) *ent.Document {
	t.Helper()
	docSeq++
	hash := []byte(fmt.Sprintf("hash-%03d-%s", docSeq, uuid.NewString()))
	row, err := repo.Create(context.Background(), CreateDocumentRequest{
		ContentHash:      hash,
		OriginalFilename: fmt.Sprintf("flyer-%d.pdf", docSeq),
		StoredPath:       fmt.Sprintf("/tmp/store/%d.pdf", docSeq),
		FileExt:          "pdf",
		FileSize:         1024,
		UploadedAt:       time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("create document: %v", err)
	}
	return row
}

func TestCreateStartsBothStagesPending(t *testing.T) {
	repo, _ := newTestRepo(t)
	row := createDoc(t, repo)
	if row.OcrStatus != string(constants.StatusPending) {
		t.Errorf("ocr_status = %s, want pending", row.OcrStatus)
	}
	if row.LlmStatus != string(constants.StatusPending) {
		t.Errorf("llm_status = %s, want pending", row.LlmStatus)
	}
}

func TestGetByHashDedup(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	row := createDoc(t, repo)

	found, err := repo.GetByHash(ctx, row.ContentHash)
	if err != nil {
		t.Fatalf("GetByHash: %v", err)
	}
	if found.ID != row.ID {
		t.Errorf("found %s, want %s", found.ID, row.ID)
	}

	if _, err := repo.GetByHash(ctx, []byte("unknown")); !ent.IsNotFound(err) {
		t.Errorf("unknown hash err = %v, want not-found", err)
	}

	// second insert with the same hash must hit the unique index
	_, err = repo.Create(ctx, CreateDocumentRequest{
		ContentHash:      row.ContentHash,
		OriginalFilename: "copy.pdf",
		StoredPath:       "/tmp/store/copy.pdf",
		FileExt:          "pdf",
		FileSize:         1024,
		UploadedAt:       time.Now().UTC(),
	})
	if !ent.IsConstraintError(err) {
		t.Errorf("duplicate insert err = %v, want constraint error", err)
	}
}

func TestClaimOCRExactlyOneWinner(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	row := createDoc(t, repo)

	const goroutines = 50
	now := time.Now().UTC()
	staleBefore := now.Add(-10 * time.Minute)

	var wg sync.WaitGroup
	wins := make(chan bool, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			won, err := repo.ClaimOCR(ctx, row.ID, now, staleBefore)
			if err != nil {
				t.Errorf("ClaimOCR: %v", err)
				return
			}
			wins <- won
		}()
	}
	wg.Wait()
	close(wins)

	winners := 0
	for won := range wins {
		if won {
			winners++
		}
	}
	if winners != 1 {
		t.Errorf("winners = %d, want exactly 1", winners)
	}
}

func TestClaimLLMGatedOnOCRDone(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	row := createDoc(t, repo)
	now := time.Now().UTC()
	staleBefore := now.Add(-10 * time.Minute)

	if won, _ := repo.ClaimLLM(ctx, row.ID, now, staleBefore); won {
		t.Fatal("LLM claim must not succeed before OCR is done")
	}

	if won, err := repo.ClaimOCR(ctx, row.ID, now, staleBefore); err != nil || !won {
		t.Fatalf("ClaimOCR: won=%v err=%v", won, err)
	}
	if err := repo.FinishOCRSuccess(ctx, row.ID, now, "text"); err != nil {
		t.Fatalf("FinishOCRSuccess: %v", err)
	}

	if won, err := repo.ClaimLLM(ctx, row.ID, now, staleBefore); err != nil || !won {
		t.Errorf("ClaimLLM after OCR done: won=%v err=%v", won, err)
	}
}

func TestStaleClaimIsReclaimable(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	row := createDoc(t, repo)

	claimedAt := time.Now().UTC().Add(-time.Hour)
	if won, err := repo.ClaimOCR(ctx, row.ID, claimedAt, claimedAt.Add(-10*time.Minute)); err != nil || !won {
		t.Fatalf("initial claim: won=%v err=%v", won, err)
	}

	now := time.Now().UTC()

	// claim is older than the staleness window: reclaim wins
	if won, err := repo.ClaimOCR(ctx, row.ID, now, now.Add(-10*time.Minute)); err != nil || !won {
		t.Errorf("stale reclaim: won=%v err=%v", won, err)
	}

	// now the claim is fresh: a competing claim loses
	if won, _ := repo.ClaimOCR(ctx, row.ID, now, now.Add(-10*time.Minute)); won {
		t.Error("fresh claim must not be stolen")
	}
}

func TestFinishOCRFailureRecordsReasonAndRetry(t *testing.T) {
	repo, client := newTestRepo(t)
	ctx := context.Background()
	row := createDoc(t, repo)
	now := time.Now().UTC()

	if won, _ := repo.ClaimOCR(ctx, row.ID, now, now.Add(-10*time.Minute)); !won {
		t.Fatal("claim lost")
	}
	if err := repo.FinishOCRFailure(ctx, row.ID, now, "backend unavailable"); err != nil {
		t.Fatalf("FinishOCRFailure: %v", err)
	}

	got, err := client.Document.Get(ctx, row.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.OcrStatus != string(constants.StatusFailed) {
		t.Errorf("ocr_status = %s, want failed", got.OcrStatus)
	}
	if got.OcrError == nil || *got.OcrError != "backend unavailable" {
		t.Errorf("ocr_error = %v", got.OcrError)
	}
	if got.OcrRetryCount != 1 {
		t.Errorf("ocr_retry_count = %d, want 1", got.OcrRetryCount)
	}
	if got.OcrClaimedAt != nil {
		t.Error("claim timestamp should be cleared on finish")
	}
}

func TestFinishAfterDeleteIsANoop(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	row := createDoc(t, repo)
	now := time.Now().UTC()

	if won, _ := repo.ClaimOCR(ctx, row.ID, now, now.Add(-10*time.Minute)); !won {
		t.Fatal("claim lost")
	}
	if _, err := repo.Delete(ctx, row.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// the in-flight worker reports its result into the void
	if err := repo.FinishOCRSuccess(ctx, row.ID, now, "late text"); err != nil {
		t.Errorf("late FinishOCRSuccess should be a no-op, got %v", err)
	}
	if err := repo.FinishOCRFailure(ctx, row.ID, now, "late failure"); err != nil {
		t.Errorf("late FinishOCRFailure should be a no-op, got %v", err)
	}
}

func TestFinishIgnoresSupersededClaim(t *testing.T) {
	repo, client := newTestRepo(t)
	ctx := context.Background()
	row := createDoc(t, repo)

	// first worker claims, then stalls past the staleness window
	oldClaim := time.Now().UTC().Add(-time.Hour)
	if won, _ := repo.ClaimOCR(ctx, row.ID, oldClaim, oldClaim.Add(-10*time.Minute)); !won {
		t.Fatal("initial claim lost")
	}

	// a second worker re-claims the stale row
	newClaim := time.Now().UTC()
	if won, _ := repo.ClaimOCR(ctx, row.ID, newClaim, newClaim.Add(-10*time.Minute)); !won {
		t.Fatal("stale reclaim lost")
	}

	// the stalled worker wakes up and reports; its claim no longer matches
	if err := repo.FinishOCRSuccess(ctx, row.ID, oldClaim, "stale result"); err != nil {
		t.Errorf("superseded FinishOCRSuccess should be a no-op, got %v", err)
	}
	if err := repo.FinishOCRFailure(ctx, row.ID, oldClaim, "stale failure"); err != nil {
		t.Errorf("superseded FinishOCRFailure should be a no-op, got %v", err)
	}

	got, err := client.Document.Get(ctx, row.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.OcrStatus != string(constants.StatusProcessing) {
		t.Errorf("ocr_status = %s, want processing (second claim intact)", got.OcrStatus)
	}
	if got.OcrText != nil {
		t.Errorf("ocr_text = %q, stale result must not land", *got.OcrText)
	}
	if got.OcrRetryCount != 0 {
		t.Errorf("ocr_retry_count = %d, stale failure must not land", got.OcrRetryCount)
	}

	// the owner of the live claim can still finish
	if err := repo.FinishOCRSuccess(ctx, row.ID, newClaim, "real result"); err != nil {
		t.Fatalf("FinishOCRSuccess with live claim: %v", err)
	}
	got, err = client.Document.Get(ctx, row.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.OcrStatus != string(constants.StatusDone) || got.OcrText == nil || *got.OcrText != "real result" {
		t.Errorf("live claim finish did not land: status=%s text=%v", got.OcrStatus, got.OcrText)
	}
}

func TestResetOCRResetsBothStages(t *testing.T) {
	repo, client := newTestRepo(t)
	ctx := context.Background()
	row := createDoc(t, repo)
	now := time.Now().UTC()
	staleBefore := now.Add(-10 * time.Minute)

	// run both stages to done
	if won, _ := repo.ClaimOCR(ctx, row.ID, now, staleBefore); !won {
		t.Fatal("ocr claim lost")
	}
	if err := repo.FinishOCRSuccess(ctx, row.ID, now, "text"); err != nil {
		t.Fatal(err)
	}
	if won, _ := repo.ClaimLLM(ctx, row.ID, now, staleBefore); !won {
		t.Fatal("llm claim lost")
	}
	props := json.RawMessage(`{"price":3480}`)
	if err := repo.FinishLLMSuccess(ctx, row.ID, now, props, "model-x"); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.ToggleFavorite(ctx, row.ID); err != nil {
		t.Fatal(err)
	}

	if err := repo.ResetOCR(ctx, row.ID); err != nil {
		t.Fatalf("ResetOCR: %v", err)
	}

	got, err := client.Document.Get(ctx, row.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.OcrStatus != string(constants.StatusPending) || got.LlmStatus != string(constants.StatusPending) {
		t.Errorf("statuses = %s/%s, want pending/pending", got.OcrStatus, got.LlmStatus)
	}
	if got.OcrText != nil {
		t.Error("ocr_text should be cleared")
	}
	if got.Properties != nil {
		t.Error("properties should be cleared")
	}
	if got.ExtractedModel != nil {
		t.Error("extracted_model should be cleared")
	}
	if !got.Favorite {
		t.Error("favorite must survive a retry")
	}
	if got.UploadedAt.Unix() != row.UploadedAt.Unix() {
		t.Errorf("uploaded_at changed: %v -> %v", row.UploadedAt, got.UploadedAt)
	}
}

func TestResetLLMKeepsOCROutput(t *testing.T) {
	repo, client := newTestRepo(t)
	ctx := context.Background()
	row := createDoc(t, repo)
	now := time.Now().UTC()
	staleBefore := now.Add(-10 * time.Minute)

	if won, _ := repo.ClaimOCR(ctx, row.ID, now, staleBefore); !won {
		t.Fatal("ocr claim lost")
	}
	if err := repo.FinishOCRSuccess(ctx, row.ID, now, "the text"); err != nil {
		t.Fatal(err)
	}
	if won, _ := repo.ClaimLLM(ctx, row.ID, now, staleBefore); !won {
		t.Fatal("llm claim lost")
	}
	if err := repo.FinishLLMFailure(ctx, row.ID, now, "all models exhausted"); err != nil {
		t.Fatal(err)
	}

	if err := repo.ResetLLM(ctx, row.ID); err != nil {
		t.Fatalf("ResetLLM: %v", err)
	}

	got, err := client.Document.Get(ctx, row.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.OcrStatus != string(constants.StatusDone) {
		t.Errorf("ocr_status = %s, want done (untouched)", got.OcrStatus)
	}
	if got.OcrText == nil || *got.OcrText != "the text" {
		t.Error("ocr_text must survive an LLM retry")
	}
	if got.LlmStatus != string(constants.StatusPending) {
		t.Errorf("llm_status = %s, want pending", got.LlmStatus)
	}
	if got.LlmError != nil {
		t.Error("llm_error should be cleared")
	}
}

func TestResetUnknownDocument(t *testing.T) {
	repo, _ := newTestRepo(t)
	if err := repo.ResetOCR(context.Background(), uuid.New()); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("ResetOCR unknown err = %v, want ErrNotFound", err)
	}
	if err := repo.ResetLLM(context.Background(), uuid.New()); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("ResetLLM unknown err = %v, want ErrNotFound", err)
	}
}

func TestResetRejectedWhileProcessing(t *testing.T) {
	repo, client := newTestRepo(t)
	ctx := context.Background()
	row := createDoc(t, repo)
	now := time.Now().UTC()
	staleBefore := now.Add(-10 * time.Minute)

	if won, _ := repo.ClaimOCR(ctx, row.ID, now, staleBefore); !won {
		t.Fatal("claim lost")
	}
	if err := repo.ResetOCR(ctx, row.ID); !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("ResetOCR during ocr processing err = %v, want ErrInvalidInput", err)
	}

	if err := repo.FinishOCRSuccess(ctx, row.ID, now, "text"); err != nil {
		t.Fatalf("FinishOCRSuccess: %v", err)
	}
	if won, _ := repo.ClaimLLM(ctx, row.ID, now, staleBefore); !won {
		t.Fatal("llm claim lost")
	}
	if err := repo.ResetLLM(ctx, row.ID); !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("ResetLLM during llm processing err = %v, want ErrInvalidInput", err)
	}
	if err := repo.ResetOCR(ctx, row.ID); !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("ResetOCR during llm processing err = %v, want ErrInvalidInput", err)
	}

	// the worker's claim survived both rejected resets
	got, err := client.Document.Get(ctx, row.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.LlmStatus != string(constants.StatusProcessing) || got.LlmClaimedAt == nil {
		t.Errorf("llm claim disturbed: status=%s claimed_at=%v", got.LlmStatus, got.LlmClaimedAt)
	}

	if err := repo.FinishLLMFailure(ctx, row.ID, now, "model error"); err != nil {
		t.Fatalf("FinishLLMFailure: %v", err)
	}
	if err := repo.ResetLLM(ctx, row.ID); err != nil {
		t.Errorf("ResetLLM after failure: %v", err)
	}
}

func TestListRunnablePrefersFavorites(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	first := createDoc(t, repo)
	second := createDoc(t, repo)
	if _, err := repo.ToggleFavorite(ctx, second.ID); err != nil {
		t.Fatal(err)
	}

	rows, err := repo.ListRunnable(ctx, time.Now().UTC().Add(-10*time.Minute), 10)
	if err != nil {
		t.Fatalf("ListRunnable: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("runnable = %d, want 2", len(rows))
	}
	if rows[0].ID != second.ID {
		t.Errorf("favorite should come first, got %s", rows[0].ID)
	}
	if rows[1].ID != first.ID {
		t.Errorf("second row = %s, want %s", rows[1].ID, first.ID)
	}
}

func TestListRunnableExcludesFinishedAndFresh(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	now := time.Now().UTC()
	staleBefore := now.Add(-10 * time.Minute)

	done := createDoc(t, repo)
	if won, _ := repo.ClaimOCR(ctx, done.ID, now, staleBefore); !won {
		t.Fatal("claim lost")
	}
	if err := repo.FinishOCRSuccess(ctx, done.ID, now, "text"); err != nil {
		t.Fatal(err)
	}
	if won, _ := repo.ClaimLLM(ctx, done.ID, now, staleBefore); !won {
		t.Fatal("claim lost")
	}
	if err := repo.FinishLLMSuccess(ctx, done.ID, now, json.RawMessage(`{}`), "m"); err != nil {
		t.Fatal(err)
	}

	inflight := createDoc(t, repo)
	if won, _ := repo.ClaimOCR(ctx, inflight.ID, now, staleBefore); !won {
		t.Fatal("claim lost")
	}

	rows, err := repo.ListRunnable(ctx, staleBefore, 10)
	if err != nil {
		t.Fatalf("ListRunnable: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("runnable = %d, want 0 (done and freshly claimed excluded)", len(rows))
	}

	// the in-flight doc becomes runnable once its claim passes the window
	rows, err = repo.ListRunnable(ctx, now.Add(time.Second), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].ID != inflight.ID {
		t.Errorf("stale listing = %v, want just the in-flight doc", rows)
	}
}

func TestDeleteNonFavoritesKeepsFavorites(t *testing.T) {
	repo, client := newTestRepo(t)
	ctx := context.Background()

	kept := createDoc(t, repo)
	if _, err := repo.ToggleFavorite(ctx, kept.ID); err != nil {
		t.Fatal(err)
	}
	createDoc(t, repo)
	createDoc(t, repo)

	deleted, err := repo.DeleteNonFavorites(ctx)
	if err != nil {
		t.Fatalf("DeleteNonFavorites: %v", err)
	}
	if len(deleted) != 2 {
		t.Errorf("deleted = %d, want 2", len(deleted))
	}

	remaining, err := client.Document.Query().All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(remaining) != 1 || remaining[0].ID != kept.ID {
		t.Errorf("remaining = %v, want only the favorite", remaining)
	}
}

func TestUpdatePropertiesMarksExtractionDone(t *testing.T) {
	repo, client := newTestRepo(t)
	ctx := context.Background()
	row := createDoc(t, repo)

	props := json.RawMessage(`{"price":2980,"room_layout":"3LDK"}`)
	if err := repo.UpdateProperties(ctx, row.ID, props); err != nil {
		t.Fatalf("UpdateProperties: %v", err)
	}

	got, err := client.Document.Get(ctx, row.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.LlmStatus != string(constants.StatusDone) {
		t.Errorf("llm_status = %s, want done after manual edit", got.LlmStatus)
	}
	if string(got.Properties) != string(props) {
		t.Errorf("properties = %s", got.Properties)
	}
}
