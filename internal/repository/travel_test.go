package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fyang93/housing-ocr/gen/ent"
)

func newTestTravelRepo(t *testing.T) TravelRepository {
	t.Helper()
	client, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"), nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	if err := Migrate(context.Background(), client); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewTravelRepository(client, nil)
}

func TestLocationsOrderAndReorder(t *testing.T) {
	repo := newTestTravelRepo(t)
	ctx := context.Background()

	office, err := repo.AddLocation(ctx, "office")
	if err != nil {
		t.Fatal(err)
	}
	gym, err := repo.AddLocation(ctx, "gym")
	if err != nil {
		t.Fatal(err)
	}

	rows, err := repo.ListLocations(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[0].Name != "office" || rows[1].Name != "gym" {
		t.Fatalf("initial order wrong: %v", names(rows))
	}

	if err := repo.ReorderLocations(ctx, []int{gym.ID, office.ID}); err != nil {
		t.Fatalf("ReorderLocations: %v", err)
	}
	rows, err = repo.ListLocations(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if rows[0].Name != "gym" || rows[1].Name != "office" {
		t.Errorf("reordered to %v, want [gym office]", names(rows))
	}
}

func TestAddLocationRejectsDuplicateName(t *testing.T) {
	repo := newTestTravelRepo(t)
	ctx := context.Background()
	if _, err := repo.AddLocation(ctx, "office"); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.AddLocation(ctx, "office"); !ent.IsConstraintError(err) {
		t.Errorf("duplicate name err = %v, want constraint error", err)
	}
}

func TestSetDurationUpserts(t *testing.T) {
	repo := newTestTravelRepo(t)
	ctx := context.Background()
	office, err := repo.AddLocation(ctx, "office")
	if err != nil {
		t.Fatal(err)
	}

	if err := repo.SetDuration(ctx, "品川", office.ID, 25); err != nil {
		t.Fatalf("SetDuration: %v", err)
	}
	if err := repo.SetDuration(ctx, "品川", office.ID, 22); err != nil {
		t.Fatalf("SetDuration update: %v", err)
	}

	tts, err := repo.DurationsForStation(ctx, "品川")
	if err != nil {
		t.Fatal(err)
	}
	if len(tts) != 1 {
		t.Fatalf("durations = %d, want 1 (upsert)", len(tts))
	}
	if tts[0].Duration != 22 {
		t.Errorf("duration = %d, want 22", tts[0].Duration)
	}
	if tts[0].LocationName != "office" {
		t.Errorf("location_name = %s", tts[0].LocationName)
	}
}

func TestDeleteLocationCascadesDurations(t *testing.T) {
	repo := newTestTravelRepo(t)
	ctx := context.Background()
	office, err := repo.AddLocation(ctx, "office")
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.SetDuration(ctx, "品川", office.ID, 25); err != nil {
		t.Fatal(err)
	}

	if err := repo.DeleteLocation(ctx, office.ID); err != nil {
		t.Fatalf("DeleteLocation: %v", err)
	}
	tts, err := repo.AllDurations(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(tts) != 0 {
		t.Errorf("durations = %d, want 0 after cascade", len(tts))
	}
}

func names(rows []*ent.Location) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}
