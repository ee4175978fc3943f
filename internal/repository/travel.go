package repository

import (
	"context"
	"log/slog"

	"github.com/fyang93/housing-ocr/gen/ent"
	entloc "github.com/fyang93/housing-ocr/gen/ent/location"
	entsd "github.com/fyang93/housing-ocr/gen/ent/stationduration"
)

// TravelTime is a station duration joined with its location row.
type TravelTime struct {
	StationName  string
	LocationID   int
	LocationName string
	ShowInTag    bool
	Duration     int
}

// TravelRepository manages commute reference data: user locations and the
// per-station travel minutes shown alongside extracted station lists.
type TravelRepository interface {
	ListLocations(ctx context.Context) ([]*ent.Location, error)
	AddLocation(ctx context.Context, name string) (*ent.Location, error)
	DeleteLocation(ctx context.Context, id int) error
	SetLocationDisplay(ctx context.Context, id int, showInTag bool) error
	ReorderLocations(ctx context.Context, ids []int) error

	SetDuration(ctx context.Context, stationName string, locationID, minutes int) error
	DeleteDuration(ctx context.Context, stationName string, locationID int) error
	DurationsForStation(ctx context.Context, stationName string) ([]TravelTime, error)
	AllDurations(ctx context.Context) ([]TravelTime, error)
}

type travelRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewTravelRepository(entc *ent.Client, logger *slog.Logger) TravelRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &travelRepo{ent: entc, logger: logger}
}

func (r *travelRepo) ListLocations(ctx context.Context) ([]*ent.Location, error) {
	return r.ent.Location.Query().
		Order(ent.Asc(entloc.FieldDisplayOrder), ent.Asc(entloc.FieldID)).
		All(ctx)
}

func (r *travelRepo) AddLocation(ctx context.Context, name string) (*ent.Location, error) {
	max, err := r.ent.Location.Query().Count(ctx)
	if err != nil {
		return nil, err
	}
	row, err := r.ent.Location.Create().
		SetName(name).
		SetDisplayOrder(max + 1).
		Save(ctx)
	if err != nil {
		r.logger.Error("add location failed", "name", name, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *travelRepo) DeleteLocation(ctx context.Context, id int) error {
	// Durations cascade via the FK.
	if err := r.ent.Location.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("delete location failed", "location_id", id, "error", err)
		return err
	}
	return nil
}

func (r *travelRepo) SetLocationDisplay(ctx context.Context, id int, showInTag bool) error {
	_, err := r.ent.Location.UpdateOneID(id).SetShowInTag(showInTag).Save(ctx)
	return err
}

func (r *travelRepo) ReorderLocations(ctx context.Context, ids []int) error {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return err
	}
	for i, id := range ids {
		if _, err := tx.Location.UpdateOneID(id).SetDisplayOrder(i + 1).Save(ctx); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (r *travelRepo) SetDuration(ctx context.Context, stationName string, locationID, minutes int) error {
	existing, err := r.ent.StationDuration.Query().
		Where(entsd.StationNameEQ(stationName), entsd.LocationIDEQ(locationID)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().SetDuration(minutes).Save(ctx)
		return err
	case ent.IsNotFound(err):
		_, err = r.ent.StationDuration.Create().
			SetStationName(stationName).
			SetLocationID(locationID).
			SetDuration(minutes).
			Save(ctx)
		return err
	default:
		return err
	}
}

func (r *travelRepo) DeleteDuration(ctx context.Context, stationName string, locationID int) error {
	_, err := r.ent.StationDuration.Delete().
		Where(entsd.StationNameEQ(stationName), entsd.LocationIDEQ(locationID)).
		Exec(ctx)
	return err
}

func (r *travelRepo) DurationsForStation(ctx context.Context, stationName string) ([]TravelTime, error) {
	rows, err := r.ent.StationDuration.Query().
		Where(entsd.StationNameEQ(stationName)).
		WithLocation().
		All(ctx)
	if err != nil {
		return nil, err
	}
	return joinTravelTimes(rows), nil
}

func (r *travelRepo) AllDurations(ctx context.Context) ([]TravelTime, error) {
	rows, err := r.ent.StationDuration.Query().
		Order(ent.Asc(entsd.FieldStationName)).
		WithLocation().
		All(ctx)
	if err != nil {
		return nil, err
	}
	return joinTravelTimes(rows), nil
}

func joinTravelTimes(rows []*ent.StationDuration) []TravelTime {
	out := make([]TravelTime, 0, len(rows))
	for _, row := range rows {
		tt := TravelTime{
			StationName: row.StationName,
			LocationID:  row.LocationID,
			Duration:    row.Duration,
		}
		if loc := row.Edges.Location; loc != nil {
			tt.LocationName = loc.Name
			tt.ShowInTag = loc.ShowInTag
		}
		out = append(out, tt)
	}
	return out
}
