package server

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	housingv1 "github.com/fyang93/housing-ocr/gen/proto/housing/v1"
	"github.com/fyang93/housing-ocr/gen/ent"
	"github.com/fyang93/housing-ocr/internal/common"
	"github.com/fyang93/housing-ocr/internal/repository"
)

type TravelTimeService struct {
	housingv1.UnimplementedTravelTimeServiceServer
	travel repository.TravelRepository
	logger *slog.Logger
}

func NewTravelTimeService(travel repository.TravelRepository, logger *slog.Logger) *TravelTimeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TravelTimeService{travel: travel, logger: logger}
}

func (s *TravelTimeService) ListLocations(ctx context.Context, _ *housingv1.ListLocationsRequest) (*housingv1.ListLocationsResponse, error) {
	rows, err := s.travel.ListLocations(ctx)
	if err != nil {
		s.logger.Error("travel.list_locations_failed", "error", err)
		return nil, common.InternalError("list locations failed")
	}
	return &housingv1.ListLocationsResponse{Locations: toProtoLocations(rows)}, nil
}

func (s *TravelTimeService) AddLocation(ctx context.Context, req *housingv1.AddLocationRequest) (*housingv1.Location, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, common.InvalidArgumentError("name is required")
	}
	row, err := s.travel.AddLocation(ctx, name)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, common.InvalidArgumentError("location already exists")
		}
		s.logger.Error("travel.add_location_failed", "name", name, "error", err)
		return nil, common.InternalError("add location failed")
	}
	if req.GetShowInTag() {
		if err := s.travel.SetLocationDisplay(ctx, row.ID, true); err != nil {
			s.logger.Warn("travel.set_display_failed", "location_id", row.ID, "error", err)
		} else {
			row.ShowInTag = true
		}
	}
	return toProtoLocation(row), nil
}

func (s *TravelTimeService) DeleteLocation(ctx context.Context, req *housingv1.DeleteLocationRequest) (*housingv1.DeleteLocationResponse, error) {
	id, err := parseLocationID(req.GetId())
	if err != nil {
		return nil, err
	}
	if err := s.travel.DeleteLocation(ctx, id); err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("location not found")
		}
		s.logger.Error("travel.delete_location_failed", "location_id", id, "error", err)
		return nil, common.InternalError("delete location failed")
	}
	return &housingv1.DeleteLocationResponse{Deleted: true}, nil
}

func (s *TravelTimeService) ReorderLocations(ctx context.Context, req *housingv1.ReorderLocationsRequest) (*housingv1.ListLocationsResponse, error) {
	ids := make([]int, 0, len(req.GetIds()))
	for _, raw := range req.GetIds() {
		id, err := parseLocationID(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := s.travel.ReorderLocations(ctx, ids); err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("location not found")
		}
		s.logger.Error("travel.reorder_failed", "error", err)
		return nil, common.InternalError("reorder locations failed")
	}
	rows, err := s.travel.ListLocations(ctx)
	if err != nil {
		return nil, common.InternalError("reorder locations failed")
	}
	return &housingv1.ListLocationsResponse{Locations: toProtoLocations(rows)}, nil
}

func (s *TravelTimeService) SetTravelTime(ctx context.Context, req *housingv1.SetTravelTimeRequest) (*housingv1.SetTravelTimeResponse, error) {
	station := strings.TrimSpace(req.GetStationName())
	if station == "" {
		return nil, common.InvalidArgumentError("station_name is required")
	}
	locID, err := parseLocationID(req.GetLocationId())
	if err != nil {
		return nil, err
	}
	if req.GetDurationMinutes() < 0 {
		return nil, common.InvalidArgumentError("duration_minutes must not be negative")
	}
	if err := s.travel.SetDuration(ctx, station, locID, int(req.GetDurationMinutes())); err != nil {
		if ent.IsConstraintError(err) {
			return nil, common.InvalidArgumentError("location not found")
		}
		s.logger.Error("travel.set_duration_failed", "station", station, "location_id", locID, "error", err)
		return nil, common.InternalError("set travel time failed")
	}
	return &housingv1.SetTravelTimeResponse{Updated: true}, nil
}

func (s *TravelTimeService) GetTravelTimes(ctx context.Context, req *housingv1.GetTravelTimesRequest) (*housingv1.GetTravelTimesResponse, error) {
	var (
		rows []repository.TravelTime
		err  error
	)
	if station := strings.TrimSpace(req.GetStationName()); station != "" {
		rows, err = s.travel.DurationsForStation(ctx, station)
	} else {
		rows, err = s.travel.AllDurations(ctx)
	}
	if err != nil {
		s.logger.Error("travel.get_durations_failed", "error", err)
		return nil, common.InternalError("get travel times failed")
	}

	out := make([]*housingv1.TravelTime, 0, len(rows))
	for _, tt := range rows {
		out = append(out, &housingv1.TravelTime{
			StationName:     tt.StationName,
			LocationId:      strconv.Itoa(tt.LocationID),
			LocationName:    tt.LocationName,
			DurationMinutes: int32(tt.Duration),
			ShowInTag:       tt.ShowInTag,
		})
	}
	return &housingv1.GetTravelTimesResponse{TravelTimes: out}, nil
}

func parseLocationID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, common.InvalidArgumentError("location id must be an integer")
	}
	return id, nil
}

func toProtoLocation(row *ent.Location) *housingv1.Location {
	return &housingv1.Location{
		Id:           strconv.Itoa(row.ID),
		Name:         row.Name,
		DisplayOrder: int32(row.DisplayOrder),
		ShowInTag:    row.ShowInTag,
	}
}

func toProtoLocations(rows []*ent.Location) []*housingv1.Location {
	out := make([]*housingv1.Location, 0, len(rows))
	for _, row := range rows {
		out = append(out, toProtoLocation(row))
	}
	return out
}
