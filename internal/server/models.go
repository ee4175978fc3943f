package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	housingv1 "github.com/fyang93/housing-ocr/gen/proto/housing/v1"
	"github.com/fyang93/housing-ocr/internal/common"
	"github.com/fyang93/housing-ocr/internal/models"
)

type ModelService struct {
	housingv1.UnimplementedModelServiceServer
	registry *models.Registry
	logger   *slog.Logger
}

func NewModelService(registry *models.Registry, logger *slog.Logger) *ModelService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ModelService{registry: registry, logger: logger}
}

func (s *ModelService) ListModels(ctx context.Context, _ *housingv1.ListModelsRequest) (*housingv1.ListModelsResponse, error) {
	return &housingv1.ListModelsResponse{Models: s.registry.Models()}, nil
}

func (s *ModelService) AddModel(ctx context.Context, req *housingv1.AddModelRequest) (*housingv1.ListModelsResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, common.InvalidArgumentError("name is required")
	}
	if err := s.registry.Add(name); err != nil {
		return nil, s.mapError(err, "add model")
	}
	s.logger.Info("models.added", "model", name)
	return &housingv1.ListModelsResponse{Models: s.registry.Models()}, nil
}

func (s *ModelService) RemoveModel(ctx context.Context, req *housingv1.RemoveModelRequest) (*housingv1.ListModelsResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, common.InvalidArgumentError("name is required")
	}
	if err := s.registry.Remove(name); err != nil {
		return nil, s.mapError(err, "remove model")
	}
	s.logger.Info("models.removed", "model", name)
	return &housingv1.ListModelsResponse{Models: s.registry.Models()}, nil
}

func (s *ModelService) ReorderModels(ctx context.Context, req *housingv1.ReorderModelsRequest) (*housingv1.ListModelsResponse, error) {
	if err := s.registry.Reorder(req.GetOrder()); err != nil {
		return nil, s.mapError(err, "reorder models")
	}
	s.logger.Info("models.reordered", "count", len(req.GetOrder()))
	return &housingv1.ListModelsResponse{Models: s.registry.Models()}, nil
}

func (s *ModelService) mapError(err error, op string) error {
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		return common.InvalidArgumentError(err.Error())
	case errors.Is(err, common.ErrNotFound):
		return common.NotFoundError(err.Error())
	default:
		s.logger.Error("models.op_failed", "op", op, "error", err)
		return common.InternalError(op + " failed")
	}
}
