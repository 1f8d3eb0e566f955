package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lumenhotels/backoffice/internal/core/domain"
	"github.com/lumenhotels/backoffice/internal/core/ports"
)

// RoomTypeService implements room type catalog use cases.
type RoomTypeService struct {
	repo ports.RoomTypeRepository
	log  zerolog.Logger
}

func NewRoomTypeService(repo ports.RoomTypeRepository, log zerolog.Logger) *RoomTypeService {
	return &RoomTypeService{repo: repo, log: log}
}

func validateRoomTypeInput(input ports.RoomTypeInput) error {
	if input.Name == "" || input.BaseRate <= 0 || input.MaxOccupancy <= 0 {
		return fmt.Errorf("%w: name, base_rate, and max_occupancy are required", domain.ErrValidation)
	}
	return nil
}

func (s *RoomTypeService) CreateRoomType(ctx context.Context, input ports.RoomTypeInput) (*domain.RoomType, error) {
	if err := validateRoomTypeInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rt := &domain.RoomType{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Description:  input.Description,
		BaseRate:     input.BaseRate,
		MaxOccupancy: input.MaxOccupancy,
		Amenities:    featuresOrEmpty(input.Amenities),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, rt); err != nil {
		return nil, fmt.Errorf("create room type: %w", err)
	}

	s.log.Info().Str("room_type_id", rt.ID).Str("name", rt.Name).Msg("room type created")
	return rt, nil
}

func (s *RoomTypeService) GetRoomType(ctx context.Context, id string) (*domain.RoomType, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RoomTypeService) ListRoomTypes(ctx context.Context) ([]*domain.RoomType, error) {
	return s.repo.List(ctx)
}

func (s *RoomTypeService) UpdateRoomType(ctx context.Context, id string, input ports.RoomTypeInput) (*domain.RoomType, error) {
	if err := validateRoomTypeInput(input); err != nil {
		return nil, err
	}

	rt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rt.Name = input.Name
	rt.Description = input.Description
	rt.BaseRate = input.BaseRate
	rt.MaxOccupancy = input.MaxOccupancy
	rt.Amenities = featuresOrEmpty(input.Amenities)
	rt.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, rt); err != nil {
		return nil, fmt.Errorf("update room type: %w", err)
	}
	return rt, nil
}

func (s *RoomTypeService) DeleteRoomType(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
