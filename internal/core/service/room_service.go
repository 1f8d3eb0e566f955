package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lumenhotels/backoffice/internal/core/domain"
	"github.com/lumenhotels/backoffice/internal/core/ports"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// RoomService implements room inventory use cases.
type RoomService struct {
	repo ports.RoomRepository
	log  zerolog.Logger
}

func NewRoomService(repo ports.RoomRepository, log zerolog.Logger) *RoomService {
	return &RoomService{repo: repo, log: log}
}

func validateRoomInput(input ports.RoomInput) (domain.RoomStatus, error) {
	if input.RoomNumber == "" || input.TypeID == "" || input.Floor == 0 || input.MaxOccupancy == 0 {
		return "", fmt.Errorf("%w: room_number, type_id, floor, and max_occupancy are required", domain.ErrValidation)
	}
	status := domain.RoomStatus(input.Status)
	if input.Status == "" {
		status = domain.RoomVacant
	} else if !status.Valid() {
		return "", fmt.Errorf("%w: unknown room status %q", domain.ErrValidation, input.Status)
	}
	return status, nil
}

func (s *RoomService) CreateRoom(ctx context.Context, input ports.RoomInput) (*domain.Room, error) {
	status, err := validateRoomInput(input)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByNumber(ctx, input.RoomNumber); err == nil {
		return nil, domain.ErrRoomExists
	} else if !errors.Is(err, domain.ErrRoomNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	room := &domain.Room{
		ID:           uuid.NewString(),
		RoomNumber:   input.RoomNumber,
		TypeID:       input.TypeID,
		Floor:        input.Floor,
		Features:     featuresOrEmpty(input.Features),
		Status:       status,
		MaxOccupancy: input.MaxOccupancy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.log.Info().Str("room_id", room.ID).Str("room_number", room.RoomNumber).Msg("room created")
	return room, nil
}

func (s *RoomService) GetRoom(ctx context.Context, id string) (*domain.Room, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RoomService) ListRooms(ctx context.Context, filter ports.ListRoomsFilter) (*ports.RoomPage, error) {
	filter.Page, filter.Limit = clampPage(filter.Page, filter.Limit)

	rooms, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	return &ports.RoomPage{
		Rooms:      rooms,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

func (s *RoomService) UpdateRoom(ctx context.Context, id string, input ports.RoomInput) (*domain.Room, error) {
	status, err := validateRoomInput(input)
	if err != nil {
		return nil, err
	}

	room, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	room.RoomNumber = input.RoomNumber
	room.TypeID = input.TypeID
	room.Floor = input.Floor
	room.Features = featuresOrEmpty(input.Features)
	room.Status = status
	room.MaxOccupancy = input.MaxOccupancy
	room.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, room); err != nil {
		return nil, fmt.Errorf("update room: %w", err)
	}
	return room, nil
}

func (s *RoomService) DeleteRoom(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Availability returns rooms open for the requested window. The check is a
// vacancy snapshot; reservation-level conflict detection happens at booking
// time, not here.
func (s *RoomService) Availability(ctx context.Context, input ports.AvailabilityInput) ([]*domain.Room, error) {
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: start_date and end_date are required", domain.ErrValidation)
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, fmt.Errorf("%w: end_date precedes start_date", domain.ErrValidation)
	}
	return s.repo.ListVacant(ctx, input.RoomTypeID)
}

func featuresOrEmpty(features []string) []string {
	if features == nil {
		return []string{}
	}
	return features
}

func clampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
