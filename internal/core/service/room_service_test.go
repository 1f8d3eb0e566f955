package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lumenhotels/backoffice/internal/core/domain"
	"github.com/lumenhotels/backoffice/internal/core/ports"
)

type stubRoomRepo struct {
	rooms map[string]*domain.Room
}

func newStubRoomRepo() *stubRoomRepo {
	return &stubRoomRepo{rooms: make(map[string]*domain.Room)}
}

func cloneRoom(r *domain.Room) *domain.Room {
	if r == nil {
		return nil
	}
	clone := *r
	return &clone
}

func (r *stubRoomRepo) Create(_ context.Context, room *domain.Room) error {
	r.rooms[room.ID] = cloneRoom(room)
	return nil
}

func (r *stubRoomRepo) FindByID(_ context.Context, id string) (*domain.Room, error) {
	if room, ok := r.rooms[id]; ok {
		return cloneRoom(room), nil
	}
	return nil, domain.ErrRoomNotFound
}

func (r *stubRoomRepo) FindByNumber(_ context.Context, roomNumber string) (*domain.Room, error) {
	for _, room := range r.rooms {
		if room.RoomNumber == roomNumber {
			return cloneRoom(room), nil
		}
	}
	return nil, domain.ErrRoomNotFound
}

func (r *stubRoomRepo) List(_ context.Context, _ ports.ListRoomsFilter) ([]*domain.Room, int64, error) {
	var out []*domain.Room
	for _, room := range r.rooms {
		out = append(out, cloneRoom(room))
	}
	return out, int64(len(out)), nil
}

func (r *stubRoomRepo) ListVacant(_ context.Context, typeID string) ([]*domain.Room, error) {
	var out []*domain.Room
	for _, room := range r.rooms {
		if room.Status != domain.RoomVacant {
			continue
		}
		if typeID != "" && room.TypeID != typeID {
			continue
		}
		out = append(out, cloneRoom(room))
	}
	return out, nil
}

func (r *stubRoomRepo) Update(_ context.Context, room *domain.Room) error {
	if _, ok := r.rooms[room.ID]; !ok {
		return domain.ErrRoomNotFound
	}
	r.rooms[room.ID] = cloneRoom(room)
	return nil
}

func (r *stubRoomRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.rooms[id]; !ok {
		return domain.ErrRoomNotFound
	}
	delete(r.rooms, id)
	return nil
}

func validRoomInput() ports.RoomInput {
	return ports.RoomInput{
		RoomNumber:   "101",
		TypeID:       "type-1",
		Floor:        1,
		MaxOccupancy: 2,
	}
}

func TestRoomService_CreateRoom_DefaultsToVacant(t *testing.T) {
	svc := NewRoomService(newStubRoomRepo(), zerolog.Nop())

	room, err := svc.CreateRoom(context.Background(), validRoomInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if room.Status != domain.RoomVacant {
		t.Fatalf("expected VACANT default, got %s", room.Status)
	}
	if room.Features == nil {
		t.Fatal("features should be an empty slice, not nil")
	}
}

func TestRoomService_CreateRoom_Validation(t *testing.T) {
	svc := NewRoomService(newStubRoomRepo(), zerolog.Nop())

	input := validRoomInput()
	input.RoomNumber = ""
	if _, err := svc.CreateRoom(context.Background(), input); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	input = validRoomInput()
	input.Status = "FLOODED"
	if _, err := svc.CreateRoom(context.Background(), input); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for bad status, got %v", err)
	}
}

func TestRoomService_CreateRoom_DuplicateNumber(t *testing.T) {
	svc := NewRoomService(newStubRoomRepo(), zerolog.Nop())

	if _, err := svc.CreateRoom(context.Background(), validRoomInput()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.CreateRoom(context.Background(), validRoomInput()); !errors.Is(err, domain.ErrRoomExists) {
		t.Fatalf("expected ErrRoomExists, got %v", err)
	}
}

func TestRoomService_Availability_Validation(t *testing.T) {
	svc := NewRoomService(newStubRoomRepo(), zerolog.Nop())

	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	if _, err := svc.Availability(context.Background(), ports.AvailabilityInput{StartDate: start}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing end date, got %v", err)
	}
	if _, err := svc.Availability(context.Background(), ports.AvailabilityInput{
		StartDate: start,
		EndDate:   start.Add(-24 * time.Hour),
	}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for inverted range, got %v", err)
	}
}

func TestRoomService_Availability_FiltersVacant(t *testing.T) {
	repo := newStubRoomRepo()
	svc := NewRoomService(repo, zerolog.Nop())

	mk := func(number, typeID string, status domain.RoomStatus) {
		input := validRoomInput()
		input.RoomNumber = number
		input.TypeID = typeID
		input.Status = string(status)
		if _, err := svc.CreateRoom(context.Background(), input); err != nil {
			t.Fatalf("seed room %s: %v", number, err)
		}
	}
	mk("101", "suite", domain.RoomVacant)
	mk("102", "suite", domain.RoomOccupied)
	mk("201", "standard", domain.RoomVacant)

	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	rooms, err := svc.Availability(context.Background(), ports.AvailabilityInput{
		StartDate:  start,
		EndDate:    start.Add(48 * time.Hour),
		RoomTypeID: "suite",
	})
	if err != nil {
		t.Fatalf("availability failed: %v", err)
	}
	if len(rooms) != 1 || rooms[0].RoomNumber != "101" {
		t.Fatalf("expected only vacant suite 101, got %+v", rooms)
	}
}
