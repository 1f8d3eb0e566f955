package ports

import (
	"context"
	"time"

	"github.com/lumenhotels/backoffice/internal/core/domain"
)

// ListRoomsFilter carries the query parameters for listing rooms.
type ListRoomsFilter struct {
	Search string // optional: partial match on room_number
	Status string // optional: filter by room status
	TypeID string // optional: filter by room type
	Page   int    // 1-based
	Limit  int
}

// RoomInput carries the mutable fields of a room for create and update.
type RoomInput struct {
	RoomNumber   string
	TypeID       string
	Floor        int
	Features     []string
	Status       string
	MaxOccupancy int
}

// RoomPage is a single page of rooms plus pagination metadata.
type RoomPage struct {
	Rooms      []*domain.Room
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// AvailabilityInput carries the parameters of an availability query.
// Both dates are required; RoomTypeID is optional.
type AvailabilityInput struct {
	StartDate  time.Time
	EndDate    time.Time
	RoomTypeID string
}

// RoomRepository defines persistence operations for rooms.
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	FindByID(ctx context.Context, id string) (*domain.Room, error)
	FindByNumber(ctx context.Context, roomNumber string) (*domain.Room, error)
	// List returns a page of rooms ordered by room_number and the total count.
	List(ctx context.Context, filter ListRoomsFilter) ([]*domain.Room, int64, error)
	// ListVacant returns all rooms currently in VACANT status, optionally
	// restricted to one room type.
	ListVacant(ctx context.Context, typeID string) ([]*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id string) error
}

// RoomTypeRepository defines persistence operations for room types.
type RoomTypeRepository interface {
	Create(ctx context.Context, rt *domain.RoomType) error
	FindByID(ctx context.Context, id string) (*domain.RoomType, error)
	// List returns all room types ordered by name.
	List(ctx context.Context) ([]*domain.RoomType, error)
	Update(ctx context.Context, rt *domain.RoomType) error
	Delete(ctx context.Context, id string) error
}

// RoomService defines use-case operations for room inventory.
type RoomService interface {
	CreateRoom(ctx context.Context, input RoomInput) (*domain.Room, error)
	GetRoom(ctx context.Context, id string) (*domain.Room, error)
	ListRooms(ctx context.Context, filter ListRoomsFilter) (*RoomPage, error)
	UpdateRoom(ctx context.Context, id string, input RoomInput) (*domain.Room, error)
	DeleteRoom(ctx context.Context, id string) error
	// Availability returns rooms open for the requested window. The check is
	// a vacancy snapshot; reservation-level conflicts are out of scope.
	Availability(ctx context.Context, input AvailabilityInput) ([]*domain.Room, error)
}

// RoomTypeInput carries the mutable fields of a room type.
type RoomTypeInput struct {
	Name         string
	Description  string
	BaseRate     float64
	MaxOccupancy int
	Amenities    []string
}

// RoomTypeService defines use-case operations for room type catalog entries.
type RoomTypeService interface {
	CreateRoomType(ctx context.Context, input RoomTypeInput) (*domain.RoomType, error)
	GetRoomType(ctx context.Context, id string) (*domain.RoomType, error)
	ListRoomTypes(ctx context.Context) ([]*domain.RoomType, error)
	UpdateRoomType(ctx context.Context, id string, input RoomTypeInput) (*domain.RoomType, error)
	DeleteRoomType(ctx context.Context, id string) error
}
