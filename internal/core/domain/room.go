package domain

import (
	"errors"
	"time"
)

// RoomStatus represents the occupancy state of a physical room.
type RoomStatus string

const (
	RoomVacant      RoomStatus = "VACANT"
	RoomOccupied    RoomStatus = "OCCUPIED"
	RoomMaintenance RoomStatus = "MAINTENANCE"
)

var ErrRoomNotFound = errors.New("room not found")
var ErrRoomExists = errors.New("room already exists")
var ErrRoomTypeNotFound = errors.New("room type not found")

// Valid reports whether s is a known room status.
func (s RoomStatus) Valid() bool {
	switch s {
	case RoomVacant, RoomOccupied, RoomMaintenance:
		return true
	}
	return false
}

// Room is a physical, rentable room.
type Room struct {
	ID           string     `json:"id" bson:"_id,omitempty"`
	RoomNumber   string     `json:"room_number" bson:"room_number"`
	TypeID       string     `json:"type_id" bson:"type_id"`
	Floor        int        `json:"floor" bson:"floor"`
	Features     []string   `json:"features" bson:"features"`
	Status       RoomStatus `json:"status" bson:"status"`
	MaxOccupancy int        `json:"max_occupancy" bson:"max_occupancy"`
	CreatedAt    time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" bson:"updated_at"`
}

// RoomType describes a category of rooms sharing rate and capacity.
type RoomType struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Description  string    `json:"description,omitempty" bson:"description,omitempty"`
	BaseRate     float64   `json:"base_rate" bson:"base_rate"`
	MaxOccupancy int       `json:"max_occupancy" bson:"max_occupancy"`
	Amenities    []string  `json:"amenities" bson:"amenities"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
