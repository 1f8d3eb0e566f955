package domain

import (
	"errors"
	"time"
)

// HousekeepingStatus represents the lifecycle state of a cleaning task.
type HousekeepingStatus string

const (
	StatusDirty     HousekeepingStatus = "DIRTY"
	StatusCleaning  HousekeepingStatus = "CLEANING"
	StatusInspected HousekeepingStatus = "INSPECTED"
	StatusVacant    HousekeepingStatus = "VACANT"
)

// nextStatus defines the single allowed forward transition per state.
// VACANT is terminal; a new cleaning cycle requires a new task.
var nextStatus = map[HousekeepingStatus]HousekeepingStatus{
	StatusDirty:     StatusCleaning,
	StatusCleaning:  StatusInspected,
	StatusInspected: StatusVacant,
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrTaskNotFound = errors.New("housekeeping task not found")

// Valid reports whether s is one of the known housekeeping statuses.
func (s HousekeepingStatus) Valid() bool {
	switch s {
	case StatusDirty, StatusCleaning, StatusInspected, StatusVacant:
		return true
	}
	return false
}

// CanTransitionTo reports whether a transition from s to next is legal.
func (s HousekeepingStatus) CanTransitionTo(next HousekeepingStatus) bool {
	return nextStatus[s] == next
}

// HousekeepingTask is a single cleaning assignment for a room.
type HousekeepingTask struct {
	ID                string             `json:"id" bson:"_id,omitempty"`
	RoomID            string             `json:"room_id" bson:"room_id"`
	AssignedToStaffID string             `json:"assigned_to_staff_id,omitempty" bson:"assigned_to_staff_id,omitempty"`
	Status            HousekeepingStatus `json:"status" bson:"status"`
	Notes             string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt         time.Time          `json:"created_at" bson:"created_at"`
}
