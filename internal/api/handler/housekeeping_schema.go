package handler

import (
	"time"

	"github.com/lumenhotels/backoffice/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createTaskRequest struct {
	RoomID            string `json:"room_id" validate:"required"`
	AssignedToStaffID string `json:"assigned_to_staff_id"`
	Notes             string `json:"notes"`
}

// updateTaskRequest is a partial update; absent fields are left unchanged.
type updateTaskRequest struct {
	RoomID            *string `json:"room_id"`
	AssignedToStaffID *string `json:"assigned_to_staff_id"`
	Status            *string `json:"status" validate:"omitempty,oneof=DIRTY CLEANING INSPECTED VACANT"`
	Notes             *string `json:"notes"`
}

type taskResponse struct {
	ID                string    `json:"id"`
	RoomID            string    `json:"room_id"`
	AssignedToStaffID string    `json:"assigned_to_staff_id,omitempty"`
	Status            string    `json:"status"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func toTaskResponse(t *domain.HousekeepingTask) taskResponse {
	return taskResponse{
		ID:                t.ID,
		RoomID:            t.RoomID,
		AssignedToStaffID: t.AssignedToStaffID,
		Status:            string(t.Status),
		Notes:             t.Notes,
		CreatedAt:         t.CreatedAt.UTC(),
	}
}

func toTaskListResponse(tasks []*domain.HousekeepingTask) []taskResponse {
	out := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = toTaskResponse(t)
	}
	return out
}
