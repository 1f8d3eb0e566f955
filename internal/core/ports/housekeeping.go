package ports

import (
	"context"

	"github.com/lumenhotels/backoffice/internal/core/domain"
)

// ListTasksFilter carries the query parameters for listing housekeeping tasks.
// Empty fields are not filtered on.
type ListTasksFilter struct {
	RoomID            string
	AssignedToStaffID string
	Status            string
}

// CreateTaskInput carries the data for a new housekeeping task. The initial
// status is always DIRTY regardless of caller input.
type CreateTaskInput struct {
	RoomID            string
	AssignedToStaffID string
	Notes             string
}

// UpdateTaskInput carries a partial update; nil fields are left unchanged.
type UpdateTaskInput struct {
	RoomID            *string
	AssignedToStaffID *string
	Status            *domain.HousekeepingStatus
	Notes             *string
}

// TaskUpdate is the repository-level counterpart of UpdateTaskInput; nil
// fields are omitted from the write.
type TaskUpdate struct {
	RoomID            *string
	AssignedToStaffID *string
	Status            *domain.HousekeepingStatus
	Notes             *string
}

// HousekeepingRepository defines persistence operations for cleaning tasks.
type HousekeepingRepository interface {
	Create(ctx context.Context, task *domain.HousekeepingTask) error
	FindByID(ctx context.Context, id string) (*domain.HousekeepingTask, error)
	// List returns tasks matching filter, newest first.
	List(ctx context.Context, filter ListTasksFilter) ([]*domain.HousekeepingTask, error)
	// Update applies fields in a single conditional write: the document must
	// still carry the given current status, otherwise no write happens and
	// domain.ErrInvalidTransition is returned (a concurrent transition won).
	Update(ctx context.Context, id string, current domain.HousekeepingStatus, fields TaskUpdate) (*domain.HousekeepingTask, error)
	Delete(ctx context.Context, id string) error
}

// HousekeepingService defines use-case operations for the cleaning workflow.
type HousekeepingService interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (*domain.HousekeepingTask, error)
	GetTask(ctx context.Context, id string) (*domain.HousekeepingTask, error)
	ListTasks(ctx context.Context, filter ListTasksFilter) ([]*domain.HousekeepingTask, error)
	// UpdateTask validates a requested status change against the lifecycle
	// state machine before persisting anything.
	UpdateTask(ctx context.Context, id string, input UpdateTaskInput) (*domain.HousekeepingTask, error)
	// DeleteTask removes a task unconditionally; no transition check applies.
	DeleteTask(ctx context.Context, id string) error
}
