package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lumenhotels/backoffice/internal/api/metrics"
	"github.com/lumenhotels/backoffice/internal/core/domain"
	"github.com/lumenhotels/backoffice/internal/core/ports"
)

// HousekeepingService validates lifecycle transitions before persisting.
type HousekeepingService struct {
	repo ports.HousekeepingRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewHousekeepingService(repo ports.HousekeepingRepository, log zerolog.Logger) *HousekeepingService {
	return &HousekeepingService{repo: repo, log: log, now: time.Now}
}

// CreateTask creates a task in DIRTY status regardless of caller input.
func (s *HousekeepingService) CreateTask(ctx context.Context, input ports.CreateTaskInput) (*domain.HousekeepingTask, error) {
	if input.RoomID == "" {
		return nil, fmt.Errorf("%w: room_id is required", domain.ErrValidation)
	}

	task := &domain.HousekeepingTask{
		ID:                uuid.NewString(),
		RoomID:            input.RoomID,
		AssignedToStaffID: input.AssignedToStaffID,
		Status:            domain.StatusDirty,
		Notes:             input.Notes,
		CreatedAt:         s.now().UTC(),
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	metrics.TasksCreatedTotal.Inc()
	s.log.Info().Str("task_id", task.ID).Str("room_id", task.RoomID).Msg("housekeeping task created")
	return task, nil
}

func (s *HousekeepingService) GetTask(ctx context.Context, id string) (*domain.HousekeepingTask, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *HousekeepingService) ListTasks(ctx context.Context, filter ports.ListTasksFilter) ([]*domain.HousekeepingTask, error) {
	if filter.Status != "" && !domain.HousekeepingStatus(filter.Status).Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, filter.Status)
	}
	return s.repo.List(ctx, filter)
}

// UpdateTask applies a partial update. A requested status change is checked
// against the lifecycle state machine first; when the transition is rejected
// nothing is written, including the other supplied fields. A no-op status
// (requested equals current) skips validation entirely.
func (s *HousekeepingService) UpdateTask(ctx context.Context, id string, input ports.UpdateTaskInput) (*domain.HousekeepingTask, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	current := task.Status
	transitioning := input.Status != nil && *input.Status != current

	if transitioning {
		if !input.Status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, *input.Status)
		}
		if !current.CanTransitionTo(*input.Status) {
			metrics.TransitionsRejectedTotal.WithLabelValues(string(current), string(*input.Status)).Inc()
			return nil, fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, current, *input.Status)
		}
	}

	// The write is conditional on the stored status still being `current`;
	// a concurrent transition surfaces as ErrInvalidTransition instead of a
	// lost update.
	updated, err := s.repo.Update(ctx, id, current, ports.TaskUpdate{
		RoomID:            input.RoomID,
		AssignedToStaffID: input.AssignedToStaffID,
		Status:            input.Status,
		Notes:             input.Notes,
	})
	if err != nil {
		return nil, err
	}

	if transitioning {
		metrics.TransitionsTotal.WithLabelValues(string(current), string(*input.Status)).Inc()
		s.log.Info().
			Str("task_id", id).
			Str("from", string(current)).
			Str("to", string(*input.Status)).
			Msg("housekeeping status advanced")
	}

	return updated, nil
}

// DeleteTask removes a task unconditionally; no transition check applies.
func (s *HousekeepingService) DeleteTask(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
