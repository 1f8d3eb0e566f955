package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lumenhotels/backoffice/internal/core/domain"
	"github.com/lumenhotels/backoffice/internal/core/ports"
)

type stubTaskRepo struct {
	tasks map[string]*domain.HousekeepingTask
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[string]*domain.HousekeepingTask)}
}

func cloneTask(t *domain.HousekeepingTask) *domain.HousekeepingTask {
	if t == nil {
		return nil
	}
	clone := *t
	return &clone
}

func (r *stubTaskRepo) Create(_ context.Context, task *domain.HousekeepingTask) error {
	r.tasks[task.ID] = cloneTask(task)
	return nil
}

func (r *stubTaskRepo) FindByID(_ context.Context, id string) (*domain.HousekeepingTask, error) {
	if t, ok := r.tasks[id]; ok {
		return cloneTask(t), nil
	}
	return nil, domain.ErrTaskNotFound
}

func (r *stubTaskRepo) List(_ context.Context, filter ports.ListTasksFilter) ([]*domain.HousekeepingTask, error) {
	var out []*domain.HousekeepingTask
	for _, t := range r.tasks {
		if filter.RoomID != "" && t.RoomID != filter.RoomID {
			continue
		}
		if filter.AssignedToStaffID != "" && t.AssignedToStaffID != filter.AssignedToStaffID {
			continue
		}
		if filter.Status != "" && string(t.Status) != filter.Status {
			continue
		}
		out = append(out, cloneTask(t))
	}
	return out, nil
}

// Update mirrors the conditional write of the real repository: nothing
// changes unless the stored status still matches current.
func (r *stubTaskRepo) Update(_ context.Context, id string, current domain.HousekeepingStatus, fields ports.TaskUpdate) (*domain.HousekeepingTask, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	if t.Status != current {
		return nil, domain.ErrInvalidTransition
	}
	if fields.RoomID != nil {
		t.RoomID = *fields.RoomID
	}
	if fields.AssignedToStaffID != nil {
		t.AssignedToStaffID = *fields.AssignedToStaffID
	}
	if fields.Status != nil {
		t.Status = *fields.Status
	}
	if fields.Notes != nil {
		t.Notes = *fields.Notes
	}
	return cloneTask(t), nil
}

func (r *stubTaskRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func statusPtr(s domain.HousekeepingStatus) *domain.HousekeepingStatus { return &s }
func strPtr(s string) *string                                         { return &s }

func TestHousekeepingService_CreateTask_StartsDirty(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewHousekeepingService(repo, zerolog.Nop())

	task, err := svc.CreateTask(context.Background(), ports.CreateTaskInput{RoomID: "room-1", Notes: "spill near window"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if task.Status != domain.StatusDirty {
		t.Fatalf("expected new task to be DIRTY, got %s", task.Status)
	}
	if task.ID == "" {
		t.Fatal("expected generated id")
	}
	if task.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}
}

func TestHousekeepingService_CreateTask_RequiresRoom(t *testing.T) {
	svc := NewHousekeepingService(newStubTaskRepo(), zerolog.Nop())

	if _, err := svc.CreateTask(context.Background(), ports.CreateTaskInput{}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestHousekeepingService_UpdateTask_ForwardTransition(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewHousekeepingService(repo, zerolog.Nop())

	task, _ := svc.CreateTask(context.Background(), ports.CreateTaskInput{RoomID: "room-1"})

	updated, err := svc.UpdateTask(context.Background(), task.ID, ports.UpdateTaskInput{Status: statusPtr(domain.StatusCleaning)})
	if err != nil {
		t.Fatalf("transition failed: %v", err)
	}
	if updated.Status != domain.StatusCleaning {
		t.Fatalf("expected CLEANING, got %s", updated.Status)
	}
}

func TestHousekeepingService_UpdateTask_FullCycle(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewHousekeepingService(repo, zerolog.Nop())

	task, _ := svc.CreateTask(context.Background(), ports.CreateTaskInput{RoomID: "room-1"})

	for _, next := range []domain.HousekeepingStatus{domain.StatusCleaning, domain.StatusInspected, domain.StatusVacant} {
		if _, err := svc.UpdateTask(context.Background(), task.ID, ports.UpdateTaskInput{Status: statusPtr(next)}); err != nil {
			t.Fatalf("transition to %s failed: %v", next, err)
		}
	}

	// VACANT is terminal.
	if _, err := svc.UpdateTask(context.Background(), task.ID, ports.UpdateTaskInput{Status: statusPtr(domain.StatusDirty)}); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition from VACANT, got %v", err)
	}
}

func TestHousekeepingService_UpdateTask_SkipRejected(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewHousekeepingService(repo, zerolog.Nop())

	task, _ := svc.CreateTask(context.Background(), ports.CreateTaskInput{RoomID: "room-1", Notes: "original"})

	// Skipping CLEANING is illegal, and the rejected update must not write
	// any of the other supplied fields either.
	_, err := svc.UpdateTask(context.Background(), task.ID, ports.UpdateTaskInput{
		Status: statusPtr(domain.StatusInspected),
		Notes:  strPtr("should not persist"),
	})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), task.ID)
	if stored.Status != domain.StatusDirty {
		t.Fatalf("status changed on rejected transition: %s", stored.Status)
	}
	if stored.Notes != "original" {
		t.Fatalf("notes changed on rejected transition: %q", stored.Notes)
	}
}

func TestHousekeepingService_UpdateTask_NoOpStatus(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewHousekeepingService(repo, zerolog.Nop())

	task, _ := svc.CreateTask(context.Background(), ports.CreateTaskInput{RoomID: "room-1"})

	// Re-sending the current status is not a transition; other fields apply.
	updated, err := svc.UpdateTask(context.Background(), task.ID, ports.UpdateTaskInput{
		Status:            statusPtr(domain.StatusDirty),
		AssignedToStaffID: strPtr("staff-7"),
	})
	if err != nil {
		t.Fatalf("no-op status update failed: %v", err)
	}
	if updated.Status != domain.StatusDirty {
		t.Fatalf("expected DIRTY, got %s", updated.Status)
	}
	if updated.AssignedToStaffID != "staff-7" {
		t.Fatalf("expected assignee update, got %q", updated.AssignedToStaffID)
	}
}

func TestHousekeepingService_UpdateTask_UnknownStatus(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewHousekeepingService(repo, zerolog.Nop())

	task, _ := svc.CreateTask(context.Background(), ports.CreateTaskInput{RoomID: "room-1"})

	if _, err := svc.UpdateTask(context.Background(), task.ID, ports.UpdateTaskInput{Status: statusPtr("SPARKLING")}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestHousekeepingService_UpdateTask_NotFound(t *testing.T) {
	svc := NewHousekeepingService(newStubTaskRepo(), zerolog.Nop())

	if _, err := svc.UpdateTask(context.Background(), "missing", ports.UpdateTaskInput{Status: statusPtr(domain.StatusCleaning)}); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestHousekeepingService_DeleteTask_AnyStatus(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewHousekeepingService(repo, zerolog.Nop())

	task, _ := svc.CreateTask(context.Background(), ports.CreateTaskInput{RoomID: "room-1"})
	if _, err := svc.UpdateTask(context.Background(), task.ID, ports.UpdateTaskInput{Status: statusPtr(domain.StatusCleaning)}); err != nil {
		t.Fatalf("transition failed: %v", err)
	}

	// Deletion is unconditional, mid-cycle included.
	if err := svc.DeleteTask(context.Background(), task.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), task.ID); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatal("task should be gone")
	}
}

func TestHousekeepingService_ListTasks_BadStatusFilter(t *testing.T) {
	svc := NewHousekeepingService(newStubTaskRepo(), zerolog.Nop())

	if _, err := svc.ListTasks(context.Background(), ports.ListTasksFilter{Status: "nope"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
