package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lumenhotels/backoffice/internal/core/domain"
	"github.com/lumenhotels/backoffice/internal/core/ports"
)

type stubTaskService struct {
	createFn func(ctx context.Context, input ports.CreateTaskInput) (*domain.HousekeepingTask, error)
	getFn    func(ctx context.Context, id string) (*domain.HousekeepingTask, error)
	listFn   func(ctx context.Context, filter ports.ListTasksFilter) ([]*domain.HousekeepingTask, error)
	updateFn func(ctx context.Context, id string, input ports.UpdateTaskInput) (*domain.HousekeepingTask, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubTaskService) CreateTask(ctx context.Context, input ports.CreateTaskInput) (*domain.HousekeepingTask, error) {
	return s.createFn(ctx, input)
}

func (s *stubTaskService) GetTask(ctx context.Context, id string) (*domain.HousekeepingTask, error) {
	return s.getFn(ctx, id)
}

func (s *stubTaskService) ListTasks(ctx context.Context, filter ports.ListTasksFilter) ([]*domain.HousekeepingTask, error) {
	return s.listFn(ctx, filter)
}

func (s *stubTaskService) UpdateTask(ctx context.Context, id string, input ports.UpdateTaskInput) (*domain.HousekeepingTask, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubTaskService) DeleteTask(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

// stubRecorder captures audit entries synchronously.
type stubRecorder struct {
	entries []domain.AuditEntry
}

func (r *stubRecorder) Record(entry domain.AuditEntry) {
	r.entries = append(r.entries, entry)
}

func asAdmin(c echo.Context) {
	c.Set("user_id", "admin-1")
	c.Set("email", "admin@example.com")
	c.Set("role", "ADMIN")
}

func TestHousekeepingHandler_Create_StartsDirtyAndAudits(t *testing.T) {
	svc := &stubTaskService{
		createFn: func(_ context.Context, input ports.CreateTaskInput) (*domain.HousekeepingTask, error) {
			return &domain.HousekeepingTask{
				ID:        "task-1",
				RoomID:    input.RoomID,
				Status:    domain.StatusDirty,
				CreatedAt: time.Now().UTC(),
			}, nil
		},
	}
	recorder := &stubRecorder{}
	h := NewHousekeepingHandler(svc, recorder)

	c, rec := newJSONContext(t, http.MethodPost, "/v1/housekeeping", `{"room_id":"room-1"}`)
	asAdmin(c)

	if err := h.Create(c); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp taskResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != string(domain.StatusDirty) {
		t.Fatalf("expected DIRTY, got %s", resp.Status)
	}

	if len(recorder.entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(recorder.entries))
	}
	entry := recorder.entries[0]
	if entry.Action != "create" || entry.Entity != "housekeeping_task" || entry.EntityID != "task-1" {
		t.Fatalf("unexpected audit entry: %+v", entry)
	}
	if entry.ActorID != "admin-1" || entry.ActorEmail != "admin@example.com" {
		t.Fatalf("audit actor wrong: %+v", entry)
	}
}

func TestHousekeepingHandler_Create_MissingRoom(t *testing.T) {
	h := NewHousekeepingHandler(&stubTaskService{}, &stubRecorder{})

	c, _ := newJSONContext(t, http.MethodPost, "/v1/housekeeping", `{"notes":"no room"}`)
	asAdmin(c)

	err := h.Create(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestHousekeepingHandler_Create_NoClaims(t *testing.T) {
	recorder := &stubRecorder{}
	h := NewHousekeepingHandler(&stubTaskService{}, recorder)

	c, _ := newJSONContext(t, http.MethodPost, "/v1/housekeeping", `{"room_id":"room-1"}`)

	err := h.Create(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
	if len(recorder.entries) != 0 {
		t.Fatalf("no audit entry expected, got %d", len(recorder.entries))
	}
}

func TestHousekeepingHandler_Update_PassesStatusPointer(t *testing.T) {
	var gotInput ports.UpdateTaskInput
	svc := &stubTaskService{
		updateFn: func(_ context.Context, id string, input ports.UpdateTaskInput) (*domain.HousekeepingTask, error) {
			gotInput = input
			return &domain.HousekeepingTask{ID: id, RoomID: "room-1", Status: domain.StatusCleaning}, nil
		},
	}
	recorder := &stubRecorder{}
	h := NewHousekeepingHandler(svc, recorder)

	c, rec := newJSONContext(t, http.MethodPut, "/v1/housekeeping/task-1", `{"status":"CLEANING"}`)
	c.SetParamNames("id")
	c.SetParamValues("task-1")
	asAdmin(c)

	if err := h.Update(c); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotInput.Status == nil || *gotInput.Status != domain.StatusCleaning {
		t.Fatalf("status pointer not forwarded: %+v", gotInput)
	}
	if gotInput.RoomID != nil || gotInput.Notes != nil {
		t.Fatalf("absent fields should stay nil: %+v", gotInput)
	}
	if len(recorder.entries) != 1 || recorder.entries[0].Action != "update" {
		t.Fatalf("expected update audit entry, got %+v", recorder.entries)
	}
}

func TestHousekeepingHandler_Update_UnknownStatusRejected(t *testing.T) {
	h := NewHousekeepingHandler(&stubTaskService{}, &stubRecorder{})

	c, _ := newJSONContext(t, http.MethodPut, "/v1/housekeeping/task-1", `{"status":"SPARKLING"}`)
	c.SetParamNames("id")
	c.SetParamValues("task-1")
	asAdmin(c)

	err := h.Update(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestHousekeepingHandler_Update_InvalidTransition(t *testing.T) {
	svc := &stubTaskService{
		updateFn: func(_ context.Context, _ string, _ ports.UpdateTaskInput) (*domain.HousekeepingTask, error) {
			return nil, domain.ErrInvalidTransition
		},
	}
	recorder := &stubRecorder{}
	h := NewHousekeepingHandler(svc, recorder)

	c, _ := newJSONContext(t, http.MethodPut, "/v1/housekeeping/task-1", `{"status":"INSPECTED"}`)
	c.SetParamNames("id")
	c.SetParamValues("task-1")
	asAdmin(c)

	if err := h.Update(c); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if len(recorder.entries) != 0 {
		t.Fatalf("failed update must not be audited, got %d entries", len(recorder.entries))
	}
}

func TestHousekeepingHandler_Delete_Audits(t *testing.T) {
	svc := &stubTaskService{
		deleteFn: func(_ context.Context, id string) error {
			if id != "task-9" {
				t.Fatalf("unexpected id %s", id)
			}
			return nil
		},
	}
	recorder := &stubRecorder{}
	h := NewHousekeepingHandler(svc, recorder)

	c, rec := newJSONContext(t, http.MethodDelete, "/v1/housekeeping/task-9", "")
	c.SetParamNames("id")
	c.SetParamValues("task-9")
	asAdmin(c)

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(recorder.entries) != 1 || recorder.entries[0].Action != "delete" || recorder.entries[0].EntityID != "task-9" {
		t.Fatalf("expected delete audit entry, got %+v", recorder.entries)
	}
}

func TestHousekeepingHandler_List_ForwardsFilters(t *testing.T) {
	var gotFilter ports.ListTasksFilter
	svc := &stubTaskService{
		listFn: func(_ context.Context, filter ports.ListTasksFilter) ([]*domain.HousekeepingTask, error) {
			gotFilter = filter
			return []*domain.HousekeepingTask{}, nil
		},
	}
	h := NewHousekeepingHandler(svc, &stubRecorder{})

	c, rec := newJSONContext(t, http.MethodGet, "/v1/housekeeping?room_id=room-1&status=DIRTY", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotFilter.RoomID != "room-1" || gotFilter.Status != "DIRTY" {
		t.Fatalf("filters not forwarded: %+v", gotFilter)
	}
}
