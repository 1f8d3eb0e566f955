package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/lumenhotels/backoffice/internal/core/domain"
	"github.com/lumenhotels/backoffice/internal/core/ports"
)

// HousekeepingHandler handles HTTP requests for the cleaning workflow.
type HousekeepingHandler struct {
	service ports.HousekeepingService
	audit   ports.AuditRecorder
}

func NewHousekeepingHandler(service ports.HousekeepingService, audit ports.AuditRecorder) *HousekeepingHandler {
	return &HousekeepingHandler{service: service, audit: audit}
}

// List handles GET /v1/housekeeping.
//
// @Summary      List housekeeping tasks
// @Tags         housekeeping
// @Produce      json
// @Security     BearerAuth
// @Param        room_id      query     string  false  "Filter by room"
// @Param        assigned_to  query     string  false  "Filter by assigned staff member"
// @Param        status       query     string  false  "Filter by status"
// @Success      200          {array}   taskResponse
// @Failure      400          {object}  errorResponse
// @Router       /v1/housekeeping [get]
func (h *HousekeepingHandler) List(c echo.Context) error {
	tasks, err := h.service.ListTasks(c.Request().Context(), ports.ListTasksFilter{
		RoomID:            c.QueryParam("room_id"),
		AssignedToStaffID: c.QueryParam("assigned_to"),
		Status:            c.QueryParam("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskListResponse(tasks))
}

// Create handles POST /v1/housekeeping. The new task always starts DIRTY.
//
// @Summary      Create a housekeeping task
// @Tags         housekeeping
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  taskResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/housekeeping [post]
func (h *HousekeepingHandler) Create(c echo.Context) error {
	who, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.service.CreateTask(c.Request().Context(), ports.CreateTaskInput{
		RoomID:            req.RoomID,
		AssignedToStaffID: req.AssignedToStaffID,
		Notes:             req.Notes,
	})
	if err != nil {
		return err
	}

	h.recordAudit(who, "create", task.ID, map[string]string{"room_id": task.RoomID})
	return c.JSON(http.StatusCreated, toTaskResponse(task))
}

// Get handles GET /v1/housekeeping/:id.
func (h *HousekeepingHandler) Get(c echo.Context) error {
	task, err := h.service.GetTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Update handles PUT /v1/housekeeping/:id. A requested status change runs
// through the lifecycle engine; an illegal transition yields 422 and nothing
// is persisted.
//
// @Summary      Update a housekeeping task
// @Tags         housekeeping
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Task id"
// @Param        body  body      updateTaskRequest  true  "Fields to update"
// @Success      200   {object}  taskResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/housekeeping/{id} [put]
func (h *HousekeepingHandler) Update(c echo.Context) error {
	who, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateTaskInput{
		RoomID:            req.RoomID,
		AssignedToStaffID: req.AssignedToStaffID,
		Notes:             req.Notes,
	}
	if req.Status != nil {
		status := domain.HousekeepingStatus(*req.Status)
		input.Status = &status
	}

	task, err := h.service.UpdateTask(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}

	h.recordAudit(who, "update", task.ID, map[string]string{"status": string(task.Status)})
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Delete handles DELETE /v1/housekeeping/:id. Deletion is unconditional.
func (h *HousekeepingHandler) Delete(c echo.Context) error {
	who, err := ctxActor(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.DeleteTask(c.Request().Context(), id); err != nil {
		return err
	}

	h.recordAudit(who, "delete", id, nil)
	return c.JSON(http.StatusOK, messageResponse{Message: "housekeeping task deleted"})
}

func (h *HousekeepingHandler) recordAudit(who actor, action, taskID string, details map[string]string) {
	h.audit.Record(domain.AuditEntry{
		ID:         uuid.NewString(),
		ActorID:    who.ID,
		ActorEmail: who.Email,
		Action:     action,
		Entity:     "housekeeping_task",
		EntityID:   taskID,
		Timestamp:  time.Now().UTC(),
		Details:    details,
	})
}
