package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/lumenhotels/backoffice/internal/core/domain"
	"github.com/lumenhotels/backoffice/internal/core/ports"
)

// RoomHandler handles HTTP requests for room inventory and availability.
type RoomHandler struct {
	service ports.RoomService
	audit   ports.AuditRecorder
}

func NewRoomHandler(service ports.RoomService, audit ports.AuditRecorder) *RoomHandler {
	return &RoomHandler{service: service, audit: audit}
}

type roomRequest struct {
	RoomNumber   string   `json:"room_number"   validate:"required"`
	TypeID       string   `json:"type_id"       validate:"required"`
	Floor        int      `json:"floor"         validate:"required"`
	Features     []string `json:"features"`
	Status       string   `json:"status"        validate:"omitempty,oneof=VACANT OCCUPIED MAINTENANCE"`
	MaxOccupancy int      `json:"max_occupancy" validate:"required,gt=0"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listRoomsResponse struct {
	Rooms      []*domain.Room     `json:"rooms"`
	Pagination paginationResponse `json:"pagination"`
}

// List handles GET /v1/rooms with pagination, search, and filters.
//
// @Summary      List rooms
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        page     query     int     false  "Page number (1-based)"
// @Param        limit    query     int     false  "Rows per page"
// @Param        search   query     string  false  "Partial match on room number"
// @Param        status   query     string  false  "Filter by room status"
// @Param        type_id  query     string  false  "Filter by room type"
// @Success      200      {object}  listRoomsResponse
// @Router       /v1/rooms [get]
func (h *RoomHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.ListRooms(c.Request().Context(), ports.ListRoomsFilter{
		Search: c.QueryParam("search"),
		Status: c.QueryParam("status"),
		TypeID: c.QueryParam("type_id"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listRoomsResponse{
		Rooms: result.Rooms,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Create handles POST /v1/rooms.
//
// @Summary      Create a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      roomRequest  true  "Room details"
// @Success      201   {object}  domain.Room
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/rooms [post]
func (h *RoomHandler) Create(c echo.Context) error {
	who, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req roomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.service.CreateRoom(c.Request().Context(), toRoomInput(req))
	if err != nil {
		return err
	}

	h.recordAudit(who, "create", room.ID, map[string]string{"room_number": room.RoomNumber})
	return c.JSON(http.StatusCreated, room)
}

// Get handles GET /v1/rooms/:id.
func (h *RoomHandler) Get(c echo.Context) error {
	room, err := h.service.GetRoom(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// Update handles PUT /v1/rooms/:id.
func (h *RoomHandler) Update(c echo.Context) error {
	who, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req roomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.service.UpdateRoom(c.Request().Context(), c.Param("id"), toRoomInput(req))
	if err != nil {
		return err
	}

	h.recordAudit(who, "update", room.ID, map[string]string{"room_number": room.RoomNumber})
	return c.JSON(http.StatusOK, room)
}

// Delete handles DELETE /v1/rooms/:id.
func (h *RoomHandler) Delete(c echo.Context) error {
	who, err := ctxActor(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.DeleteRoom(c.Request().Context(), id); err != nil {
		return err
	}

	h.recordAudit(who, "delete", id, nil)
	return c.JSON(http.StatusOK, messageResponse{Message: "room deleted"})
}

// Availability handles GET /v1/availability.
//
// @Summary      List rooms available for a date range
// @Tags         availability
// @Produce      json
// @Security     BearerAuth
// @Param        start_date    query     string  true   "Start date (YYYY-MM-DD)"
// @Param        end_date      query     string  true   "End date (YYYY-MM-DD)"
// @Param        room_type_id  query     string  false  "Restrict to one room type"
// @Success      200           {array}   domain.Room
// @Failure      400           {object}  errorResponse
// @Router       /v1/availability [get]
func (h *RoomHandler) Availability(c echo.Context) error {
	start, err := parseDateParam(c.QueryParam("start_date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "start_date must be a valid date (YYYY-MM-DD)")
	}
	end, err := parseDateParam(c.QueryParam("end_date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "end_date must be a valid date (YYYY-MM-DD)")
	}

	rooms, err := h.service.Availability(c.Request().Context(), ports.AvailabilityInput{
		StartDate:  start,
		EndDate:    end,
		RoomTypeID: c.QueryParam("room_type_id"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rooms)
}

func parseDateParam(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", raw)
}

func toRoomInput(req roomRequest) ports.RoomInput {
	return ports.RoomInput{
		RoomNumber:   req.RoomNumber,
		TypeID:       req.TypeID,
		Floor:        req.Floor,
		Features:     req.Features,
		Status:       req.Status,
		MaxOccupancy: req.MaxOccupancy,
	}
}

func (h *RoomHandler) recordAudit(who actor, action, roomID string, details map[string]string) {
	h.audit.Record(domain.AuditEntry{
		ID:         uuid.NewString(),
		ActorID:    who.ID,
		ActorEmail: who.Email,
		Action:     action,
		Entity:     "room",
		EntityID:   roomID,
		Timestamp:  time.Now().UTC(),
		Details:    details,
	})
}
