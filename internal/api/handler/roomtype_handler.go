package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/lumenhotels/backoffice/internal/core/domain"
	"github.com/lumenhotels/backoffice/internal/core/ports"
)

// RoomTypeHandler handles HTTP requests for the room type catalog.
type RoomTypeHandler struct {
	service ports.RoomTypeService
	audit   ports.AuditRecorder
}

func NewRoomTypeHandler(service ports.RoomTypeService, audit ports.AuditRecorder) *RoomTypeHandler {
	return &RoomTypeHandler{service: service, audit: audit}
}

type roomTypeRequest struct {
	Name         string   `json:"name"          validate:"required"`
	Description  string   `json:"description"`
	BaseRate     float64  `json:"base_rate"     validate:"required,gt=0"`
	MaxOccupancy int      `json:"max_occupancy" validate:"required,gt=0"`
	Amenities    []string `json:"amenities"`
}

// List handles GET /v1/room-types, ordered by name.
func (h *RoomTypeHandler) List(c echo.Context) error {
	roomTypes, err := h.service.ListRoomTypes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roomTypes)
}

// Create handles POST /v1/room-types.
//
// @Summary      Create a room type
// @Tags         room-types
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      roomTypeRequest  true  "Room type details"
// @Success      201   {object}  domain.RoomType
// @Failure      400   {object}  errorResponse
// @Router       /v1/room-types [post]
func (h *RoomTypeHandler) Create(c echo.Context) error {
	who, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req roomTypeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rt, err := h.service.CreateRoomType(c.Request().Context(), toRoomTypeInput(req))
	if err != nil {
		return err
	}

	h.recordAudit(who, "create", rt.ID, map[string]string{"name": rt.Name})
	return c.JSON(http.StatusCreated, rt)
}

// Get handles GET /v1/room-types/:id.
func (h *RoomTypeHandler) Get(c echo.Context) error {
	rt, err := h.service.GetRoomType(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rt)
}

// Update handles PUT /v1/room-types/:id.
func (h *RoomTypeHandler) Update(c echo.Context) error {
	who, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req roomTypeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rt, err := h.service.UpdateRoomType(c.Request().Context(), c.Param("id"), toRoomTypeInput(req))
	if err != nil {
		return err
	}

	h.recordAudit(who, "update", rt.ID, map[string]string{"name": rt.Name})
	return c.JSON(http.StatusOK, rt)
}

// Delete handles DELETE /v1/room-types/:id.
func (h *RoomTypeHandler) Delete(c echo.Context) error {
	who, err := ctxActor(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.DeleteRoomType(c.Request().Context(), id); err != nil {
		return err
	}

	h.recordAudit(who, "delete", id, nil)
	return c.JSON(http.StatusOK, messageResponse{Message: "room type deleted"})
}

func toRoomTypeInput(req roomTypeRequest) ports.RoomTypeInput {
	return ports.RoomTypeInput{
		Name:         req.Name,
		Description:  req.Description,
		BaseRate:     req.BaseRate,
		MaxOccupancy: req.MaxOccupancy,
		Amenities:    req.Amenities,
	}
}

func (h *RoomTypeHandler) recordAudit(who actor, action, roomTypeID string, details map[string]string) {
	h.audit.Record(domain.AuditEntry{
		ID:         uuid.NewString(),
		ActorID:    who.ID,
		ActorEmail: who.Email,
		Action:     action,
		Entity:     "room_type",
		EntityID:   roomTypeID,
		Timestamp:  time.Now().UTC(),
		Details:    details,
	})
}
