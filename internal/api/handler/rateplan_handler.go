package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/lumenhotels/backoffice/internal/core/domain"
	"github.com/lumenhotels/backoffice/internal/core/ports"
)

// RatePlanHandler handles HTTP requests for pricing schemes.
type RatePlanHandler struct {
	service ports.RatePlanService
	audit   ports.AuditRecorder
}

func NewRatePlanHandler(service ports.RatePlanService, audit ports.AuditRecorder) *RatePlanHandler {
	return &RatePlanHandler{service: service, audit: audit}
}

type seasonalRateRequest struct {
	Name      string  `json:"name"       validate:"required"`
	StartDate string  `json:"start_date" validate:"required"`
	EndDate   string  `json:"end_date"   validate:"required"`
	Rate      float64 `json:"rate"       validate:"required,gt=0"`
}

type extraBedPolicyRequest struct {
	Allowed bool    `json:"allowed"`
	Charge  float64 `json:"charge"`
}

type ratePlanRequest struct {
	Name           string                `json:"name"         validate:"required"`
	RoomTypeID     string                `json:"room_type_id" validate:"required"`
	Refundable     bool                  `json:"refundable"`
	SeasonalRates  []seasonalRateRequest `json:"seasonal_rates" validate:"omitempty,dive"`
	ExtraBedPolicy extraBedPolicyRequest `json:"extra_bed_policy"`
}

// List handles GET /v1/rate-plans, ordered by name.
func (h *RatePlanHandler) List(c echo.Context) error {
	plans, err := h.service.ListRatePlans(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plans)
}

// Create handles POST /v1/rate-plans.
//
// @Summary      Create a rate plan
// @Tags         rate-plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ratePlanRequest  true  "Rate plan details"
// @Success      201   {object}  domain.RatePlan
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/rate-plans [post]
func (h *RatePlanHandler) Create(c echo.Context) error {
	who, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req ratePlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	plan, err := h.service.CreateRatePlan(c.Request().Context(), toRatePlanInput(req))
	if err != nil {
		return err
	}

	h.recordAudit(who, "create", plan.ID, map[string]string{"name": plan.Name})
	return c.JSON(http.StatusCreated, plan)
}

// Get handles GET /v1/rate-plans/:id.
func (h *RatePlanHandler) Get(c echo.Context) error {
	plan, err := h.service.GetRatePlan(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plan)
}

// Update handles PUT /v1/rate-plans/:id.
func (h *RatePlanHandler) Update(c echo.Context) error {
	who, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req ratePlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	plan, err := h.service.UpdateRatePlan(c.Request().Context(), c.Param("id"), toRatePlanInput(req))
	if err != nil {
		return err
	}

	h.recordAudit(who, "update", plan.ID, map[string]string{"name": plan.Name})
	return c.JSON(http.StatusOK, plan)
}

// Delete handles DELETE /v1/rate-plans/:id.
func (h *RatePlanHandler) Delete(c echo.Context) error {
	who, err := ctxActor(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.DeleteRatePlan(c.Request().Context(), id); err != nil {
		return err
	}

	h.recordAudit(who, "delete", id, nil)
	return c.JSON(http.StatusOK, messageResponse{Message: "rate plan deleted"})
}

func toRatePlanInput(req ratePlanRequest) ports.RatePlanInput {
	rates := make([]ports.SeasonalRateInput, 0, len(req.SeasonalRates))
	for _, r := range req.SeasonalRates {
		rates = append(rates, ports.SeasonalRateInput{
			Name:      r.Name,
			StartDate: r.StartDate,
			EndDate:   r.EndDate,
			Rate:      r.Rate,
		})
	}
	return ports.RatePlanInput{
		Name:            req.Name,
		RoomTypeID:      req.RoomTypeID,
		Refundable:      req.Refundable,
		SeasonalRates:   rates,
		ExtraBedAllowed: req.ExtraBedPolicy.Allowed,
		ExtraBedCharge:  req.ExtraBedPolicy.Charge,
	}
}

func (h *RatePlanHandler) recordAudit(who actor, action, planID string, details map[string]string) {
	h.audit.Record(domain.AuditEntry{
		ID:         uuid.NewString(),
		ActorID:    who.ID,
		ActorEmail: who.Email,
		Action:     action,
		Entity:     "rate_plan",
		EntityID:   planID,
		Timestamp:  time.Now().UTC(),
		Details:    details,
	})
}
