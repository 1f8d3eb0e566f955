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

// UserHandler handles the admin-only staff account endpoints.
type UserHandler struct {
	service ports.UserService
	audit   ports.AuditRecorder
}

func NewUserHandler(service ports.UserService, audit ports.AuditRecorder) *UserHandler {
	return &UserHandler{service: service, audit: audit}
}

type createUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"required,oneof=GUEST HOUSEKEEPING ADMIN"`
}

// updateUserRequest is a partial update; absent fields are left unchanged.
type updateUserRequest struct {
	Name   *string `json:"name"`
	Role   *string `json:"role" validate:"omitempty,oneof=GUEST HOUSEKEEPING ADMIN"`
	Active *bool   `json:"active"`
}

type listUsersResponse struct {
	Users      []*domain.User     `json:"users"`
	Pagination paginationResponse `json:"pagination"`
}

// List handles GET /v1/users with pagination and search.
//
// @Summary      List staff accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page    query     int     false  "Page number (1-based)"
// @Param        limit   query     int     false  "Rows per page"
// @Param        search  query     string  false  "Partial match on name or email"
// @Success      200     {object}  listUsersResponse
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.ListUsers(c.Request().Context(), ports.ListUsersFilter{
		Search: c.QueryParam("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listUsersResponse{
		Users: result.Users,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Create handles POST /v1/users.
//
// @Summary      Create a staff account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "Account details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	who, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	h.recordAudit(who, "create", user.ID, map[string]string{"email": user.Email, "role": user.Role})
	return c.JSON(http.StatusCreated, user)
}

// Get handles GET /v1/users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles PUT /v1/users/:id.
func (h *UserHandler) Update(c echo.Context) error {
	who, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.UpdateUser(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Name:   req.Name,
		Role:   req.Role,
		Active: req.Active,
	})
	if err != nil {
		return err
	}

	h.recordAudit(who, "update", user.ID, map[string]string{"email": user.Email})
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /v1/users/:id.
func (h *UserHandler) Delete(c echo.Context) error {
	who, err := ctxActor(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.DeleteUser(c.Request().Context(), id); err != nil {
		return err
	}

	h.recordAudit(who, "delete", id, nil)
	return c.JSON(http.StatusOK, messageResponse{Message: "user deleted"})
}

func (h *UserHandler) recordAudit(who actor, action, userID string, details map[string]string) {
	h.audit.Record(domain.AuditEntry{
		ID:         uuid.NewString(),
		ActorID:    who.ID,
		ActorEmail: who.Email,
		Action:     action,
		Entity:     "user",
		EntityID:   userID,
		Timestamp:  time.Now().UTC(),
		Details:    details,
	})
}
