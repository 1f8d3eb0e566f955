package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lumenhotels/backoffice/internal/core/domain"
	"github.com/lumenhotels/backoffice/internal/core/ports"
)

// AuditHandler exposes the read side of the audit trail.
type AuditHandler struct {
	service ports.AuditService
}

func NewAuditHandler(service ports.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

type listAuditResponse struct {
	Entries    []*domain.AuditEntry `json:"entries"`
	Pagination paginationResponse   `json:"pagination"`
}

// List handles GET /v1/audit-log, newest entries first.
//
// @Summary      List audit log entries
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (1-based)"
// @Param        limit  query     int  false  "Rows per page"
// @Success      200    {object}  listAuditResponse
// @Router       /v1/audit-log [get]
func (h *AuditHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	} else if limit > 100 {
		limit = 100
	}

	entries, total, err := h.service.ListEntries(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return c.JSON(http.StatusOK, listAuditResponse{
		Entries: entries,
		Pagination: paginationResponse{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
		},
	})
}
