package ports

import (
	"context"

	"github.com/lumenhotels/backoffice/internal/core/domain"
)

// SeasonalRateInput is one dated rate override in a rate plan payload.
type SeasonalRateInput struct {
	Name      string
	StartDate string // ISO date
	EndDate   string
	Rate      float64
}

// RatePlanInput carries the mutable fields of a rate plan.
type RatePlanInput struct {
	Name            string
	RoomTypeID      string
	Refundable      bool
	SeasonalRates   []SeasonalRateInput
	ExtraBedAllowed bool
	ExtraBedCharge  float64
}

// RatePlanRepository defines persistence operations for rate plans.
type RatePlanRepository interface {
	Create(ctx context.Context, plan *domain.RatePlan) error
	FindByID(ctx context.Context, id string) (*domain.RatePlan, error)
	// FindByNameAndType is used to enforce (name, room_type_id) uniqueness.
	FindByNameAndType(ctx context.Context, name, roomTypeID string) (*domain.RatePlan, error)
	// List returns all rate plans ordered by name.
	List(ctx context.Context) ([]*domain.RatePlan, error)
	Update(ctx context.Context, plan *domain.RatePlan) error
	Delete(ctx context.Context, id string) error
}

// RatePlanService defines use-case operations for pricing schemes.
type RatePlanService interface {
	CreateRatePlan(ctx context.Context, input RatePlanInput) (*domain.RatePlan, error)
	GetRatePlan(ctx context.Context, id string) (*domain.RatePlan, error)
	ListRatePlans(ctx context.Context) ([]*domain.RatePlan, error)
	UpdateRatePlan(ctx context.Context, id string, input RatePlanInput) (*domain.RatePlan, error)
	DeleteRatePlan(ctx context.Context, id string) error
}
