package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lumenhotels/backoffice/internal/core/domain"
	"github.com/lumenhotels/backoffice/internal/core/ports"
)

type stubRatePlanRepo struct {
	plans map[string]*domain.RatePlan
}

func newStubRatePlanRepo() *stubRatePlanRepo {
	return &stubRatePlanRepo{plans: make(map[string]*domain.RatePlan)}
}

func clonePlan(p *domain.RatePlan) *domain.RatePlan {
	if p == nil {
		return nil
	}
	clone := *p
	clone.SeasonalRates = append([]domain.SeasonalRate(nil), p.SeasonalRates...)
	return &clone
}

func (r *stubRatePlanRepo) Create(_ context.Context, plan *domain.RatePlan) error {
	r.plans[plan.ID] = clonePlan(plan)
	return nil
}

func (r *stubRatePlanRepo) FindByID(_ context.Context, id string) (*domain.RatePlan, error) {
	if p, ok := r.plans[id]; ok {
		return clonePlan(p), nil
	}
	return nil, domain.ErrRatePlanNotFound
}

func (r *stubRatePlanRepo) FindByNameAndType(_ context.Context, name, roomTypeID string) (*domain.RatePlan, error) {
	for _, p := range r.plans {
		if p.Name == name && p.RoomTypeID == roomTypeID {
			return clonePlan(p), nil
		}
	}
	return nil, domain.ErrRatePlanNotFound
}

func (r *stubRatePlanRepo) List(_ context.Context) ([]*domain.RatePlan, error) {
	var out []*domain.RatePlan
	for _, p := range r.plans {
		out = append(out, clonePlan(p))
	}
	return out, nil
}

func (r *stubRatePlanRepo) Update(_ context.Context, plan *domain.RatePlan) error {
	if _, ok := r.plans[plan.ID]; !ok {
		return domain.ErrRatePlanNotFound
	}
	r.plans[plan.ID] = clonePlan(plan)
	return nil
}

func (r *stubRatePlanRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.plans[id]; !ok {
		return domain.ErrRatePlanNotFound
	}
	delete(r.plans, id)
	return nil
}

func TestRatePlanService_CreateRatePlan_Success(t *testing.T) {
	svc := NewRatePlanService(newStubRatePlanRepo(), zerolog.Nop())

	plan, err := svc.CreateRatePlan(context.Background(), ports.RatePlanInput{
		Name:       "Summer Special",
		RoomTypeID: "suite",
		Refundable: true,
		SeasonalRates: []ports.SeasonalRateInput{
			{Name: "High season", StartDate: "2026-06-01", EndDate: "2026-08-31", Rate: 250},
		},
		ExtraBedAllowed: true,
		ExtraBedCharge:  35,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(plan.SeasonalRates) != 1 {
		t.Fatalf("expected 1 seasonal rate, got %d", len(plan.SeasonalRates))
	}
	if plan.SeasonalRates[0].StartDate.Month() != 6 {
		t.Fatalf("start date parsed wrong: %v", plan.SeasonalRates[0].StartDate)
	}
	if !plan.ExtraBedPolicy.Allowed || plan.ExtraBedPolicy.Charge != 35 {
		t.Fatalf("extra bed policy wrong: %+v", plan.ExtraBedPolicy)
	}
}

func TestRatePlanService_CreateRatePlan_BadDates(t *testing.T) {
	svc := NewRatePlanService(newStubRatePlanRepo(), zerolog.Nop())

	base := ports.RatePlanInput{Name: "Plan", RoomTypeID: "suite"}

	input := base
	input.SeasonalRates = []ports.SeasonalRateInput{{Name: "x", StartDate: "June 1st", EndDate: "2026-08-31", Rate: 100}}
	if _, err := svc.CreateRatePlan(context.Background(), input); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for unparsable date, got %v", err)
	}

	input = base
	input.SeasonalRates = []ports.SeasonalRateInput{{Name: "x", StartDate: "2026-08-31", EndDate: "2026-06-01", Rate: 100}}
	if _, err := svc.CreateRatePlan(context.Background(), input); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for inverted range, got %v", err)
	}
}

func TestRatePlanService_CreateRatePlan_DuplicateNamePerType(t *testing.T) {
	svc := NewRatePlanService(newStubRatePlanRepo(), zerolog.Nop())

	input := ports.RatePlanInput{Name: "Standard", RoomTypeID: "suite"}
	if _, err := svc.CreateRatePlan(context.Background(), input); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.CreateRatePlan(context.Background(), input); !errors.Is(err, domain.ErrRatePlanExists) {
		t.Fatalf("expected ErrRatePlanExists, got %v", err)
	}

	// The same name under a different room type is fine.
	other := ports.RatePlanInput{Name: "Standard", RoomTypeID: "twin"}
	if _, err := svc.CreateRatePlan(context.Background(), other); err != nil {
		t.Fatalf("same name, other type should succeed: %v", err)
	}
}

func TestRatePlanService_UpdateRatePlan_ReplacesRates(t *testing.T) {
	repo := newStubRatePlanRepo()
	svc := NewRatePlanService(repo, zerolog.Nop())

	plan, _ := svc.CreateRatePlan(context.Background(), ports.RatePlanInput{
		Name:       "Winter",
		RoomTypeID: "suite",
		SeasonalRates: []ports.SeasonalRateInput{
			{Name: "Holidays", StartDate: "2026-12-20", EndDate: "2027-01-05", Rate: 300},
		},
	})

	updated, err := svc.UpdateRatePlan(context.Background(), plan.ID, ports.RatePlanInput{
		Name:       "Winter",
		RoomTypeID: "suite",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(updated.SeasonalRates) != 0 {
		t.Fatalf("expected seasonal rates replaced with empty set, got %d", len(updated.SeasonalRates))
	}
}
