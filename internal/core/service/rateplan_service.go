package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lumenhotels/backoffice/internal/core/domain"
	"github.com/lumenhotels/backoffice/internal/core/ports"
)

const seasonalDateLayout = "2006-01-02"

// RatePlanService implements pricing scheme use cases.
type RatePlanService struct {
	repo ports.RatePlanRepository
	log  zerolog.Logger
}

func NewRatePlanService(repo ports.RatePlanRepository, log zerolog.Logger) *RatePlanService {
	return &RatePlanService{repo: repo, log: log}
}

func buildSeasonalRates(inputs []ports.SeasonalRateInput) ([]domain.SeasonalRate, error) {
	rates := make([]domain.SeasonalRate, 0, len(inputs))
	for _, in := range inputs {
		start, err := time.Parse(seasonalDateLayout, in.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: bad start_date %q", domain.ErrValidation, in.StartDate)
		}
		end, err := time.Parse(seasonalDateLayout, in.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: bad end_date %q", domain.ErrValidation, in.EndDate)
		}
		if end.Before(start) {
			return nil, fmt.Errorf("%w: seasonal rate %q ends before it starts", domain.ErrValidation, in.Name)
		}
		rates = append(rates, domain.SeasonalRate{
			Name:      in.Name,
			StartDate: start,
			EndDate:   end,
			Rate:      in.Rate,
		})
	}
	return rates, nil
}

func (s *RatePlanService) CreateRatePlan(ctx context.Context, input ports.RatePlanInput) (*domain.RatePlan, error) {
	if input.Name == "" || input.RoomTypeID == "" {
		return nil, fmt.Errorf("%w: name and room_type_id are required", domain.ErrValidation)
	}

	if _, err := s.repo.FindByNameAndType(ctx, input.Name, input.RoomTypeID); err == nil {
		return nil, domain.ErrRatePlanExists
	} else if !errors.Is(err, domain.ErrRatePlanNotFound) {
		return nil, err
	}

	rates, err := buildSeasonalRates(input.SeasonalRates)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	plan := &domain.RatePlan{
		ID:            uuid.NewString(),
		Name:          input.Name,
		RoomTypeID:    input.RoomTypeID,
		Refundable:    input.Refundable,
		SeasonalRates: rates,
		ExtraBedPolicy: domain.ExtraBedPolicy{
			Allowed: input.ExtraBedAllowed,
			Charge:  input.ExtraBedCharge,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("create rate plan: %w", err)
	}

	s.log.Info().Str("rate_plan_id", plan.ID).Str("name", plan.Name).Msg("rate plan created")
	return plan, nil
}

func (s *RatePlanService) GetRatePlan(ctx context.Context, id string) (*domain.RatePlan, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RatePlanService) ListRatePlans(ctx context.Context) ([]*domain.RatePlan, error) {
	return s.repo.List(ctx)
}

func (s *RatePlanService) UpdateRatePlan(ctx context.Context, id string, input ports.RatePlanInput) (*domain.RatePlan, error) {
	if input.Name == "" || input.RoomTypeID == "" {
		return nil, fmt.Errorf("%w: name and room_type_id are required", domain.ErrValidation)
	}

	rates, err := buildSeasonalRates(input.SeasonalRates)
	if err != nil {
		return nil, err
	}

	plan, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	plan.Name = input.Name
	plan.RoomTypeID = input.RoomTypeID
	plan.Refundable = input.Refundable
	plan.SeasonalRates = rates
	plan.ExtraBedPolicy = domain.ExtraBedPolicy{
		Allowed: input.ExtraBedAllowed,
		Charge:  input.ExtraBedCharge,
	}
	plan.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("update rate plan: %w", err)
	}
	return plan, nil
}

func (s *RatePlanService) DeleteRatePlan(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
