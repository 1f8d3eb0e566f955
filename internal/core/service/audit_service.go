package service

import (
	"context"
	"fmt"

	"github.com/lumenhotels/backoffice/internal/core/domain"
	"github.com/lumenhotels/backoffice/internal/core/ports"
)

// AuditReadService serves the admin audit-log screen.
type AuditReadService struct {
	repo ports.AuditRepository
}

func NewAuditReadService(repo ports.AuditRepository) *AuditReadService {
	return &AuditReadService{repo: repo}
}

func (s *AuditReadService) ListEntries(ctx context.Context, page, limit int) ([]*domain.AuditEntry, int64, error) {
	page, limit = clampPage(page, limit)
	entries, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list audit entries: %w", err)
	}
	return entries, total, nil
}
