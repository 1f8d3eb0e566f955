package ports

import (
	"context"

	"github.com/lumenhotels/backoffice/internal/core/domain"
)

// AuditRepository persists and queries the audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
	// List returns a page of entries, newest first, and the total count.
	List(ctx context.Context, page, limit int) ([]*domain.AuditEntry, int64, error)
}

// AuditRecorder is the write side exposed to services. Implementations are
// asynchronous; Record never blocks the request path on storage latency.
type AuditRecorder interface {
	Record(entry domain.AuditEntry)
}

// AuditService defines the read side for the admin audit-log screen.
type AuditService interface {
	ListEntries(ctx context.Context, page, limit int) ([]*domain.AuditEntry, int64, error)
}
