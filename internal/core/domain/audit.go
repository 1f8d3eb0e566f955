package domain

import "time"

// AuditEntry records a single administrative action for the audit trail.
type AuditEntry struct {
	ID         string            `json:"id"`
	ActorID    string            `json:"actor_id"`
	ActorEmail string            `json:"actor_email"`
	Action     string            `json:"action"`
	Entity     string            `json:"entity"`
	EntityID   string            `json:"entity_id"`
	Timestamp  time.Time         `json:"timestamp"`
	Details    map[string]string `json:"details,omitempty"`
}
