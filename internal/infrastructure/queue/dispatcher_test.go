package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lumenhotels/backoffice/internal/core/domain"
)

type recordingAuditRepo struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func (r *recordingAuditRepo) Insert(_ context.Context, entry *domain.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *recordingAuditRepo) List(_ context.Context, _, _ int) ([]*domain.AuditEntry, int64, error) {
	return nil, 0, nil
}

func (r *recordingAuditRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestAuditDispatcher_PersistsEntries(t *testing.T) {
	repo := &recordingAuditRepo{}
	d := NewAuditDispatcher(2, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 10; i++ {
		d.Record(domain.AuditEntry{
			ID:       "entry",
			Entity:   "room",
			EntityID: "room-1",
			Action:   "update",
		})
	}

	waitFor(t, func() bool { return repo.count() == 10 })
}

func TestAuditDispatcher_ShardingIsDeterministic(t *testing.T) {
	d := NewAuditDispatcher(4, &recordingAuditRepo{}, zerolog.Nop())

	first := d.shardIndex("task-42")
	for i := 0; i < 100; i++ {
		if got := d.shardIndex("task-42"); got != first {
			t.Fatalf("shard index changed: %d vs %d", first, got)
		}
	}
	if first < 0 || first >= 4 {
		t.Fatalf("shard index out of range: %d", first)
	}
}

func TestAuditDispatcher_DropsWhenQueueFull(t *testing.T) {
	repo := &recordingAuditRepo{}
	// Never started, so the single worker's buffer fills and overflow drops.
	d := NewAuditDispatcher(1, repo, zerolog.Nop())

	for i := 0; i < channelBuffer+50; i++ {
		d.Record(domain.AuditEntry{EntityID: "room-1"})
	}

	if got := len(d.workers[0]); got != channelBuffer {
		t.Fatalf("expected buffer capped at %d, got %d", channelBuffer, got)
	}
	if repo.count() != 0 {
		t.Fatalf("nothing should be persisted without workers, got %d", repo.count())
	}
}

func TestAuditDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewAuditDispatcher(0, &recordingAuditRepo{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
