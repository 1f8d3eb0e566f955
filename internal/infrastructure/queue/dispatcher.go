package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/lumenhotels/backoffice/internal/api/metrics"
	"github.com/lumenhotels/backoffice/internal/core/domain"
	"github.com/lumenhotels/backoffice/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// AuditDispatcher persists audit entries off the request path. Entries are
// routed to a fixed set of workers by consistent hashing on the entity id,
// so writes for one entity keep their order.
type AuditDispatcher struct {
	workers []chan domain.AuditEntry
	repo    ports.AuditRepository
	log     zerolog.Logger
}

// NewAuditDispatcher creates an AuditDispatcher with numWorkers sharded
// workers. If numWorkers <= 0, defaultWorkers is used.
func NewAuditDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *AuditDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &AuditDispatcher{
		workers: make([]chan domain.AuditEntry, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *AuditDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues an entry for asynchronous persistence. When the target
// worker's buffer is full the entry is dropped with a warning; the audit
// trail must never stall the request path.
func (d *AuditDispatcher) Record(entry domain.AuditEntry) {
	idx := d.shardIndex(entry.EntityID)
	select {
	case d.workers[idx] <- entry:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		d.log.Warn().
			Str("entity", entry.Entity).
			Str("entity_id", entry.EntityID).
			Int("worker_id", idx).
			Msg("audit queue full, entry dropped")
	}
}

// shardIndex maps an entity id deterministically to a worker index.
func (d *AuditDispatcher) shardIndex(entityID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(entityID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *AuditDispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEntry) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			start := time.Now()
			if err := d.repo.Insert(ctx, &entry); err != nil {
				d.log.Error().Err(err).
					Str("entity", entry.Entity).
					Str("entity_id", entry.EntityID).
					Int("worker_id", id).
					Msg("audit write failed")
			}
			metrics.AuditWriteDuration.Observe(time.Since(start).Seconds())
			metrics.AuditQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
		}
	}
}
