package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lumenhotels/backoffice/internal/core/domain"
)

const collectionAudit = "audit_log"

type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(collectionAudit)}
}

type auditDoc struct {
	ID         string            `bson:"_id"`
	ActorID    string            `bson:"actor_id"`
	ActorEmail string            `bson:"actor_email"`
	Action     string            `bson:"action"`
	Entity     string            `bson:"entity"`
	EntityID   string            `bson:"entity_id"`
	Timestamp  time.Time         `bson:"timestamp"`
	Details    map[string]string `bson:"details,omitempty"`
}

func (r *AuditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := auditDoc{
		ID:         entry.ID,
		ActorID:    entry.ActorID,
		ActorEmail: entry.ActorEmail,
		Action:     entry.Action,
		Entity:     entry.Entity,
		EntityID:   entry.EntityID,
		Timestamp:  entry.Timestamp,
		Details:    entry.Details,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// List returns a page of entries, newest first, and the total count.
func (r *AuditRepository) List(ctx context.Context, page, limit int) ([]*domain.AuditEntry, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count audit entries: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list audit entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []*domain.AuditEntry
	for cursor.Next(ctx) {
		var d auditDoc
		if err := cursor.Decode(&d); err != nil {
			return nil, 0, fmt.Errorf("decode audit entry: %w", err)
		}
		entries = append(entries, &domain.AuditEntry{
			ID:         d.ID,
			ActorID:    d.ActorID,
			ActorEmail: d.ActorEmail,
			Action:     d.Action,
			Entity:     d.Entity,
			EntityID:   d.EntityID,
			Timestamp:  d.Timestamp,
			Details:    d.Details,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// EnsureIndexes creates the timestamp index used for paging.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "timestamp", Value: -1}},
	})
	return err
}
