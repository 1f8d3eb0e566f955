package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lumenhotels/backoffice/internal/core/domain"
)

const collectionRatePlans = "rate_plans"

type RatePlanRepository struct {
	col *mongo.Collection
}

func NewRatePlanRepository(db *mongo.Database) *RatePlanRepository {
	return &RatePlanRepository{col: db.Collection(collectionRatePlans)}
}

func (r *RatePlanRepository) Create(ctx context.Context, plan *domain.RatePlan) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, plan); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrRatePlanExists
		}
		return fmt.Errorf("insert rate plan: %w", err)
	}
	return nil
}

func (r *RatePlanRepository) FindByID(ctx context.Context, id string) (*domain.RatePlan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var plan domain.RatePlan
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&plan); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRatePlanNotFound
		}
		return nil, fmt.Errorf("find rate plan: %w", err)
	}
	return &plan, nil
}

func (r *RatePlanRepository) FindByNameAndType(ctx context.Context, name, roomTypeID string) (*domain.RatePlan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var plan domain.RatePlan
	err := r.col.FindOne(ctx, bson.M{"name": name, "room_type_id": roomTypeID}).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRatePlanNotFound
		}
		return nil, fmt.Errorf("find rate plan by name: %w", err)
	}
	return &plan, nil
}

// List returns all rate plans ordered by name.
func (r *RatePlanRepository) List(ctx context.Context) ([]*domain.RatePlan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list rate plans: %w", err)
	}
	defer cursor.Close(ctx)

	var plans []*domain.RatePlan
	for cursor.Next(ctx) {
		var plan domain.RatePlan
		if err := cursor.Decode(&plan); err != nil {
			return nil, fmt.Errorf("decode rate plan: %w", err)
		}
		plans = append(plans, &plan)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *RatePlanRepository) Update(ctx context.Context, plan *domain.RatePlan) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":             plan.Name,
		"room_type_id":     plan.RoomTypeID,
		"refundable":       plan.Refundable,
		"seasonal_rates":   plan.SeasonalRates,
		"extra_bed_policy": plan.ExtraBedPolicy,
		"updated_at":       plan.UpdatedAt,
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": plan.ID}, update)
	if err != nil {
		return fmt.Errorf("update rate plan: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRatePlanNotFound
	}
	return nil
}

func (r *RatePlanRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete rate plan: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRatePlanNotFound
	}
	return nil
}

// EnsureIndexes creates the compound unique (name, room_type_id) index.
func (r *RatePlanRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}, {Key: "room_type_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
