package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lumenhotels/backoffice/internal/core/domain"
)

const collectionRoomTypes = "room_types"

type RoomTypeRepository struct {
	col *mongo.Collection
}

func NewRoomTypeRepository(db *mongo.Database) *RoomTypeRepository {
	return &RoomTypeRepository{col: db.Collection(collectionRoomTypes)}
}

func (r *RoomTypeRepository) Create(ctx context.Context, rt *domain.RoomType) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, rt); err != nil {
		return fmt.Errorf("insert room type: %w", err)
	}
	return nil
}

func (r *RoomTypeRepository) FindByID(ctx context.Context, id string) (*domain.RoomType, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rt domain.RoomType
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&rt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoomTypeNotFound
		}
		return nil, fmt.Errorf("find room type: %w", err)
	}
	return &rt, nil
}

// List returns all room types ordered by name.
func (r *RoomTypeRepository) List(ctx context.Context) ([]*domain.RoomType, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list room types: %w", err)
	}
	defer cursor.Close(ctx)

	var roomTypes []*domain.RoomType
	for cursor.Next(ctx) {
		var rt domain.RoomType
		if err := cursor.Decode(&rt); err != nil {
			return nil, fmt.Errorf("decode room type: %w", err)
		}
		roomTypes = append(roomTypes, &rt)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return roomTypes, nil
}

func (r *RoomTypeRepository) Update(ctx context.Context, rt *domain.RoomType) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":          rt.Name,
		"description":   rt.Description,
		"base_rate":     rt.BaseRate,
		"max_occupancy": rt.MaxOccupancy,
		"amenities":     rt.Amenities,
		"updated_at":    rt.UpdatedAt,
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": rt.ID}, update)
	if err != nil {
		return fmt.Errorf("update room type: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRoomTypeNotFound
	}
	return nil
}

func (r *RoomTypeRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete room type: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRoomTypeNotFound
	}
	return nil
}
