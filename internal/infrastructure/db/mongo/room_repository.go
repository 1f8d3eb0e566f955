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
	"github.com/lumenhotels/backoffice/internal/core/ports"
)

const collectionRooms = "rooms"

type RoomRepository struct {
	col *mongo.Collection
}

func NewRoomRepository(db *mongo.Database) *RoomRepository {
	return &RoomRepository{col: db.Collection(collectionRooms)}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, room); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrRoomExists
		}
		return fmt.Errorf("insert room: %w", err)
	}
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id string) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var room domain.Room
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&room); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room: %w", err)
	}
	return &room, nil
}

func (r *RoomRepository) FindByNumber(ctx context.Context, roomNumber string) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var room domain.Room
	if err := r.col.FindOne(ctx, bson.M{"room_number": roomNumber}).Decode(&room); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room by number: %w", err)
	}
	return &room, nil
}

// List returns a page of rooms ordered by room_number and the total count of
// rooms matching the filter.
func (r *RoomRepository) List(ctx context.Context, filter ports.ListRoomsFilter) ([]*domain.Room, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Search != "" {
		query["room_number"] = bson.M{"$regex": filter.Search, "$options": "i"}
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.TypeID != "" {
		query["type_id"] = filter.TypeID
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count rooms: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "room_number", Value: 1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []*domain.Room
	for cursor.Next(ctx) {
		var room domain.Room
		if err := cursor.Decode(&room); err != nil {
			return nil, 0, fmt.Errorf("decode room: %w", err)
		}
		rooms = append(rooms, &room)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, err
	}
	return rooms, total, nil
}

func (r *RoomRepository) ListVacant(ctx context.Context, typeID string) ([]*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"status": domain.RoomVacant}
	if typeID != "" {
		query["type_id"] = typeID
	}

	opts := options.Find().SetSort(bson.D{{Key: "room_number", Value: 1}})
	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list vacant rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []*domain.Room
	for cursor.Next(ctx) {
		var room domain.Room
		if err := cursor.Decode(&room); err != nil {
			return nil, fmt.Errorf("decode room: %w", err)
		}
		rooms = append(rooms, &room)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"room_number":   room.RoomNumber,
		"type_id":       room.TypeID,
		"floor":         room.Floor,
		"features":      room.Features,
		"status":        room.Status,
		"max_occupancy": room.MaxOccupancy,
		"updated_at":    room.UpdatedAt,
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": room.ID}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrRoomExists
		}
		return fmt.Errorf("update room: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

// EnsureIndexes creates the unique room_number index plus the filter indexes.
func (r *RoomRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "room_number", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "type_id", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
