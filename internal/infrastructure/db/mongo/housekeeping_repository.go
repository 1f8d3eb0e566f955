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

const collectionTasks = "housekeeping_tasks"

type HousekeepingRepository struct {
	col *mongo.Collection
}

func NewHousekeepingRepository(db *mongo.Database) *HousekeepingRepository {
	return &HousekeepingRepository{col: db.Collection(collectionTasks)}
}

func (r *HousekeepingRepository) Create(ctx context.Context, task *domain.HousekeepingTask) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, task); err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (r *HousekeepingRepository) FindByID(ctx context.Context, id string) (*domain.HousekeepingTask, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var task domain.HousekeepingTask
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&task); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return &task, nil
}

func (r *HousekeepingRepository) List(ctx context.Context, filter ports.ListTasksFilter) ([]*domain.HousekeepingTask, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.RoomID != "" {
		query["room_id"] = filter.RoomID
	}
	if filter.AssignedToStaffID != "" {
		query["assigned_to_staff_id"] = filter.AssignedToStaffID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer cursor.Close(ctx)

	var tasks []*domain.HousekeepingTask
	for cursor.Next(ctx) {
		var task domain.HousekeepingTask
		if err := cursor.Decode(&task); err != nil {
			return nil, fmt.Errorf("decode task: %w", err)
		}
		tasks = append(tasks, &task)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update applies fields in a single conditional write. The filter includes
// the caller's view of the current status, so a concurrent transition makes
// the write match nothing and surfaces as ErrInvalidTransition.
func (r *HousekeepingRepository) Update(ctx context.Context, id string, current domain.HousekeepingStatus, fields ports.TaskUpdate) (*domain.HousekeepingTask, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	if fields.RoomID != nil {
		set["room_id"] = *fields.RoomID
	}
	if fields.AssignedToStaffID != nil {
		set["assigned_to_staff_id"] = *fields.AssignedToStaffID
	}
	if fields.Status != nil {
		set["status"] = *fields.Status
	}
	if fields.Notes != nil {
		set["notes"] = *fields.Notes
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var task domain.HousekeepingTask
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "status": current},
		bson.M{"$set": set},
		opts,
	).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Distinguish a missing task from a lost race on status.
			if _, findErr := r.FindByID(ctx, id); errors.Is(findErr, domain.ErrTaskNotFound) {
				return nil, domain.ErrTaskNotFound
			}
			return nil, domain.ErrInvalidTransition
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return &task, nil
}

func (r *HousekeepingRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// EnsureIndexes creates the filter indexes used by List.
func (r *HousekeepingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "room_id", Value: 1}}},
		{Keys: bson.D{{Key: "assigned_to_staff_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
