package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ncobase/studyverse/logging/logger"
	"github.com/ncobase/studyverse/structs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type taskRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
	timeout    time.Duration
}

// NewTaskRepository creates a MongoDB task repository.
func NewTaskRepository(db *mongo.Database, l *logger.Logger, timeout time.Duration) TaskRepository {
	collection := db.Collection("tasks")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "due_date", Value: 1}},
	}
	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		l.Warn(ctx, "failed to create index on tasks", "error", err)
	}

	return &taskRepository{collection: collection, logger: l, timeout: timeout}
}

// Create creates a new task.
func (r *taskRepository) Create(ctx context.Context, task *structs.Task) (*structs.Task, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	task.ID = primitive.NewObjectID()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}

	if _, err := r.collection.InsertOne(ctx, task); err != nil {
		r.logger.Error(ctx, "failed to create task", "owner", task.Owner, "error", err)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	r.logger.Info(ctx, "task created", "id", task.ID.Hex(), "owner", task.Owner)
	return task, nil
}

// ListByOwner lists the owner's tasks by due date then id, undated first.
func (r *taskRepository) ListByOwner(ctx context.Context, owner string) ([]*structs.Task, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": owner}, opts)
	if err != nil {
		r.logger.Error(ctx, "failed to list tasks", "owner", owner, "error", err)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer cursor.Close(ctx)

	tasks := make([]*structs.Task, 0)
	if err := cursor.All(ctx, &tasks); err != nil {
		r.logger.Error(ctx, "failed to decode tasks", "owner", owner, "error", err)
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}
	return tasks, nil
}

// FindByIDAndOwner retrieves one of the owner's tasks.
func (r *taskRepository) FindByIDAndOwner(ctx context.Context, id, owner string) (*structs.Task, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var task structs.Task
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID, "user_id": owner}).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		r.logger.Error(ctx, "failed to find task", "id", id, "error", err)
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &task, nil
}

// UpdateByIDAndOwner sets the supplied fields in a single write.
func (r *taskRepository) UpdateByIDAndOwner(ctx context.Context, id, owner string, patch *structs.TaskPatch) (*structs.Task, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	filter := bson.M{"_id": objectID, "user_id": owner}
	update := taskUpdate(patch)
	if len(update) == 0 {
		return r.FindByIDAndOwner(ctx, id, owner)
	}

	result := r.collection.FindOneAndUpdate(
		ctx,
		filter,
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var updated structs.Task
	if err := result.Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		r.logger.Error(ctx, "failed to update task", "id", id, "error", err)
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	r.logger.Info(ctx, "task updated", "id", id)
	return &updated, nil
}

// DeleteByIDAndOwner deletes one of the owner's tasks.
func (r *taskRepository) DeleteByIDAndOwner(ctx context.Context, id, owner string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID, "user_id": owner})
	if err != nil {
		r.logger.Error(ctx, "failed to delete task", "id", id, "error", err)
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	r.logger.Info(ctx, "task deleted", "id", id)
	return nil
}

// taskUpdate builds the update document for p; empty when p changes nothing.
func taskUpdate(p *structs.TaskPatch) bson.M {
	update := bson.M{}
	set := taskPatchFields(p)
	if len(set) > 0 {
		update["$set"] = set
	}
	if p != nil && p.ClearDueDate {
		update["$unset"] = bson.M{"due_date": ""}
	}
	return update
}

func taskPatchFields(p *structs.TaskPatch) bson.M {
	set := bson.M{}
	if p == nil {
		return set
	}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.DueDate != nil && !p.ClearDueDate {
		set["due_date"] = *p.DueDate
	}
	if p.Priority != nil {
		set["priority"] = *p.Priority
	}
	if p.Completed != nil {
		set["completed"] = *p.Completed
	}
	return set
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
