package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/ncobase/studyverse/logging/logger"
	"github.com/ncobase/studyverse/structs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type pomodoroRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
	timeout    time.Duration
}

// NewPomodoroRepository creates a MongoDB session log repository.
func NewPomodoroRepository(db *mongo.Database, l *logger.Logger, timeout time.Duration) PomodoroRepository {
	collection := db.Collection("pomodoro_logs")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "timestamp", Value: -1}},
	}
	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		l.Warn(ctx, "failed to create index on pomodoro_logs", "error", err)
	}

	return &pomodoroRepository{collection: collection, logger: l, timeout: timeout}
}

// Create appends a session log.
func (r *pomodoroRepository) Create(ctx context.Context, log *structs.PomodoroLog) (*structs.PomodoroLog, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	log.ID = primitive.NewObjectID()
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now()
	}

	if _, err := r.collection.InsertOne(ctx, log); err != nil {
		r.logger.Error(ctx, "failed to create pomodoro log", "owner", log.Owner, "error", err)
		return nil, fmt.Errorf("failed to create pomodoro log: %w", err)
	}
	return log, nil
}

// ListByOwnerInRange lists logs with from <= timestamp <= to, newest first.
func (r *pomodoroRepository) ListByOwnerInRange(ctx context.Context, owner string, from, to time.Time) ([]*structs.PomodoroLog, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	filter := bson.M{
		"user_id":   owner,
		"timestamp": bson.M{"$gte": from, "$lte": to},
	}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		r.logger.Error(ctx, "failed to list pomodoro logs", "owner", owner, "error", err)
		return nil, fmt.Errorf("failed to list pomodoro logs: %w", err)
	}
	defer cursor.Close(ctx)

	logs := make([]*structs.PomodoroLog, 0)
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("failed to decode pomodoro logs: %w", err)
	}
	return logs, nil
}
