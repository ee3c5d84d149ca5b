// Package data opens the configured store and exposes its repositories.
package data

import (
	"context"
	"fmt"
	"time"

	"github.com/ncobase/studyverse/config"
	"github.com/ncobase/studyverse/data/repository"
	"github.com/ncobase/studyverse/logging/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Data encapsulates all data layer dependencies.
type Data struct {
	driver       string
	client       *mongo.Client
	db           *mongo.Database
	TaskRepo     repository.TaskRepository
	PomodoroRepo repository.PomodoroRepository
	UserRepo     repository.UserRepository
}

// New opens the store selected by cfg.Driver.
func New(cfg *config.Data, l *logger.Logger) (*Data, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		l.Warn(context.Background(), "using in-memory store, data is lost on restart")
		return NewMemory(), nil
	case config.DriverMongo:
		return newMongo(cfg.MongoDB, l)
	}
	return nil, fmt.Errorf("unsupported data driver %q", cfg.Driver)
}

// NewMemory creates a Data backed by the in-memory store.
func NewMemory() *Data {
	mem := repository.NewMemory()
	return &Data{
		driver:       config.DriverMemory,
		TaskRepo:     mem.Tasks(),
		PomodoroRepo: mem.Pomodoros(),
		UserRepo:     mem.Users(),
	}
}

func newMongo(cfg *config.MongoDB, l *logger.Logger) (*Data, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Connect to MongoDB
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	l.Info(ctx, "Connected to MongoDB successfully", "database", cfg.Database)

	db := client.Database(cfg.Database)

	return &Data{
		driver:       config.DriverMongo,
		client:       client,
		db:           db,
		TaskRepo:     repository.NewTaskRepository(db, l, cfg.Timeout),
		PomodoroRepo: repository.NewPomodoroRepository(db, l, cfg.Timeout),
		UserRepo:     repository.NewUserRepository(db, l, cfg.Timeout),
	}, nil
}

// Close closes the MongoDB connection.
func (d *Data) Close() error {
	if d.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return d.client.Disconnect(ctx)
}

// Health reports the store status.
func (d *Data) Health(ctx context.Context) map[string]any {
	status := map[string]any{"driver": d.driver, "status": "healthy"}
	if d.client == nil {
		return status
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := d.client.Ping(ctx, nil); err != nil {
		status["status"] = "unhealthy"
		status["error"] = err.Error()
	}
	status["latency"] = time.Since(start).String()
	return status
}
