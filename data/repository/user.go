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

type userRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
	timeout    time.Duration
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(db *mongo.Database, l *logger.Logger, timeout time.Duration) UserRepository {
	collection := db.Collection("users")

	// Create unique index on email
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		l.Warn(ctx, "failed to create index on email", "error", err)
	}

	return &userRepository{collection: collection, logger: l, timeout: timeout}
}

// Create creates a new user.
func (r *userRepository) Create(ctx context.Context, user *structs.User) (*structs.User, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	now := time.Now()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		r.logger.Error(ctx, "failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Info(ctx, "user created", "id", user.ID.Hex())
	return user, nil
}

// FindByID retrieves a user by ID.
func (r *userRepository) FindByID(ctx context.Context, id string) (*structs.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": objectID})
}

// FindByEmail retrieves a user by email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*structs.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *userRepository) findOne(ctx context.Context, filter bson.M) (*structs.User, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var user structs.User
	if err := r.collection.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		r.logger.Error(ctx, "failed to find user", "error", err)
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// Update updates the mutable profile fields of an existing user.
func (r *userRepository) Update(ctx context.Context, user *structs.User) (*structs.User, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	user.UpdatedAt = time.Now()

	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": user.ID},
		userUpdate(user),
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var updated structs.User
	if err := result.Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		r.logger.Error(ctx, "failed to update user", "id", user.ID.Hex(), "error", err)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	r.logger.Info(ctx, "user updated", "id", user.ID.Hex())
	return &updated, nil
}

// userUpdate sets the profile fields only; password and created_at are never
// written by an update.
func userUpdate(u *structs.User) bson.M {
	return bson.M{
		"$set": bson.M{
			"name":       u.Name,
			"email":      u.Email,
			"updated_at": u.UpdatedAt,
		},
	}
}
