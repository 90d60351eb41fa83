// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MKhiriev/gamey-gateway/internal/logger"
	"github.com/MKhiriev/gamey-gateway/models"
)

// mongoUserRepository is the MongoDB-backed implementation of
// [UserRepository]. One document per user; uniqueness is enforced by the
// "username_unique" index.
type mongoUserRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
	timeout    time.Duration
}

func NewMongoUserRepository(collection *mongo.Collection, timeout time.Duration, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating mongo user repository")
	return &mongoUserRepository{
		collection: collection,
		logger:     logger,
		timeout:    timeout,
	}
}

func (m *mongoUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	if user.UserID == "" {
		user.UserID = uuid.NewString()
	}

	_, err := m.collection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return models.User{}, ErrUsernameAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

func (m *mongoUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	var found models.User
	err := m.collection.FindOne(ctx, bson.M{"username": username}).Decode(&found)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.FindUserByUsername").Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}
