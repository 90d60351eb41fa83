// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MKhiriev/gamey-gateway/internal/config"
	"github.com/MKhiriev/gamey-gateway/internal/logger"
)

// NewConnectMongo connects to MongoDB and returns the users collection with
// its unique username index in place.
func NewConnectMongo(ctx context.Context, cfg config.Mongo, log *logger.Logger) (*mongo.Client, *mongo.Collection, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting to mongo")
		return nil, nil, fmt.Errorf("error connecting to mongo: %w", err)
	}

	// ping
	if err = client.Ping(ctx, nil); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting to mongo (ping)")
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	collection := client.Database(cfg.Database).Collection(cfg.Collection)
	if err = ensureIndexes(ctx, collection); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error creating indexes")
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("error creating indexes: %w", err)
	}
	log.Info().Str("func", "NewConnectMongo").
		Str("database", cfg.Database).
		Str("collection", cfg.Collection).
		Msg("connected to mongo successfully")

	return client, collection, nil
}

func ensureIndexes(ctx context.Context, collection *mongo.Collection) error {
	usernameIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("username_unique"),
	}
	_, err := collection.Indexes().CreateOne(ctx, usernameIdx)
	return err
}
