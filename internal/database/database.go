package database

import (
	"context"
	"fmt"
	"time"

	"github.com/vegamovies/core/internal/config"
	"github.com/vegamovies/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// Store wraps the MongoDB connection with an explicit lifecycle: Connect at
// process start, Ping for health checks, Close on shutdown. Services receive
// the handle by injection; there is no package-level connection state.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens the MongoDB connection, verifies it with a ping, and ensures
// collection indexes.
func Connect(ctx context.Context, cfg *config.AppConfig) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	s := &Store{
		client: client,
		db:     client.Database(cfg.Mongo.Database),
	}
	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}
	return s, nil
}

// Database returns the underlying database handle.
func (s *Store) Database() *mongo.Database { return s.db }

// Collection returns a named collection handle.
func (s *Store) Collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// Ping verifies the connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects from the store.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// ensureIndexes creates the indexes the services rely on: the unique movie
// slug (backstop for the service-level duplicate check), the releaseYear
// filter, and the createdAt sort used by listing, stats and notifications.
func (s *Store) ensureIndexes(ctx context.Context) error {
	movies := s.db.Collection(models.MovieCollection)
	_, err := movies.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "releaseYear", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return err
	}

	settings := s.db.Collection(models.SiteSettingCollection)
	_, err = settings.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "isActive", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	return err
}
