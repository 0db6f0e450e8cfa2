// Package storage owns the document-store connection and its lifecycle.
// The connection is constructed by the process entry point and passed down
// explicitly; components never reach for process-wide state.
package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/avasiljevs/filesmanager/internal/common"
)

// Collection names.
const (
	usersCollection = "users"
	filesCollection = "files"
)

// DocumentStore wraps a MongoDB client and database handle.
type DocumentStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open connects to MongoDB at uri and verifies the connection with a ping.
func Open(ctx context.Context, uri, database string) (*DocumentStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	return &DocumentStore{client: client, db: client.Database(database)}, nil
}

// EnsureIndexes creates the indexes the application relies on. The unique
// email index is what actually enforces registration uniqueness; the
// application performs no check-then-insert.
func (s *DocumentStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.Users().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	return nil
}

// Users returns the users collection.
func (s *DocumentStore) Users() *mongo.Collection {
	return s.db.Collection(usersCollection)
}

// Files returns the files collection.
func (s *DocumentStore) Files() *mongo.Collection {
	return s.db.Collection(filesCollection)
}

// Ping reports whether the store is reachable.
func (s *DocumentStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	return nil
}

// Close disconnects the underlying client.
func (s *DocumentStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
