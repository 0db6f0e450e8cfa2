package files

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/avasiljevs/filesmanager/internal/common"
	"github.com/avasiljevs/filesmanager/internal/server/models"
)

// MongoRepository implements Repository over a MongoDB collection.
type MongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository constructs a repository bound to the given collection.
func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

func (r *MongoRepository) Create(ctx context.Context, entry *models.FileEntry) (*models.FileEntry, error) {
	res, err := r.coll.InsertOne(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	entry.ID = res.InsertedID.(primitive.ObjectID)
	return entry, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*models.FileEntry, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoRepository) GetByOwner(ctx context.Context, ownerID, id string) (*models.FileEntry, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid, "userId": ownerID})
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (*models.FileEntry, error) {
	var entry models.FileEntry
	err := r.coll.FindOne(ctx, filter).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	return &entry, nil
}

// List returns entries for (owner, parent) sorted by _id, which preserves
// insertion order and keeps page slicing stable.
func (r *MongoRepository) List(ctx context.Context, ownerID, parentID string, skip, limit int64) ([]*models.FileEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit)

	cur, err := r.coll.Find(ctx, bson.M{"userId": ownerID, "parentId": parentID}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	defer func() { _ = cur.Close(ctx) }()

	result := []*models.FileEntry{}
	for cur.Next(ctx) {
		var entry models.FileEntry
		if err := cur.Decode(&entry); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
		}
		result = append(result, &entry)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	return result, nil
}

func (r *MongoRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	return n, nil
}
