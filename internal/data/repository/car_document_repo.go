package repository

import (
	"context"
	"fmt"

	"car-rental/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// CarDocumentRepository records uploaded cars in the document database
type CarDocumentRepository interface {
	Insert(ctx context.Context, doc *entity.CarDocument) (string, error)
}

// MongoCollection is the subset of *mongo.Collection used here
type MongoCollection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

type carDocumentRepository struct {
	coll MongoCollection
	log  *zap.Logger
}

func NewCarDocumentRepository(coll MongoCollection, log *zap.Logger) CarDocumentRepository {
	return &carDocumentRepository{
		coll: coll,
		log:  log.With(zap.String("repository", "car_document")),
	}
}

// EnsureCarIndexes creates the {name, location} lookup index if missing
func EnsureCarIndexes(ctx context.Context, coll *mongo.Collection, log *zap.Logger) error {
	name, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}, {Key: "location", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create cars index: %w", err)
	}

	log.Info("Cars collection set up with indexes", zap.String("index", name))
	return nil
}

func (r *carDocumentRepository) Insert(ctx context.Context, doc *entity.CarDocument) (string, error) {
	result, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		r.log.Error("Failed to insert car document",
			zap.Error(err),
			zap.String("name", doc.Name),
		)
		return "", fmt.Errorf("failed to insert car document: %w", err)
	}

	id := fmt.Sprint(result.InsertedID)
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
		id = oid.Hex()
	}

	return id, nil
}
