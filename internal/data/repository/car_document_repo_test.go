package repository

import (
	"context"
	"errors"
	"testing"

	"car-rental/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type fakeCollection struct {
	docs []interface{}
	err  error
}

func (f *fakeCollection) InsertOne(_ context.Context, document interface{}, _ ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.docs = append(f.docs, document)
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

func TestCarDocumentRepositoryInsert(t *testing.T) {
	coll := &fakeCollection{}
	repo := NewCarDocumentRepository(coll, zap.NewNop())
	doc := &entity.CarDocument{Name: "Tesla Model S", Image: "https://bucket/cars/1_t.png"}

	id, err := repo.Insert(context.Background(), doc)

	require.NoError(t, err)
	assert.Len(t, id, 24)
	assert.Equal(t, id, doc.ID.Hex())
	assert.Len(t, coll.docs, 1)
}

func TestCarDocumentRepositoryInsertError(t *testing.T) {
	repo := NewCarDocumentRepository(&fakeCollection{err: errors.New("no primary")}, zap.NewNop())

	_, err := repo.Insert(context.Background(), &entity.CarDocument{})

	assert.ErrorContains(t, err, "no primary")
}
