// Package mongodb implements the repositories on top of a MongoDB database.
package mongodb

import (
	"context"
	"time"

	"booking-management-api-server/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// collection holds the List / Insert / UpdateByID operations common to every entity.
type collection[T any] struct {
	name string
	col  *mongo.Collection
}

func newCollection[T any](db *mongo.Database, name string) collection[T] {
	return collection[T]{name: name, col: db.Collection(name)}
}

func (c collection[T]) list(ctx context.Context) ([]T, error) {
	cursor, err := c.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, repository.Wrap("list", c.name, err)
	}
	defer cursor.Close(ctx)

	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, repository.Wrap("list", c.name, err)
	}
	if docs == nil {
		docs = []T{}
	}
	return docs, nil
}

func (c collection[T]) insert(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	result, err := c.col.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, repository.Wrap("insert", c.name, err)
	}
	oid, _ := result.InsertedID.(primitive.ObjectID)
	return oid, nil
}

// updateByID $sets patch plus updatedAt on the document with the given hex id.
func (c collection[T]) updateByID(ctx context.Context, id string, patch bson.M, now time.Time) error {
	oid, err := repository.ParseID(c.name, id)
	if err != nil {
		return err
	}

	set := bson.M{"updatedAt": now}
	for k, v := range patch {
		set[k] = v
	}

	result, err := c.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return repository.Wrap("update", c.name, err)
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
