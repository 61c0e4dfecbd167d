package kv

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type stateDoc struct {
	ID   string `bson:"_id"`
	Data []byte `bson:"data"`
}

// MongoBackend stores each state document as one record in a "state"
// collection, keyed by the state key.
type MongoBackend struct {
	coll *mongo.Collection
}

func NewMongoBackend(uri string) (*MongoBackend, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return &MongoBackend{coll: client.Database("aurumdrive").Collection("state")}, nil
}

func (m *MongoBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var doc stateDoc
	err := m.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return doc.Data, true, nil
}

func (m *MongoBackend) Set(ctx context.Context, key string, value []byte) error {
	opts := options.Replace().SetUpsert(true)
	_, err := m.coll.ReplaceOne(ctx, bson.M{"_id": key}, stateDoc{ID: key, Data: value}, opts)
	return err
}

func (m *MongoBackend) Name() string { return "mongo" }
