package db

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	RecipeCollection *mongo.Collection
	UserCollection   *mongo.Collection

	client  *mongo.Client
	once    sync.Once
	connErr error
)

// Connect establishes the shared MongoDB client exactly once; later calls
// return the same handle. Collections are bound as part of the first call.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	once.Do(func() {
		serverAPI := options.ServerAPI(options.ServerAPIVersion1)
		opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

		client, connErr = mongo.Connect(ctx, opts)
		if connErr != nil {
			return
		}
		if connErr = client.Ping(ctx, nil); connErr != nil {
			return
		}

		db := client.Database("mixiedb")
		RecipeCollection = db.Collection("recipes")
		UserCollection = db.Collection("users")
	})
	return client, connErr
}

// EnsureIndexes creates the unique indexes the repository layer relies on.
// Name uniqueness per owner lives here, at the storage engine, so two
// concurrent creates for the same owner and name can never both succeed.
func EnsureIndexes(ctx context.Context) error {
	_, err := RecipeCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userEmail", Value: 1}, {Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = UserCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Disconnect tears down the shared client on shutdown.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
