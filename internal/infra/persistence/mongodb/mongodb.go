// Package mongodb contains the concrete implementation of the persistence layer
// backed by a MongoDB document collection.
package mongodb

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"passport/config"
	"passport/internal/domain/lifecycle"
)

const usersCollection = "users"

// Params defines the dependencies required to open the document store.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the MongoDB client and returns the configured database handle.
// The connection is verified and indexes are ensured on application start,
// and the client is disconnected on shutdown.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config
	if cfg.Mongo == nil {
		return nil, errors.New("mongo configuration is required")
	}

	connectTimeout := cfg.Mongo.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = lifecycle.DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mongo")
	}

	db := client.Database(cfg.Mongo.Database)

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping mongo")
			}
			if err := ensureIndexes(ctx, db); err != nil {
				return errors.Wrap(err, "failed to ensure mongo indexes")
			}
			params.Logger.Info("Connected to mongo", slog.String("database", cfg.Mongo.Database))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Disconnecting from mongo")

			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	return db, nil
}

// ensureIndexes creates the unique email index. The collation (strength 2)
// makes uniqueness case-insensitive; concurrent registrations with the same
// email race on this index and exactly one insert wins.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetCollation(&options.Collation{Locale: "en", Strength: 2}),
	})

	return errors.Wrap(err, "failed to create unique email index")
}
