package persistence

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// MongoOptions configures the activity log store
type MongoOptions struct {
	URI            string
	Database       string
	Username       string
	Password       string
	AppName        string
	ConnectTimeout time.Duration
	MaxPoolSize    uint64
}

// ActivityStore is a connected client plus the database holding the activity log
type ActivityStore struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func mongoClientOptions(opts MongoOptions) *options.ClientOptions {
	clientOptions := options.Client().
		ApplyURI(opts.URI).
		SetWriteConcern(writeconcern.Majority())

	if opts.Username != "" && opts.Password != "" {
		clientOptions.SetAuth(options.Credential{
			Username: opts.Username,
			Password: opts.Password,
		})
	}
	if opts.AppName != "" {
		clientOptions.SetAppName(opts.AppName)
	}
	if opts.ConnectTimeout > 0 {
		clientOptions.SetConnectTimeout(opts.ConnectTimeout)
	}
	if opts.MaxPoolSize > 0 {
		clientOptions.SetMaxPoolSize(opts.MaxPoolSize)
	}
	return clientOptions
}

// NewActivityStore connects to MongoDB and checks the server is reachable
func NewActivityStore(ctx context.Context, opts MongoOptions) (*ActivityStore, error) {
	if opts.Database == "" {
		return nil, fmt.Errorf("mongo database name is required")
	}

	timeout := opts.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, mongoClientOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &ActivityStore{
		Client:   client,
		Database: client.Database(opts.Database),
	}, nil
}

// Close disconnects the client
func (s *ActivityStore) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}
