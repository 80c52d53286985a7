// server/internal/database/mongo.go
package database

import (
	"context"
	"fmt"
	"time"

	"field-sales-api-server/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect kết nối MongoDB và trả về database handle.
func Connect(cfg config.Config) (*mongo.Database, error) {
	if cfg.Mongo.URI == "" {
		return nil, fmt.Errorf("database connection URL is empty")
	}

	// Cài đặt các options cho client
	clientOptions := options.Client().ApplyURI(cfg.Mongo.URI).
		SetMaxPoolSize(50).
		SetMinPoolSize(10).
		SetConnectTimeout(5 * time.Second).
		SetSocketTimeout(10 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Kiểm tra kết nối
	ctxPing, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancelPing()
	if err := client.Ping(ctxPing, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client.Database(cfg.Mongo.DBName), nil
}
