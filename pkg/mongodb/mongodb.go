package mongodb

import (
	"context"
	"fmt"

	"github.com/shenikar/blood_donation_system/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewMongoClient создает клиент MongoDB и проверяет соединение
func NewMongoClient(ctx context.Context, appCfg *config.Config) (*mongo.Client, error) {
	clientOpts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetTimeout(appCfg.MongoTimeout)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к mongodb: %w", err)
	}

	// Проверяем соединение с базой данных
	pingCtx, cancel := context.WithTimeout(ctx, appCfg.MongoTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("не удалось выполнить ping к mongodb: %w", err)
	}

	return client, nil
}
