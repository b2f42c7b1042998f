package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const (
	webhookQueueKey = "blood_request_events"
)

// BloodRequestEvent - структура для данных вебхука о новом запросе крови
type BloodRequestEvent struct {
	EventID        string    `json:"event_id"`
	RequestID      string    `json:"request_id"`
	DonorID        string    `json:"donor_id"`
	DonorName      string    `json:"donor_name"`
	DonorEmail     string    `json:"donor_email,omitempty"`
	SenderID       string    `json:"sender_id"`
	SenderName     string    `json:"sender_name"`
	SenderEmail    string    `json:"sender_email,omitempty"`
	SenderVerified bool      `json:"sender_verified"`
	Message        string    `json:"message"`
	DistanceKm     float64   `json:"distance_km,omitempty"`
	AcceptURL      string    `json:"accept_url"`
	RejectURL      string    `json:"reject_url"`
	Timestamp      time.Time `json:"timestamp"`
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event BloodRequestEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event BloodRequestEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
