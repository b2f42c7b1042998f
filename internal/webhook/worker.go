package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/blood_donation_system/internal/config"
	"github.com/sirupsen/logrus"
)

const signatureHeader = "X-Webhook-Signature"

// WebhookWorker - структура для обработки и отправки вебхуков
type WebhookWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
	sleep       func(ctx context.Context, d time.Duration)
}

// NewWebhookWorker создает новый WebhookWorker
func NewWebhookWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *WebhookWorker {
	return &WebhookWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
		sleep: sleepCtx,
	}
}

// Start запускает горутину для обработки очереди вебхуков
func (w *WebhookWorker) Start(ctx context.Context) {
	w.logger.Info("Starting webhook worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping webhook worker.")
				return
			default:
			}

			// BRPOP - блокирующее извлечение из правой части списка, 0 означает бесконечное ожидание
			result, err := w.redisClient.BRPop(ctx, 0, webhookQueueKey).Result()
			if err != nil {
				if errors.Is(err, context.Canceled) || ctx.Err() != nil {
					continue
				}
				w.logger.WithError(err).Error("Failed to pop webhook event from Redis")
				w.sleep(ctx, w.cfg.WebhookTimeout)
				continue
			}

			// result[0] - ключ, result[1] - значение
			payload := result[1]
			var event BloodRequestEvent
			if err := json.Unmarshal([]byte(payload), &event); err != nil {
				w.logger.WithError(err).Error("Failed to unmarshal webhook event from Redis")
				continue
			}

			w.processWebhookEvent(ctx, event, payload)
		}
	}()
}

func (w *WebhookWorker) processWebhookEvent(ctx context.Context, event BloodRequestEvent, rawPayload string) {
	log := w.logger.WithField("event_request_id", event.RequestID).WithField("event_donor_id", event.DonorID)
	log.Debug("Processing webhook event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		return
	}

	maxRetries := w.cfg.WebhookMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		err := w.deliver(ctx, rawPayload)
		if err == nil {
			log.Info("Webhook delivered successfully.")
			return
		}
		if ctx.Err() != nil {
			log.WithError(err).Warn("Webhook delivery interrupted by shutdown.")
			return
		}

		retriesLeft := maxRetries - 1 - i
		if retriesLeft == 0 {
			log.WithError(err).Warn("Webhook delivery attempt failed.")
			break
		}
		log.WithError(err).Warnf("Failed to send webhook for event. Retrying in %v. Retries left: %d", delay, retriesLeft)
		w.sleep(ctx, delay)
		delay *= 2 // Экспоненциальная задержка
	}

	log.Errorf("Failed to deliver webhook for event after %d attempts.", maxRetries)
}

// deliver выполняет одну попытку доставки вебхука
func (w *WebhookWorker) deliver(ctx context.Context, rawPayload string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(signatureHeader, generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook delivery failed with status code %d", resp.StatusCode)
	}
	return nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
