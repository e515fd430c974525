package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/drishti/internal/models"
)

const (
	webhookQueueKey = "drishti:alert_deliveries"
)

// AlertDelivery - тело вебхука об отправленном оповещении
type AlertDelivery struct {
	DeliveryID uuid.UUID     `json:"delivery_id"`
	Alert      models.Alert  `json:"alert"`
	SentBy     string        `json:"sent_by"`
	Zones      []models.Zone `json:"zones,omitempty"` // Зоны, попадающие под оповещение
	Timestamp  time.Time     `json:"timestamp"`
}

// WebhookPublisher - интерфейс для постановки доставки в очередь
type WebhookPublisher interface {
	Publish(ctx context.Context, delivery AlertDelivery) error
}

// RedisWebhookPublisher - реализация WebhookPublisher поверх списка Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish кладёт доставку в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, delivery AlertDelivery) error {
	if delivery.DeliveryID == uuid.Nil {
		delivery.DeliveryID = uuid.New()
	}
	payload, err := json.Marshal(delivery)
	if err != nil {
		return fmt.Errorf("failed to marshal alert delivery: %w", err)
	}

	// LPUSH добавляет в голову списка, воркер забирает с хвоста через BRPOP
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to enqueue alert delivery to Redis: %w", err)
	}
	return nil
}
