package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	eventQueueKey = "notify_events"

	// Типы realtime-событий. Доставка как минимум однократная:
	// потребители должны быть идемпотентны (перечитать соответствующие записи).
	EventFriendRequestCreated  = "friend.request.created"
	EventFriendRequestAccepted = "friend.request.accepted"
	EventMessageCreated        = "message.created"
	EventLocationUpdated       = "location.updated"
)

// Event - структура для данных realtime-события
type Event struct {
	Type      string          `json:"type"`
	UserID    uuid.UUID       `json:"user_id"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewEvent собирает событие, сериализуя payload в JSON
func NewEvent(eventType string, userID uuid.UUID, payload any) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("failed to marshal event payload: %w", err)
	}
	return Event{
		Type:      eventType,
		UserID:    userID,
		Payload:   raw,
		Timestamp: time.Now().UTC(),
	}, nil
}

// Publisher - интерфейс для публикации realtime-событий
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher - реализация Publisher, использующая Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notify event: %w", err)
	}

	// LPUSH в левую часть списка, воркер забирает BRPOP с правой
	if err := p.redisClient.LPush(ctx, eventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notify event to Redis: %w", err)
	}
	return nil
}
