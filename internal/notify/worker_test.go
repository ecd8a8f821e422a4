package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worldme/worldme/internal/config"
)

func newTestWorker(cfg *config.Config) *Worker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewWorker(nil, logger, cfg)
}

func TestNewEvent_MarshalsPayload(t *testing.T) {
	// Подготовка
	userID := uuid.New()
	payload := map[string]string{"zone_key": "z100:45213:-8211"}

	// Действие
	event, err := NewEvent(EventLocationUpdated, userID, payload)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, EventLocationUpdated, event.Type)
	assert.Equal(t, userID, event.UserID)
	assert.False(t, event.Timestamp.IsZero())

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(event.Payload, &decoded))
	assert.Equal(t, "z100:45213:-8211", decoded["zone_key"])
}

func TestDeliver_SignsAndPosts(t *testing.T) {
	// Подготовка
	var (
		calls    atomic.Int32
		gotBody  []byte
		gotSig   string
		gotCType string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		gotBody, _ = io.ReadAll(r.Body)
		gotSig = r.Header.Get("X-Webhook-Signature")
		gotCType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := &config.Config{
		WebhookURL:        server.URL,
		WebhookSecret:     "test-secret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker := newTestWorker(cfg)

	event, err := NewEvent(EventFriendRequestCreated, uuid.New(), nil)
	require.NoError(t, err)
	rawPayload, err := json.Marshal(event)
	require.NoError(t, err)

	// Действие
	worker.deliver(context.Background(), event, string(rawPayload))

	// Проверки
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, rawPayload, gotBody)
	assert.Equal(t, "application/json", gotCType)
	assert.Equal(t, generateHMACSHA256(string(rawPayload), "test-secret"), gotSig)
}

func TestDeliver_RetriesOnServerError(t *testing.T) {
	// Подготовка
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := &config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker := newTestWorker(cfg)

	event, err := NewEvent(EventMessageCreated, uuid.New(), nil)
	require.NoError(t, err)
	rawPayload, err := json.Marshal(event)
	require.NoError(t, err)

	// Действие
	worker.deliver(context.Background(), event, string(rawPayload))

	// Проверки: все попытки исчерпаны
	assert.Equal(t, int32(3), calls.Load())
}

func TestDeliver_SkipsWithoutURL(t *testing.T) {
	// Подготовка
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	cfg := &config.Config{
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker := newTestWorker(cfg)

	event, err := NewEvent(EventFriendRequestAccepted, uuid.New(), nil)
	require.NoError(t, err)

	// Действие
	worker.deliver(context.Background(), event, `{"type":"friend.request.accepted"}`)

	// Проверки: без настроенного URL доставка не выполняется
	assert.Equal(t, int32(0), calls.Load())
}
