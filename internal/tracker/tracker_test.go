package tracker

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worldme/worldme/internal/models"
	"github.com/worldme/worldme/internal/service"
)

// publishRecorder - фиксирует публикации вместо реального LocationService
type publishRecorder struct {
	mu        sync.Mutex
	published []service.Position
	errs      []error
}

func (r *publishRecorder) Publish(ctx context.Context, userID uuid.UUID, lat, lng float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.published = append(r.published, service.Position{Latitude: lat, Longitude: lng})
	if len(r.errs) > 0 {
		err := r.errs[0]
		r.errs = r.errs[1:]
		return err
	}
	return nil
}

func (r *publishRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.published)
}

func (r *publishRecorder) EnableSharing(ctx context.Context, userID uuid.UUID, source service.PositionSource) error {
	return nil
}
func (r *publishRecorder) DisableSharing(ctx context.Context, userID uuid.UUID) error { return nil }
func (r *publishRecorder) GetPublic(ctx context.Context, userID uuid.UUID) (*models.BlurredLocation, error) {
	return nil, models.ErrNotFound
}
func (r *publishRecorder) ListZoneMembers(ctx context.Context, zoneKey string) ([]service.ZoneMember, error) {
	return nil, nil
}
func (r *publishRecorder) State(userID uuid.UUID) service.SharingState {
	return service.SharingStateActive
}

// streamSource - источник позиций на канале, управляемый тестом
type streamSource struct {
	ch  chan service.Position
	err error
}

func (s *streamSource) Current(ctx context.Context) (service.Position, error) {
	return service.Position{}, models.ErrLocationUnavailable
}

func (s *streamSource) Watch(ctx context.Context) (<-chan service.Position, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.ch, nil
}

func newTestTracker() (*Tracker, *publishRecorder) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	recorder := &publishRecorder{}
	return New(recorder, logger), recorder
}

// waitFor опрашивает условие до таймаута
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("условие не выполнилось за отведённое время")
}

func TestTracker_PublishesPositions(t *testing.T) {
	// Подготовка
	tracker, recorder := newTestTracker()
	source := &streamSource{ch: make(chan service.Position, 2)}
	userID := uuid.New()

	// Действие
	err := tracker.Start(context.Background(), userID, source)
	require.NoError(t, err)
	defer tracker.StopAll()

	source.ch <- service.Position{Latitude: 40.7128, Longitude: -74.0060}
	source.ch <- service.Position{Latitude: 40.7129, Longitude: -74.0061}

	// Проверки
	waitFor(t, func() bool { return recorder.count() == 2 })
}

func TestTracker_SubscribeError(t *testing.T) {
	// Подготовка
	tracker, _ := newTestTracker()
	source := &streamSource{err: models.ErrLocationUnavailable}

	// Действие
	err := tracker.Start(context.Background(), uuid.New(), source)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrLocationUnavailable)
}

func TestTracker_StopsOnSharingDisabled(t *testing.T) {
	// Подготовка
	tracker, recorder := newTestTracker()
	recorder.errs = []error{fmt.Errorf("service: %w", models.ErrSharingDisabled)}
	source := &streamSource{ch: make(chan service.Position, 2)}
	userID := uuid.New()

	// Действие
	err := tracker.Start(context.Background(), userID, source)
	require.NoError(t, err)

	source.ch <- service.Position{Latitude: 40.7128, Longitude: -74.0060}
	waitFor(t, func() bool { return recorder.count() == 1 })

	// Проверки: после выключения шаринга следующая позиция не публикуется
	source.ch <- service.Position{Latitude: 40.7129, Longitude: -74.0061}
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, recorder.count())
}

func TestTracker_StopCancelsSubscription(t *testing.T) {
	// Подготовка
	tracker, recorder := newTestTracker()
	source := &streamSource{ch: make(chan service.Position, 2)}
	userID := uuid.New()

	err := tracker.Start(context.Background(), userID, source)
	require.NoError(t, err)

	source.ch <- service.Position{Latitude: 40.7128, Longitude: -74.0060}
	waitFor(t, func() bool { return recorder.count() == 1 })

	// Действие
	tracker.Stop(userID)
	tracker.Stop(userID) // идемпотентность

	// Проверки
	source.ch <- service.Position{Latitude: 40.7129, Longitude: -74.0061}
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, recorder.count())
}

func TestTracker_SourceClosedFinishesTracking(t *testing.T) {
	// Подготовка
	tracker, recorder := newTestTracker()
	source := &streamSource{ch: make(chan service.Position, 1)}
	userID := uuid.New()

	err := tracker.Start(context.Background(), userID, source)
	require.NoError(t, err)

	// Действие
	source.ch <- service.Position{Latitude: 40.7128, Longitude: -74.0060}
	close(source.ch)

	// Проверки: позиция опубликована, повторный Start после закрытия работает
	waitFor(t, func() bool { return recorder.count() == 1 })
	waitFor(t, func() bool {
		tracker.mu.Lock()
		defer tracker.mu.Unlock()
		_, ok := tracker.cancels[userID]
		return !ok
	})
}
