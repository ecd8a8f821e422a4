package tracker

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/worldme/worldme/internal/models"
	"github.com/worldme/worldme/internal/service"
)

// Tracker - непрерывная публикация позиций пользователей.
// На пользователя поднимается одна горутина, читающая подписку источника
// и публикующая каждую позицию через LocationService (частота ограничена
// внутри сервиса). Подписка обязана завершаться при Stop или отмене
// контекста, иначе записи продолжатся после выключения шаринга.
type Tracker struct {
	locations service.LocationService
	logger    *logrus.Logger

	mu      sync.Mutex
	cancels map[uuid.UUID]context.CancelFunc
}

// New создает новый Tracker
func New(locations service.LocationService, logger *logrus.Logger) *Tracker {
	return &Tracker{
		locations: locations,
		logger:    logger,
		cancels:   make(map[uuid.UUID]context.CancelFunc),
	}
}

// Start запускает непрерывный трекинг пользователя от источника позиций.
// Повторный Start для того же пользователя заменяет предыдущую подписку.
func (t *Tracker) Start(ctx context.Context, userID uuid.UUID, source service.PositionSource) error {
	log := t.logger.WithFields(logrus.Fields{
		"component": "tracker",
		"user_id":   userID,
	})

	trackCtx, cancel := context.WithCancel(ctx)

	positions, err := source.Watch(trackCtx)
	if err != nil {
		cancel()
		log.WithError(err).Warn("Failed to subscribe to position source")
		return err
	}

	t.mu.Lock()
	if prev, ok := t.cancels[userID]; ok {
		prev()
	}
	t.cancels[userID] = cancel
	t.mu.Unlock()

	log.Info("Continuous tracking started")
	go t.run(trackCtx, userID, positions, log)
	return nil
}

// Stop завершает трекинг пользователя. Идемпотентен.
func (t *Tracker) Stop(userID uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if cancel, ok := t.cancels[userID]; ok {
		cancel()
		delete(t.cancels, userID)
		t.logger.WithField("user_id", userID).Info("Continuous tracking stopped")
	}
}

// StopAll завершает все подписки (graceful shutdown)
func (t *Tracker) StopAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for userID, cancel := range t.cancels {
		cancel()
		delete(t.cancels, userID)
	}
}

func (t *Tracker) run(ctx context.Context, userID uuid.UUID, positions <-chan service.Position, log *logrus.Entry) {
	for {
		select {
		case <-ctx.Done():
			return
		case pos, ok := <-positions:
			if !ok {
				log.Debug("Position source closed, tracking finished")
				t.Stop(userID)
				return
			}
			err := t.locations.Publish(ctx, userID, pos.Latitude, pos.Longitude)
			switch {
			case err == nil:
			case errors.Is(err, models.ErrSharingDisabled):
				// Шаринг выключили - подписка больше не нужна
				log.Info("Sharing disabled, stopping tracking")
				t.Stop(userID)
				return
			default:
				// Ошибка записи нефатальна: следующая позиция повторит публикацию
				log.WithError(err).Warn("Failed to publish tracked position")
			}
		}
	}
}
