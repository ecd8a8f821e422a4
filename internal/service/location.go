package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/worldme/worldme/internal/config"
	"github.com/worldme/worldme/internal/models"
	"github.com/worldme/worldme/internal/notify"
	"github.com/worldme/worldme/internal/zone"
)

// SharingState - состояние цикла публикации локации для пользователя
type SharingState string

const (
	SharingStateIdle       SharingState = "idle"
	SharingStateRequesting SharingState = "requesting"
	SharingStateActive     SharingState = "active"
	SharingStateError      SharingState = "error"
)

// LocationRepository определяет контракт для работы с хранилищем локаций
type LocationRepository interface {
	SavePrivate(ctx context.Context, loc *models.RawLocation) error
	SavePublic(ctx context.Context, loc *models.BlurredLocation) error
	DisableSharing(ctx context.Context, userID uuid.UUID) error
	GetPublic(ctx context.Context, userID uuid.UUID) (*models.BlurredLocation, error)
	ListByZone(ctx context.Context, zoneKey string) ([]*models.BlurredLocation, error)
	GetPublicFromCache(ctx context.Context, userID uuid.UUID) (*models.BlurredLocation, error)
	SetPublicCache(ctx context.Context, loc *models.BlurredLocation) error
	InvalidatePublicCache(ctx context.Context, userID uuid.UUID) error
}

// ZoneMember - участник зоны с декоративным названием зоны
type ZoneMember struct {
	Location  *models.BlurredLocation
	ZoneLabel string
}

// LocationService определяет контракт цикла публикации локации
type LocationService interface {
	EnableSharing(ctx context.Context, userID uuid.UUID, source PositionSource) error
	DisableSharing(ctx context.Context, userID uuid.UUID) error
	Publish(ctx context.Context, userID uuid.UUID, lat, lng float64) error
	GetPublic(ctx context.Context, userID uuid.UUID) (*models.BlurredLocation, error)
	ListZoneMembers(ctx context.Context, zoneKey string) ([]ZoneMember, error)
	State(userID uuid.UUID) SharingState
}

type locationService struct {
	repo      LocationRepository
	logger    *logrus.Logger
	cfg       *config.Config
	publisher notify.Publisher

	mu          sync.Mutex
	states      map[uuid.UUID]SharingState
	lastPublish map[uuid.UUID]time.Time
}

func NewLocationService(repo LocationRepository, logger *logrus.Logger, cfg *config.Config, publisher notify.Publisher) LocationService {
	return &locationService{
		repo:        repo,
		logger:      logger,
		cfg:         cfg,
		publisher:   publisher,
		states:      make(map[uuid.UUID]SharingState),
		lastPublish: make(map[uuid.UUID]time.Time),
	}
}

// EnableSharing включает шаринг: запрашивает позицию у источника с таймаутом,
// при недоступности подставляет фолбэк-координату (намерение пользователя
// важнее точности), затем публикует приватную и публичную записи.
func (s *locationService) EnableSharing(ctx context.Context, userID uuid.UUID, source PositionSource) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "EnableSharing",
		"user_id": userID,
	})
	log.Info("Enabling location sharing")

	s.setState(userID, SharingStateRequesting)

	acqCtx, cancel := context.WithTimeout(ctx, s.cfg.GeoTimeout)
	defer cancel()

	pos, err := source.Current(acqCtx)
	if err != nil {
		// Недоступность геолокации нефатальна: деградируем до фолбэка
		log.WithError(err).Warn("Position unavailable, falling back to default coordinate")
		s.setState(userID, SharingStateError)
		pos = Position{
			Latitude:   s.cfg.FallbackLatitude,
			Longitude:  s.cfg.FallbackLongitude,
			CapturedAt: time.Now(),
		}
	}

	if err := s.publish(ctx, userID, pos.Latitude, pos.Longitude); err != nil {
		// Состояние шаринга не откатываем: следующая публикация повторит запись
		log.WithError(err).Error("Failed to persist location on sharing enable")
		return fmt.Errorf("service: could not enable sharing: %w", err)
	}

	s.setState(userID, SharingStateActive)
	log.Info("Location sharing enabled")
	return nil
}

// DisableSharing выключает шаринг: публичная запись очищается (флаг снят,
// размытые координаты и зона обнулены). Новое чтение геолокации не требуется,
// приватная запись сохраняется для быстрого возобновления.
func (s *locationService) DisableSharing(ctx context.Context, userID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "DisableSharing",
		"user_id": userID,
	})
	log.Info("Disabling location sharing")

	s.setState(userID, SharingStateIdle)

	if err := s.repo.DisableSharing(ctx, userID); err != nil {
		log.WithError(err).Error("Failed to clear public location")
		return fmt.Errorf("service: could not disable sharing: %w", models.ErrPersistenceFailed)
	}

	if err := s.repo.InvalidatePublicCache(ctx, userID); err != nil {
		log.WithError(err).Warn("Failed to invalidate public location cache")
	}

	log.Info("Location sharing disabled")
	return nil
}

// Publish публикует позицию пользователя: блюр, приватная и публичная записи.
// Вызовы чаще MinPublishInterval пропускаются, чтобы непрерывный трекинг
// не раздувал количество записей.
func (s *locationService) Publish(ctx context.Context, userID uuid.UUID, lat, lng float64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "Publish",
		"user_id": userID,
	})

	state, err := s.hydrateState(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to read sharing state")
		return fmt.Errorf("service: could not read sharing state: %w: %w", models.ErrPersistenceFailed, err)
	}
	if state != SharingStateActive && state != SharingStateError && state != SharingStateRequesting {
		log.Warn("Publish attempted with sharing disabled")
		return fmt.Errorf("service: %w", models.ErrSharingDisabled)
	}

	if !s.shouldPublish(userID) {
		log.Debug("Publish skipped: below minimum publish interval")
		return nil
	}

	if err := s.publish(ctx, userID, lat, lng); err != nil {
		log.WithError(err).Error("Failed to publish location")
		return fmt.Errorf("service: could not publish location: %w", err)
	}

	s.setState(userID, SharingStateActive)
	log.Debug("Location published")
	return nil
}

// publish - общий шаг публикации: валидация и блюр до каких-либо записей,
// затем приватная запись и публичная запись, затем инвалидация кэша и событие
func (s *locationService) publish(ctx context.Context, userID uuid.UUID, lat, lng float64) error {
	point, err := zone.Blur(lat, lng, s.cfg.BlurRadiusMeters)
	if err != nil {
		return err
	}

	now := time.Now()
	private := &models.RawLocation{
		UserID:     userID,
		Latitude:   lat,
		Longitude:  lng,
		CapturedAt: now,
	}
	public := &models.BlurredLocation{
		UserID:           userID,
		BlurredLatitude:  &point.Latitude,
		BlurredLongitude: &point.Longitude,
		ZoneKey:          &point.ZoneKey,
		SharingEnabled:   true,
		UpdatedAt:        now,
	}

	if err := s.repo.SavePrivate(ctx, private); err != nil {
		return fmt.Errorf("%w: %w", models.ErrPersistenceFailed, err)
	}
	if err := s.repo.SavePublic(ctx, public); err != nil {
		return fmt.Errorf("%w: %w", models.ErrPersistenceFailed, err)
	}

	s.markPublished(userID)

	if err := s.repo.InvalidatePublicCache(ctx, userID); err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Warn("Failed to invalidate public location cache")
	}

	event, err := notify.NewEvent(notify.EventLocationUpdated, userID, map[string]string{"zone_key": point.ZoneKey})
	if err == nil {
		err = s.publisher.Publish(ctx, event)
	}
	if err != nil {
		// Доставка события best-effort, публикация уже состоялась
		s.logger.WithError(err).WithField("user_id", userID).Warn("Failed to publish location.updated event")
	}
	return nil
}

// GetPublic возвращает публичную размытую локацию пользователя (кэш, затем бд)
func (s *locationService) GetPublic(ctx context.Context, userID uuid.UUID) (*models.BlurredLocation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "GetPublic",
		"user_id": userID,
	})

	cached, err := s.repo.GetPublicFromCache(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("Failed to read public location cache")
	}
	if cached != nil {
		return cached, nil
	}

	loc, err := s.repo.GetPublic(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		log.WithError(err).Error("Failed to get public location from repository")
		return nil, fmt.Errorf("service: could not get public location: %w", err)
	}

	if err := s.repo.SetPublicCache(ctx, loc); err != nil {
		log.WithError(err).Warn("Failed to set public location cache")
	}
	return loc, nil
}

// ListZoneMembers возвращает пользователей, шарящих локацию в зоне,
// с человекочитаемым названием зоны
func (s *locationService) ListZoneMembers(ctx context.Context, zoneKey string) ([]ZoneMember, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "location",
		"method":   "ListZoneMembers",
		"zone_key": zoneKey,
	})

	locations, err := s.repo.ListByZone(ctx, zoneKey)
	if err != nil {
		log.WithError(err).Error("Failed to list zone members from repository")
		return nil, fmt.Errorf("service: could not list zone members: %w", err)
	}

	label := zone.Name(zoneKey)
	members := make([]ZoneMember, len(locations))
	for i, loc := range locations {
		members[i] = ZoneMember{Location: loc, ZoneLabel: label}
	}

	log.WithField("count", len(members)).Info("Zone members listed")
	return members, nil
}

// State возвращает текущее состояние публикации для пользователя
func (s *locationService) State(userID uuid.UUID) SharingState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state, ok := s.states[userID]; ok {
		return state
	}
	return SharingStateIdle
}

func (s *locationService) setState(userID uuid.UUID, state SharingState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[userID] = state
}

// hydrateState восстанавливает состояние из публичной записи после рестарта процесса.
// Сбой чтения (кроме отсутствия записи) не кэшируется: состояние остается неизвестным
// и ошибка возвращается вызывающему.
func (s *locationService) hydrateState(ctx context.Context, userID uuid.UUID) (SharingState, error) {
	s.mu.Lock()
	if state, ok := s.states[userID]; ok {
		s.mu.Unlock()
		return state, nil
	}
	s.mu.Unlock()

	loc, err := s.repo.GetPublic(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			s.setState(userID, SharingStateIdle)
			return SharingStateIdle, nil
		}
		return SharingStateIdle, err
	}
	if loc.SharingEnabled {
		s.setState(userID, SharingStateActive)
		return SharingStateActive, nil
	}
	s.setState(userID, SharingStateIdle)
	return SharingStateIdle, nil
}

func (s *locationService) shouldPublish(userID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	last, ok := s.lastPublish[userID]
	return !ok || time.Since(last) >= s.cfg.MinPublishInterval
}

func (s *locationService) markPublished(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastPublish[userID] = time.Now()
}
