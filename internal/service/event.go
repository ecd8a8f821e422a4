package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/worldme/worldme/internal/config"
	"github.com/worldme/worldme/internal/models"
	"github.com/worldme/worldme/internal/zone"
)

// EventRepository определяет контракт для работы с бд событий
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	ListByZone(ctx context.Context, zoneKey string) ([]*models.Event, error)
	FindNearby(ctx context.Context, lat, lng, radiusMeters float64) ([]*models.Event, error)
}

// EventService определяет контракт управления событиями на карте
type EventService interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error)
	UpdateEvent(ctx context.Context, userID uuid.UUID, event *models.Event) error
	CancelEvent(ctx context.Context, userID, id uuid.UUID) error
	ListByZone(ctx context.Context, zoneKey string) ([]*models.Event, error)
	FindNearby(ctx context.Context, lat, lng, radiusMeters float64) ([]*models.Event, error)
}

type eventService struct {
	repo      EventRepository
	locations LocationRepository
	logger    *logrus.Logger
	cfg       *config.Config
}

func NewEventService(repo EventRepository, locations LocationRepository, logger *logrus.Logger, cfg *config.Config) EventService {
	return &eventService{
		repo:      repo,
		locations: locations,
		logger:    logger,
		cfg:       cfg,
	}
}

// CreateEvent создает событие. Место события штампуется ключом зоны;
// создатель обязан шарить локацию и находиться в той же зоне, что и место
// события - то же зональное правило, что и для заявок в друзья.
func (s *eventService) CreateEvent(ctx context.Context, event *models.Event) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "event",
		"method":     "CreateEvent",
		"creator_id": event.CreatorID,
		"name":       event.Name,
	})
	log.Info("Attempting to create a new event")

	point, err := zone.Blur(event.Latitude, event.Longitude, s.cfg.BlurRadiusMeters)
	if err != nil {
		log.WithError(err).Warn("Event venue coordinate rejected")
		return fmt.Errorf("service: invalid event venue: %w", err)
	}
	event.ZoneKey = point.ZoneKey

	creatorLoc, err := s.locations.GetPublic(ctx, event.CreatorID)
	if err != nil && !isNotFound(err) {
		log.WithError(err).Error("Failed to read creator public location")
		return fmt.Errorf("service: could not read creator location: %w", err)
	}
	if creatorLoc == nil || !creatorLoc.InZone() || *creatorLoc.ZoneKey != event.ZoneKey {
		log.Warn("Event creation rejected: creator is not in the venue zone")
		return fmt.Errorf("service: %w", models.ErrOutOfZone)
	}

	event.Status = "active"
	if err := s.repo.Create(ctx, event); err != nil {
		log.WithError(err).Error("Failed to create event in repository")
		return fmt.Errorf("service: could not create event: %w", err)
	}

	log.WithField("event_id", event.ID).Info("Event created successfully")
	return nil
}

// GetEvent получает событие по ID
func (s *eventService) GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithError(err).WithField("event_id", id).Warn("Failed to get event")
		return nil, fmt.Errorf("service: could not get event: %w", err)
	}
	return event, nil
}

// UpdateEvent обновляет событие; разрешено только создателю.
// Ключ зоны пересчитывается по новым координатам места.
func (s *eventService) UpdateEvent(ctx context.Context, userID uuid.UUID, event *models.Event) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "event",
		"method":   "UpdateEvent",
		"event_id": event.ID,
		"user_id":  userID,
	})
	log.Info("Attempting to update event")

	existing, err := s.repo.GetByID(ctx, event.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent event")
		return fmt.Errorf("service: event not found for update: %w", err)
	}
	if existing.CreatorID != userID {
		log.Warn("Update rejected: user is not the event creator")
		return fmt.Errorf("service: only the creator may update the event: %w", models.ErrForbidden)
	}

	point, err := zone.Blur(event.Latitude, event.Longitude, s.cfg.BlurRadiusMeters)
	if err != nil {
		return fmt.Errorf("service: invalid event venue: %w", err)
	}

	existing.Name = event.Name
	existing.Description = event.Description
	existing.Category = event.Category
	existing.Latitude = event.Latitude
	existing.Longitude = event.Longitude
	existing.ZoneKey = point.ZoneKey
	existing.StartsAt = event.StartsAt

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update event in repository")
		return fmt.Errorf("service: could not update event: %w", err)
	}
	log.Info("Event updated successfully")
	return nil
}

// CancelEvent отменяет событие; разрешено только создателю
func (s *eventService) CancelEvent(ctx context.Context, userID, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "event",
		"method":   "CancelEvent",
		"event_id": id,
		"user_id":  userID,
	})
	log.Info("Attempting to cancel event")

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to cancel a non-existent event")
		return fmt.Errorf("service: event not found for cancel: %w", err)
	}
	if existing.CreatorID != userID {
		log.Warn("Cancel rejected: user is not the event creator")
		return fmt.Errorf("service: only the creator may cancel the event: %w", models.ErrForbidden)
	}

	if err := s.repo.Deactivate(ctx, id); err != nil {
		log.WithError(err).Error("Failed to cancel event in repository")
		return fmt.Errorf("service: could not cancel event: %w", err)
	}

	log.Info("Event cancelled successfully")
	return nil
}

// ListByZone возвращает активные события зоны
func (s *eventService) ListByZone(ctx context.Context, zoneKey string) ([]*models.Event, error) {
	events, err := s.repo.ListByZone(ctx, zoneKey)
	if err != nil {
		s.logger.WithError(err).WithField("zone_key", zoneKey).Error("Failed to list events by zone")
		return nil, fmt.Errorf("service: could not list events: %w", err)
	}
	return events, nil
}

// FindNearby находит активные события в радиусе от точки
func (s *eventService) FindNearby(ctx context.Context, lat, lng, radiusMeters float64) ([]*models.Event, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "event",
		"method":  "FindNearby",
	})

	events, err := s.repo.FindNearby(ctx, lat, lng, radiusMeters)
	if err != nil {
		log.WithError(err).Error("Failed to find nearby events")
		return nil, fmt.Errorf("service: could not find nearby events: %w", err)
	}

	log.WithField("count", len(events)).Info("Nearby events found")
	return events, nil
}
