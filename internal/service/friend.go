package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/worldme/worldme/internal/config"
	"github.com/worldme/worldme/internal/models"
	"github.com/worldme/worldme/internal/notify"
)

// FriendshipRepository определяет контракт для работы с бд связей
type FriendshipRepository interface {
	GetEdge(ctx context.Context, a, b uuid.UUID) (*models.FriendshipEdge, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.FriendshipEdge, error)
	// CreateRequest атомарно инкрементирует окно лимита заявителя и создаёт
	// (или переоткрывает отклонённое) ребро в одном SQL-транзакте.
	// Инкремент выполняется первым: при превышении лимита ребро не создаётся.
	CreateRequest(ctx context.Context, edge *models.FriendshipEdge, limit int, window time.Duration) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.FriendshipStatus) error
	ListForUser(ctx context.Context, userID uuid.UUID, status models.FriendshipStatus) ([]*models.FriendshipEdge, error)
	GetWindow(ctx context.Context, userID uuid.UUID) (*models.FriendRequestRateWindow, error)
}

// FriendService определяет контракт зонально-ограниченных заявок в друзья
type FriendService interface {
	SendRequest(ctx context.Context, requesterID, recipientID uuid.UUID) (*models.FriendshipEdge, error)
	Respond(ctx context.Context, userID, edgeID uuid.UUID, accept bool) (*models.FriendshipEdge, error)
	ListFriends(ctx context.Context, userID uuid.UUID) ([]*models.FriendshipEdge, error)
	ListIncomingPending(ctx context.Context, userID uuid.UUID) ([]*models.FriendshipEdge, error)
}

type friendService struct {
	repo      FriendshipRepository
	locations LocationRepository
	logger    *logrus.Logger
	cfg       *config.Config
	publisher notify.Publisher
}

func NewFriendService(repo FriendshipRepository, locations LocationRepository, logger *logrus.Logger, cfg *config.Config, publisher notify.Publisher) FriendService {
	return &friendService{
		repo:      repo,
		locations: locations,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
	}
}

// SendRequest проверяет право на заявку и создаёт ребро в статусе pending.
// Порядок проверок фиксирован: сам себе -> уже связаны -> лимит -> зона.
// Все проверки выполняются до каких-либо записей; запись ребра и инкремент
// окна - одна транзакция (инкремент первым, fail closed).
func (s *friendService) SendRequest(ctx context.Context, requesterID, recipientID uuid.UUID) (*models.FriendshipEdge, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "friend",
		"method":       "SendRequest",
		"requester_id": requesterID,
		"recipient_id": recipientID,
	})
	log.Info("Processing friend request")

	if requesterID == recipientID {
		log.Warn("Friend request to self rejected")
		return nil, fmt.Errorf("service: %w", models.ErrSelfRequest)
	}

	existing, err := s.repo.GetEdge(ctx, requesterID, recipientID)
	if err != nil {
		log.WithError(err).Error("Failed to look up existing edge")
		return nil, fmt.Errorf("service: could not check existing friendship: %w", err)
	}
	if existing != nil && (existing.Status == models.FriendshipStatusPending || existing.Status == models.FriendshipStatusAccepted) {
		log.WithField("status", existing.Status).Warn("Friend request rejected: edge already exists")
		return nil, fmt.Errorf("service: %w (current status: %s)", models.ErrAlreadyConnected, existing.Status)
	}

	window, err := s.repo.GetWindow(ctx, requesterID)
	if err != nil {
		log.WithError(err).Error("Failed to read rate window")
		return nil, fmt.Errorf("service: could not check rate limit: %w", err)
	}
	if window.Active(time.Now(), s.cfg.FriendRequestWindow) && window.RequestCount >= s.cfg.FriendRequestLimit {
		log.WithField("request_count", window.RequestCount).Warn("Friend request rejected: rate limited")
		return nil, fmt.Errorf("service: %w", models.ErrRateLimited)
	}

	requesterZone, err := s.zoneKeyOf(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	recipientZone, err := s.zoneKeyOf(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	// Заявки только внутри одной зоны: это анти-спам и анти-сталкинг правило
	if requesterZone == "" || recipientZone == "" || requesterZone != recipientZone {
		log.Warn("Friend request rejected: users are not in the same zone")
		return nil, fmt.Errorf("service: %w", models.ErrOutOfZone)
	}

	edge := &models.FriendshipEdge{
		UserA:       requesterID,
		UserB:       recipientID,
		RequesterID: requesterID,
		Status:      models.FriendshipStatusPending,
	}
	edge.EnsureCanonicalOrder()

	if err := s.repo.CreateRequest(ctx, edge, s.cfg.FriendRequestLimit, s.cfg.FriendRequestWindow); err != nil {
		log.WithError(err).Error("Failed to create friend request")
		return nil, fmt.Errorf("service: could not create friend request: %w", err)
	}

	s.emit(ctx, notify.EventFriendRequestCreated, recipientID, edge)
	log.WithField("edge_id", edge.ID).Info("Friend request created")
	return edge, nil
}

// Respond обрабатывает принятие или отклонение заявки получателем
func (s *friendService) Respond(ctx context.Context, userID, edgeID uuid.UUID, accept bool) (*models.FriendshipEdge, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "friend",
		"method":  "Respond",
		"user_id": userID,
		"edge_id": edgeID,
		"accept":  accept,
	})
	log.Info("Processing friend request response")

	edge, err := s.repo.GetByID(ctx, edgeID)
	if err != nil {
		log.WithError(err).Warn("Friend request not found")
		return nil, fmt.Errorf("service: could not get friend request: %w", err)
	}
	if edge.RecipientID() != userID {
		log.Warn("Response rejected: user is not the recipient")
		return nil, fmt.Errorf("service: only the recipient may respond: %w", models.ErrForbidden)
	}
	if edge.Status != models.FriendshipStatusPending {
		log.WithField("status", edge.Status).Warn("Response rejected: request is not pending")
		return nil, fmt.Errorf("service: %w (current status: %s)", models.ErrAlreadyConnected, edge.Status)
	}

	status := models.FriendshipStatusRejected
	if accept {
		status = models.FriendshipStatusAccepted
	}
	if err := s.repo.UpdateStatus(ctx, edgeID, status); err != nil {
		log.WithError(err).Error("Failed to update friend request status")
		return nil, fmt.Errorf("service: could not update friend request: %w", err)
	}
	edge.Status = status

	if accept {
		s.emit(ctx, notify.EventFriendRequestAccepted, edge.RequesterID, edge)
	}
	log.Info("Friend request response processed")
	return edge, nil
}

// ListFriends возвращает принятые связи пользователя
func (s *friendService) ListFriends(ctx context.Context, userID uuid.UUID) ([]*models.FriendshipEdge, error) {
	edges, err := s.repo.ListForUser(ctx, userID, models.FriendshipStatusAccepted)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to list friends")
		return nil, fmt.Errorf("service: could not list friends: %w", err)
	}
	return edges, nil
}

// ListIncomingPending возвращает входящие необработанные заявки
func (s *friendService) ListIncomingPending(ctx context.Context, userID uuid.UUID) ([]*models.FriendshipEdge, error) {
	edges, err := s.repo.ListForUser(ctx, userID, models.FriendshipStatusPending)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to list pending requests")
		return nil, fmt.Errorf("service: could not list pending requests: %w", err)
	}
	incoming := make([]*models.FriendshipEdge, 0, len(edges))
	for _, edge := range edges {
		if edge.RequesterID != userID {
			incoming = append(incoming, edge)
		}
	}
	return incoming, nil
}

// zoneKeyOf возвращает ключ зоны пользователя или пустую строку,
// если шаринг выключен или локации нет
func (s *friendService) zoneKeyOf(ctx context.Context, userID uuid.UUID) (string, error) {
	loc, err := s.locations.GetPublic(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return "", nil
		}
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to read public location")
		return "", fmt.Errorf("service: could not read public location: %w", err)
	}
	if !loc.InZone() {
		return "", nil
	}
	return *loc.ZoneKey, nil
}

// emit публикует realtime-событие best-effort
func (s *friendService) emit(ctx context.Context, eventType string, userID uuid.UUID, payload any) {
	event, err := notify.NewEvent(eventType, userID, payload)
	if err == nil {
		err = s.publisher.Publish(ctx, event)
	}
	if err != nil {
		s.logger.WithError(err).WithField("event_type", eventType).Warn("Failed to publish notify event")
	}
}
