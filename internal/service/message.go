package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/worldme/worldme/internal/models"
	"github.com/worldme/worldme/internal/notify"
)

// MessageRepository определяет контракт для работы с бд сообщений
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	ListConversation(ctx context.Context, a, b uuid.UUID, limit int) ([]*models.Message, error)
}

// MessageService определяет контракт личных сообщений между друзьями
type MessageService interface {
	Send(ctx context.Context, senderID, recipientID uuid.UUID, body string) (*models.Message, error)
	Conversation(ctx context.Context, userID, otherID uuid.UUID, limit int) ([]*models.Message, error)
}

type messageService struct {
	repo        MessageRepository
	friendships FriendshipRepository
	logger      *logrus.Logger
	publisher   notify.Publisher
}

func NewMessageService(repo MessageRepository, friendships FriendshipRepository, logger *logrus.Logger, publisher notify.Publisher) MessageService {
	return &messageService{
		repo:        repo,
		friendships: friendships,
		logger:      logger,
		publisher:   publisher,
	}
}

// Send отправляет сообщение; разрешено только между принятыми друзьями
func (s *messageService) Send(ctx context.Context, senderID, recipientID uuid.UUID, body string) (*models.Message, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "message",
		"method":       "Send",
		"sender_id":    senderID,
		"recipient_id": recipientID,
	})
	log.Info("Sending message")

	if senderID == recipientID {
		log.Warn("Message to self rejected")
		return nil, fmt.Errorf("service: %w", models.ErrSelfRequest)
	}

	if err := s.requireFriendship(ctx, senderID, recipientID); err != nil {
		log.Warn("Message rejected: users are not friends")
		return nil, err
	}

	message := &models.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Body:        body,
	}
	if err := s.repo.Create(ctx, message); err != nil {
		log.WithError(err).Error("Failed to create message in repository")
		return nil, fmt.Errorf("service: could not send message: %w", err)
	}

	event, err := notify.NewEvent(notify.EventMessageCreated, recipientID, message)
	if err == nil {
		err = s.publisher.Publish(ctx, event)
	}
	if err != nil {
		log.WithError(err).Warn("Failed to publish message.created event")
	}

	log.WithField("message_id", message.ID).Info("Message sent")
	return message, nil
}

// Conversation возвращает переписку пользователя с другом
func (s *messageService) Conversation(ctx context.Context, userID, otherID uuid.UUID, limit int) ([]*models.Message, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "message",
		"method":   "Conversation",
		"user_id":  userID,
		"other_id": otherID,
	})

	if err := s.requireFriendship(ctx, userID, otherID); err != nil {
		log.Warn("Conversation rejected: users are not friends")
		return nil, err
	}

	if limit < 1 || limit > 200 {
		limit = 50
	}
	messages, err := s.repo.ListConversation(ctx, userID, otherID, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list conversation from repository")
		return nil, fmt.Errorf("service: could not list conversation: %w", err)
	}
	return messages, nil
}

func (s *messageService) requireFriendship(ctx context.Context, a, b uuid.UUID) error {
	edge, err := s.friendships.GetEdge(ctx, a, b)
	if err != nil {
		return fmt.Errorf("service: could not check friendship: %w", err)
	}
	if edge == nil || edge.Status != models.FriendshipStatusAccepted {
		return fmt.Errorf("service: %w", models.ErrNotFriends)
	}
	return nil
}
