package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worldme/worldme/internal/models"
	notify_mocks "github.com/worldme/worldme/internal/notify/mocks"
	"github.com/worldme/worldme/internal/service/mocks"
	"go.uber.org/mock/gomock"
)

// newTestMessageService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestMessageService(t *testing.T) (*messageService, *mocks.MockMessageRepository, *mocks.MockFriendshipRepository, *notify_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockMessageRepository(ctrl)
	friendshipsMock := mocks.NewMockFriendshipRepository(ctrl)
	publisherMock := notify_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewMessageService(repoMock, friendshipsMock, logger, publisherMock)
	return service.(*messageService), repoMock, friendshipsMock, publisherMock
}

func acceptedEdge(a, b uuid.UUID) *models.FriendshipEdge {
	edge := &models.FriendshipEdge{
		ID:          uuid.New(),
		UserA:       a,
		UserB:       b,
		RequesterID: a,
		Status:      models.FriendshipStatusAccepted,
	}
	edge.EnsureCanonicalOrder()
	return edge
}

func TestSendMessage_Success(t *testing.T) {
	// Подготовка
	service, repoMock, friendshipsMock, publisherMock := newTestMessageService(t)
	ctx := context.Background()
	senderID := uuid.New()
	recipientID := uuid.New()

	// Ожидания
	friendshipsMock.EXPECT().
		GetEdge(ctx, senderID, recipientID).
		Return(acceptedEdge(senderID, recipientID), nil).
		Times(1)

	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, m *models.Message) error {
			assert.Equal(t, senderID, m.SenderID)
			assert.Equal(t, recipientID, m.RecipientID)
			assert.Equal(t, "Привет!", m.Body)
			return nil
		}).
		Times(1)

	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	message, err := service.Send(ctx, senderID, recipientID, "Привет!")

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, message)
}

func TestSendMessage_ToSelf(t *testing.T) {
	// Подготовка
	service, _, _, _ := newTestMessageService(t)
	ctx := context.Background()
	userID := uuid.New()

	// Действие
	message, err := service.Send(ctx, userID, userID, "эхо")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrSelfRequest)
	assert.Nil(t, message)
}

func TestSendMessage_NotFriends(t *testing.T) {
	// Подготовка
	service, _, friendshipsMock, _ := newTestMessageService(t)
	ctx := context.Background()
	senderID := uuid.New()
	recipientID := uuid.New()

	// Ожидания: ребра нет
	friendshipsMock.EXPECT().
		GetEdge(ctx, senderID, recipientID).
		Return(nil, nil).
		Times(1)

	// Действие
	message, err := service.Send(ctx, senderID, recipientID, "Привет!")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFriends)
	assert.Nil(t, message)
}

func TestSendMessage_PendingNotEnough(t *testing.T) {
	// Подготовка
	service, _, friendshipsMock, _ := newTestMessageService(t)
	ctx := context.Background()
	senderID := uuid.New()
	recipientID := uuid.New()
	pending := acceptedEdge(senderID, recipientID)
	pending.Status = models.FriendshipStatusPending

	// Ожидания: pending-заявка не даёт права на переписку
	friendshipsMock.EXPECT().
		GetEdge(ctx, senderID, recipientID).
		Return(pending, nil).
		Times(1)

	// Действие
	message, err := service.Send(ctx, senderID, recipientID, "Привет!")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFriends)
	assert.Nil(t, message)
}

func TestConversation_Success(t *testing.T) {
	// Подготовка
	service, repoMock, friendshipsMock, _ := newTestMessageService(t)
	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()
	expected := []*models.Message{
		{ID: uuid.New(), SenderID: userID, RecipientID: otherID, Body: "Привет"},
	}

	// Ожидания
	friendshipsMock.EXPECT().
		GetEdge(ctx, userID, otherID).
		Return(acceptedEdge(userID, otherID), nil).
		Times(1)

	repoMock.EXPECT().
		ListConversation(ctx, userID, otherID, 20).
		Return(expected, nil).
		Times(1)

	// Действие
	messages, err := service.Conversation(ctx, userID, otherID, 20)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, messages)
}

func TestConversation_LimitClamped(t *testing.T) {
	// Подготовка
	service, repoMock, friendshipsMock, _ := newTestMessageService(t)
	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()

	// Ожидания: запредельный лимит приводится к значению по умолчанию
	friendshipsMock.EXPECT().
		GetEdge(ctx, userID, otherID).
		Return(acceptedEdge(userID, otherID), nil).
		Times(1)

	repoMock.EXPECT().
		ListConversation(ctx, userID, otherID, 50).
		Return(nil, nil).
		Times(1)

	// Действие
	_, err := service.Conversation(ctx, userID, otherID, 100500)

	// Проверки
	require.NoError(t, err)
}
