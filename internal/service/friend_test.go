package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worldme/worldme/internal/config"
	"github.com/worldme/worldme/internal/models"
	notify_mocks "github.com/worldme/worldme/internal/notify/mocks"
	"github.com/worldme/worldme/internal/service/mocks"
	"go.uber.org/mock/gomock"
)

// newTestFriendService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestFriendService(t *testing.T) (*friendService, *mocks.MockFriendshipRepository, *mocks.MockLocationRepository, *notify_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockFriendshipRepository(ctrl)
	locationsMock := mocks.NewMockLocationRepository(ctrl)
	publisherMock := notify_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		FriendRequestLimit:  5,
		FriendRequestWindow: time.Hour,
	}

	service := NewFriendService(repoMock, locationsMock, logger, cfg, publisherMock)
	return service.(*friendService), repoMock, locationsMock, publisherMock
}

// sharedZone возвращает публичную локацию с заданным ключом зоны
func sharedZone(userID uuid.UUID, zoneKey string) *models.BlurredLocation {
	lat, lng := 40.713, -74.006
	return &models.BlurredLocation{
		UserID:           userID,
		BlurredLatitude:  &lat,
		BlurredLongitude: &lng,
		ZoneKey:          &zoneKey,
		SharingEnabled:   true,
	}
}

func TestSendRequest_SelfRequest(t *testing.T) {
	// Подготовка
	service, _, _, _ := newTestFriendService(t)
	ctx := context.Background()
	userID := uuid.New()

	// Действие: никаких ожиданий — отказ до любых чтений
	edge, err := service.SendRequest(ctx, userID, userID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrSelfRequest)
	assert.Nil(t, edge)
}

func TestSendRequest_AlreadyConnected(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestFriendService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	recipientID := uuid.New()
	existing := &models.FriendshipEdge{
		ID:     uuid.New(),
		Status: models.FriendshipStatusAccepted,
	}

	// Ожидания: проверка существующего ребра идёт раньше лимита и зоны
	repoMock.EXPECT().
		GetEdge(ctx, requesterID, recipientID).
		Return(existing, nil).
		Times(1)

	// Действие
	edge, err := service.SendRequest(ctx, requesterID, recipientID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrAlreadyConnected)
	assert.Nil(t, edge)
}

func TestSendRequest_RejectedEdgeAllowsRetry(t *testing.T) {
	// Подготовка
	service, repoMock, locationsMock, publisherMock := newTestFriendService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	recipientID := uuid.New()
	zoneKey := "z100:45316:-92045"
	rejected := &models.FriendshipEdge{
		ID:     uuid.New(),
		Status: models.FriendshipStatusRejected,
	}

	// Ожидания: отклонённое ребро не блокирует повторную заявку
	repoMock.EXPECT().GetEdge(ctx, requesterID, recipientID).Return(rejected, nil).Times(1)
	repoMock.EXPECT().GetWindow(ctx, requesterID).Return(nil, nil).Times(1)
	locationsMock.EXPECT().GetPublic(ctx, requesterID).Return(sharedZone(requesterID, zoneKey), nil).Times(1)
	locationsMock.EXPECT().GetPublic(ctx, recipientID).Return(sharedZone(recipientID, zoneKey), nil).Times(1)
	repoMock.EXPECT().CreateRequest(ctx, gomock.Any(), 5, time.Hour).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	edge, err := service.SendRequest(ctx, requesterID, recipientID)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, edge)
	assert.Equal(t, models.FriendshipStatusPending, edge.Status)
}

func TestSendRequest_RateLimited(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestFriendService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	recipientID := uuid.New()
	window := &models.FriendRequestRateWindow{
		UserID:       requesterID,
		WindowStart:  time.Now().Add(-10 * time.Minute),
		RequestCount: 5,
	}

	// Ожидания: лимит проверяется до зоны — чтений локаций быть не должно
	repoMock.EXPECT().GetEdge(ctx, requesterID, recipientID).Return(nil, nil).Times(1)
	repoMock.EXPECT().GetWindow(ctx, requesterID).Return(window, nil).Times(1)

	// Действие: шестая заявка в окне
	edge, err := service.SendRequest(ctx, requesterID, recipientID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrRateLimited)
	assert.Nil(t, edge)
}

func TestSendRequest_ExpiredWindowNotLimited(t *testing.T) {
	// Подготовка
	service, repoMock, locationsMock, publisherMock := newTestFriendService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	recipientID := uuid.New()
	zoneKey := "z100:45316:-92045"
	window := &models.FriendRequestRateWindow{
		UserID:       requesterID,
		WindowStart:  time.Now().Add(-2 * time.Hour),
		RequestCount: 5,
	}

	// Ожидания: истёкшее окно не считается активным
	repoMock.EXPECT().GetEdge(ctx, requesterID, recipientID).Return(nil, nil).Times(1)
	repoMock.EXPECT().GetWindow(ctx, requesterID).Return(window, nil).Times(1)
	locationsMock.EXPECT().GetPublic(ctx, requesterID).Return(sharedZone(requesterID, zoneKey), nil).Times(1)
	locationsMock.EXPECT().GetPublic(ctx, recipientID).Return(sharedZone(recipientID, zoneKey), nil).Times(1)
	repoMock.EXPECT().CreateRequest(ctx, gomock.Any(), 5, time.Hour).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	edge, err := service.SendRequest(ctx, requesterID, recipientID)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, edge)
}

func TestSendRequest_OutOfZone(t *testing.T) {
	// Подготовка
	service, repoMock, locationsMock, _ := newTestFriendService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	recipientID := uuid.New()

	// Ожидания: пользователи в разных зонах
	repoMock.EXPECT().GetEdge(ctx, requesterID, recipientID).Return(nil, nil).Times(1)
	repoMock.EXPECT().GetWindow(ctx, requesterID).Return(nil, nil).Times(1)
	locationsMock.EXPECT().GetPublic(ctx, requesterID).Return(sharedZone(requesterID, "z100:45316:-92045"), nil).Times(1)
	locationsMock.EXPECT().GetPublic(ctx, recipientID).Return(sharedZone(recipientID, "z100:45317:-92045"), nil).Times(1)

	// Действие
	edge, err := service.SendRequest(ctx, requesterID, recipientID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrOutOfZone)
	assert.Nil(t, edge)
}

func TestSendRequest_RecipientNotSharing(t *testing.T) {
	// Подготовка
	service, repoMock, locationsMock, _ := newTestFriendService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	recipientID := uuid.New()

	// Ожидания: у получателя нет публичной локации — зона неизвестна
	repoMock.EXPECT().GetEdge(ctx, requesterID, recipientID).Return(nil, nil).Times(1)
	repoMock.EXPECT().GetWindow(ctx, requesterID).Return(nil, nil).Times(1)
	locationsMock.EXPECT().GetPublic(ctx, requesterID).Return(sharedZone(requesterID, "z100:45316:-92045"), nil).Times(1)
	locationsMock.EXPECT().GetPublic(ctx, recipientID).Return(nil, models.ErrNotFound).Times(1)

	// Действие
	edge, err := service.SendRequest(ctx, requesterID, recipientID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrOutOfZone)
	assert.Nil(t, edge)
}

func TestSendRequest_Success(t *testing.T) {
	// Подготовка
	service, repoMock, locationsMock, publisherMock := newTestFriendService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	recipientID := uuid.New()
	zoneKey := "z100:45316:-92045"

	// Ожидания
	repoMock.EXPECT().GetEdge(ctx, requesterID, recipientID).Return(nil, nil).Times(1)
	repoMock.EXPECT().GetWindow(ctx, requesterID).Return(nil, nil).Times(1)
	locationsMock.EXPECT().GetPublic(ctx, requesterID).Return(sharedZone(requesterID, zoneKey), nil).Times(1)
	locationsMock.EXPECT().GetPublic(ctx, recipientID).Return(sharedZone(recipientID, zoneKey), nil).Times(1)

	repoMock.EXPECT().
		CreateRequest(ctx, gomock.Any(), 5, time.Hour).
		DoAndReturn(func(_ context.Context, edge *models.FriendshipEdge, _ int, _ time.Duration) error {
			// Пара хранится в каноническом порядке, инициатор сохранён отдельно
			assert.True(t, edge.UserA.String() < edge.UserB.String())
			assert.Equal(t, requesterID, edge.RequesterID)
			assert.Equal(t, models.FriendshipStatusPending, edge.Status)
			return nil
		}).
		Times(1)

	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	edge, err := service.SendRequest(ctx, requesterID, recipientID)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, edge)
	assert.Equal(t, recipientID, edge.RecipientID())
}

func TestSendRequest_TransactionalRateLimit(t *testing.T) {
	// Подготовка
	service, repoMock, locationsMock, _ := newTestFriendService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	recipientID := uuid.New()
	zoneKey := "z100:45316:-92045"

	// Ожидания: конкурентная заявка добила лимит между чтением окна и транзакцией
	repoMock.EXPECT().GetEdge(ctx, requesterID, recipientID).Return(nil, nil).Times(1)
	repoMock.EXPECT().GetWindow(ctx, requesterID).Return(nil, nil).Times(1)
	locationsMock.EXPECT().GetPublic(ctx, requesterID).Return(sharedZone(requesterID, zoneKey), nil).Times(1)
	locationsMock.EXPECT().GetPublic(ctx, recipientID).Return(sharedZone(recipientID, zoneKey), nil).Times(1)
	repoMock.EXPECT().CreateRequest(ctx, gomock.Any(), 5, time.Hour).Return(models.ErrRateLimited).Times(1)

	// Действие
	edge, err := service.SendRequest(ctx, requesterID, recipientID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrRateLimited)
	assert.Nil(t, edge)
}

func TestRespond_Accept_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, publisherMock := newTestFriendService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	recipientID := uuid.New()
	edgeID := uuid.New()
	edge := &models.FriendshipEdge{
		ID:          edgeID,
		UserA:       requesterID,
		UserB:       recipientID,
		RequesterID: requesterID,
		Status:      models.FriendshipStatusPending,
	}
	edge.EnsureCanonicalOrder()

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, edgeID).Return(edge, nil).Times(1)
	repoMock.EXPECT().UpdateStatus(ctx, edgeID, models.FriendshipStatusAccepted).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	updated, err := service.Respond(ctx, recipientID, edgeID, true)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.FriendshipStatusAccepted, updated.Status)
}

func TestRespond_Reject_NoEvent(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestFriendService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	recipientID := uuid.New()
	edgeID := uuid.New()
	edge := &models.FriendshipEdge{
		ID:          edgeID,
		UserA:       requesterID,
		UserB:       recipientID,
		RequesterID: requesterID,
		Status:      models.FriendshipStatusPending,
	}
	edge.EnsureCanonicalOrder()

	// Ожидания: отклонение не публикует событие
	repoMock.EXPECT().GetByID(ctx, edgeID).Return(edge, nil).Times(1)
	repoMock.EXPECT().UpdateStatus(ctx, edgeID, models.FriendshipStatusRejected).Return(nil).Times(1)

	// Действие
	updated, err := service.Respond(ctx, recipientID, edgeID, false)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.FriendshipStatusRejected, updated.Status)
}

func TestRespond_NotRecipient(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestFriendService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	recipientID := uuid.New()
	edgeID := uuid.New()
	edge := &models.FriendshipEdge{
		ID:          edgeID,
		UserA:       requesterID,
		UserB:       recipientID,
		RequesterID: requesterID,
		Status:      models.FriendshipStatusPending,
	}
	edge.EnsureCanonicalOrder()

	// Ожидания: инициатор не может принять собственную заявку
	repoMock.EXPECT().GetByID(ctx, edgeID).Return(edge, nil).Times(1)

	// Действие
	updated, err := service.Respond(ctx, requesterID, edgeID, true)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrForbidden)
	assert.Nil(t, updated)
}

func TestRespond_NotPending(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestFriendService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	recipientID := uuid.New()
	edgeID := uuid.New()
	edge := &models.FriendshipEdge{
		ID:          edgeID,
		UserA:       requesterID,
		UserB:       recipientID,
		RequesterID: requesterID,
		Status:      models.FriendshipStatusAccepted,
	}
	edge.EnsureCanonicalOrder()

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, edgeID).Return(edge, nil).Times(1)

	// Действие
	updated, err := service.Respond(ctx, recipientID, edgeID, true)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrAlreadyConnected)
	assert.Nil(t, updated)
}

func TestListIncomingPending_FiltersOwnRequests(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestFriendService(t)
	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()
	incoming := &models.FriendshipEdge{ID: uuid.New(), UserA: userID, UserB: otherID, RequesterID: otherID, Status: models.FriendshipStatusPending}
	outgoing := &models.FriendshipEdge{ID: uuid.New(), UserA: userID, UserB: uuid.New(), RequesterID: userID, Status: models.FriendshipStatusPending}

	// Ожидания
	repoMock.EXPECT().
		ListForUser(ctx, userID, models.FriendshipStatusPending).
		Return([]*models.FriendshipEdge{incoming, outgoing}, nil).
		Times(1)

	// Действие
	edges, err := service.ListIncomingPending(ctx, userID)

	// Проверки
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, incoming.ID, edges[0].ID)
}

func TestListFriends_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestFriendService(t)
	ctx := context.Background()
	userID := uuid.New()
	expected := []*models.FriendshipEdge{
		{ID: uuid.New(), Status: models.FriendshipStatusAccepted},
	}

	// Ожидания
	repoMock.EXPECT().
		ListForUser(ctx, userID, models.FriendshipStatusAccepted).
		Return(expected, nil).
		Times(1)

	// Действие
	edges, err := service.ListFriends(ctx, userID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, edges)
}
