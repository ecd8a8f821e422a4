package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
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

// newTestLocationService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestLocationService(t *testing.T) (*locationService, *mocks.MockLocationRepository, *notify_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockLocationRepository(ctrl)
	publisherMock := notify_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		BlurRadiusMeters:   100,
		FallbackLatitude:   40.7580,
		FallbackLongitude:  -73.9855,
		GeoTimeout:         time.Second,
		MinPublishInterval: 15 * time.Second,
	}

	service := NewLocationService(repoMock, logger, cfg, publisherMock)
	return service.(*locationService), repoMock, publisherMock
}

func TestEnableSharing_Success(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestLocationService(t)
	ctx := context.Background()
	userID := uuid.New()
	lat, lng := 40.7128, -74.0060

	// Ожидания
	// 1. Приватная запись получает точные координаты
	repoMock.EXPECT().
		SavePrivate(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, loc *models.RawLocation) error {
			assert.Equal(t, userID, loc.UserID)
			assert.Equal(t, lat, loc.Latitude)
			assert.Equal(t, lng, loc.Longitude)
			return nil
		}).
		Times(1)

	// 2. Публичная запись получает размытые координаты и ключ зоны
	repoMock.EXPECT().
		SavePublic(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, loc *models.BlurredLocation) error {
			assert.True(t, loc.SharingEnabled)
			require.NotNil(t, loc.BlurredLatitude)
			require.NotNil(t, loc.ZoneKey)
			assert.NotEqual(t, lat, *loc.BlurredLatitude)
			return nil
		}).
		Times(1)

	repoMock.EXPECT().
		InvalidatePublicCache(ctx, userID).
		Return(nil).
		Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	// Действие
	err := service.EnableSharing(ctx, userID, FixedPosition(lat, lng))

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, SharingStateActive, service.State(userID))
}

func TestEnableSharing_PositionUnavailable_Fallback(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestLocationService(t)
	ctx := context.Background()
	userID := uuid.New()

	// Ожидания: приватная запись получает фолбэк-координату
	repoMock.EXPECT().
		SavePrivate(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, loc *models.RawLocation) error {
			assert.Equal(t, 40.7580, loc.Latitude)
			assert.Equal(t, -73.9855, loc.Longitude)
			return nil
		}).
		Times(1)

	repoMock.EXPECT().SavePublic(ctx, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().InvalidatePublicCache(ctx, userID).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	err := service.EnableSharing(ctx, userID, NoPosition())

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, SharingStateActive, service.State(userID))
}

func TestEnableSharing_PersistenceFailure(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestLocationService(t)
	ctx := context.Background()
	userID := uuid.New()
	dbError := fmt.Errorf("база недоступна")

	// Ожидания: запись падает, публичная запись и событие не создаются
	repoMock.EXPECT().
		SavePrivate(ctx, gomock.Any()).
		Return(dbError).
		Times(1)

	// Действие
	err := service.EnableSharing(ctx, userID, FixedPosition(40.7128, -74.0060))

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrPersistenceFailed)
}

func TestDisableSharing_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestLocationService(t)
	ctx := context.Background()
	userID := uuid.New()
	service.setState(userID, SharingStateActive)

	// Ожидания: только очистка публичной записи, без чтения геолокации
	// и без приватной записи
	repoMock.EXPECT().
		DisableSharing(ctx, userID).
		Return(nil).
		Times(1)

	repoMock.EXPECT().
		InvalidatePublicCache(ctx, userID).
		Return(nil).
		Times(1)

	// Действие
	err := service.DisableSharing(ctx, userID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, SharingStateIdle, service.State(userID))
}

func TestPublish_SharingDisabled(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestLocationService(t)
	ctx := context.Background()
	userID := uuid.New()

	// Ожидания: состояние восстанавливается из бд, публичной записи нет
	repoMock.EXPECT().
		GetPublic(ctx, userID).
		Return(nil, models.ErrNotFound).
		Times(1)

	// Действие
	err := service.Publish(ctx, userID, 40.7128, -74.0060)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrSharingDisabled)
}

func TestPublish_StateReadFailure(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestLocationService(t)
	ctx := context.Background()
	userID := uuid.New()

	// Ожидания: чтение публичной записи падает с транзиентной ошибкой.
	// Сбой не кэшируется, поэтому повторный вызов читает запись снова.
	repoMock.EXPECT().
		GetPublic(ctx, userID).
		Return(nil, errors.New("db connection refused")).
		Times(2)

	// Действие
	err := service.Publish(ctx, userID, 40.7128, -74.0060)

	// Проверки: транзиентный сбой - это не "шаринг выключен"
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrPersistenceFailed)
	assert.NotErrorIs(t, err, models.ErrSharingDisabled)

	err = service.Publish(ctx, userID, 40.7128, -74.0060)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrPersistenceFailed)
}

func TestPublish_ThrottledBelowMinInterval(t *testing.T) {
	// Подготовка
	service, _, _ := newTestLocationService(t)
	ctx := context.Background()
	userID := uuid.New()
	service.setState(userID, SharingStateActive)
	service.markPublished(userID)

	// Действие: никаких ожиданий на репозитории — вызов должен быть пропущен
	err := service.Publish(ctx, userID, 40.7128, -74.0060)

	// Проверки
	require.NoError(t, err)
}

func TestPublish_InvalidCoordinate(t *testing.T) {
	// Подготовка
	service, _, _ := newTestLocationService(t)
	ctx := context.Background()
	userID := uuid.New()
	service.setState(userID, SharingStateActive)

	// Действие: валидация выполняется до каких-либо записей
	err := service.Publish(ctx, userID, 91.0, -74.0060)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidCoordinate)
}

func TestGetPublic_Success_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestLocationService(t)
	ctx := context.Background()
	userID := uuid.New()
	expected := &models.BlurredLocation{UserID: userID, SharingEnabled: true}

	// Ожидания
	repoMock.EXPECT().
		GetPublicFromCache(ctx, userID).
		Return(expected, nil).
		Times(1)

	// Действие
	loc, err := service.GetPublic(ctx, userID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, loc)
}

func TestGetPublic_Success_FromDB(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestLocationService(t)
	ctx := context.Background()
	userID := uuid.New()
	expected := &models.BlurredLocation{UserID: userID, SharingEnabled: true}

	// Ожидания
	// 1. Промах кеша
	repoMock.EXPECT().
		GetPublicFromCache(ctx, userID).
		Return(nil, nil).
		Times(1)

	// 2. Попадание в БД
	repoMock.EXPECT().
		GetPublic(ctx, userID).
		Return(expected, nil).
		Times(1)

	// 3. Запись в кеш
	repoMock.EXPECT().
		SetPublicCache(ctx, expected).
		Return(nil).
		Times(1)

	// Действие
	loc, err := service.GetPublic(ctx, userID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, loc)
}

func TestGetPublic_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestLocationService(t)
	ctx := context.Background()
	userID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		GetPublicFromCache(ctx, userID).
		Return(nil, nil).
		Times(1)

	repoMock.EXPECT().
		GetPublic(ctx, userID).
		Return(nil, models.ErrNotFound).
		Times(1)

	// Действие
	loc, err := service.GetPublic(ctx, userID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, loc)
}

func TestListZoneMembers_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestLocationService(t)
	ctx := context.Background()
	zoneKey := "z100:45316:-92045"
	locations := []*models.BlurredLocation{
		{UserID: uuid.New(), SharingEnabled: true},
		{UserID: uuid.New(), SharingEnabled: true},
	}

	// Ожидания
	repoMock.EXPECT().
		ListByZone(ctx, zoneKey).
		Return(locations, nil).
		Times(1)

	// Действие
	members, err := service.ListZoneMembers(ctx, zoneKey)

	// Проверки
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.NotEmpty(t, members[0].ZoneLabel)
	assert.Equal(t, members[0].ZoneLabel, members[1].ZoneLabel)
}

func TestState_DefaultsToIdle(t *testing.T) {
	// Подготовка
	service, _, _ := newTestLocationService(t)

	// Действие и проверки
	assert.Equal(t, SharingStateIdle, service.State(uuid.New()))
}
