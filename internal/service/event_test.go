package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worldme/worldme/internal/config"
	"github.com/worldme/worldme/internal/models"
	"github.com/worldme/worldme/internal/service/mocks"
	"github.com/worldme/worldme/internal/zone"
	"go.uber.org/mock/gomock"
)

// newTestEventService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestEventService(t *testing.T) (*eventService, *mocks.MockEventRepository, *mocks.MockLocationRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockEventRepository(ctrl)
	locationsMock := mocks.NewMockLocationRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		BlurRadiusMeters: 100,
	}

	service := NewEventService(repoMock, locationsMock, logger, cfg)
	return service.(*eventService), repoMock, locationsMock
}

// creatorInZone возвращает публичную локацию создателя в зоне заданной точки
func creatorInZone(t *testing.T, userID uuid.UUID, lat, lng float64) *models.BlurredLocation {
	t.Helper()
	zoneKey, err := zone.Key(lat, lng, 100)
	require.NoError(t, err)
	return &models.BlurredLocation{
		UserID:           userID,
		BlurredLatitude:  &lat,
		BlurredLongitude: &lng,
		ZoneKey:          &zoneKey,
		SharingEnabled:   true,
	}
}

func TestCreateEvent_Success(t *testing.T) {
	// Подготовка
	service, repoMock, locationsMock := newTestEventService(t)
	ctx := context.Background()
	creatorID := uuid.New()
	lat, lng := 40.7128, -74.0060
	event := &models.Event{
		CreatorID: creatorID,
		Name:      "Вечеринка на крыше",
		Category:  "party",
		Latitude:  lat,
		Longitude: lng,
	}

	// Ожидания
	locationsMock.EXPECT().
		GetPublic(ctx, creatorID).
		Return(creatorInZone(t, creatorID, lat, lng), nil).
		Times(1)

	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.Event) error {
			assert.NotEmpty(t, e.ZoneKey)
			assert.Equal(t, "active", e.Status)
			return nil
		}).
		Times(1)

	// Действие
	err := service.CreateEvent(ctx, event)

	// Проверки
	require.NoError(t, err)
}

func TestCreateEvent_CreatorOutOfZone(t *testing.T) {
	// Подготовка
	service, _, locationsMock := newTestEventService(t)
	ctx := context.Background()
	creatorID := uuid.New()
	event := &models.Event{
		CreatorID: creatorID,
		Name:      "Концерт",
		Category:  "concert",
		Latitude:  40.7128,
		Longitude: -74.0060,
	}

	// Ожидания: создатель шарит локацию из другой зоны
	locationsMock.EXPECT().
		GetPublic(ctx, creatorID).
		Return(creatorInZone(t, creatorID, 40.7580, -73.9855), nil).
		Times(1)

	// Действие
	err := service.CreateEvent(ctx, event)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrOutOfZone)
}

func TestCreateEvent_CreatorNotSharing(t *testing.T) {
	// Подготовка
	service, _, locationsMock := newTestEventService(t)
	ctx := context.Background()
	creatorID := uuid.New()
	event := &models.Event{
		CreatorID: creatorID,
		Name:      "Пробежка",
		Category:  "sport",
		Latitude:  40.7128,
		Longitude: -74.0060,
	}

	// Ожидания
	locationsMock.EXPECT().
		GetPublic(ctx, creatorID).
		Return(nil, models.ErrNotFound).
		Times(1)

	// Действие
	err := service.CreateEvent(ctx, event)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrOutOfZone)
}

func TestCreateEvent_InvalidVenue(t *testing.T) {
	// Подготовка
	service, _, _ := newTestEventService(t)
	ctx := context.Background()
	event := &models.Event{
		CreatorID: uuid.New(),
		Name:      "Митап",
		Category:  "meetup",
		Latitude:  181.0,
		Longitude: -74.0060,
	}

	// Действие: валидация места выполняется до любых чтений
	err := service.CreateEvent(ctx, event)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidCoordinate)
}

func TestUpdateEvent_NotCreator(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestEventService(t)
	ctx := context.Background()
	eventID := uuid.New()
	existing := &models.Event{
		ID:        eventID,
		CreatorID: uuid.New(),
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, eventID).Return(existing, nil).Times(1)

	// Действие
	err := service.UpdateEvent(ctx, uuid.New(), &models.Event{ID: eventID, Latitude: 40.71, Longitude: -74.0})

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestUpdateEvent_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestEventService(t)
	ctx := context.Background()
	creatorID := uuid.New()
	eventID := uuid.New()
	existing := &models.Event{
		ID:        eventID,
		CreatorID: creatorID,
		Name:      "Старое название",
		Latitude:  40.7128,
		Longitude: -74.0060,
	}
	update := &models.Event{
		ID:        eventID,
		Name:      "Новое название",
		Category:  "party",
		Latitude:  40.7130,
		Longitude: -74.0062,
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, eventID).Return(existing, nil).Times(1)
	repoMock.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.Event) error {
			assert.Equal(t, "Новое название", e.Name)
			assert.NotEmpty(t, e.ZoneKey)
			return nil
		}).
		Times(1)

	// Действие
	err := service.UpdateEvent(ctx, creatorID, update)

	// Проверки
	require.NoError(t, err)
}

func TestCancelEvent_NotCreator(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestEventService(t)
	ctx := context.Background()
	eventID := uuid.New()
	existing := &models.Event{
		ID:        eventID,
		CreatorID: uuid.New(),
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, eventID).Return(existing, nil).Times(1)

	// Действие
	err := service.CancelEvent(ctx, uuid.New(), eventID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestCancelEvent_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestEventService(t)
	ctx := context.Background()
	creatorID := uuid.New()
	eventID := uuid.New()
	existing := &models.Event{
		ID:        eventID,
		CreatorID: creatorID,
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, eventID).Return(existing, nil).Times(1)
	repoMock.EXPECT().Deactivate(ctx, eventID).Return(nil).Times(1)

	// Действие
	err := service.CancelEvent(ctx, creatorID, eventID)

	// Проверки
	require.NoError(t, err)
}
