package service

import (
	"context"
	"time"

	"github.com/worldme/worldme/internal/models"
)

// Position - одна позиция от источника геолокации
type Position struct {
	Latitude   float64
	Longitude  float64
	CapturedAt time.Time
}

// PositionSource - контракт устройства геолокации: разовый запрос позиции
// и непрерывная подписка. Подписку обязан отменять вызывающий через контекст.
type PositionSource interface {
	Current(ctx context.Context) (Position, error)
	Watch(ctx context.Context) (<-chan Position, error)
}

// fixedSource - источник с заранее известной позицией (позиция пришла от клиента)
type fixedSource struct {
	pos Position
}

func (s fixedSource) Current(ctx context.Context) (Position, error) {
	return s.pos, nil
}

func (s fixedSource) Watch(ctx context.Context) (<-chan Position, error) {
	ch := make(chan Position, 1)
	ch <- s.pos
	close(ch)
	return ch, nil
}

// FixedPosition оборачивает координату, присланную клиентом, в PositionSource
func FixedPosition(lat, lng float64) PositionSource {
	return fixedSource{pos: Position{Latitude: lat, Longitude: lng, CapturedAt: time.Now()}}
}

// noSource - источник без позиции; включение шаринга без координат
// деградирует до фолбэк-координаты
type noSource struct{}

func (noSource) Current(ctx context.Context) (Position, error) {
	return Position{}, models.ErrLocationUnavailable
}

func (noSource) Watch(ctx context.Context) (<-chan Position, error) {
	return nil, models.ErrLocationUnavailable
}

// NoPosition возвращает источник, у которого позиция недоступна
func NoPosition() PositionSource {
	return noSource{}
}
