package models

import (
	"time"

	"github.com/google/uuid"
)

// Event - событие на карте (вечеринка, концерт, встреча).
// Координаты места точные: событие публично по своей природе,
// блюрится только позиция пользователей. ZoneKey вычисляется сервером
// по координатам места и используется для зонального поиска.
type Event struct {
	ID          uuid.UUID `json:"id"`
	CreatorID   uuid.UUID `json:"creator_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	ZoneKey     string    `json:"zone_key"`
	StartsAt    time.Time `json:"starts_at"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
