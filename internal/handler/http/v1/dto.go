package v1

import (
	"time"

	"github.com/google/uuid"
)

// SharingToggleRequest DTO для включения/выключения шаринга локации.
// Координаты опциональны: при включении без координат сервер деградирует
// до фолбэк-координаты.
// @Description DTO для переключения шаринга локации
type SharingToggleRequest struct {
	Enabled   bool     `json:"enabled"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

// PublishLocationRequest DTO для публикации позиции
// @Description DTO для публикации позиции
type PublishLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// BlurredLocationResponse DTO публичной размытой позиции
// @Description DTO публичной размытой позиции
type BlurredLocationResponse struct {
	UserID           uuid.UUID `json:"user_id"`
	BlurredLatitude  *float64  `json:"blurred_latitude"`
	BlurredLongitude *float64  `json:"blurred_longitude"`
	ZoneKey          *string   `json:"zone_key"`
	ZoneName         string    `json:"zone_name,omitempty"`
	SharingEnabled   bool      `json:"sharing_enabled"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ZoneMemberResponse DTO участника зоны
// @Description DTO участника зоны
type ZoneMemberResponse struct {
	UserID           uuid.UUID `json:"user_id"`
	BlurredLatitude  *float64  `json:"blurred_latitude"`
	BlurredLongitude *float64  `json:"blurred_longitude"`
	ZoneKey          *string   `json:"zone_key"`
	ZoneName         string    `json:"zone_name"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// FriendRequestCreate DTO для отправки заявки в друзья
// @Description DTO для отправки заявки в друзья
type FriendRequestCreate struct {
	RecipientID uuid.UUID `json:"recipient_id" validate:"required"`
}

// FriendshipResponse DTO связи между пользователями
// @Description DTO связи между пользователями
type FriendshipResponse struct {
	ID          uuid.UUID `json:"id"`
	RequesterID uuid.UUID `json:"requester_id"`
	RecipientID uuid.UUID `json:"recipient_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateEventRequest DTO для создания события
// @Description DTO для создания события
type CreateEventRequest struct {
	Name        string    `json:"name" validate:"required,min=2,max=255"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category" validate:"required,oneof=party concert meetup sport other"`
	Latitude    float64   `json:"latitude" validate:"latitude"`
	Longitude   float64   `json:"longitude" validate:"longitude"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
}

// UpdateEventRequest DTO для обновления события
// @Description DTO для обновления события
type UpdateEventRequest struct {
	Name        string    `json:"name" validate:"required,min=2,max=255"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category" validate:"required,oneof=party concert meetup sport other"`
	Latitude    float64   `json:"latitude" validate:"latitude"`
	Longitude   float64   `json:"longitude" validate:"longitude"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
}

// EventResponse DTO для ответа с информацией о событии
// @Description DTO для ответа с информацией о событии
type EventResponse struct {
	ID          uuid.UUID `json:"id"`
	CreatorID   uuid.UUID `json:"creator_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	ZoneKey     string    `json:"zone_key"`
	ZoneName    string    `json:"zone_name"`
	StartsAt    time.Time `json:"starts_at"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SendMessageRequest DTO для отправки сообщения
// @Description DTO для отправки сообщения
type SendMessageRequest struct {
	RecipientID uuid.UUID `json:"recipient_id" validate:"required"`
	Body        string    `json:"body" validate:"required,min=1,max=4000"`
}

// MessageResponse DTO сообщения
// @Description DTO сообщения
type MessageResponse struct {
	ID          uuid.UUID `json:"id"`
	SenderID    uuid.UUID `json:"sender_id"`
	RecipientID uuid.UUID `json:"recipient_id"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"created_at"`
}

// SaveProfileRequest DTO для сохранения профиля
// @Description DTO для сохранения профиля
type SaveProfileRequest struct {
	DisplayName string `json:"display_name" validate:"required,min=1,max=64"`
	AvatarEmoji string `json:"avatar_emoji,omitempty" validate:"max=16"`
	AvatarURL   string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

// ProfileResponse DTO профиля пользователя
// @Description DTO профиля пользователя
type ProfileResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
	AvatarEmoji string    `json:"avatar_emoji,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
