package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile - публичный профиль пользователя. AvatarEmoji - эмодзи-аватар,
// AvatarURL - ссылка на 3D-модель (рендеринг вне зоны ответственности сервера).
type Profile struct {
	UserID      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
	AvatarEmoji string    `json:"avatar_emoji"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
