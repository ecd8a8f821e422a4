package models

import (
	"time"

	"github.com/google/uuid"
)

// RawLocation - точная позиция пользователя. Хранится только в приватной таблице,
// никогда не отдаётся другим пользователям; используется как вход для блюра.
type RawLocation struct {
	UserID     uuid.UUID `json:"user_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	CapturedAt time.Time `json:"captured_at"`
}

// BlurredLocation - публичная размытая позиция пользователя.
// Единственное представление локации, видимое другим пользователям.
// При выключении шаринга координаты и ключ зоны обнуляются.
type BlurredLocation struct {
	UserID           uuid.UUID `json:"user_id"`
	BlurredLatitude  *float64  `json:"blurred_latitude"`
	BlurredLongitude *float64  `json:"blurred_longitude"`
	ZoneKey          *string   `json:"zone_key"`
	SharingEnabled   bool      `json:"sharing_enabled"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// InZone сообщает, есть ли у пользователя актуальная зона (шаринг включен и ключ записан).
func (l *BlurredLocation) InZone() bool {
	return l != nil && l.SharingEnabled && l.ZoneKey != nil && *l.ZoneKey != ""
}
