package models

import (
	"time"

	"github.com/google/uuid"
)

// FriendshipStatus - статус связи между двумя пользователями
type FriendshipStatus string

const (
	FriendshipStatusPending  FriendshipStatus = "pending"
	FriendshipStatusAccepted FriendshipStatus = "accepted"
	FriendshipStatusRejected FriendshipStatus = "rejected"
)

// FriendshipEdge - связь между парой пользователей.
// На неупорядоченную пару существует не более одной записи: UserA всегда
// меньший UUID, UserB - больший, направление заявки хранится в RequesterID.
// Запись никогда не удаляется, только переводится между статусами.
type FriendshipEdge struct {
	ID          uuid.UUID        `json:"id"`
	UserA       uuid.UUID        `json:"user_a"`
	UserB       uuid.UUID        `json:"user_b"`
	RequesterID uuid.UUID        `json:"requester_id"`
	Status      FriendshipStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// EnsureCanonicalOrder приводит пару к каноническому порядку (меньший UUID первым)
func (e *FriendshipEdge) EnsureCanonicalOrder() {
	if e.UserA.String() > e.UserB.String() {
		e.UserA, e.UserB = e.UserB, e.UserA
	}
}

// RecipientID возвращает получателя заявки (вторую сторону пары)
func (e *FriendshipEdge) RecipientID() uuid.UUID {
	if e.RequesterID == e.UserA {
		return e.UserB
	}
	return e.UserA
}

// FriendRequestRateWindow - счётчик заявок в друзья за фиксированное окно.
// Окно сбрасывается при первом запросе после его истечения.
type FriendRequestRateWindow struct {
	UserID       uuid.UUID `json:"user_id"`
	WindowStart  time.Time `json:"window_start"`
	RequestCount int       `json:"request_count"`
}

// Active сообщает, действует ли ещё окно на момент now
func (w *FriendRequestRateWindow) Active(now time.Time, window time.Duration) bool {
	return w != nil && now.Sub(w.WindowStart) < window
}
