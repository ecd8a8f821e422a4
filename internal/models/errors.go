package models

import "errors"

// Ошибки доменного уровня. Сервисы возвращают их обёрнутыми через fmt.Errorf("...: %w", err),
// хэндлеры сопоставляют через errors.Is для выбора HTTP-статуса.
var (
	// ErrInvalidCoordinate - широта или долгота вне допустимого диапазона
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrInvalidRadius - радиус блюра должен быть положительным
	ErrInvalidRadius = errors.New("invalid blur radius")
	// ErrSelfRequest - нельзя отправить заявку в друзья самому себе
	ErrSelfRequest = errors.New("cannot send friend request to yourself")
	// ErrAlreadyConnected - между пользователями уже есть связь (pending или accepted)
	ErrAlreadyConnected = errors.New("users are already connected")
	// ErrRateLimited - превышен лимит заявок в друзья за окно
	ErrRateLimited = errors.New("friend request rate limit exceeded")
	// ErrOutOfZone - пользователи находятся в разных зонах (или зона неизвестна)
	ErrOutOfZone = errors.New("users are not in the same zone")
	// ErrLocationUnavailable - не удалось получить позицию от источника геолокации
	ErrLocationUnavailable = errors.New("location unavailable")
	// ErrPersistenceFailed - ошибка записи в хранилище, безопасно повторить публикацию
	ErrPersistenceFailed = errors.New("persistence failed")
	// ErrSharingDisabled - публикация позиции при выключенном шаринге
	ErrSharingDisabled = errors.New("location sharing is disabled")
	// ErrNotFriends - действие доступно только принятым друзьям
	ErrNotFriends = errors.New("users are not friends")
	// ErrNotFound - запись не найдена
	ErrNotFound = errors.New("not found")
	// ErrForbidden - действие доступно только владельцу записи
	ErrForbidden = errors.New("forbidden")
)
