package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/worldme/worldme/internal/models"
	"github.com/worldme/worldme/internal/service"
)

type EventRepository struct {
	db *pgxpool.Pool
}

func NewEventRepository(db *pgxpool.Pool) service.EventRepository {
	return &EventRepository{db: db}
}

// Create создает новую запись о событии в бд
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (creator_id, name, description, category, location, zone_key, starts_at, status)
		VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326), $7, $8, $9)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		event.CreatorID,
		event.Name,
		event.Description,
		event.Category,
		event.Longitude,
		event.Latitude,
		event.ZoneKey,
		event.StartsAt,
		event.Status,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// GetByID возвращает событие по его UUID
func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	event := &models.Event{}
	query := `
		SELECT
			id,
			creator_id,
			name,
			description,
			category,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			zone_key,
			starts_at,
			status,
			created_at,
			updated_at
		FROM events
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.CreatorID,
		&event.Name,
		&event.Description,
		&event.Category,
		&event.Latitude,
		&event.Longitude,
		&event.ZoneKey,
		&event.StartsAt,
		&event.Status,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("event %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get event by id: %w", err)
	}
	return event, nil
}

// Update обновляет существующее событие
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	query := `
		UPDATE events SET
			name = $1,
			description = $2,
			category = $3,
			location = ST_SetSRID(ST_MakePoint($4, $5), 4326),
			zone_key = $6,
			starts_at = $7,
			updated_at = NOW()
		WHERE id = $8;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		event.Name,
		event.Description,
		event.Category,
		event.Longitude,
		event.Latitude,
		event.ZoneKey,
		event.StartsAt,
		event.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("event %s not found for update: %w", event.ID, models.ErrNotFound)
	}
	return nil
}

// Deactivate(отмена) устанавливает статус 'cancelled' для события
func (r *EventRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE events SET
			status = 'cancelled',
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to cancel event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("event %s not found for cancel: %w", id, models.ErrNotFound)
	}
	return nil
}

// ListByZone возвращает активные события зоны
func (r *EventRepository) ListByZone(ctx context.Context, zoneKey string) ([]*models.Event, error) {
	query := `
		SELECT
			id,
			creator_id,
			name,
			description,
			category,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			zone_key,
			starts_at,
			status,
			created_at,
			updated_at
		FROM events
		WHERE zone_key = $1 AND status = 'active'
		ORDER BY starts_at ASC;
	`
	rows, err := r.db.Query(ctx, query, zoneKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list events by zone: %w", err)
	}
	defer rows.Close()
	return r.collectEvents(rows)
}

// FindNearby находит активные события в радиусе radiusMeters от точки
func (r *EventRepository) FindNearby(ctx context.Context, lat, lng, radiusMeters float64) ([]*models.Event, error) {
	query := `
		SELECT
			id,
			creator_id,
			name,
			description,
			category,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			zone_key,
			starts_at,
			status,
			created_at,
			updated_at
		FROM events
		WHERE
			status = 'active'
			AND ST_DWithin(
				location,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
				$3
			)
		ORDER BY starts_at ASC;
	`
	rows, err := r.db.Query(ctx, query, lng, lat, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby events: %w", err)
	}
	defer rows.Close()
	return r.collectEvents(rows)
}

func (r *EventRepository) collectEvents(rows pgx.Rows) ([]*models.Event, error) {
	events := make([]*models.Event, 0)
	for rows.Next() {
		event := &models.Event{}
		err := rows.Scan(
			&event.ID,
			&event.CreatorID,
			&event.Name,
			&event.Description,
			&event.Category,
			&event.Latitude,
			&event.Longitude,
			&event.ZoneKey,
			&event.StartsAt,
			&event.Status,
			&event.CreatedAt,
			&event.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error event list iteration: %w", err)
	}
	return events, nil
}
