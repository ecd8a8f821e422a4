package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/worldme/worldme/internal/models"
	"github.com/worldme/worldme/internal/service"
)

type LocationRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewLocationRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.LocationRepository {
	return &LocationRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// SavePrivate перезаписывает точную позицию пользователя в приватной таблице
func (r *LocationRepository) SavePrivate(ctx context.Context, loc *models.RawLocation) error {
	query := `
		INSERT INTO private_locations (user_id, location, captured_at)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4)
		ON CONFLICT (user_id) DO UPDATE SET
			location = EXCLUDED.location,
			captured_at = EXCLUDED.captured_at;
	`
	_, err := r.db.Exec(ctx, query,
		loc.UserID,
		loc.Longitude,
		loc.Latitude,
		loc.CapturedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save private location: %w", err)
	}
	return nil
}

// SavePublic перезаписывает публичную размытую позицию пользователя
func (r *LocationRepository) SavePublic(ctx context.Context, loc *models.BlurredLocation) error {
	query := `
		INSERT INTO public_locations (user_id, location, zone_key, sharing_enabled, updated_at)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4, $5, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			location = EXCLUDED.location,
			zone_key = EXCLUDED.zone_key,
			sharing_enabled = EXCLUDED.sharing_enabled,
			updated_at = NOW();
	`
	_, err := r.db.Exec(ctx, query,
		loc.UserID,
		loc.BlurredLongitude,
		loc.BlurredLatitude,
		loc.ZoneKey,
		loc.SharingEnabled,
	)
	if err != nil {
		return fmt.Errorf("failed to save public location: %w", err)
	}
	return nil
}

// DisableSharing снимает флаг шаринга и обнуляет размытые координаты и зону.
// Приватная запись не трогается.
func (r *LocationRepository) DisableSharing(ctx context.Context, userID uuid.UUID) error {
	query := `
		INSERT INTO public_locations (user_id, location, zone_key, sharing_enabled, updated_at)
		VALUES ($1, NULL, NULL, FALSE, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			location = NULL,
			zone_key = NULL,
			sharing_enabled = FALSE,
			updated_at = NOW();
	`
	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to disable location sharing: %w", err)
	}
	return nil
}

// GetPublic возвращает публичную размытую позицию пользователя
func (r *LocationRepository) GetPublic(ctx context.Context, userID uuid.UUID) (*models.BlurredLocation, error) {
	loc := &models.BlurredLocation{}
	query := `
		SELECT
			user_id,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			zone_key,
			sharing_enabled,
			updated_at
		FROM public_locations
		WHERE user_id = $1;
	`
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&loc.UserID,
		&loc.BlurredLatitude,
		&loc.BlurredLongitude,
		&loc.ZoneKey,
		&loc.SharingEnabled,
		&loc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("public location for user %s: %w", userID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get public location: %w", err)
	}
	return loc, nil
}

// ListByZone возвращает публичные позиции всех пользователей зоны с включенным шарингом
func (r *LocationRepository) ListByZone(ctx context.Context, zoneKey string) ([]*models.BlurredLocation, error) {
	query := `
		SELECT
			user_id,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			zone_key,
			sharing_enabled,
			updated_at
		FROM public_locations
		WHERE zone_key = $1 AND sharing_enabled = TRUE
		ORDER BY updated_at DESC;
	`
	rows, err := r.db.Query(ctx, query, zoneKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations by zone: %w", err)
	}
	defer rows.Close()

	locations := make([]*models.BlurredLocation, 0)
	for rows.Next() {
		loc := &models.BlurredLocation{}
		err := rows.Scan(
			&loc.UserID,
			&loc.BlurredLatitude,
			&loc.BlurredLongitude,
			&loc.ZoneKey,
			&loc.SharingEnabled,
			&loc.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location row: %w", err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListByZone: %w", err)
	}
	return locations, nil
}

// GetPublicFromCache пытается получить публичную позицию из Redis
func (r *LocationRepository) GetPublicFromCache(ctx context.Context, userID uuid.UUID) (*models.BlurredLocation, error) {
	key := fmt.Sprintf("public_location:%s", userID.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get public location from cache: %w", err)
	}

	loc := &models.BlurredLocation{}
	if err := json.Unmarshal(val, loc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal public location from cache: %w", err)
	}
	return loc, nil
}

// SetPublicCache сохраняет публичную позицию в Redis
func (r *LocationRepository) SetPublicCache(ctx context.Context, loc *models.BlurredLocation) error {
	key := fmt.Sprintf("public_location:%s", loc.UserID.String())
	val, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("failed to marshal public location for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set public location in cache: %w", err)
	}
	return nil
}

// InvalidatePublicCache удаляет публичную позицию из Redis кэша
func (r *LocationRepository) InvalidatePublicCache(ctx context.Context, userID uuid.UUID) error {
	key := fmt.Sprintf("public_location:%s", userID.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate public location cache: %w", err)
	}
	return nil
}
