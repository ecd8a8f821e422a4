package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/worldme/worldme/internal/models"
	"github.com/worldme/worldme/internal/service"
)

type FriendshipRepository struct {
	db *pgxpool.Pool
}

func NewFriendshipRepository(db *pgxpool.Pool) service.FriendshipRepository {
	return &FriendshipRepository{db: db}
}

const edgeColumns = `id, user_a, user_b, requester_id, status, created_at, updated_at`

// GetEdge возвращает ребро для неупорядоченной пары пользователей, nil если его нет
func (r *FriendshipRepository) GetEdge(ctx context.Context, a, b uuid.UUID) (*models.FriendshipEdge, error) {
	pair := &models.FriendshipEdge{UserA: a, UserB: b}
	pair.EnsureCanonicalOrder()

	query := fmt.Sprintf(`SELECT %s FROM friendships WHERE user_a = $1 AND user_b = $2;`, edgeColumns)
	edge, err := r.scanEdge(r.db.QueryRow(ctx, query, pair.UserA, pair.UserB))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get friendship edge: %w", err)
	}
	return edge, nil
}

// GetByID возвращает ребро по его UUID
func (r *FriendshipRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.FriendshipEdge, error) {
	query := fmt.Sprintf(`SELECT %s FROM friendships WHERE id = $1;`, edgeColumns)
	edge, err := r.scanEdge(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("friendship edge %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get friendship edge by id: %w", err)
	}
	return edge, nil
}

// CreateRequest создает заявку в друзья одной транзакцией:
// сначала инкремент окна лимита заявителя (со сбросом истёкшего окна),
// при превышении лимита - откат без создания ребра; затем вставка ребра
// (или переоткрытие отклонённого). Порядок гарантирует fail closed:
// ребро без инкремента счётчика появиться не может.
func (r *FriendshipRepository) CreateRequest(ctx context.Context, edge *models.FriendshipEdge, limit int, window time.Duration) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin friend request transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	windowQuery := `
		INSERT INTO friend_request_windows (user_id, window_start, request_count)
		VALUES ($1, NOW(), 1)
		ON CONFLICT (user_id) DO UPDATE SET
			request_count = CASE
				WHEN friend_request_windows.window_start <= NOW() - make_interval(secs => $2)
				THEN 1
				ELSE friend_request_windows.request_count + 1
			END,
			window_start = CASE
				WHEN friend_request_windows.window_start <= NOW() - make_interval(secs => $2)
				THEN NOW()
				ELSE friend_request_windows.window_start
			END
		RETURNING request_count;
	`
	var count int
	if err := tx.QueryRow(ctx, windowQuery, edge.RequesterID, window.Seconds()).Scan(&count); err != nil {
		return fmt.Errorf("failed to increment rate window: %w", err)
	}
	if count > limit {
		return fmt.Errorf("request %d of %d in window: %w", count, limit, models.ErrRateLimited)
	}

	// Переоткрыть можно только отклонённое ребро; существующее pending/accepted
	// не трогается и заявка отклоняется (гонка двух устройств безопасна)
	edgeQuery := `
		INSERT INTO friendships (user_a, user_b, requester_id, status)
		VALUES ($1, $2, $3, 'pending')
		ON CONFLICT (user_a, user_b) DO UPDATE SET
			requester_id = EXCLUDED.requester_id,
			status = 'pending',
			updated_at = NOW()
		WHERE friendships.status = 'rejected'
		RETURNING id, created_at, updated_at;
	`
	err = tx.QueryRow(ctx, edgeQuery, edge.UserA, edge.UserB, edge.RequesterID).
		Scan(&edge.ID, &edge.CreatedAt, &edge.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("edge exists in non-rejected state: %w", models.ErrAlreadyConnected)
		}
		return fmt.Errorf("failed to insert friendship edge: %w", err)
	}
	edge.Status = models.FriendshipStatusPending

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit friend request transaction: %w", err)
	}
	return nil
}

// UpdateStatus переводит ребро в новый статус
func (r *FriendshipRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.FriendshipStatus) error {
	query := `
		UPDATE friendships SET
			status = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update friendship status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("friendship edge %s not found for update: %w", id, models.ErrNotFound)
	}
	return nil
}

// ListForUser возвращает все рёбра пользователя в заданном статусе
func (r *FriendshipRepository) ListForUser(ctx context.Context, userID uuid.UUID, status models.FriendshipStatus) ([]*models.FriendshipEdge, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM friendships
		WHERE (user_a = $1 OR user_b = $1) AND status = $2
		ORDER BY updated_at DESC;
	`, edgeColumns)
	rows, err := r.db.Query(ctx, query, userID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list friendship edges: %w", err)
	}
	defer rows.Close()

	edges := make([]*models.FriendshipEdge, 0)
	for rows.Next() {
		edge, err := r.scanEdge(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan friendship row: %w", err)
		}
		edges = append(edges, edge)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListForUser: %w", err)
	}
	return edges, nil
}

// GetWindow возвращает окно лимита пользователя, nil если заявок ещё не было
func (r *FriendshipRepository) GetWindow(ctx context.Context, userID uuid.UUID) (*models.FriendRequestRateWindow, error) {
	window := &models.FriendRequestRateWindow{}
	query := `
		SELECT user_id, window_start, request_count
		FROM friend_request_windows
		WHERE user_id = $1;
	`
	err := r.db.QueryRow(ctx, query, userID).Scan(&window.UserID, &window.WindowStart, &window.RequestCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get rate window: %w", err)
	}
	return window, nil
}

func (r *FriendshipRepository) scanEdge(row pgx.Row) (*models.FriendshipEdge, error) {
	edge := &models.FriendshipEdge{}
	err := row.Scan(
		&edge.ID,
		&edge.UserA,
		&edge.UserB,
		&edge.RequesterID,
		&edge.Status,
		&edge.CreatedAt,
		&edge.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return edge, nil
}
