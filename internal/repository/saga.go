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
	"github.com/shenikar/drishti/internal/dispatch"
	"github.com/shenikar/drishti/internal/models"
)

// sagaCacheTTL держим коротким: состояние саги меняется в течение минут
const sagaCacheTTL = 5 * time.Minute

const sagaColumns = `
	id,
	incident_id,
	zone,
	incident_type,
	lat,
	lng,
	address,
	state,
	responder_id,
	responder_name,
	eta,
	last_error,
	attempts,
	created_at,
	updated_at`

type SagaRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewSagaRepository(db *pgxpool.Pool, redisClient *redis.Client) dispatch.SagaRepository {
	return &SagaRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create сохраняет новую сагу
func (r *SagaRepository) Create(ctx context.Context, saga *models.DispatchSaga) error {
	query := `
		INSERT INTO dispatch_sagas (id, incident_id, zone, incident_type, lat, lng, address, state, attempts)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		saga.ID,
		saga.IncidentID,
		saga.Zone,
		saga.IncidentType,
		saga.Location.Lat,
		saga.Location.Lng,
		saga.Location.Address,
		saga.State,
		saga.Attempts,
	).Scan(&saga.CreatedAt, &saga.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create dispatch saga: %w", err)
	}
	return nil
}

// Update записывает текущее состояние саги
func (r *SagaRepository) Update(ctx context.Context, saga *models.DispatchSaga) error {
	query := `
		UPDATE dispatch_sagas SET
			state = $1,
			responder_id = $2,
			responder_name = $3,
			eta = $4,
			last_error = $5,
			attempts = $6,
			updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		saga.State,
		saga.ResponderID,
		saga.ResponderName,
		saga.ETA,
		saga.LastError,
		saga.Attempts,
		saga.ID,
	).Scan(&saga.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("saga %s: %w", saga.ID, dispatch.ErrSagaNotFound)
		}
		return fmt.Errorf("failed to update dispatch saga: %w", err)
	}
	return nil
}

// GetByID возвращает сагу по её UUID
func (r *SagaRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.DispatchSaga, error) {
	query := `SELECT ` + sagaColumns + ` FROM dispatch_sagas WHERE id = $1;`
	saga, err := scanSaga(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("saga %s: %w", id, dispatch.ErrSagaNotFound)
		}
		return nil, fmt.Errorf("failed to get dispatch saga by id: %w", err)
	}
	return saga, nil
}

// GetByIncident возвращает последнюю сагу инцидента или nil, если её нет
func (r *SagaRepository) GetByIncident(ctx context.Context, incidentID string) (*models.DispatchSaga, error) {
	query := `
		SELECT ` + sagaColumns + `
		FROM dispatch_sagas
		WHERE incident_id = $1
		ORDER BY created_at DESC
		LIMIT 1;
	`
	saga, err := scanSaga(r.db.QueryRow(ctx, query, incidentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dispatch saga by incident: %w", err)
	}
	return saga, nil
}

// ListByState возвращает саги в указанных состояниях, новые первыми
func (r *SagaRepository) ListByState(ctx context.Context, states []models.DispatchState, limit int) ([]*models.DispatchSaga, error) {
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = string(s)
	}

	query := `
		SELECT ` + sagaColumns + `
		FROM dispatch_sagas
		WHERE state = ANY($1)
		ORDER BY created_at DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, names, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list dispatch sagas: %w", err)
	}
	defer rows.Close()

	sagas := make([]*models.DispatchSaga, 0)
	for rows.Next() {
		saga, err := scanSaga(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dispatch saga row: %w", err)
		}
		sagas = append(sagas, saga)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return sagas, nil
}

func scanSaga(row pgx.Row) (*models.DispatchSaga, error) {
	saga := &models.DispatchSaga{}
	err := row.Scan(
		&saga.ID,
		&saga.IncidentID,
		&saga.Zone,
		&saga.IncidentType,
		&saga.Location.Lat,
		&saga.Location.Lng,
		&saga.Location.Address,
		&saga.State,
		&saga.ResponderID,
		&saga.ResponderName,
		&saga.ETA,
		&saga.LastError,
		&saga.Attempts,
		&saga.CreatedAt,
		&saga.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return saga, nil
}

func sagaCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("dispatch_saga:%s", id.String())
}

// GetSagaFromCache пытается получить сагу из Redis
func (r *SagaRepository) GetSagaFromCache(ctx context.Context, id uuid.UUID) (*models.DispatchSaga, error) {
	val, err := r.redisClient.Get(ctx, sagaCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dispatch saga from cache: %w", err)
	}

	saga := &models.DispatchSaga{}
	if err := json.Unmarshal(val, saga); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dispatch saga from cache: %w", err)
	}
	return saga, nil
}

// SetSagaCache сохраняет сагу в Redis
func (r *SagaRepository) SetSagaCache(ctx context.Context, saga *models.DispatchSaga) error {
	val, err := json.Marshal(saga)
	if err != nil {
		return fmt.Errorf("failed to marshal dispatch saga for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, sagaCacheKey(saga.ID), val, sagaCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set dispatch saga in cache: %w", err)
	}
	return nil
}

// InvalidateSagaCache удаляет сагу из Redis кэша
func (r *SagaRepository) InvalidateSagaCache(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, sagaCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate dispatch saga cache: %w", err)
	}
	return nil
}
