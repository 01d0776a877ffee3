// internal/infra/database/postgres_event_repository.go
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"homework_status_bot/internal/domain/homework"

	"github.com/lib/pq" // For pq.Error and driver registration
)

// Custom errors specific to the event repository
var ErrDuplicateEvent = fmt.Errorf("homework status event with this ID already exists")

const uniqueViolation = "23505"

const createEventsTable = `CREATE TABLE IF NOT EXISTS homework_status_events (
	id            UUID PRIMARY KEY,
	homework_name TEXT        NOT NULL,
	status        VARCHAR(32) NOT NULL,
	message       TEXT        NOT NULL,
	delivered     BOOLEAN     NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL
)`

type PostgresEventRepository struct {
	db *sql.DB
}

func NewPostgresEventRepository(db *sql.DB) *PostgresEventRepository {
	return &PostgresEventRepository{db: db}
}

// EnsureSchema creates the events table if it does not exist yet.
func (r *PostgresEventRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createEventsTable); err != nil {
		return fmt.Errorf("error creating homework_status_events table: %w", err)
	}
	return nil
}

func (r *PostgresEventRepository) SaveEvent(ctx context.Context, e *homework.StatusEvent) error {
	query := `INSERT INTO homework_status_events (id, homework_name, status, message, delivered, created_at)
               VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, e.ID, e.HomeworkName, e.Status, e.Message, e.Delivered, e.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrDuplicateEvent
		}
		return fmt.Errorf("error saving homework status event: %w", err)
	}
	return nil
}

func (r *PostgresEventRepository) ListRecentEvents(ctx context.Context, limit int) ([]*homework.StatusEvent, error) {
	query := `SELECT id, homework_name, status, message, delivered, created_at
               FROM homework_status_events
               ORDER BY created_at DESC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying recent homework status events: %w", err)
	}
	defer rows.Close()

	events := make([]*homework.StatusEvent, 0)
	for rows.Next() {
		e := homework.StatusEvent{}
		if err := rows.Scan(&e.ID, &e.HomeworkName, &e.Status, &e.Message, &e.Delivered, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning homework status event row: %w", err)
		}
		events = append(events, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating homework status event rows: %w", err)
	}
	return events, nil
}
