package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/cubtton/storefront/internal/domain"
	"github.com/cubtton/storefront/internal/port"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrThreadNotFound = errors.New("thread not found")

type threadRepository struct {
	pool *pgxpool.Pool
}

func NewThread(pool *pgxpool.Pool) (port.ThreadRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &threadRepository{pool: pool}, nil
}

const threadColumns = `id, name, color_code, image, created_at`

func (r *threadRepository) ListThreads(ctx context.Context) ([]domain.Thread, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+threadColumns+` FROM threads ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var threads []domain.Thread
	for rows.Next() {
		thread, err := scanThread(rows)
		if err != nil {
			return nil, fmt.Errorf("scanThread: %w", err)
		}
		threads = append(threads, thread)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return threads, nil
}

func (r *threadRepository) GetThread(ctx context.Context, id int64) (domain.Thread, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+threadColumns+` FROM threads WHERE id = $1`, id)

	thread, err := scanThread(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Thread{}, fmt.Errorf("thread[%d]: %w", id, ErrThreadNotFound)
		}
		return domain.Thread{}, fmt.Errorf("scanThread: %w", err)
	}

	return thread, nil
}

func (r *threadRepository) CreateThread(ctx context.Context, t domain.Thread) (domain.Thread, error) {
	if t.Name == "" {
		return domain.Thread{}, fmt.Errorf("name is empty")
	}

	row := r.pool.QueryRow(ctx,
		`INSERT INTO threads (name, color_code, image)
		 VALUES ($1, $2, $3)
		 RETURNING `+threadColumns,
		t.Name, t.ColorCode, t.Image)

	thread, err := scanThread(row)
	if err != nil {
		return domain.Thread{}, fmt.Errorf("scanThread: %w", err)
	}

	return thread, nil
}

func (r *threadRepository) UpdateThread(ctx context.Context, id int64, t domain.Thread) (domain.Thread, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE threads
		 SET name = $2, color_code = $3, image = $4
		 WHERE id = $1
		 RETURNING `+threadColumns,
		id, t.Name, t.ColorCode, t.Image)

	thread, err := scanThread(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Thread{}, fmt.Errorf("thread[%d]: %w", id, ErrThreadNotFound)
		}
		return domain.Thread{}, fmt.Errorf("scanThread: %w", err)
	}

	return thread, nil
}

func (r *threadRepository) DeleteThread(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM threads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("thread[%d]: %w", id, ErrThreadNotFound)
	}

	return nil
}

func scanThread(row pgx.Row) (domain.Thread, error) {
	var t domain.Thread
	if err := row.Scan(&t.ID, &t.Name, &t.ColorCode, &t.Image, &t.CreatedAt); err != nil {
		return domain.Thread{}, err
	}
	return t, nil
}
