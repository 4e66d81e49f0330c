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

var ErrSlideNotFound = errors.New("slide not found")

type slideRepository struct {
	pool *pgxpool.Pool
}

func NewSlide(pool *pgxpool.Pool) (port.SlideRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &slideRepository{pool: pool}, nil
}

const slideColumns = `id, title, image_url, order_index, is_active, created_at`

func (r *slideRepository) ActiveSlides(ctx context.Context) ([]domain.HeroSlide, error) {
	return r.listSlides(ctx,
		`SELECT `+slideColumns+` FROM carousel_slides WHERE is_active ORDER BY order_index`)
}

func (r *slideRepository) AllSlides(ctx context.Context) ([]domain.HeroSlide, error) {
	return r.listSlides(ctx,
		`SELECT `+slideColumns+` FROM carousel_slides ORDER BY order_index`)
}

func (r *slideRepository) listSlides(ctx context.Context, query string) ([]domain.HeroSlide, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var slides []domain.HeroSlide
	for rows.Next() {
		slide, err := scanSlide(rows)
		if err != nil {
			return nil, fmt.Errorf("scanSlide: %w", err)
		}
		slides = append(slides, slide)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return slides, nil
}

func (r *slideRepository) CreateSlide(ctx context.Context, s domain.HeroSlide) (domain.HeroSlide, error) {
	if s.ImageURL == "" {
		return domain.HeroSlide{}, fmt.Errorf("imageURL is empty")
	}

	row := r.pool.QueryRow(ctx,
		`INSERT INTO carousel_slides (title, image_url, order_index, is_active)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+slideColumns,
		s.Title, s.ImageURL, s.OrderIndex, s.IsActive)

	slide, err := scanSlide(row)
	if err != nil {
		return domain.HeroSlide{}, fmt.Errorf("scanSlide: %w", err)
	}

	return slide, nil
}

func (r *slideRepository) UpdateSlide(ctx context.Context, id int64, s domain.HeroSlide) (domain.HeroSlide, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE carousel_slides
		 SET title = $2, image_url = $3, order_index = $4, is_active = $5
		 WHERE id = $1
		 RETURNING `+slideColumns,
		id, s.Title, s.ImageURL, s.OrderIndex, s.IsActive)

	slide, err := scanSlide(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.HeroSlide{}, fmt.Errorf("slide[%d]: %w", id, ErrSlideNotFound)
		}
		return domain.HeroSlide{}, fmt.Errorf("scanSlide: %w", err)
	}

	return slide, nil
}

func (r *slideRepository) DeleteSlide(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM carousel_slides WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("slide[%d]: %w", id, ErrSlideNotFound)
	}

	return nil
}

func scanSlide(row pgx.Row) (domain.HeroSlide, error) {
	var s domain.HeroSlide
	if err := row.Scan(&s.ID, &s.Title, &s.ImageURL, &s.OrderIndex, &s.IsActive, &s.CreatedAt); err != nil {
		return domain.HeroSlide{}, err
	}
	return s, nil
}
