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

var ErrProductNotFound = errors.New("product not found")

type productRepository struct {
	pool *pgxpool.Pool
}

func NewProduct(pool *pgxpool.Pool) (port.ProductRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &productRepository{pool: pool}, nil
}

const productColumns = `id, title, description, category, price, image, created_at`

func (r *productRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanProduct: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return products, nil
}

func (r *productRepository) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, fmt.Errorf("product[%d]: %w", id, ErrProductNotFound)
		}
		return domain.Product{}, fmt.Errorf("scanProduct: %w", err)
	}

	return product, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	if p.Title == "" {
		return domain.Product{}, fmt.Errorf("title is empty")
	}

	row := r.pool.QueryRow(ctx,
		`INSERT INTO products (title, description, category, price, image)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+productColumns,
		p.Title, p.Description, p.Category, p.Price, p.Image)

	product, err := scanProduct(row)
	if err != nil {
		return domain.Product{}, fmt.Errorf("scanProduct: %w", err)
	}

	return product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, id int64, p domain.Product) (domain.Product, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE products
		 SET title = $2, description = $3, category = $4, price = $5, image = $6
		 WHERE id = $1
		 RETURNING `+productColumns,
		id, p.Title, p.Description, p.Category, p.Price, p.Image)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, fmt.Errorf("product[%d]: %w", id, ErrProductNotFound)
		}
		return domain.Product{}, fmt.Errorf("scanProduct: %w", err)
	}

	return product, nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product[%d]: %w", id, ErrProductNotFound)
	}

	return nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.Price, &p.Image, &p.CreatedAt); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}
