package repository

import (
	"context"
	"fmt"

	"github.com/cubtton/storefront/internal/domain"
	"github.com/cubtton/storefront/internal/port"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// cartRepository keeps one snapshot per owner in postgres, so a signed-in
// user's cart can follow them across devices. ReplaceCart mirrors the
// durable-store contract: every write is a full overwrite.
type cartRepository struct {
	pool *pgxpool.Pool
}

func NewCart(pool *pgxpool.Pool) (port.CartRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &cartRepository{pool: pool}, nil
}

func (r *cartRepository) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	rows, err := r.pool.Query(ctx,
		`SELECT product_id, price, quantity, title, category, image_url
		 FROM cart_items
		 WHERE owner_id = $1
		 ORDER BY position`, ownerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var lines []domain.CartLine
	for rows.Next() {
		var line domain.CartLine
		if err := rows.Scan(&line.ProductID, &line.Price, &line.Quantity,
			&line.Meta.Title, &line.Meta.Category, &line.Meta.ImageURL); err != nil {
			return domain.Cart{}, fmt.Errorf("rows.Scan: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return domain.Cart{}, fmt.Errorf("rows.Err: %w", err)
	}

	return domain.Cart{
		OwnerID: ownerID,
		Lines:   lines,
	}, nil
}

func (r *cartRepository) ReplaceCart(ctx context.Context, ownerID string, lines []domain.CartLine) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	_, err := withTx(ctx, r.pool, func(tx pgx.Tx) (struct{}, error) {
		var zero struct{}

		if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE owner_id = $1`, ownerID); err != nil {
			return zero, fmt.Errorf("tx.Exec delete: %w", err)
		}

		for i, line := range lines {
			_, err := tx.Exec(ctx,
				`INSERT INTO cart_items (owner_id, product_id, price, quantity, title, category, image_url, position)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				ownerID, line.ProductID, line.Price, line.Quantity,
				line.Meta.Title, line.Meta.Category, line.Meta.ImageURL, i)
			if err != nil {
				return zero, fmt.Errorf("tx.Exec insert[%s]: %w", line.ProductID, err)
			}
		}

		return zero, nil
	})
	if err != nil {
		return fmt.Errorf("withTx: %w", err)
	}

	return nil
}

func (r *cartRepository) DeleteItem(ctx context.Context, ownerID string, productID string) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("ownerID is empty")
	}

	tag, err := r.pool.Exec(ctx,
		`DELETE FROM cart_items WHERE owner_id = $1 AND product_id = $2`, ownerID, productID)
	if err != nil {
		return false, fmt.Errorf("pool.Exec: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
