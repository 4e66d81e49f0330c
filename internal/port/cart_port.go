package port

import (
	"context"

	"github.com/cubtton/storefront/internal/domain"
)

// CartStore is the durable key-value snapshot store backing the in-session
// cart. Every mutation overwrites the full line list; Load is called once at
// startup.
type CartStore interface {
	Load(ctx context.Context) ([]domain.CartLine, error)
	Save(ctx context.Context, lines []domain.CartLine) error
}

// CartRepository is the server-side per-owner cart snapshot store.
type CartRepository interface {
	GetCart(ctx context.Context, ownerID string) (domain.Cart, error)
	ReplaceCart(ctx context.Context, ownerID string, lines []domain.CartLine) error
	DeleteItem(ctx context.Context, ownerID string, productID string) (bool, error)
}
