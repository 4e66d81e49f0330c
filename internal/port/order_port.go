package port

import (
	"context"

	"github.com/cubtton/storefront/internal/domain"
	"github.com/google/uuid"
)

// OrderCreator submits a finalized order. Checkout depends on this
// interface only.
type OrderCreator interface {
	CreateOrder(ctx context.Context, draft domain.OrderDraft) (domain.Order, error)
}

// OrderRepository is the admin back-office view over orders.
type OrderRepository interface {
	OrderCreator

	ListOrders(ctx context.Context) ([]domain.Order, error)
	ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) (domain.Order, error)
}
