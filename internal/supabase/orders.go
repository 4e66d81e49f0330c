package supabase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cubtton/storefront/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type orderRecord struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CreateOrder submits one finalized order. The payload carries the user id,
// the cart total and the status only; row-level security on the platform
// restricts inserts to the signed-in user's own id.
func (c *Client) CreateOrder(ctx context.Context, draft domain.OrderDraft) (domain.Order, error) {
	body := map[string]any{
		"user_id":      draft.UserID,
		"total_amount": draft.Total.Amount,
		"status":       string(draft.Status),
	}

	var record orderRecord
	if err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/rest/v1/orders",
		body:   []any{body},
		prefer: "return=representation",
		single: true,
	}, &record); err != nil {
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}

	return domain.Order{
		ID:        record.ID,
		UserID:    record.UserID,
		Total:     domain.Money{Amount: record.TotalAmount, Currency: currency.USD},
		Status:    domain.OrderStatus(record.Status),
		CreatedAt: record.CreatedAt,
	}, nil
}
