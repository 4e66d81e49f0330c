package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/cubtton/storefront/internal/domain"
	"github.com/cubtton/storefront/internal/port"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var ErrOrderNotFound = errors.New("order not found")

type orderRepository struct {
	pool *pgxpool.Pool
}

func NewOrder(pool *pgxpool.Pool) (port.OrderRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &orderRepository{pool: pool}, nil
}

func (r *orderRepository) CreateOrder(ctx context.Context, draft domain.OrderDraft) (domain.Order, error) {
	if draft.UserID == uuid.Nil {
		return domain.Order{}, fmt.Errorf("userID is empty")
	}
	if draft.Total.Amount.IsNegative() {
		return domain.Order{}, fmt.Errorf("total amount is negative")
	}

	row := r.pool.QueryRow(ctx,
		`INSERT INTO orders (user_id, total_amount, currency, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, user_id, total_amount::text, currency, status, created_at`,
		draft.UserID, draft.Total.Amount, draft.Total.Currency.String(), string(draft.Status))

	order, err := scanOrder(row)
	if err != nil {
		return domain.Order{}, fmt.Errorf("scanOrder: %w", err)
	}

	return order, nil
}

func (r *orderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT o.id, o.user_id, o.total_amount::text, o.currency, o.status, o.created_at,
		        p.full_name, p.email
		 FROM orders o
		 LEFT JOIN profiles p ON p.id = o.user_id
		 ORDER BY o.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var (
			order    domain.Order
			amount   string
			unit     string
			fullName *string
			email    *string
		)
		if err := rows.Scan(&order.ID, &order.UserID, &amount, &unit, &order.Status, &order.CreatedAt,
			&fullName, &email); err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}

		order.Total, err = parseMoney(amount, unit)
		if err != nil {
			return nil, fmt.Errorf("parseMoney: %w", err)
		}

		if fullName != nil || email != nil {
			order.Buyer = &domain.Buyer{}
			if fullName != nil {
				order.Buyer.FullName = *fullName
			}
			if email != nil {
				order.Buyer.Email = *email
			}
		}

		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, total_amount::text, currency, status, created_at
		 FROM orders
		 WHERE status = $1
		 ORDER BY created_at DESC`, string(status))
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanOrder: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) (domain.Order, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE orders
		 SET status = $2
		 WHERE id = $1
		 RETURNING id, user_id, total_amount::text, currency, status, created_at`,
		id, string(status))

	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Order{}, fmt.Errorf("order[%s]: %w", id, ErrOrderNotFound)
		}
		return domain.Order{}, fmt.Errorf("scanOrder: %w", err)
	}

	return order, nil
}

func scanOrder(row pgx.Row) (domain.Order, error) {
	var (
		order  domain.Order
		amount string
		unit   string
	)
	if err := row.Scan(&order.ID, &order.UserID, &amount, &unit, &order.Status, &order.CreatedAt); err != nil {
		return domain.Order{}, err
	}

	var err error
	order.Total, err = parseMoney(amount, unit)
	if err != nil {
		return domain.Order{}, fmt.Errorf("parseMoney: %w", err)
	}

	return order, nil
}

func parseMoney(amount, unit string) (domain.Money, error) {
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return domain.Money{}, fmt.Errorf("amount[%s] is not valid: %w", amount, err)
	}

	parsedCurrency, err := currency.ParseISO(unit)
	if err != nil {
		return domain.Money{}, fmt.Errorf("currency[%s] is not valid: %w", unit, err)
	}

	return domain.Money{Amount: parsedAmount, Currency: parsedCurrency}, nil
}
