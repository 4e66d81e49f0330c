// Package analytics aggregates order history into the figures the admin
// dashboard renders. All functions are pure and operate on orders already
// loaded from a repository.
package analytics

import (
	"sort"
	"time"

	"github.com/cubtton/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// MonthRevenue is the completed-order revenue for a single calendar month.
type MonthRevenue struct {
	Month   string // e.g. "January 2026"
	Revenue decimal.Decimal
}

// Stats summarises the order book for the dashboard header cards.
type Stats struct {
	TotalOrders   int
	TotalRevenue  decimal.Decimal // completed orders only
	PendingOrders int             // neither completed nor cancelled
}

const monthLayout = "January 2006"

// MonthlyRevenue groups completed orders by calendar month, oldest first.
// Orders in any other status carry no recognised revenue and are skipped.
func MonthlyRevenue(orders []domain.Order) []MonthRevenue {
	type bucket struct {
		start   time.Time
		revenue decimal.Decimal
	}

	buckets := map[string]*bucket{}
	for _, o := range orders {
		if o.Status != domain.OrderCompleted {
			continue
		}

		start := time.Date(o.CreatedAt.Year(), o.CreatedAt.Month(), 1, 0, 0, 0, 0, time.UTC)
		key := start.Format(monthLayout)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{start: start}
			buckets[key] = b
		}
		b.revenue = b.revenue.Add(o.Total.Amount)
	}

	months := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		months = append(months, b)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].start.Before(months[j].start)
	})

	out := make([]MonthRevenue, 0, len(months))
	for _, b := range months {
		out = append(out, MonthRevenue{
			Month:   b.start.Format(monthLayout),
			Revenue: b.revenue,
		})
	}

	return out
}

// ComputeStats counts all orders, sums completed revenue and counts orders
// still moving through fulfilment.
func ComputeStats(orders []domain.Order) Stats {
	stats := Stats{
		TotalOrders:  len(orders),
		TotalRevenue: decimal.Zero,
	}

	for _, o := range orders {
		switch o.Status {
		case domain.OrderCompleted:
			stats.TotalRevenue = stats.TotalRevenue.Add(o.Total.Amount)
		case domain.OrderCancelled:
			// closed without revenue
		default:
			stats.PendingOrders++
		}
	}

	return stats
}
