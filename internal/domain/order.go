package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderPendingPayment OrderStatus = "pending_payment"
	OrderOrdered        OrderStatus = "ordered"
	OrderReceived       OrderStatus = "received"
	OrderInProgress     OrderStatus = "in_progress"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderCompleted      OrderStatus = "completed"
	OrderCancelled      OrderStatus = "cancelled"
)

type Order struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Total  Money
	Status OrderStatus

	// Buyer is the joined profile of the ordering user, present only on
	// admin listings.
	Buyer *Buyer

	CreatedAt time.Time
}

type Buyer struct {
	FullName string
	Email    string
}

// OrderDraft is an order as submitted at checkout. The current contract
// carries the total only, no line items; see DESIGN.md.
type OrderDraft struct {
	UserID uuid.UUID
	Total  Money
	Status OrderStatus
}
