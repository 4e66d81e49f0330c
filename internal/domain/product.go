package domain

import (
	"strconv"
	"time"
)

type Product struct {
	ID          int64
	Title       string
	Description string
	Category    string
	Price       string
	Image       string

	CreatedAt time.Time
}

// CartLine converts the product into a cart line with the given quantity.
// The price travels raw; it is normalized only when the cart totals it.
func (p Product) CartLine(quantity int) CartLine {
	return CartLine{
		ProductID: strconv.FormatInt(p.ID, 10),
		Price:     p.Price,
		Quantity:  quantity,
		Meta: LineMeta{
			Title:    p.Title,
			Category: p.Category,
			ImageURL: p.Image,
		},
	}
}
