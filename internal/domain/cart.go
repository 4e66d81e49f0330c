package domain

import (
	"github.com/shopspring/decimal"
)

// Cart is a persisted cart snapshot owned by a single user, as stored
// server-side. The in-session cart state lives in the cart package and
// operates on the same lines.
type Cart struct {
	OwnerID string
	Lines   []CartLine
}

// CartLine is one distinct product within a cart. ProductID is the line key:
// a cart never holds two lines for the same product. Price is carried raw,
// exactly as it arrived from product data, and normalized only when totalling.
type CartLine struct {
	ProductID string
	Price     string
	Quantity  int

	Meta LineMeta
}

// LineMeta carries display-only attributes. The cart logic never
// interprets them.
type LineMeta struct {
	Title    string
	Category string
	ImageURL string
}

// MergeLine adds line to lines, folding it into an existing line for the
// same product by incrementing that line's quantity. The existing line's
// snapshot is kept as originally stored; only quantity changes.
func MergeLine(lines []CartLine, line CartLine) []CartLine {
	for i, l := range lines {
		if l.ProductID == line.ProductID {
			lines[i].Quantity += line.Quantity
			return lines
		}
	}
	return append(lines, line)
}

// RemoveLine removes the line keyed by productID. Removing an absent
// product is a no-op.
func RemoveLine(lines []CartLine, productID string) []CartLine {
	for i, l := range lines {
		if l.ProductID == productID {
			return append(lines[:i], lines[i+1:]...)
		}
	}
	return lines
}

// SetQuantity sets the quantity of the line keyed by productID to exactly
// quantity. A quantity below 1 removes the line instead; a line never holds
// a non-positive quantity. Unknown productID is a no-op.
func SetQuantity(lines []CartLine, productID string, quantity int) []CartLine {
	if quantity < 1 {
		return RemoveLine(lines, productID)
	}
	for i, l := range lines {
		if l.ProductID == productID {
			lines[i].Quantity = quantity
			break
		}
	}
	return lines
}

// Total sums unit price times quantity over all lines. Unparseable prices
// contribute zero, so the total is always non-negative and never NaN.
func Total(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		price := ParsePrice(l.Price)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

// Count sums the quantities over all lines.
func Count(lines []CartLine) int {
	var count int
	for _, l := range lines {
		count += l.Quantity
	}
	return count
}

// SanitizeLines drops lines that fail minimal validation: an empty product
// id or a quantity below 1. Used when restoring a snapshot so that corrupt
// records degrade to a smaller cart instead of an error.
func SanitizeLines(lines []CartLine) []CartLine {
	var out []CartLine
	for _, l := range lines {
		if l.ProductID == "" || l.Quantity < 1 {
			continue
		}
		out = append(out, l)
	}
	return out
}
