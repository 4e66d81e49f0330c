package domain

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func USD(amount decimal.Decimal) Money {
	return Money{Amount: amount, Currency: currency.USD}
}

// ParsePrice normalizes a raw price value coming from product data.
// Source prices may carry currency symbols or other stray characters
// ("$9.99", "9.99 USD"). Anything that does not parse to a non-negative
// number contributes zero, never an error.
func ParsePrice(raw string) decimal.Decimal {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	d, err := decimal.NewFromString(b.String())
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}

	return d
}
