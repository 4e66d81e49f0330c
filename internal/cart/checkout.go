package cart

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/cubtton/storefront/internal/domain"
	"github.com/cubtton/storefront/internal/port"
)

// Outcome is the terminal state of a single checkout attempt. There is no
// retry loop; a failed attempt needs a fresh user action.
type Outcome string

const (
	OutcomeSucceeded     Outcome = "succeeded"
	OutcomeFailed        Outcome = "failed"
	OutcomeLoginRequired Outcome = "login_required"
)

// LoginRoute is where an unauthenticated checkout redirects to.
const LoginRoute = "/login"

var ErrCheckoutInFlight = errors.New("checkout already in progress")

// Checkout converts the current cart into a submitted order. One attempt
// runs at a time; re-submission while a request is pending is rejected.
type Checkout struct {
	cart     *Manager
	auth     port.AuthProvider
	orders   port.OrderCreator
	alerts   port.Notifier
	navigate func(route string)

	inFlight atomic.Bool
}

func NewCheckout(cart *Manager, auth port.AuthProvider, orders port.OrderCreator, alerts port.Notifier, navigate func(route string)) *Checkout {
	return &Checkout{
		cart:     cart,
		auth:     auth,
		orders:   orders,
		alerts:   alerts,
		navigate: navigate,
	}
}

// InFlight reports whether an attempt is currently awaiting the order API.
// The drawer disables its checkout button while this is true.
func (c *Checkout) InFlight() bool {
	return c.inFlight.Load()
}

// Submit runs one checkout attempt:
//
//   - nobody signed in: close the drawer, show an info alert, redirect to
//     login. The cart is preserved.
//   - order accepted: clear the cart, close the drawer, show a success
//     alert.
//   - order rejected: leave the cart untouched and the drawer open, show an
//     error alert carrying the failure reason.
//
// The submitted order carries the user id and the cart total only; line
// items are not transmitted.
func (c *Checkout) Submit(ctx context.Context) (Outcome, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return OutcomeFailed, ErrCheckoutInFlight
	}
	defer c.inFlight.Store(false)

	user, err := c.auth.GetCurrentUser(ctx)
	if err != nil {
		c.alerts.ShowAlert("Failed to place order: "+err.Error(), port.AlertError, 0)
		return OutcomeFailed, fmt.Errorf("auth.GetCurrentUser: %w", err)
	}

	if user == nil {
		c.cart.SetOpen(false)
		c.alerts.ShowAlert("Please login to checkout", port.AlertInfo, 0)
		if c.navigate != nil {
			c.navigate(LoginRoute)
		}
		return OutcomeLoginRequired, nil
	}

	draft := domain.OrderDraft{
		UserID: user.ID,
		Total:  domain.USD(c.cart.Total()),
		Status: domain.OrderOrdered,
	}

	if _, err := c.orders.CreateOrder(ctx, draft); err != nil {
		c.alerts.ShowAlert("Failed to place order: "+err.Error(), port.AlertError, 0)
		return OutcomeFailed, fmt.Errorf("orders.CreateOrder: %w", err)
	}

	c.cart.Clear(ctx)
	c.cart.SetOpen(false)
	c.alerts.ShowAlert("Order placed successfully!", port.AlertSuccess, 0)
	return OutcomeSucceeded, nil
}
