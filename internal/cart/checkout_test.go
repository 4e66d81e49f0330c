package cart_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cubtton/storefront/internal/cart"
	"github.com/cubtton/storefront/internal/domain"
	"github.com/cubtton/storefront/internal/port"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	user *domain.User
	err  error
}

func (a *fakeAuth) GetCurrentUser(context.Context) (*domain.User, error) {
	return a.user, a.err
}

type fakeOrders struct {
	mu      sync.Mutex
	created []domain.OrderDraft
	err     error

	// when set, CreateOrder signals started and blocks until released
	started  chan struct{}
	released chan struct{}
}

func (o *fakeOrders) CreateOrder(_ context.Context, draft domain.OrderDraft) (domain.Order, error) {
	if o.started != nil {
		o.started <- struct{}{}
		<-o.released
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.err != nil {
		return domain.Order{}, o.err
	}
	o.created = append(o.created, draft)
	return domain.Order{ID: uuid.New(), UserID: draft.UserID, Total: draft.Total, Status: draft.Status}, nil
}

type recordedAlert struct {
	message string
	kind    port.AlertKind
}

type fakeAlerts struct {
	mu     sync.Mutex
	alerts []recordedAlert
}

func (a *fakeAlerts) ShowAlert(message string, kind port.AlertKind, _ time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.alerts = append(a.alerts, recordedAlert{message: message, kind: kind})
}

func (a *fakeAlerts) last(t *testing.T) recordedAlert {
	t.Helper()
	a.mu.Lock()
	defer a.mu.Unlock()
	require.NotEmpty(t, a.alerts)
	return a.alerts[len(a.alerts)-1]
}

func TestCheckoutUnauthenticated(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)
	m.AddItem(ctx, domain.Product{ID: 1, Price: "9.99"}, 2)

	orders := &fakeOrders{}
	alerts := &fakeAlerts{}
	var routes []string

	co := cart.NewCheckout(m, &fakeAuth{}, orders, alerts, func(route string) {
		routes = append(routes, route)
	})

	outcome, err := co.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, cart.OutcomeLoginRequired, outcome)

	// cart preserved, drawer closed, redirected with an info alert
	assert.Equal(t, 2, m.Count())
	assert.False(t, m.IsOpen())
	assert.Equal(t, []string{cart.LoginRoute}, routes)
	assert.Empty(t, orders.created)

	last := alerts.last(t)
	assert.Equal(t, port.AlertInfo, last.kind)
	assert.Contains(t, last.message, "login")
}

func TestCheckoutSuccess(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)
	m.AddItem(ctx, domain.Product{ID: 1, Price: "9.99"}, 2)
	m.AddItem(ctx, domain.Product{ID: 2, Price: "$5.00"}, 1)

	userID := uuid.New()
	orders := &fakeOrders{}
	alerts := &fakeAlerts{}

	co := cart.NewCheckout(m, &fakeAuth{user: &domain.User{ID: userID, Role: domain.RoleClient}}, orders, alerts, nil)

	outcome, err := co.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, cart.OutcomeSucceeded, outcome)

	require.Len(t, orders.created, 1)
	draft := orders.created[0]
	assert.Equal(t, userID, draft.UserID)
	assert.Equal(t, domain.OrderOrdered, draft.Status)
	assert.True(t, decimal.RequireFromString("24.98").Equal(draft.Total.Amount))

	assert.Equal(t, 0, m.Count())
	assert.False(t, m.IsOpen())
	assert.Equal(t, port.AlertSuccess, alerts.last(t).kind)
}

func TestCheckoutOrderRejected(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)
	m.AddItem(ctx, domain.Product{ID: 1, Price: "9.99"}, 2)
	require.True(t, m.IsOpen())

	orders := &fakeOrders{err: errors.New("insufficient stock")}
	alerts := &fakeAlerts{}

	co := cart.NewCheckout(m, &fakeAuth{user: &domain.User{ID: uuid.New()}}, orders, alerts, nil)

	outcome, err := co.Submit(ctx)
	require.Error(t, err)
	assert.Equal(t, cart.OutcomeFailed, outcome)

	// cart untouched, drawer still open, error surfaced with the reason
	assert.Equal(t, 2, m.Count())
	assert.True(t, m.IsOpen())

	last := alerts.last(t)
	assert.Equal(t, port.AlertError, last.kind)
	assert.Contains(t, last.message, "insufficient stock")
}

func TestCheckoutAuthFailure(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)
	m.AddItem(ctx, domain.Product{ID: 1, Price: "9.99"}, 1)

	alerts := &fakeAlerts{}
	co := cart.NewCheckout(m, &fakeAuth{err: errors.New("session expired")}, &fakeOrders{}, alerts, nil)

	outcome, err := co.Submit(ctx)
	require.Error(t, err)
	assert.Equal(t, cart.OutcomeFailed, outcome)
	assert.Equal(t, 1, m.Count())
	assert.Equal(t, port.AlertError, alerts.last(t).kind)
}

func TestCheckoutSingleInFlight(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)
	m.AddItem(ctx, domain.Product{ID: 1, Price: "9.99"}, 1)

	orders := &fakeOrders{
		started:  make(chan struct{}),
		released: make(chan struct{}),
	}

	co := cart.NewCheckout(m, &fakeAuth{user: &domain.User{ID: uuid.New()}}, orders, &fakeAlerts{}, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = co.Submit(ctx)
	}()

	<-orders.started
	assert.True(t, co.InFlight())

	_, err := co.Submit(ctx)
	require.ErrorIs(t, err, cart.ErrCheckoutInFlight)

	close(orders.released)
	<-done
	assert.False(t, co.InFlight())
}
