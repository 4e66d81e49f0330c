// Package cart holds the in-session shopping cart state: the line list,
// its derived totals, the transient drawer visibility flag, and the
// checkout flow that turns the cart into a submitted order.
package cart

import (
	"context"
	"sync"

	"github.com/cubtton/storefront/internal/domain"
	"github.com/cubtton/storefront/internal/port"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Manager owns the cart state for one session. Construct it once at
// application start and hand it to every view that needs it. All operations
// are safe for concurrent use, and every mutation persists the full line
// list before returning.
type Manager struct {
	store port.CartStore
	log   zerolog.Logger

	mu    sync.RWMutex
	lines []domain.CartLine
	open  bool

	subMu sync.Mutex
	subs  []func()
}

// NewManager restores the last persisted snapshot from store. A missing or
// unreadable snapshot yields an empty cart, never an error; the failure is
// logged. Lines failing minimal validation are dropped. The drawer always
// starts closed.
func NewManager(ctx context.Context, store port.CartStore, logger zerolog.Logger) *Manager {
	m := &Manager{
		store: store,
		log:   logger,
	}

	lines, err := store.Load(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load cart from storage, starting empty")
		return m
	}

	m.lines = domain.SanitizeLines(lines)
	return m
}

// AddItem puts quantity units of product into the cart, folding into an
// existing line for the same product. Quantities below 1 are treated as 1.
// Adding an item opens the drawer.
func (m *Manager) AddItem(ctx context.Context, product domain.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	m.mu.Lock()
	m.lines = domain.MergeLine(m.lines, product.CartLine(quantity))
	m.open = true
	m.persistLocked(ctx)
	m.mu.Unlock()

	m.notify()
}

// RemoveItem drops the line keyed by productID. Removing an absent product
// is a no-op but still persists.
func (m *Manager) RemoveItem(ctx context.Context, productID string) {
	m.mu.Lock()
	m.lines = domain.RemoveLine(m.lines, productID)
	m.persistLocked(ctx)
	m.mu.Unlock()

	m.notify()
}

// UpdateQuantity sets the quantity of the line keyed by productID to
// exactly quantity. A quantity below 1 removes the line.
func (m *Manager) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	m.mu.Lock()
	m.lines = domain.SetQuantity(m.lines, productID, quantity)
	m.persistLocked(ctx)
	m.mu.Unlock()

	m.notify()
}

// Clear empties the cart. The drawer visibility is left as is.
func (m *Manager) Clear(ctx context.Context) {
	m.mu.Lock()
	m.lines = nil
	m.persistLocked(ctx)
	m.mu.Unlock()

	m.notify()
}

// ToggleOpen flips the drawer visibility. Visibility is transient and
// never persisted.
func (m *Manager) ToggleOpen() {
	m.mu.Lock()
	m.open = !m.open
	m.mu.Unlock()

	m.notify()
}

// SetOpen sets the drawer visibility.
func (m *Manager) SetOpen(open bool) {
	m.mu.Lock()
	m.open = open
	m.mu.Unlock()

	m.notify()
}

// IsOpen reports the drawer visibility.
func (m *Manager) IsOpen() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.open
}

// Lines returns a copy of the current line list in insertion order.
func (m *Manager) Lines() []domain.CartLine {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.lines) == 0 {
		return nil
	}
	lines := make([]domain.CartLine, len(m.lines))
	copy(lines, m.lines)
	return lines
}

// Total recomputes the cart total on every call. Unparseable prices
// contribute zero, so the result is never negative.
func (m *Manager) Total() decimal.Decimal {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return domain.Total(m.lines)
}

// Count recomputes the number of units in the cart on every call.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return domain.Count(m.lines)
}

// Subscribe registers fn to run after every completed mutation. Subscribers
// pull Lines/Total/Count/IsOpen on notification. There is no unsubscribe;
// subscriptions live as long as the session.
func (m *Manager) Subscribe(fn func()) {
	m.subMu.Lock()
	defer m.subMu.Unlock()
	m.subs = append(m.subs, fn)
}

// persistLocked writes the full line list inside the caller's critical
// section, so a stored snapshot always matches the state that produced it.
// Write failures are logged and swallowed: the cart keeps operating
// in-memory for the rest of the session.
func (m *Manager) persistLocked(ctx context.Context) {
	if err := m.store.Save(ctx, m.lines); err != nil {
		m.log.Warn().Err(err).Msg("failed to persist cart")
	}
}

func (m *Manager) notify() {
	m.subMu.Lock()
	subs := make([]func(), len(m.subs))
	copy(subs, m.subs)
	m.subMu.Unlock()

	for _, fn := range subs {
		fn()
	}
}
