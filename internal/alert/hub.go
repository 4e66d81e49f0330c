// Package alert is the notification surface: one current alert at a time,
// auto-dismissed after its duration, with subscriber notification on every
// change.
package alert

import (
	"sync"
	"time"

	"github.com/cubtton/storefront/internal/port"
)

// DefaultDuration is applied when ShowAlert is called with a zero duration.
const DefaultDuration = 3 * time.Second

type Alert struct {
	Message  string
	Kind     port.AlertKind
	Duration time.Duration
	At       time.Time
}

// Hub implements port.Notifier. Showing an alert replaces the current one;
// each alert is dismissed automatically after its duration unless replaced
// or dismissed first.
type Hub struct {
	mu      sync.Mutex
	current *Alert
	timer   *time.Timer
	seq     uint64

	subMu sync.Mutex
	subs  []func()
}

func NewHub() *Hub {
	return &Hub{}
}

func (h *Hub) ShowAlert(message string, kind port.AlertKind, duration time.Duration) {
	if duration <= 0 {
		duration = DefaultDuration
	}

	h.mu.Lock()
	if h.timer != nil {
		h.timer.Stop()
	}
	h.seq++
	seq := h.seq
	h.current = &Alert{
		Message:  message,
		Kind:     kind,
		Duration: duration,
		At:       time.Now(),
	}
	h.timer = time.AfterFunc(duration, func() {
		h.dismiss(seq)
	})
	h.mu.Unlock()

	h.notify()
}

// Current returns a copy of the visible alert, or nil when none is shown.
func (h *Hub) Current() *Alert {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.current == nil {
		return nil
	}
	a := *h.current
	return &a
}

// Dismiss hides the current alert immediately.
func (h *Hub) Dismiss() {
	h.mu.Lock()
	seq := h.seq
	h.mu.Unlock()

	h.dismiss(seq)
}

// Subscribe registers fn to run whenever the visible alert changes.
func (h *Hub) Subscribe(fn func()) {
	h.subMu.Lock()
	defer h.subMu.Unlock()
	h.subs = append(h.subs, fn)
}

// dismiss clears the alert identified by seq. A stale seq means the alert
// was already replaced; the newer one stays visible.
func (h *Hub) dismiss(seq uint64) {
	h.mu.Lock()
	if h.seq != seq || h.current == nil {
		h.mu.Unlock()
		return
	}
	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
	h.current = nil
	h.mu.Unlock()

	h.notify()
}

func (h *Hub) notify() {
	h.subMu.Lock()
	subs := make([]func(), len(h.subs))
	copy(subs, h.subs)
	h.subMu.Unlock()

	for _, fn := range subs {
		fn()
	}
}
