package cart

import (
	"sync"

	"github.com/mayasbakes/bakehouse/internal/catalog/engine"
)

// Registry keeps one cart per browsing session, keyed by the session
// cookie ID. Carts live in process memory and disappear on restart.
type Registry struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

// NewRegistry creates an empty session cart registry.
func NewRegistry() *Registry {
	return &Registry{
		carts: make(map[string]*Cart),
	}
}

// WithCart runs fn against the session's cart under the registry lock,
// creating the cart on first use. fn must not retain the cart.
func (r *Registry) WithCart(sessionID string, fn func(c *Cart)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.carts[sessionID]
	if !ok {
		c = New()
		r.carts[sessionID] = c
	}
	fn(c)
}

// Snapshot returns a point-in-time copy of the session's cart lines with
// the derived totals. A session without a cart yields an empty snapshot.
func (r *Registry) Snapshot(sessionID string) CartSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.carts[sessionID]
	if !ok {
		return CartSnapshot{Lines: []Line{}, SubtotalDisplay: engine.FormatUSD(0)}
	}
	subtotal := c.SubtotalCents()
	return CartSnapshot{
		Lines:           c.Lines(),
		SubtotalCents:   subtotal,
		SubtotalDisplay: engine.FormatUSD(subtotal),
		ItemCount:       c.ItemCount(),
	}
}

// Drop removes the session's cart entirely.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
}

// CartSnapshot is an immutable view of a cart at one point in time.
type CartSnapshot struct {
	Lines           []Line `json:"lines"`
	SubtotalCents   int64  `json:"subtotal_cents"`
	SubtotalDisplay string `json:"subtotal_display"`
	ItemCount       int    `json:"item_count"`
}
