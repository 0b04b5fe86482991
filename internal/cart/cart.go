// Package cart implements the session shopping cart.
package cart

// Line is one product entry in a cart. Name, UnitPriceCents and ImageURL
// are snapshots taken when the product is first added; later adds of the
// same product only raise the quantity.
type Line struct {
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	ImageURL       string `json:"image_url"`
	Quantity       int    `json:"quantity"`
}

// Cart holds an ordered list of lines. Order is insertion order of the
// first add per product. Cart is not safe for concurrent use; the
// Registry serializes access per session.
type Cart struct {
	lines []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add merges the item into the cart. If a line with the same product ID
// already exists its quantity is increased and the original snapshot is
// kept; otherwise a new line is appended. Adds with a quantity below 1
// are rejected as a no-op.
func (c *Cart) Add(item Line) {
	if item.Quantity < 1 {
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == item.ProductID {
			c.lines[i].Quantity += item.Quantity
			return
		}
	}
	c.lines = append(c.lines, item)
}

// Remove drops the line with the given product ID. Removing an absent
// product is a no-op.
func (c *Cart) Remove(productID string) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces the quantity of an existing line. A quantity of
// zero or less removes the line. Unknown product IDs are ignored.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// SubtotalCents recomputes the cart subtotal from its lines.
func (c *Cart) SubtotalCents() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.UnitPriceCents * int64(l.Quantity)
	}
	return total
}

// ItemCount is the sum of all line quantities.
func (c *Cart) ItemCount() int {
	var count int
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}
