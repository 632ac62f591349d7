package cart

import (
	"errors"
	"fmt"
	"sync"

	"github.com/halimdz/tech-store-backend/internal/product"
	"github.com/halimdz/tech-store-backend/internal/store"
)

// Collection is the store namespace holding the cart snapshot. The name is
// kept for drop-in compatibility with existing persisted data.
const Collection = "tech_store_cart"

// Line pairs a product snapshot with a quantity. The snapshot is taken when
// the item is added, so later catalog price changes do not retroactively
// change the line.
type Line struct {
	Product  product.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart is the in-memory aggregate, synced to the store on every mutation.
// There is at most one line per product id.
type Cart struct {
	mu    sync.Mutex
	store store.Store
	lines []Line
}

// New loads the persisted snapshot so the cart survives restarts. A read
// failure starts an empty cart; it never fails the caller.
func New(st store.Store) *Cart {
	c := &Cart{store: st}
	var lines []Line
	if err := st.Read(Collection, &lines); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			fmt.Printf("warning: could not load cart: %v\n", err)
		}
		return c
	}
	c.lines = lines
	return c
}

// AddItem increments the quantity of an existing line or appends a new line
// with quantity 1.
func (c *Cart) AddItem(p product.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity++
			c.persist()
			return
		}
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: 1})
	c.persist()
}

// UpdateQuantity sets a line's quantity. Quantities below 1 are ignored;
// removal is a distinct explicit action.
func (c *Cart) UpdateQuantity(productID, quantity int) {
	if quantity < 1 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity = quantity
			c.persist()
			return
		}
	}
}

func (c *Cart) RemoveItem(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	lines := make([]Line, 0, len(c.lines))
	for _, l := range c.lines {
		if l.Product.ID != productID {
			lines = append(lines, l)
		}
	}
	c.lines = lines
	c.persist()
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	c.persist()
}

// Lines returns a copy of the current cart snapshot.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// TotalItems is the badge count: the sum of all line quantities.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice sums price times quantity across all lines.
func (c *Cart) TotalPrice() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return totalPrice(c.lines)
}

func totalPrice(lines []Line) int {
	total := 0
	for _, l := range lines {
		total += l.Product.Price * l.Quantity
	}
	return total
}

// persist writes the full snapshot. Callers hold the lock. Write failures
// are logged, never surfaced: the in-memory cart stays usable.
func (c *Cart) persist() {
	snapshot := c.lines
	if snapshot == nil {
		snapshot = []Line{}
	}
	if err := c.store.Write(Collection, snapshot); err != nil {
		fmt.Printf("warning: could not persist cart: %v\n", err)
	}
}
