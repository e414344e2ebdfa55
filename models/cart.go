package models

// CartLine pairs a catalog item id with the quantity requested.
type CartLine struct {
	ItemID string `json:"id"`
	Qty    int    `json:"quantity"`
}

// Cart holds the wizard's current selection. Lines keep their first-insertion
// order and stay unique by item id; a line never survives at quantity zero.
type Cart struct {
	Lines []CartLine
}

// PriceLookup resolves a catalog item id to its unit price.
type PriceLookup interface {
	Price(itemID string) (float64, bool)
}

// AddOrIncrement bumps the quantity of an existing line or appends a new one
// with quantity one.
func (c *Cart) AddOrIncrement(itemID string) {
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			c.Lines[i].Qty++
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{ItemID: itemID, Qty: 1})
}

// UpdateQuantity applies delta to the line for itemID. A result at or below
// zero removes the line; a positive delta on a missing line creates it with
// quantity one.
func (c *Cart) UpdateQuantity(itemID string, delta int) {
	for i := range c.Lines {
		if c.Lines[i].ItemID != itemID {
			continue
		}
		newQty := c.Lines[i].Qty + delta
		if newQty <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
		c.Lines[i].Qty = newQty
		return
	}
	if delta > 0 {
		c.Lines = append(c.Lines, CartLine{ItemID: itemID, Qty: 1})
	}
}

// Quantity returns the current quantity for itemID, zero when absent.
func (c *Cart) Quantity(itemID string) int {
	for _, line := range c.Lines {
		if line.ItemID == itemID {
			return line.Qty
		}
	}
	return 0
}

// IsEmpty reports whether no lines are selected.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Total sums quantity times unit price over all lines. Lines whose item id is
// unknown to the catalog contribute zero; callers that care should check
// catalog membership themselves.
func (c *Cart) Total(prices PriceLookup) float64 {
	var total float64
	for _, line := range c.Lines {
		price, ok := prices.Price(line.ItemID)
		if !ok {
			continue
		}
		total += price * float64(line.Qty)
	}
	return total
}

// Items converts the cart lines into order payload items.
func (c *Cart) Items() []OrderItem {
	items := make([]OrderItem, 0, len(c.Lines))
	for _, line := range c.Lines {
		items = append(items, OrderItem{ID: line.ItemID, Quantity: line.Qty})
	}
	return items
}
