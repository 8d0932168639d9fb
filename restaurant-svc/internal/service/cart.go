package service

import "restaurant-digital/restaurant-svc/internal/domain"

// Cart maps item ids to lines. It never holds a zero-quantity line.
// Not safe for concurrent use; App guards it.
type Cart struct {
	lines map[int64]*domain.CartLine
	order []int64
}

func NewCart() *Cart {
	return &Cart{lines: make(map[int64]*domain.CartLine)}
}

func (c *Cart) Add(item domain.MenuItem) {
	if line, ok := c.lines[item.ID]; ok {
		line.Quantity++
		return
	}
	c.lines[item.ID] = &domain.CartLine{Item: item, Quantity: 1}
	c.order = append(c.order, item.ID)
}

func (c *Cart) SetQuantity(id int64, quantity int) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	line, ok := c.lines[id]
	if quantity == 0 {
		if ok {
			c.remove(id)
		}
		return nil
	}
	if !ok {
		return ErrCartLineNotFound
	}
	line.Quantity = quantity
	return nil
}

func (c *Cart) remove(id int64) {
	delete(c.lines, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []domain.CartLine {
	lines := make([]domain.CartLine, 0, len(c.order))
	for _, id := range c.order {
		line := *c.lines[id]
		if line.Item.Promotion != nil {
			promo := *line.Item.Promotion
			line.Item.Promotion = &promo
		}
		lines = append(lines, line)
	}
	return lines
}

func (c *Cart) Total() int64 {
	var total int64
	for _, line := range c.lines {
		total += line.Subtotal()
	}
	return total
}

func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Clear() {
	c.lines = make(map[int64]*domain.CartLine)
	c.order = nil
}

func (c *Cart) View() domain.CartView {
	return domain.CartView{
		Lines:     c.Lines(),
		Total:     c.Total(),
		ItemCount: c.ItemCount(),
	}
}
