package session

import "github.com/shivamstore/storefront/database/model"

// CartItem is a price snapshot taken when a product is added. Adding
// the same product twice yields two items; there is no quantity field.
type CartItem struct {
	ProductId int
	Name      string
	Price     float64
}

// Cart is the transient, ordered list of selected items held in the
// cookie session until checkout.
type Cart struct {
	Items []CartItem
}

// AddItem appends a snapshot of the product. No deduplication.
func (c *Cart) AddItem(p *model.Product) {
	c.Items = append(c.Items, CartItem{
		ProductId: p.Id,
		Name:      p.Name,
		Price:     p.Price,
	})
}

// Total returns the sum of line-item prices, 0 for an empty cart.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price
	}
	return total
}

func (c *Cart) Len() int {
	return len(c.Items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Clear empties the cart in place.
func (c *Cart) Clear() {
	c.Items = nil
}
