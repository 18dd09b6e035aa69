package entity

// CartItem is one line of a cart. FoodID is a weak reference into the
// catalog; Price captures the unit price at add time so later catalog edits
// do not change an existing line.
type CartItem struct {
	FoodID   string    `json:"foodId"`
	Food     *FoodItem `json:"food,omitempty"`
	Quantity int       `json:"quantity"`
	Price    float64   `json:"price"`
}

// Cart holds one user's pending selection. There is at most one cart per
// user, created lazily on first access.
//
// Invariants, re-established after every mutation:
//   - TotalAmount == sum(item.Price * item.Quantity) over all items
//   - at most one item per distinct FoodID
type Cart struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Items       []CartItem `json:"items"`
	TotalAmount float64    `json:"totalAmount"`
}

// NewCart returns an empty cart for the given user.
func NewCart(userID string) *Cart {
	return &Cart{
		ID:     "cart_" + userID,
		UserID: userID,
		Items:  []CartItem{},
	}
}

// AddItem merges the food into the cart: an existing line gains quantity,
// otherwise a new line is appended at the end.
func (c *Cart) AddItem(food *FoodItem) {
	for i := range c.Items {
		if c.Items[i].FoodID == food.ID {
			c.Items[i].Quantity++
			c.recalculate()

			return
		}
	}

	c.Items = append(c.Items, CartItem{
		FoodID:   food.ID,
		Food:     food,
		Quantity: 1,
		Price:    food.Price,
	})
	c.recalculate()
}

// RemoveItem decrements the line for foodID, dropping it entirely when the
// quantity would reach zero. It reports whether a matching line existed.
func (c *Cart) RemoveItem(foodID string) bool {
	for i := range c.Items {
		if c.Items[i].FoodID != foodID {
			continue
		}

		if c.Items[i].Quantity > 1 {
			c.Items[i].Quantity--
		} else {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		}
		c.recalculate()

		return true
	}

	return false
}

// Clear resets the cart to its empty state.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
	c.TotalAmount = 0
}

func (c *Cart) recalculate() {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	c.TotalAmount = total
}
