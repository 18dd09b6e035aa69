package entity

import "time"

// OrderStatus tracks an order through the fulfillment pipeline.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "Pending"
	OrderStatusConfirmed      OrderStatus = "Confirmed"
	OrderStatusPreparing      OrderStatus = "Preparing"
	OrderStatusOutForDelivery OrderStatus = "Out for delivery"
	OrderStatusDelivered      OrderStatus = "Delivered"
	OrderStatusCancelled      OrderStatus = "Cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// OrderItem is a line snapshot taken at checkout. Food is resolved against
// the catalog when possible; the snapshot never changes afterwards.
type OrderItem struct {
	FoodID   string    `json:"foodId"`
	Price    float64   `json:"price"`
	Quantity int       `json:"quantity"`
	Food     *FoodItem `json:"food,omitempty"`
}

// Order is created once per checkout from the current cart and afterwards
// is immutable except for Status and UpdatedAt. Deleting an order removes
// it permanently.
type Order struct {
	ID           string      `json:"id"`
	UserID       string      `json:"userId"`
	OrderedItems []OrderItem `json:"orderedItems"`
	UserAddress  string      `json:"userAddress"`
	Email        string      `json:"email"`
	PhoneNumber  string      `json:"phoneNumber"`
	Amount       float64     `json:"amount"`
	Status       OrderStatus `json:"orderStatus"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    *time.Time  `json:"updatedAt,omitempty"`
}
