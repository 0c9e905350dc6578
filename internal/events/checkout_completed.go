package events

import "time"

const EventTypeCheckoutCompleted = "CheckoutCompleted"

// CheckoutCompleted is emitted by the order pipeline once a checkout went
// through. The storefront reacts by clearing the purchaser's cart.
type CheckoutCompleted struct {
	EventType string    `json:"eventType"`
	OrderID   string    `json:"orderId"`
	UserID    string    `json:"userId"`
	Timestamp time.Time `json:"timestamp"`
}
