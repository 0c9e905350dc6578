package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/repticare/storefront/internal/cart"
)

// HandlerFunc processes one raw message body.
type HandlerFunc func(ctx context.Context, body []byte) error

// CheckoutCompletedHandler clears the purchaser's durable cart when the order
// pipeline reports a finished checkout. Clearing an already-empty cart is a
// no-op, so redelivery is harmless.
func CheckoutCompletedHandler(repo cart.Repository, logger *log.Logger) HandlerFunc {
	return func(ctx context.Context, body []byte) error {
		var ev CheckoutCompleted
		if err := json.Unmarshal(body, &ev); err != nil {
			return fmt.Errorf("unmarshal CheckoutCompleted: %w", err)
		}
		if ev.UserID == "" {
			return fmt.Errorf("CheckoutCompleted without userId (order %s)", ev.OrderID)
		}

		if err := repo.Clear(ctx, ev.UserID); err != nil {
			return fmt.Errorf("clear cart for %s: %w", ev.UserID, err)
		}

		logger.Printf("cleared cart for user %s after checkout of order %s", ev.UserID, ev.OrderID)
		return nil
	}
}
