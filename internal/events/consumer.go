package events

import (
	"context"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// StartCheckoutCompletedConsumer binds the storefront queue to the events
// exchange and runs the handler for every delivery until ctx is cancelled.
func StartCheckoutCompletedConsumer(ctx context.Context, conn *amqp.Connection, handler HandlerFunc, logger *log.Logger) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}

	if err := declareEventsExchange(ch); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	queue := storefrontQueueName(CheckoutCompletedRoutingKey)
	_, err = ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	if err := ch.QueueBind(queue, CheckoutCompletedRoutingKey, EventsExchange, false, nil); err != nil {
		return fmt.Errorf("queue bind: %w", err)
	}

	msgs, err := ch.Consume(
		queue,
		storefrontServiceName, // consumer tag
		false,                 // autoAck
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				logger.Println("stopping checkout.completed consumer")
				return
			case msg, ok := <-msgs:
				if !ok {
					logger.Println("messages channel closed")
					return
				}

				if err := handler(ctx, msg.Body); err != nil {
					logger.Printf("handle message error: %v", err)
					_ = msg.Nack(false, false)
					continue
				}
				_ = msg.Ack(false)
			}
		}
	}()

	return nil
}
