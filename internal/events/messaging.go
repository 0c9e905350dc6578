package events

import (
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	EventsExchange              = "repticare.events"
	CheckoutCompletedRoutingKey = "checkout.completed.v1"
	storefrontServiceName       = "storefront"
)

func serviceQueue(serviceName, routingKey string) string {
	return serviceName + "." + routingKey
}

func storefrontQueueName(routingKey string) string {
	return serviceQueue(storefrontServiceName, routingKey)
}

func declareEventsExchange(ch *amqp.Channel) error {
	return ch.ExchangeDeclare(
		EventsExchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
}
