package broker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// PublishOptions mirrors the handful of per-message knobs the fabric
// actually needs: which exchange/routing key to publish on and whether
// delivery should survive a broker restart. Modeled after the small
// options struct shape used for AMQP publishing across the reference
// examples, trimmed to what ingest/fan-out publishing requires.
type PublishOptions struct {
	Exchange   string
	RoutingKey string
	Persistent bool
}

// Publish marshals body as the message payload and publishes it with the
// given options. Ingest publishes set Persistent so messages ride out a
// broker restart while still queued (I5's durability applies to the
// exchange/queue pair, this applies to the message itself).
func Publish(ctx context.Context, ch *amqp.Channel, opts PublishOptions, body []byte) error {
	mode := amqp.Transient
	if opts.Persistent {
		mode = amqp.Persistent
	}
	return ch.PublishWithContext(ctx, opts.Exchange, opts.RoutingKey, false, false, amqp.Publishing{
		ContentType:  "application/octet-stream",
		DeliveryMode: mode,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
}

// Consume starts consuming deliveries from queue with manual ack mode
// (workers and sessions explicitly Ack/Nack — at-least-once per S5). An
// empty consumerTag is replaced with a fresh one so that each worker
// process and each session shows up under a distinct, identifiable name
// in the broker's management UI rather than all sharing the server-
// generated default.
func Consume(ch *amqp.Channel, queue, consumerTag string) (<-chan amqp.Delivery, error) {
	if consumerTag == "" {
		consumerTag = ConsumerTag(queue)
	}
	return ch.Consume(queue, consumerTag, false, false, false, false, nil)
}

// ConsumerTag builds a consumer tag unique to this process/connection,
// prefixed with the queue name for readability in broker tooling.
func ConsumerTag(prefix string) string {
	return fmt.Sprintf("%s.%s", prefix, uuid.NewString())
}

// PublishToErrors routes a payload the caller couldn't process to the
// durable errors dead-letter fanout (S6), tagging it with the reason in a
// header so an operator inspecting the errors queue can see why a message
// landed there without needing to parse the body.
func PublishToErrors(ctx context.Context, ch *amqp.Channel, reason string, body []byte) error {
	return ch.PublishWithContext(ctx, ExchangeErrors, "", false, false, amqp.Publishing{
		ContentType:  "application/octet-stream",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Headers:      amqp.Table{"x-reject-reason": reason},
		Body:         body,
	})
}
