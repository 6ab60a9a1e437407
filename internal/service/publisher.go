package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/iliyamo/fyyur/internal/queue"
)

// Publisher delivers listing events to whoever is interested.
type Publisher interface {
	Publish(ctx context.Context, ev queue.ListingEvent) error
}

// NopPublisher drops every event.  It is used when events are disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, queue.ListingEvent) error { return nil }

// RabbitPublisher publishes events to the listing.activity queue.  Each
// call dials the broker, so a broker outage only costs the events raised
// while it lasts.
type RabbitPublisher struct {
	URL string
}

// Publish sends ev as a persistent JSON message through the default
// exchange.
func (p RabbitPublisher) Publish(ctx context.Context, ev queue.ListingEvent) error {
	conn, err := amqp.Dial(p.URL)
	if err != nil {
		return fmt.Errorf("rabbitmq dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	// Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(
		queue.ActivityQueueName, // name
		true,                    // durable
		false,                   // autoDelete
		false,                   // exclusive
		false,                   // noWait
		nil,                     // args
	); err != nil {
		return fmt.Errorf("rabbitmq queue declare: %w", err)
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // store on disk
		MessageId:    ev.EventID,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx,
		"",                      // default exchange
		queue.ActivityQueueName, // routing key = queue name
		false,                   // mandatory
		false,                   // immediate
		pub,
	); err != nil {
		return fmt.Errorf("rabbitmq publish: %w", err)
	}
	return nil
}
