package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"garage_workflow/internal/domain/entities"
	"garage_workflow/internal/usecase/interfaces"

	amqp "github.com/rabbitmq/amqp091-go"
)

const DefaultNotificationQueue = "garage.notifications"

// NotificationMessage is the body published for every customer event. Delivery (email, push) is done by the
// queue consumer.
type NotificationMessage struct {
	Event       entities.NotificationEventKind   `json:"event"`
	Recipient   string                           `json:"recipient"`
	TriggerMode entities.NotificationTriggerMode `json:"trigger_mode"`
	Params      map[string]string                `json:"params"`
	EmittedAt   time.Time                        `json:"emitted_at"`
}

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// NotificationPublisher implements the notification port on top of a durable RabbitMQ queue.
type NotificationPublisher struct {
	mu    sync.Mutex
	ch    publisher
	queue string
	now   func() time.Time
}

var _ interfaces.INotificationPort = (*NotificationPublisher)(nil)

// NewNotificationPublisher declares the queue and returns a publisher bound to it.
func NewNotificationPublisher(conn *RabbitMQConnection, queue string) (*NotificationPublisher, error) {
	if queue == "" {
		queue = DefaultNotificationQueue
	}
	_, err := conn.Channel.QueueDeclare(
		queue, // queue name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}
	return newNotificationPublisher(conn.Channel, queue), nil
}

func newNotificationPublisher(ch publisher, queue string) *NotificationPublisher {
	return &NotificationPublisher{ch: ch, queue: queue, now: func() time.Time { return time.Now().UTC() }}
}

func (p *NotificationPublisher) SendEventNotification(ctx context.Context, settings entities.NotificationSettings, kind entities.NotificationEventKind, recipient string, params map[string]string) error {
	now := p.now()
	body, err := json.Marshal(NotificationMessage{
		Event:       kind,
		Recipient:   recipient,
		TriggerMode: settings.TriggerMode,
		Params:      params,
		EmittedAt:   now,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	// amqp channels must not be shared by concurrent publishers.
	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(
		ctx,
		"",      // exchange
		p.queue, // routing key (queue name)
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    now,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish notification event: %w", err)
	}

	log.Printf("[messaging][notification] published queue=%s event=%s", p.queue, kind)
	return nil
}
