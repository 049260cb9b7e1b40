// Package messaging delivers queued notification jobs to RabbitMQ.
package messaging

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"creator-sponsorship/internal/pkg/config"
	"creator-sponsorship/internal/pkg/errs"
	"creator-sponsorship/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Envelope is the message body consumers receive.
type Envelope struct {
	Kind    string          `json:"kind"`
	Topic   string          `json:"topic"`
	Payload json.RawMessage `json:"payload"`
}

// AMQPPublisher holds one connection and channel and re-dials when the
// broker has closed them.
type AMQPPublisher struct {
	url   string
	queue string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

var _ shared.Publisher = (*AMQPPublisher)(nil)

func NewAMQPPublisher(cfg config.AMQPConfig) *AMQPPublisher {
	return &AMQPPublisher{url: cfg.URL, queue: cfg.Queue}
}

func (p *AMQPPublisher) Publish(ctx context.Context, kind, topic string, payload []byte, at time.Time) error {
	body, err := json.Marshal(Envelope{Kind: kind, Topic: topic, Payload: payload})
	if err != nil {
		return errs.Wrap(err, "encode notification envelope")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}
	err = ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Type:         kind,
			Headers:      amqp.Table{"topic": topic},
			Timestamp:    at.UTC(),
			Body:         body,
		},
	)
	if err != nil {
		p.reset()
		return errs.Wrap(err, "publish notification")
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reset()
}

// channel must be called with mu held.
func (p *AMQPPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() && p.conn != nil && !p.conn.IsClosed() {
		return p.ch, nil
	}
	_ = p.reset()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, errs.Wrap(err, "rabbitmq dial")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "rabbitmq channel open")
	}
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "rabbitmq queue declare")
	}
	p.conn, p.ch = conn, ch
	return ch, nil
}

func (p *AMQPPublisher) reset() error {
	var err error
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		err = p.conn.Close()
		p.conn = nil
	}
	if errs.Is(err, amqp.ErrClosed) {
		return nil
	}
	return err
}
