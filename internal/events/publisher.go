package events

import (
	"context"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// RoutingKey is the routing key every change message is published under.
const RoutingKey = "ledger.changed"

const publishTimeout = 5 * time.Second

// Publisher sends change messages after a commit.
type Publisher interface {
	Publish(ctx context.Context, msg *ChangeMessage) error
	Close() error
}

// NopPublisher drops every message. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, *ChangeMessage) error { return nil }

func (NopPublisher) Close() error { return nil }

// channel is the subset of *amqp091.Channel the publisher needs.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

type AMQPPublisher struct {
	conn         *amqp091.Connection
	channel      channel
	exchangeName string
}

// NewAMQPPublisher dials url and declares a durable direct exchange.
func NewAMQPPublisher(url, exchangeName string) (*AMQPPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	p, err := newPublisher(ch, exchangeName)
	if err != nil {
		conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func newPublisher(ch channel, exchangeName string) (*AMQPPublisher, error) {
	err := ch.ExchangeDeclare(
		exchangeName, // name
		"direct",     // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		ch.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &AMQPPublisher{channel: ch, exchangeName: exchangeName}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, msg *ChangeMessage) error {
	body, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchangeName, // exchange
		RoutingKey,     // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    msg.OperationID,
			Timestamp:    msg.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"operationID": msg.OperationID,
		"action":      msg.Action,
		"exchange":    p.exchangeName,
	}).Debug("Events.Publish.Complete")
	return nil
}

func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
