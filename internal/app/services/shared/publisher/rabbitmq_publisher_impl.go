package publisher

import (
	"backoffice-service/internal/app/contracts"
	"backoffice-service/internal/pkg/constvars"
	"backoffice-service/internal/pkg/exceptions"
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
)

var errMessageNotConfirmed = errors.New("message not confirmed by broker")

// confirmation is the broker answer for one delivery tag.
type confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

type confirmingChannel interface {
	Publish(ctx context.Context, exchange, key string, msg amqp.Publishing) (confirmation, error)
}

type amqpConfirmingChannel struct {
	ch *amqp.Channel
}

func (c *amqpConfirmingChannel) Publish(ctx context.Context, exchange, key string, msg amqp.Publishing) (confirmation, error) {
	deferred, err := c.ch.PublishWithDeferredConfirmWithContext(ctx, exchange, key, false, false, msg)
	if err != nil {
		return nil, err
	}
	if deferred == nil {
		return nil, nil
	}
	return deferred, nil
}

type rabbitMQPublisher struct {
	ch       confirmingChannel
	exchange string
}

// NewRabbitMQPublisher declares a durable topic exchange and publishes with confirms enabled.
func NewRabbitMQPublisher(conn *amqp.Connection, exchange string) (contracts.EventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	err = ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &rabbitMQPublisher{
		ch:       &amqpConfirmingChannel{ch: ch},
		exchange: exchange,
	}, nil
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
	}

	confirmed, err := p.ch.Publish(ctx, p.exchange, routingKey, msg)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.exchange)
	}
	// nil when the channel is not in confirm mode
	if confirmed == nil {
		return nil
	}

	acked, err := confirmed.WaitContext(ctx)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.exchange)
	}
	if !acked {
		return exceptions.ErrRabbitMQPublishMessage(errMessageNotConfirmed, p.exchange)
	}
	return nil
}
