package publisher

import (
	"context"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pendingConfirmation resolves once the broker answer for its own message is delivered.
type pendingConfirmation struct {
	answer chan bool
}

func newPendingConfirmation() *pendingConfirmation {
	return &pendingConfirmation{answer: make(chan bool, 1)}
}

func (c *pendingConfirmation) WaitContext(ctx context.Context) (bool, error) {
	select {
	case acked := <-c.answer:
		return acked, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

type recordingChannel struct {
	exchange      string
	key           string
	msgs          []amqp.Publishing
	confirmations []*pendingConfirmation
	err           error
}

func (c *recordingChannel) Publish(ctx context.Context, exchange, key string, msg amqp.Publishing) (confirmation, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.exchange, c.key = exchange, key
	c.msgs = append(c.msgs, msg)
	if len(c.confirmations) == 0 {
		return nil, nil
	}
	next := c.confirmations[0]
	c.confirmations = c.confirmations[1:]
	return next, nil
}

func TestRabbitMQPublisher_Publish(t *testing.T) {
	ch := &recordingChannel{}
	p := &rabbitMQPublisher{ch: ch, exchange: "calendar.availability"}

	err := p.Publish(context.Background(), "availability.created", map[string]string{"availability_id": "a1"})
	require.NoError(t, err)

	assert.Equal(t, "calendar.availability", ch.exchange)
	assert.Equal(t, "availability.created", ch.key)
	require.Len(t, ch.msgs, 1)
	assert.Equal(t, amqp.Persistent, ch.msgs[0].DeliveryMode)
	assert.JSONEq(t, `{"availability_id":"a1"}`, string(ch.msgs[0].Body))
}

func TestRabbitMQPublisher_WaitsForConfirm(t *testing.T) {
	nacked, acked := newPendingConfirmation(), newPendingConfirmation()
	p := &rabbitMQPublisher{
		ch:       &recordingChannel{confirmations: []*pendingConfirmation{nacked, acked}},
		exchange: "x",
	}

	nacked.answer <- false
	assert.Error(t, p.Publish(context.Background(), "k", "v"))

	acked.answer <- true
	assert.NoError(t, p.Publish(context.Background(), "k", "v"))
}

func TestRabbitMQPublisher_LateConfirmDoesNotLeakIntoNextPublish(t *testing.T) {
	first, second := newPendingConfirmation(), newPendingConfirmation()
	p := &rabbitMQPublisher{
		ch:       &recordingChannel{confirmations: []*pendingConfirmation{first, second}},
		exchange: "x",
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := p.Publish(ctx, "k", "first")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// the broker rejects the abandoned message after the caller gave up
	first.answer <- false
	second.answer <- true

	assert.NoError(t, p.Publish(context.Background(), "k", "second"))
}

func TestRabbitMQPublisher_PublishFailure(t *testing.T) {
	p := &rabbitMQPublisher{ch: &recordingChannel{err: errors.New("channel closed")}, exchange: "x"}

	err := p.Publish(context.Background(), "k", "v")
	assert.Error(t, err)
}
