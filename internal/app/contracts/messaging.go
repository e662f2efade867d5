package contracts

import "context"

type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}
