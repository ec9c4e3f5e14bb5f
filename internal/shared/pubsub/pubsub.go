// Package pubsub publishes service events over HTTP, Dapr or NATS. Delivery is
// at-most-once; callers treat a publish error as a lost event.
package pubsub

import "context"

// Publisher delivers event, encoded as JSON, to topic.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
}
