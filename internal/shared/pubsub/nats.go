package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-shortlink/internal/shared/events"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

const defaultConnectTimeout = 5 * time.Second

// Connect opens a NATS connection identified by name.
func Connect(url, name string) (*nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.Timeout(defaultConnectTimeout),
		nats.Name(name),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("nats: connect %s: %w", url, err)
	}
	return conn, nil
}

// NATSConn is the publishing half of *nats.Conn.
type NATSConn interface {
	Publish(subj string, data []byte) error
}

// NATSPublisher publishes with core NATS. Topics map to subjects through
// events.Subject.
type NATSPublisher struct {
	conn NATSConn
}

var _ Publisher = (*NATSPublisher)(nil)

func NewNATSPublisher(conn NATSConn) *NATSPublisher {
	return &NATSPublisher{conn: conn}
}

func (p *NATSPublisher) Publish(ctx context.Context, topic string, event any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("nats: encode %s: %w", topic, err)
	}

	subject := events.Subject(topic)
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("nats: publish %s: %w", subject, err)
	}
	return nil
}

// Handler processes one raw message payload.
type Handler func(ctx context.Context, data []byte) error

// Subscribe joins queue on the subject for topic, so each message is handled
// by one replica of the subscribing service. Handler errors are logged; core
// NATS has no redelivery.
func Subscribe(conn *nats.Conn, topic, queue string, timeout time.Duration, logger *zap.Logger, handle Handler) (*nats.Subscription, error) {
	subject := events.Subject(topic)
	sub, err := conn.QueueSubscribe(subject, queue, func(msg *nats.Msg) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := handle(ctx, msg.Data); err != nil {
			logger.Warn("failed to handle message",
				zap.String("subject", msg.Subject),
				zap.Error(err),
			)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("nats: subscribe %s: %w", subject, err)
	}
	return sub, nil
}
