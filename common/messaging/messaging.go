// Package messaging carries notifications from the mock servers to the tools
// watching them. The broker behind it is pluggable; common/messaging/nats is
// the one in use.
package messaging

import (
	"context"
	"strings"
	"time"
)

// MetadataRequestID carries the X-Request-ID of the HTTP request that caused
// a notification.
const MetadataRequestID = "X-Request-ID"

// Message is one notification on a subject.
type Message struct {
	Subject string
	Data    []byte

	// Metadata travels as message headers.
	Metadata map[string]string

	// Timestamp is when the notification happened. Brokers that do not carry
	// it set the receive time.
	Timestamp time.Time
}

// RequestID returns the originating request ID, if any. Header keys may come
// back canonicalised by the broker.
func (m *Message) RequestID() string {
	for k, v := range m.Metadata {
		if strings.EqualFold(k, MetadataRequestID) {
			return v
		}
	}
	return ""
}

// MessageHandler processes a received message.
type MessageHandler func(ctx context.Context, msg *Message) error

// Subscription is an active interest in a subject.
type Subscription interface {
	Unsubscribe() error
}

// Publisher sends notifications.
type Publisher interface {
	Publish(ctx context.Context, msg *Message) error

	// Connected reports whether the broker currently accepts messages.
	Connected() bool

	Close() error
}

// Subscriber receives notifications.
type Subscriber interface {
	Subscribe(subject string, handler MessageHandler) (Subscription, error)

	// Flush returns once the broker has registered every subscription made
	// so far, so nothing published afterwards is missed.
	Flush() error

	Close() error
}
