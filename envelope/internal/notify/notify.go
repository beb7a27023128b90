// Package notify announces stored envelopes to interested listeners.
package notify

import (
	"context"
	"fmt"

	"github.com/telhawk-systems/sdk-mockservers/common/messaging"
)

// SavedEvent is published once per envelope written to the store.
type SavedEvent = messaging.EnvelopeSaved

// Notification states reported on /healthz.
const (
	StatusDisabled     = "disabled"
	StatusConnected    = "connected"
	StatusDisconnected = "disconnected"
)

type Notifier interface {
	EnvelopeSaved(ctx context.Context, ev SavedEvent) error
	Status() string
	Close() error
}

// NoOp discards every event.
type NoOp struct{}

func (NoOp) EnvelopeSaved(context.Context, SavedEvent) error { return nil }
func (NoOp) Status() string                                  { return StatusDisabled }
func (NoOp) Close() error                                    { return nil }

// Broker publishes events to messaging.SubjectEnvelopesSaved.
type Broker struct {
	pub messaging.Publisher
}

func NewBroker(pub messaging.Publisher) *Broker {
	return &Broker{pub: pub}
}

func (b *Broker) EnvelopeSaved(ctx context.Context, ev SavedEvent) error {
	msg, err := ev.Message()
	if err != nil {
		return err
	}
	if err := b.pub.Publish(ctx, msg); err != nil {
		return fmt.Errorf("publish %s: %w", msg.Subject, err)
	}
	return nil
}

func (b *Broker) Status() string {
	if b.pub.Connected() {
		return StatusConnected
	}
	return StatusDisconnected
}

func (b *Broker) Close() error {
	return b.pub.Close()
}
