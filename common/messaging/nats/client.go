// Package nats implements messaging.Publisher and messaging.Subscriber on a
// core NATS connection.
package nats

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/telhawk-systems/sdk-mockservers/common/logging"
	"github.com/telhawk-systems/sdk-mockservers/common/messaging"
)

// Config holds NATS client configuration.
type Config struct {
	URL string

	// Name shows up in the server's connection list (envelope-server, mockctl).
	Name string

	// MaxReconnects of -1 retries forever.
	MaxReconnects int
	ReconnectWait time.Duration
	Timeout       time.Duration
}

// DefaultConfig returns a Config for a local NATS server.
func DefaultConfig() Config {
	return Config{
		URL:           nats.DefaultURL,
		Name:          "sdk-mockservers",
		MaxReconnects: -1,
		ReconnectWait: 2 * time.Second,
		Timeout:       5 * time.Second,
	}
}

// Client is one NATS connection shared by publishing and subscribing.
type Client struct {
	conn   *nats.Conn
	logger *logging.Logger

	mu   sync.Mutex
	subs []*nats.Subscription
}

// NewClient connects to cfg.URL. A nil logger uses logging.Default.
func NewClient(cfg Config, logger *logging.Logger) (*Client, error) {
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.With("nats_url", cfg.URL)

	conn, err := nats.Connect(cfg.URL,
		nats.Name(cfg.Name),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.Timeout(cfg.Timeout),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", logging.Error(err))
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("NATS reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS at %s: %w", cfg.URL, err)
	}
	return &Client{conn: conn, logger: logger}, nil
}

// Publish sends msg with its metadata as NATS headers.
func (c *Client) Publish(ctx context.Context, msg *messaging.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.conn.PublishMsg(toNATS(msg))
}

// Connected reports whether the connection is currently up.
func (c *Client) Connected() bool {
	return c.conn.IsConnected()
}

// Subscribe delivers every message on subject to handler. Handler errors are
// logged and the message is dropped.
func (c *Client) Subscribe(subject string, handler messaging.MessageHandler) (messaging.Subscription, error) {
	sub, err := c.conn.Subscribe(subject, func(m *nats.Msg) {
		msg := fromNATS(m, time.Now())
		if err := handler(context.Background(), msg); err != nil {
			c.logger.Warn("Dropped NATS message", "subject", m.Subject, logging.Error(err))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("subscribe %s: %w", subject, err)
	}

	c.mu.Lock()
	c.subs = append(c.subs, sub)
	c.mu.Unlock()
	return sub, nil
}

// Flush round-trips to the server so pending subscriptions are in place.
func (c *Client) Flush() error {
	return c.conn.Flush()
}

// Close drops every subscription and the connection.
func (c *Client) Close() error {
	c.mu.Lock()
	for _, sub := range c.subs {
		_ = sub.Unsubscribe()
	}
	c.subs = nil
	c.mu.Unlock()

	c.conn.Close()
	return nil
}

func toNATS(msg *messaging.Message) *nats.Msg {
	m := nats.NewMsg(msg.Subject)
	m.Data = msg.Data
	for k, v := range msg.Metadata {
		m.Header.Set(k, v)
	}
	return m
}

// fromNATS converts a delivered message. Core NATS has no publish time, so
// the receive time is used.
func fromNATS(m *nats.Msg, received time.Time) *messaging.Message {
	msg := &messaging.Message{
		Subject:   m.Subject,
		Data:      m.Data,
		Timestamp: received,
	}
	if len(m.Header) > 0 {
		msg.Metadata = make(map[string]string, len(m.Header))
		for k := range m.Header {
			msg.Metadata[k] = m.Header.Get(k)
		}
	}
	return msg
}
