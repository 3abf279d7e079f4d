// Package broker wraps github.com/rabbitmq/amqp091-go with the topology and
// connection-pooling behavior the fabric needs: a single shared connection,
// one channel per caller, and idempotent exchange declaration (I5).
package broker

import (
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Pool owns one AMQP connection and hands out channels. Each caller (a
// session, a worker) gets its own *amqp.Channel — channels are not safe for
// concurrent use by multiple goroutines, connections are.
type Pool struct {
	url string

	mu   sync.Mutex
	conn *amqp.Connection
}

// NewPool constructs a Pool against the given AMQP URL. The connection is
// lazily established on the first GetChannel call.
func NewPool(url string) *Pool {
	return &Pool{url: url}
}

// connect dials if not already connected, or if the previous connection
// died. Safe to call concurrently.
func (p *Pool) connect() (*amqp.Connection, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn != nil && !p.conn.IsClosed() {
		return p.conn, nil
	}

	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
	})
	if err != nil {
		return nil, fmt.Errorf("broker: dial: %w", err)
	}

	p.conn = conn
	// Exchange declarations do not survive a reconnect's fresh channel the
	// way a durable exchange would outlive the connection on the broker
	// side, but our local "already declared" cache is purely an
	// optimization — redeclaring is safe (I5) — so no cache reset here is
	// required for correctness, only for avoiding spurious round trips
	// after a reconnect.
	return conn, nil
}

// GetChannel returns a fresh channel on the shared connection, reconnecting
// the underlying connection if it was lost (§5: "on connection loss, the
// pool re-opens on the next get_channel").
func (p *Pool) GetChannel() (*amqp.Channel, error) {
	conn, err := p.connect()
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("broker: open channel: %w", err)
	}
	return ch, nil
}

// Stop closes the shared connection. Satisfies lifecycle.Stopper.
func (p *Pool) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn != nil && !p.conn.IsClosed() {
		p.conn.Close()
	}
}
