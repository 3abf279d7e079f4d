package session

import (
	"context"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/relaywire/chat/internal/broker"
	"github.com/relaywire/chat/internal/metrics"
)

var inviteStreamLog = log.New(log.Writer(), "[invites] ", log.LstdFlags)

// InviteStream forwards live Invite notices for one user to the `invites`
// RPC's output stream: an ephemeral queue bound to invites.<user_id>, torn
// down when the RPC's stream closes.
type InviteStream struct {
	userID string
	pool   *broker.Pool
	ch     *amqp.Channel

	out chan []byte

	state state
}

// NewInviteStream constructs an InviteStream for userID.
func NewInviteStream(pool *broker.Pool, userID string) *InviteStream {
	return &InviteStream{userID: userID, pool: pool, out: make(chan []byte, outboundCapacity)}
}

// Out returns the channel the `invites` RPC handler reads serialized
// Invite JSON from.
func (s *InviteStream) Out() <-chan []byte { return s.out }

// Start binds the ephemeral invites queue and launches the forwarding
// goroutine. Consumption stops, and the queue auto-deletes, when ctx is
// cancelled (the client closed its half of the stream).
func (s *InviteStream) Start(ctx context.Context) error {
	ch, err := s.pool.GetChannel()
	if err != nil {
		return err
	}
	s.ch = ch

	if err := broker.DeclareInvitesExchange(ch, s.userID); err != nil {
		return err
	}
	queue, err := broker.BindSessionQueue(ch, broker.InvitesExchange(s.userID))
	if err != nil {
		return err
	}

	deliveries, err := broker.Consume(ch, queue, "")
	if err != nil {
		return err
	}

	go s.forward(ctx, deliveries)
	s.state = stateRunning
	metrics.InviteStreamStarted()
	return nil
}

// forward is the sole writer to s.out, so it closes that channel on
// every exit path — otherwise the `invites` RPC handler's `range
// s.Out()` loop would block forever past client disconnect.
func (s *InviteStream) forward(ctx context.Context, deliveries <-chan amqp.Delivery) {
	defer close(s.out)
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				return
			}
			select {
			case s.out <- d.Body:
				d.Ack(false)
			case <-ctx.Done():
				d.Nack(false, true)
				return
			}
		}
	}
}

// Close releases the stream's channel.
func (s *InviteStream) Close() {
	if s.state == stateRunning {
		metrics.InviteStreamEnded()
	}
	s.state = stateClosed
	if s.ch != nil {
		if err := s.ch.Close(); err != nil {
			inviteStreamLog.Printf("close failed for user %s: %v", s.userID, err)
		}
	}
}
