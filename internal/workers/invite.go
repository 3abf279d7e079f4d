package workers

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/relaywire/chat/internal/broker"
	"github.com/relaywire/chat/internal/push"
	"github.com/relaywire/chat/internal/store"
)

var inviteLog = log.New(log.Writer(), "[invite] ", log.LstdFlags)

// InviteWorker consumes ingest.invites, persists an Invite row, and
// publishes it to the invitee's invites fanout.
type InviteWorker struct {
	pool  *broker.Pool
	store store.Adapter
}

// NewInviteWorker constructs an InviteWorker.
func NewInviteWorker(pool *broker.Pool, s store.Adapter) *InviteWorker {
	return &InviteWorker{pool: pool, store: s}
}

// Run declares the ingest topology and consumes until ctx is cancelled.
func (w *InviteWorker) Run(ctx context.Context) error {
	ch, err := w.pool.GetChannel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if err := broker.DeclareIngestTopology(ch); err != nil {
		return err
	}
	if err := ch.Qos(16, 0, false); err != nil {
		return err
	}

	deliveries, err := broker.Consume(ch, broker.QueueIngestInvites, "")
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			w.handle(ctx, ch, d)
		}
	}
}

func (w *InviteWorker) handle(ctx context.Context, ch *amqp.Channel, d amqp.Delivery) {
	var in store.IngestInvite
	if err := json.Unmarshal(d.Body, &in); err != nil {
		inviteLog.Printf("malformed payload: %v", err)
		w.reject(ctx, ch, d, "malformed payload", d.Body)
		return
	}

	inv, err := w.store.InviteCreate(ctx, in.InviterUserID, in.InviteeUserID, in.ChatID)
	if err != nil {
		inviteLog.Printf("persist failed: %v", err)
		d.Nack(false, true)
		return
	}

	body, err := json.Marshal(inv)
	if err != nil {
		inviteLog.Printf("marshal failed: %v", err)
		d.Nack(false, false)
		return
	}

	if err := broker.DeclareInvitesExchange(ch, inv.InviteeUserID); err != nil {
		inviteLog.Printf("declare invites exchange failed: %v", err)
		d.Nack(false, true)
		return
	}
	if err := broker.Publish(ctx, ch, broker.PublishOptions{
		Exchange: broker.InvitesExchange(inv.InviteeUserID),
	}, body); err != nil {
		inviteLog.Printf("fan-out publish failed: %v", err)
		d.Nack(false, true)
		return
	}

	push.Offer(push.Receipt{What: "invite", UserID: inv.InviteeUserID})
	d.Ack(false)
}

func (w *InviteWorker) reject(ctx context.Context, ch *amqp.Channel, d amqp.Delivery, reason string, body []byte) {
	if err := broker.PublishToErrors(ctx, ch, reason, body); err != nil {
		inviteLog.Printf("dead-letter publish failed: %v", err)
	}
	d.Reject(false)
}
