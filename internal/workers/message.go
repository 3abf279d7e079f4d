/******************************************************************************
 *
 *  Description :
 *
 *    Consume ingest.messages, enforce membership authority, persist, and
 *    fan the message out to the chat's live exchange.
 *
 *****************************************************************************/

package workers

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/relaywire/chat/internal/broker"
	"github.com/relaywire/chat/internal/metrics"
	"github.com/relaywire/chat/internal/push"
	"github.com/relaywire/chat/internal/store"
)

var msgLog = log.New(log.Writer(), "[message] ", log.LstdFlags)

// errUnauthorized marks the I1 authority rejection (sender is not a
// member of the target chat) as distinct from a transient store error,
// so handle can route the former to the errors exchange without
// requeue and the latter to redelivery.
var errUnauthorized = errors.New("not a chat member")

// MessageWorker consumes ingest.messages, checks membership authority
// (I1), persists the message, and publishes it to the chat's fanout.
type MessageWorker struct {
	pool  *broker.Pool
	store store.Adapter
}

// NewMessageWorker constructs a MessageWorker.
func NewMessageWorker(pool *broker.Pool, s store.Adapter) *MessageWorker {
	return &MessageWorker{pool: pool, store: s}
}

// Run declares the ingest topology and consumes until ctx is cancelled.
func (w *MessageWorker) Run(ctx context.Context) error {
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

	deliveries, err := broker.Consume(ch, broker.QueueIngestMessages, "")
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

func (w *MessageWorker) handle(ctx context.Context, ch *amqp.Channel, d amqp.Delivery) {
	var in store.IngestMessage
	if err := json.Unmarshal(d.Body, &in); err != nil {
		msgLog.Printf("malformed payload: %v", err)
		w.reject(ctx, ch, d, "malformed payload", d.Body)
		return
	}

	saved, err := w.persist(ctx, in)
	if errors.Is(err, errUnauthorized) {
		msgLog.Printf("authority check failed: user=%s chat=%d", in.UserID, in.ChatID)
		w.reject(ctx, ch, d, "not a chat member", d.Body)
		return
	}
	if err != nil {
		msgLog.Printf("persist failed: %v", err)
		d.Nack(false, true) // transient store failure: retry via redelivery
		return
	}

	body, err := json.Marshal(saved)
	if err != nil {
		msgLog.Printf("marshal failed: %v", err)
		d.Nack(false, false)
		return
	}

	if err := broker.DeclareChatExchange(ch, saved.ChatID); err != nil {
		msgLog.Printf("declare chat exchange failed: %v", err)
		d.Nack(false, true)
		return
	}
	if err := broker.Publish(ctx, ch, broker.PublishOptions{
		Exchange: broker.ChatExchange(saved.ChatID),
	}, body); err != nil {
		msgLog.Printf("fan-out publish failed: %v", err)
		d.Nack(false, true)
		return
	}

	metrics.RecordMessageRouted()
	push.Offer(push.Receipt{What: "message", ChatID: saved.ChatID, UserID: saved.UserID})
	d.Ack(false)
}

// persist is the store-only half of handle: the I1 authority check plus
// the save. Isolated from the broker channel so it can be unit tested
// against a fake store.
func (w *MessageWorker) persist(ctx context.Context, in store.IngestMessage) (*store.Message, error) {
	ok, err := w.store.MembershipExists(ctx, in.UserID, in.ChatID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errUnauthorized
	}

	return w.store.MessageSave(ctx, &store.Message{
		ChatID: in.ChatID,
		UserID: in.UserID,
		Text:   in.Text,
	})
}

// reject publishes the offending payload to the errors dead-letter fanout
// and rejects without requeue (S6), regardless of the reason.
func (w *MessageWorker) reject(ctx context.Context, ch *amqp.Channel, d amqp.Delivery, reason string, body []byte) {
	if err := broker.PublishToErrors(ctx, ch, reason, body); err != nil {
		msgLog.Printf("dead-letter publish failed: %v", err)
	}
	d.Reject(false)
}
