package workers

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/relaywire/chat/internal/broker"
	"github.com/relaywire/chat/internal/store"
)

var acceptLog = log.New(log.Writer(), "[accept] ", log.LstdFlags)

// errNotInvitee marks an accept whose UserID doesn't match the invite's
// InviteeUserID — someone accepting an invite that was never addressed to
// them — as distinct from a transient store error, so handle can route it
// to the errors exchange without requeue instead of retrying.
var errNotInvitee = errors.New("accept does not match invite's invitee")

// AcceptWorker consumes ingest.accepts and turns an accepted Invite into a
// Membership, deleting the invite and notifying the accepter's live
// sessions to hot-subscribe to the chat.
type AcceptWorker struct {
	pool  *broker.Pool
	store store.Adapter
}

// NewAcceptWorker constructs an AcceptWorker.
func NewAcceptWorker(pool *broker.Pool, s store.Adapter) *AcceptWorker {
	return &AcceptWorker{pool: pool, store: s}
}

// Run declares the ingest topology and consumes until ctx is cancelled.
func (w *AcceptWorker) Run(ctx context.Context) error {
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

	deliveries, err := broker.Consume(ch, broker.QueueIngestAccepts, "")
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

func (w *AcceptWorker) handle(ctx context.Context, ch *amqp.Channel, d amqp.Delivery) {
	var in store.IngestAccept
	if err := json.Unmarshal(d.Body, &in); err != nil {
		acceptLog.Printf("malformed payload: %v", err)
		w.reject(ctx, ch, d, "malformed payload", d.Body)
		return
	}

	chatID, alreadyProcessed, err := w.resolveAccept(ctx, in)
	if errors.Is(err, errNotInvitee) {
		acceptLog.Printf("accept rejected: user=%s is not the invitee for invite %d", in.UserID, in.InviteID)
		w.reject(ctx, ch, d, "accept does not match invitee", d.Body)
		return
	}
	if err != nil {
		acceptLog.Printf("resolve accept failed: %v", err)
		d.Nack(false, true)
		return
	}
	if alreadyProcessed {
		acceptLog.Printf("invite %d already processed, acking", in.InviteID)
		d.Ack(false)
		return
	}

	// Step 5: notify the accepter's live sessions to hot-subscribe.
	if err := broker.DeclareConnectExchange(ch, in.UserID); err != nil {
		acceptLog.Printf("declare connect exchange failed: %v", err)
		d.Nack(false, true)
		return
	}
	body := []byte(chatIDToBytes(chatID))
	if err := broker.Publish(ctx, ch, broker.PublishOptions{
		Exchange: broker.ConnectExchange(in.UserID),
	}, body); err != nil {
		acceptLog.Printf("connect publish failed: %v", err)
		d.Nack(false, true)
		return
	}

	d.Ack(false)
}

// resolveAccept performs the store-only steps of an invite acceptance —
// everything that doesn't need a broker channel — so it can be unit
// tested against a fake store without standing up a real connection.
//
// Step 1: load the invite. Absent is not an error — a crash-redelivery
// of an already-processed accept lands here and is a no-op (S5), which
// alreadyProcessed=true signals to the caller.
//
// Step 2: the accept must belong to the invite's own invitee — the
// invite_id alone isn't proof of authorization, since it's caller-
// supplied (send_invite -> answer_invite round trip, not a secret).
//
// Step 3: membership is idempotent, so redelivery after a crash between
// steps 3 and 4 is harmless.
//
// Step 4: filtered by (chat_id, invitee_user_id), not invite_id, so a
// concurrent duplicate accept for the same invite is absorbed rather
// than erroring on a second delete of an already-gone row.
func (w *AcceptWorker) resolveAccept(ctx context.Context, in store.IngestAccept) (chatID int32, alreadyProcessed bool, err error) {
	inv, err := w.store.InviteGet(ctx, in.InviteID)
	if err != nil {
		return 0, false, err
	}
	if inv == nil {
		return 0, true, nil
	}
	if inv.InviteeUserID != in.UserID {
		return 0, false, errNotInvitee
	}

	if err := w.store.MembershipCreate(ctx, in.UserID, inv.ChatID); err != nil {
		return 0, false, err
	}
	if err := w.store.InviteDeleteByChat(ctx, inv.ChatID, in.UserID); err != nil {
		return 0, false, err
	}

	return inv.ChatID, false, nil
}

func (w *AcceptWorker) reject(ctx context.Context, ch *amqp.Channel, d amqp.Delivery, reason string, body []byte) {
	if err := broker.PublishToErrors(ctx, ch, reason, body); err != nil {
		acceptLog.Printf("dead-letter publish failed: %v", err)
	}
	d.Reject(false)
}

// chatIDToBytes renders a chat id as its JSON representation, keeping the
// connect payload consistent with the JSON-everywhere broker wire format
// even though it carries a single scalar.
func chatIDToBytes(chatID int32) string {
	b, _ := json.Marshal(chatID)
	return string(b)
}
