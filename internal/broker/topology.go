package broker

import (
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Exchange names and kinds, per the fabric's exchange table. Ingest
// exchanges are durable and direct: one routing key per worker queue.
// Fan-out exchanges are transient: they exist only while at least one
// session cares, and messages published to an unbound fanout are simply
// dropped (there is no durability requirement on live delivery).
const (
	ExchangeIngestMessages = "ingest.messages"
	ExchangeIngestInvites  = "ingest.invites"
	ExchangeIngestAccepts  = "ingest.accepts"
	ExchangeErrors         = "errors"

	QueueIngestMessages = "ingest.messages"
	QueueIngestInvites  = "ingest.invites"
	QueueIngestAccepts  = "ingest.accepts"
	QueueErrors         = "errors"
)

// ChatExchange returns the fanout exchange name for a chat's live traffic.
func ChatExchange(chatID int32) string {
	return fmt.Sprintf("chat.%d", chatID)
}

// ConnectExchange returns the fanout exchange name a user's sessions
// subscribe to for "you were just added to a chat" notices.
func ConnectExchange(userID string) string {
	return fmt.Sprintf("connect.%s", userID)
}

// InvitesExchange returns the fanout exchange name a user's sessions
// subscribe to for live invite notices.
func InvitesExchange(userID string) string {
	return fmt.Sprintf("invites.%s", userID)
}

// declared tracks exchange/queue names already declared on this process, so
// repeated calls to DeclareIngestTopology (once per worker start, per
// send_invite/answer_invite call)
// don't round-trip to the broker for names that never change shape. This is
// purely a local cache: redeclaring an identical exchange/queue is itself
// idempotent on the broker side (I5), so a cold cache after reconnect just
// costs a few redundant declares, never a correctness problem.
var declared = newNameSet()

type nameSet struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func newNameSet() *nameSet { return &nameSet{seen: make(map[string]struct{})} }

func (n *nameSet) checkAndSet(name string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.seen[name]; ok {
		return true
	}
	n.seen[name] = struct{}{}
	return false
}

// DeclareIngestTopology declares the three durable direct ingest exchanges
// and their queues, plus the durable errors dead-letter fanout. Called once
// at worker/server startup on a fresh channel.
func DeclareIngestTopology(ch *amqp.Channel) error {
	if err := declareDirect(ch, ExchangeIngestMessages, QueueIngestMessages); err != nil {
		return err
	}
	if err := declareDirect(ch, ExchangeIngestInvites, QueueIngestInvites); err != nil {
		return err
	}
	if err := declareDirect(ch, ExchangeIngestAccepts, QueueIngestAccepts); err != nil {
		return err
	}
	if err := declareFanout(ch, ExchangeErrors, true); err != nil {
		return err
	}
	if !declared.checkAndSet(QueueErrors) {
		if _, err := ch.QueueDeclare(QueueErrors, true, false, false, false, nil); err != nil {
			return fmt.Errorf("broker: declare queue %s: %w", QueueErrors, err)
		}
		if err := ch.QueueBind(QueueErrors, "", ExchangeErrors, false, nil); err != nil {
			return fmt.Errorf("broker: bind queue %s: %w", QueueErrors, err)
		}
	}
	return nil
}

func declareDirect(ch *amqp.Channel, exchange, queue string) error {
	if declared.checkAndSet(exchange + "|" + queue) {
		return nil
	}
	if err := ch.ExchangeDeclare(exchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("broker: declare exchange %s: %w", exchange, err)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("broker: declare queue %s: %w", queue, err)
	}
	if err := ch.QueueBind(queue, queue, exchange, false, nil); err != nil {
		return fmt.Errorf("broker: bind queue %s: %w", queue, err)
	}
	return nil
}

// declareFanout declares a fanout exchange. Transient fan-outs (durable =
// false) are declared fresh per subscriber and cleaned up by RabbitMQ once
// the last bound queue is deleted; they are not cached in declared since
// callers pass a chat/user-specific name each time and the broker-side
// declare is already idempotent and cheap.
func declareFanout(ch *amqp.Channel, exchange string, durable bool) error {
	if durable && declared.checkAndSet(exchange) {
		return nil
	}
	if err := ch.ExchangeDeclare(exchange, "fanout", durable, !durable, false, false, nil); err != nil {
		return fmt.Errorf("broker: declare exchange %s: %w", exchange, err)
	}
	return nil
}

// DeclareChatExchange idempotently declares the fanout exchange for a chat.
func DeclareChatExchange(ch *amqp.Channel, chatID int32) error {
	return declareFanout(ch, ChatExchange(chatID), false)
}

// DeclareConnectExchange idempotently declares a user's connect fanout.
func DeclareConnectExchange(ch *amqp.Channel, userID string) error {
	return declareFanout(ch, ConnectExchange(userID), false)
}

// DeclareInvitesExchange idempotently declares a user's invites fanout.
func DeclareInvitesExchange(ch *amqp.Channel, userID string) error {
	return declareFanout(ch, InvitesExchange(userID), false)
}

// BindSessionQueue declares an exclusive, auto-delete queue for one session
// and binds it to the named fanout exchange. The queue name is broker-
// assigned (empty name in QueueDeclare) so concurrent sessions never
// collide, and it disappears automatically when the session's channel
// closes — there is nothing to explicitly unbind on disconnect (S2/S3).
func BindSessionQueue(ch *amqp.Channel, exchange string) (string, error) {
	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		return "", fmt.Errorf("broker: declare session queue: %w", err)
	}
	if err := ch.QueueBind(q.Name, "", exchange, false, nil); err != nil {
		return "", fmt.Errorf("broker: bind session queue to %s: %w", exchange, err)
	}
	return q.Name, nil
}
