/******************************************************************************
 *
 *  Description :
 *
 *    Per-connection session state: one inbound pump (client -> ingest) and
 *    two consumers (session_queue -> client, connect_queue -> dynamic
 *    subscription). No in-process topic actor — the broker performs
 *    fan-out, so "subscribing" means binding a queue, not registering with
 *    a Topic goroutine.
 *
 *****************************************************************************/

package session

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/relaywire/chat/internal/broker"
	"github.com/relaywire/chat/internal/metrics"
	"github.com/relaywire/chat/internal/store"
)

// outboundCapacity is the bounded handoff size between the consumer
// goroutines and the gRPC send loop, mirroring the teacher's buffered
// `send chan interface{}`.
const outboundCapacity = 16

var sessLog = log.New(log.Writer(), "[session] ", log.LstdFlags)

// state is the session's lifecycle, advancing Start -> Running -> Closed
// and never backward.
type state int

const (
	stateStart state = iota
	stateRunning
	stateClosed
)

// Manager owns one live client connection's broker bindings and outbound
// handoff. It is created per RPC invocation of the `chat` stream and torn
// down when the stream closes.
//
// amqp091-go channels are not safe for concurrent use (internal/broker/pool.go
// documents this as the reason the pool hands out one channel per caller), and
// a Manager has three concurrent callers of its own: the session-queue
// consumer, the connect-queue consumer (which also issues QueueBind calls via
// bindChat), and PublishMessage, called from the gRPC inbound pump goroutine.
// Each gets its own channel so no two goroutines ever write frames to the
// same channel at once.
type Manager struct {
	userID string
	pool   *broker.Pool
	store  store.Adapter

	sessionCh *amqp.Channel // consumeSession: consume + ack session_queue
	connectCh *amqp.Channel // consumeConnect: consume + ack connect_queue, bindChat
	publishCh *amqp.Channel // PublishMessage, called from the inbound pump

	sessionQueue string
	connectQueue string

	outbound chan []byte // serialized Message JSON, capacity outboundCapacity

	state state
}

// New constructs a Manager for userID. Call Start to bind queues and
// launch the consumer goroutines.
func New(pool *broker.Pool, s store.Adapter, userID string) *Manager {
	return &Manager{
		userID:   userID,
		pool:     pool,
		store:    s,
		outbound: make(chan []byte, outboundCapacity),
	}
}

// Outbound returns the channel the gRPC send loop reads serialized
// messages from.
func (m *Manager) Outbound() <-chan []byte { return m.outbound }

// Start acquires its three channels, declares/binds session_queue and connect_queue,
// subscribes to every chat the user already belongs to, and launches the
// two consumer goroutines. It blocks until bindings are established so the
// caller's subsequent inbound pump never races a not-yet-bound session.
func (m *Manager) Start(ctx context.Context) error {
	connectCh, err := m.pool.GetChannel()
	if err != nil {
		return err
	}
	m.connectCh = connectCh

	if err := broker.DeclareConnectExchange(connectCh, m.userID); err != nil {
		return err
	}
	connectQueue, err := broker.BindSessionQueue(connectCh, broker.ConnectExchange(m.userID))
	if err != nil {
		return err
	}
	m.connectQueue = connectQueue

	sessionCh, err := m.pool.GetChannel()
	if err != nil {
		return err
	}
	m.sessionCh = sessionCh

	sessionQueue, err := sessionCh.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		return err
	}
	m.sessionQueue = sessionQueue.Name

	publishCh, err := m.pool.GetChannel()
	if err != nil {
		return err
	}
	m.publishCh = publishCh

	chats, err := m.store.ChatsForUser(ctx, m.userID)
	if err != nil {
		return err
	}
	for _, c := range chats {
		if err := m.bindChat(c.ID); err != nil {
			return err
		}
	}

	sessDeliveries, err := broker.Consume(sessionCh, m.sessionQueue, "")
	if err != nil {
		return err
	}
	connectDeliveries, err := broker.Consume(connectCh, m.connectQueue, "")
	if err != nil {
		return err
	}

	go m.consumeSession(ctx, sessDeliveries)
	go m.consumeConnect(ctx, connectDeliveries)

	m.state = stateRunning
	metrics.SessionStarted()
	return nil
}

// bindChat declares chat.<chatID> (idempotent) and binds session_queue to
// it, giving the session live delivery for that chat. Only ever called from
// Start (pre-consume) or consumeConnect, so it's always the sole user of
// connectCh at call time.
func (m *Manager) bindChat(chatID int32) error {
	if err := broker.DeclareChatExchange(m.connectCh, chatID); err != nil {
		return err
	}
	return m.connectCh.QueueBind(m.sessionQueue, "", broker.ChatExchange(chatID), false, nil)
}

// consumeSession forwards every delivery on session_queue to the outbound
// handoff. If the handoff's receiver has gone away (stream closed), the
// blocking send here is what eventually causes Close to be noticed by the
// caller — this goroutine exits once the delivery channel closes. It is
// the sole writer to m.outbound, so it closes that channel on every exit
// path, which is what unblocks the gRPC handler's `range m.Outbound()`
// loop on disconnect.
func (m *Manager) consumeSession(ctx context.Context, deliveries <-chan amqp.Delivery) {
	defer close(m.outbound)
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				return
			}
			select {
			case m.outbound <- d.Body:
				d.Ack(false)
			case <-ctx.Done():
				d.Nack(false, true)
				return
			}
		}
	}
}

// consumeConnect extends the session's subscriptions when the accept
// worker (or create_chat) publishes a new chat id for this user.
func (m *Manager) consumeConnect(ctx context.Context, deliveries <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				return
			}
			var chatID int32
			if err := json.Unmarshal(d.Body, &chatID); err != nil {
				sessLog.Printf("malformed connect payload for user %s: %v", m.userID, err)
				d.Reject(false)
				continue
			}
			if err := m.bindChat(chatID); err != nil {
				sessLog.Printf("bind chat %d for user %s failed: %v", chatID, m.userID, err)
				d.Nack(false, true)
				continue
			}
			d.Ack(false)
		}
	}
}

// PublishMessage is called by the inbound pump for every SendMessage frame
// the client sends. The sender identity is always m.userID, never taken
// from client input, so a misbehaving client cannot spoof it (I1 is
// ultimately enforced by the message worker, but the session never even
// offers a spoof vector).
func (m *Manager) PublishMessage(ctx context.Context, chatID int32, text string) error {
	body, err := json.Marshal(store.IngestMessage{UserID: m.userID, ChatID: chatID, Text: text})
	if err != nil {
		return err
	}
	return broker.Publish(ctx, m.publishCh, broker.PublishOptions{
		Exchange:   broker.ExchangeIngestMessages,
		RoutingKey: broker.QueueIngestMessages,
		Persistent: true,
	}, body)
}

// Close releases the session's channels. The exclusive, auto-delete
// session_queue and connect-bound queue are removed by the broker the
// moment their owning channel closes — there is nothing to explicitly
// unbind.
func (m *Manager) Close() {
	if m.state == stateRunning {
		metrics.SessionEnded()
	}
	m.state = stateClosed
	if m.sessionCh != nil {
		m.sessionCh.Close()
	}
	if m.connectCh != nil {
		m.connectCh.Close()
	}
	if m.publishCh != nil {
		m.publishCh.Close()
	}
}
