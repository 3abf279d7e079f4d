// Package rpcsvc implements the Chat gRPC service: the two streaming RPCs
// (chat, invites) backed by internal/session, and the eight control-plane
// unary RPCs backed directly by the store.
package rpcsvc

import (
	"context"
	"encoding/json"
	"log"

	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/relaywire/chat/api/chatpb"
	"github.com/relaywire/chat/internal/authn"
	"github.com/relaywire/chat/internal/broker"
	"github.com/relaywire/chat/internal/session"
	"github.com/relaywire/chat/internal/store"
)

var rpcLog = log.New(log.Writer(), "[rpcsvc] ", log.LstdFlags)

// Server implements chatpb.ChatServer.
type Server struct {
	chatpb.UnimplementedChatServer

	pool     *broker.Pool
	store    store.Adapter
	validate *validator.Validate
}

// New constructs a Server. The validator instance is built once here and
// reused across requests, per the pack's handler-construction idiom.
func New(pool *broker.Pool, s store.Adapter) *Server {
	return &Server{pool: pool, store: s, validate: validator.New()}
}

// Chat implements the bidirectional live-message stream (§4.3).
func (s *Server) Chat(stream chatpb.Chat_ChatServer) error {
	userID, err := authn.MustUserID(stream.Context())
	if err != nil {
		return err
	}

	mgr := session.New(s.pool, s.store, userID)
	if err := mgr.Start(stream.Context()); err != nil {
		return status.Errorf(codes.Internal, "session start: %v", err)
	}
	defer mgr.Close()

	errCh := make(chan error, 2)

	// Outbound: session_queue deliveries -> client stream.
	go func() {
		for body := range mgr.Outbound() {
			var msg store.Message
			if err := json.Unmarshal(body, &msg); err != nil {
				rpcLog.Printf("outbound decode failed for user %s: %v", userID, err)
				continue
			}
			if err := stream.Send(chatpb.MessageFromStore(msg)); err != nil {
				errCh <- err
				return
			}
		}
	}()

	// Inbound pump: client SendMessage frames -> ingest.messages.
	go func() {
		for {
			in, err := stream.Recv()
			if err != nil {
				errCh <- err
				return
			}
			if err := mgr.PublishMessage(stream.Context(), in.ChatId, in.Text); err != nil {
				errCh <- status.Errorf(codes.Internal, "publish: %v", err)
				return
			}
		}
	}()

	err = <-errCh
	if err != nil {
		rpcLog.Printf("chat stream ended for user %s: %v", userID, err)
	}
	return err
}

// Invites implements the server-stream of live Invite notices (§4.4).
func (s *Server) Invites(_ *chatpb.InvitesRequest, stream chatpb.Chat_InvitesServer) error {
	userID, err := authn.MustUserID(stream.Context())
	if err != nil {
		return err
	}

	is := session.NewInviteStream(s.pool, userID)
	if err := is.Start(stream.Context()); err != nil {
		return status.Errorf(codes.Internal, "invite stream start: %v", err)
	}
	defer is.Close()

	for body := range is.Out() {
		var inv store.Invite
		if err := json.Unmarshal(body, &inv); err != nil {
			rpcLog.Printf("invite decode failed for user %s: %v", userID, err)
			continue
		}
		if err := stream.Send(chatpb.InviteFromStore(inv)); err != nil {
			return err
		}
	}
	return stream.Context().Err()
}
