package rpcsvc

import (
	"context"
	"encoding/json"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/relaywire/chat/api/chatpb"
	"github.com/relaywire/chat/internal/authn"
	"github.com/relaywire/chat/internal/broker"
	"github.com/relaywire/chat/internal/store"
)

// createChatInput is validated against the wire request before anything
// touches the store, per the pack's validator-on-a-struct idiom.
type createChatInput struct {
	Name string `validate:"required,max=200"`
}

// CreateChat implements create_chat(name) -> Chat.
func (s *Server) CreateChat(ctx context.Context, req *chatpb.CreateChatRequest) (*chatpb.CreateChatResponse, error) {
	userID, err := authn.MustUserID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(createChatInput{Name: req.GetName()}); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "create_chat: %v", err)
	}

	chat, err := s.store.ChatCreate(ctx, req.GetName(), userID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "create chat: %v", err)
	}

	if err := s.notifyConnect(ctx, userID, chat.ID); err != nil {
		rpcLog.Printf("connect notify failed for new chat %d: %v", chat.ID, err)
	}

	return &chatpb.CreateChatResponse{Chat: chatpb.ChatFromStore(*chat)}, nil
}

// GetMessages implements get_messages(chat_id, created_before) -> [Message].
func (s *Server) GetMessages(ctx context.Context, req *chatpb.GetMessagesRequest) (*chatpb.Messages, error) {
	userID, err := authn.MustUserID(ctx)
	if err != nil {
		return nil, err
	}

	ok, err := s.store.MembershipExists(ctx, userID, req.GetChatId())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "membership check: %v", err)
	}
	if !ok {
		return nil, status.Error(codes.NotFound, "no such chat membership")
	}

	msgs, err := s.store.MessagesBefore(ctx, req.GetChatId(), chatpb.FromTimestamp(req.GetCreatedBefore()))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get messages: %v", err)
	}

	out := make([]*chatpb.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, chatpb.MessageFromStore(m))
	}
	return &chatpb.Messages{Messages: out}, nil
}

// GetUserChats implements get_user_chats() -> [Chat].
func (s *Server) GetUserChats(ctx context.Context, _ *chatpb.GetUserChatsRequest) (*chatpb.Chats, error) {
	userID, err := authn.MustUserID(ctx)
	if err != nil {
		return nil, err
	}

	chats, err := s.store.ChatsForUser(ctx, userID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get user chats: %v", err)
	}

	out := make([]*chatpb.Chat, 0, len(chats))
	for _, c := range chats {
		out = append(out, chatpb.ChatFromStore(c))
	}
	return &chatpb.Chats{Chats: out}, nil
}

// GetRelatedUsers implements get_related_users() -> [User], the union of
// members across the caller's chats, distinct, with email redacted (the
// repo's privacy decision — preserved verbatim here).
func (s *Server) GetRelatedUsers(ctx context.Context, _ *chatpb.GetRelatedUsersRequest) (*chatpb.Users, error) {
	userID, err := authn.MustUserID(ctx)
	if err != nil {
		return nil, err
	}

	chats, err := s.store.ChatsForUser(ctx, userID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get related users: %v", err)
	}

	seen := make(map[string]struct{})
	var out []*chatpb.User
	for _, c := range chats {
		members, err := s.store.UsersForChat(ctx, c.ID)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "get related users: %v", err)
		}
		for _, u := range members {
			if _, ok := seen[u.ID]; ok {
				continue
			}
			seen[u.ID] = struct{}{}
			out = append(out, &chatpb.User{Id: u.ID, Email: ""})
		}
	}
	return &chatpb.Users{Users: out}, nil
}

// SearchUser implements search_user(user_id? | email?): exact-match
// lookup, exactly one of the two must be present.
func (s *Server) SearchUser(ctx context.Context, req *chatpb.SearchUserQuery) (*chatpb.Users, error) {
	if _, err := authn.MustUserID(ctx); err != nil {
		return nil, err
	}

	hasID := req.GetUserId() != ""
	hasEmail := req.GetEmail() != ""
	if hasID == hasEmail {
		return nil, status.Error(codes.InvalidArgument, "exactly one of user_id or email must be set")
	}

	u, err := s.store.UserFind(ctx, req.GetUserId(), req.GetEmail())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "search user: %v", err)
	}
	if u == nil {
		return &chatpb.Users{}, nil
	}
	return &chatpb.Users{Users: []*chatpb.User{chatpb.UserFromStore(*u)}}, nil
}

// sendInviteInput is validated against the wire request before anything
// touches the broker.
type sendInviteInput struct {
	UserID string `validate:"required"`
	ChatID int32  `validate:"required,gt=0"`
}

// SendInvite implements send_invite(user_id, chat_id): publish an ingest
// record to ingest.invites.
func (s *Server) SendInvite(ctx context.Context, req *chatpb.SendInviteRequest) (*chatpb.SendInviteResponse, error) {
	userID, err := authn.MustUserID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(sendInviteInput{UserID: req.GetUserId(), ChatID: req.GetChatId()}); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "send_invite: %v", err)
	}

	body, err := json.Marshal(store.IngestInvite{
		InviterUserID: userID,
		InviteeUserID: req.GetUserId(),
		ChatID:        req.GetChatId(),
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "marshal invite: %v", err)
	}

	ch, err := s.pool.GetChannel()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "broker channel: %v", err)
	}
	defer ch.Close()

	if err := broker.DeclareIngestTopology(ch); err != nil {
		return nil, status.Errorf(codes.Internal, "declare topology: %v", err)
	}
	if err := broker.Publish(ctx, ch, broker.PublishOptions{
		Exchange:   broker.ExchangeIngestInvites,
		RoutingKey: broker.QueueIngestInvites,
		Persistent: true,
	}, body); err != nil {
		return nil, status.Errorf(codes.Internal, "publish invite: %v", err)
	}

	return &chatpb.SendInviteResponse{}, nil
}

// AnswerInvite implements answer_invite(invite_id, accept): accept
// publishes to ingest.accepts; decline deletes the Invite row directly,
// filtered by (invite_id, invitee=caller) so a user cannot delete someone
// else's invite.
func (s *Server) AnswerInvite(ctx context.Context, req *chatpb.AnswerInviteRequest) (*chatpb.AnswerInviteResponse, error) {
	userID, err := authn.MustUserID(ctx)
	if err != nil {
		return nil, err
	}

	if !req.GetAccept() {
		if err := s.store.InviteDeleteByID(ctx, req.GetInviteId(), userID); err != nil {
			return nil, status.Errorf(codes.Internal, "decline invite: %v", err)
		}
		return &chatpb.AnswerInviteResponse{}, nil
	}

	body, err := json.Marshal(store.IngestAccept{InviteID: req.GetInviteId(), UserID: userID})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "marshal accept: %v", err)
	}

	ch, err := s.pool.GetChannel()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "broker channel: %v", err)
	}
	defer ch.Close()

	if err := broker.DeclareIngestTopology(ch); err != nil {
		return nil, status.Errorf(codes.Internal, "declare topology: %v", err)
	}
	if err := broker.Publish(ctx, ch, broker.PublishOptions{
		Exchange:   broker.ExchangeIngestAccepts,
		RoutingKey: broker.QueueIngestAccepts,
		Persistent: true,
	}, body); err != nil {
		return nil, status.Errorf(codes.Internal, "publish accept: %v", err)
	}

	return &chatpb.AnswerInviteResponse{}, nil
}

// GetInvites implements get_invites() -> [Invite], the invites outstanding
// for the caller.
func (s *Server) GetInvites(ctx context.Context, _ *chatpb.GetInvitesRequest) (*chatpb.GetInvitesResponse, error) {
	userID, err := authn.MustUserID(ctx)
	if err != nil {
		return nil, err
	}

	invs, err := s.store.InvitesForUser(ctx, userID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get invites: %v", err)
	}

	out := make([]*chatpb.Invite, 0, len(invs))
	for _, inv := range invs {
		out = append(out, chatpb.InviteFromStore(inv))
	}
	return &chatpb.GetInvitesResponse{Invites: out}, nil
}

// notifyConnect publishes a newly created chat id to the creator's connect
// exchange so any of their already-open sessions hot-subscribe to it, the
// same event the accept worker triggers for invitees.
func (s *Server) notifyConnect(ctx context.Context, userID string, chatID int32) error {
	ch, err := s.pool.GetChannel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if err := broker.DeclareConnectExchange(ch, userID); err != nil {
		return err
	}
	body, err := json.Marshal(chatID)
	if err != nil {
		return err
	}
	return broker.Publish(ctx, ch, broker.PublishOptions{Exchange: broker.ConnectExchange(userID)}, body)
}
