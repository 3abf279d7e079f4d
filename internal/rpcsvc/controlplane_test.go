package rpcsvc

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/relaywire/chat/api/chatpb"
	"github.com/relaywire/chat/internal/authn"
	"github.com/relaywire/chat/internal/store"
	"github.com/relaywire/chat/internal/store/storetest"
)

// authedContext runs a no-op handler through the real authn interceptor
// so these tests see exactly the context shape the control-plane
// handlers see in production, rather than poking a private context key.
func authedContext(t *testing.T, users store.Adapter, userID string) context.Context {
	t.Helper()
	i := authn.New(&passthroughVerifier{subject: userID}, users)

	incoming := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "tok"))
	var out context.Context
	_, err := i.Unary()(incoming, nil, nil, func(ctx context.Context, req interface{}) (interface{}, error) {
		out = ctx
		return nil, nil
	})
	if err != nil {
		t.Fatalf("authedContext: %v", err)
	}
	return out
}

type passthroughVerifier struct{ subject string }

func (p *passthroughVerifier) Verify(string) (string, error)                 { return p.subject, nil }
func (p *passthroughVerifier) Email(context.Context, string) (string, error) { return "", nil }

func TestGetMessagesRejectsNonMember(t *testing.T) {
	s := storetest.New()
	srv := New(nil, s)

	ctx := authedContext(t, s, "auth0|outsider")
	_, err := srv.GetMessages(ctx, &chatpb.GetMessagesRequest{ChatId: 1})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("code = %v, want NotFound", status.Code(err))
	}
}

func TestGetMessagesAllowsMember(t *testing.T) {
	s := storetest.New()
	chat, err := s.ChatCreate(context.Background(), "general", "auth0|member")
	if err != nil {
		t.Fatalf("ChatCreate: %v", err)
	}
	srv := New(nil, s)

	ctx := authedContext(t, s, "auth0|member")
	resp, err := srv.GetMessages(ctx, &chatpb.GetMessagesRequest{ChatId: chat.ID})
	if err != nil {
		t.Fatalf("GetMessages: %v", err)
	}
	if len(resp.GetMessages()) != 0 {
		t.Errorf("expected no messages in a freshly created chat, got %d", len(resp.GetMessages()))
	}
}

func TestGetRelatedUsersRedactsEmail(t *testing.T) {
	ctx := context.Background()
	s := storetest.New()
	if _, err := s.UserCreate(ctx, &store.User{ID: "auth0|member", Email: "member@example.com"}); err != nil {
		t.Fatalf("seed member: %v", err)
	}
	if _, err := s.ChatCreate(ctx, "general", "auth0|member"); err != nil {
		t.Fatalf("ChatCreate: %v", err)
	}
	srv := New(nil, s)

	resp, err := srv.GetRelatedUsers(authedContext(t, s, "auth0|member"), &chatpb.GetRelatedUsersRequest{})
	if err != nil {
		t.Fatalf("GetRelatedUsers: %v", err)
	}
	if len(resp.GetUsers()) != 1 {
		t.Fatalf("expected 1 related user, got %d", len(resp.GetUsers()))
	}
	if resp.GetUsers()[0].GetEmail() != "" {
		t.Errorf("expected email to be redacted, got %q", resp.GetUsers()[0].GetEmail())
	}
}

func TestSearchUserRequiresExactlyOneField(t *testing.T) {
	s := storetest.New()
	srv := New(nil, s)
	ctx := authedContext(t, s, "auth0|caller")

	if _, err := srv.SearchUser(ctx, &chatpb.SearchUserQuery{}); status.Code(err) != codes.InvalidArgument {
		t.Errorf("neither field set: code = %v, want InvalidArgument", status.Code(err))
	}
	if _, err := srv.SearchUser(ctx, &chatpb.SearchUserQuery{UserId: "a", Email: "b@example.com"}); status.Code(err) != codes.InvalidArgument {
		t.Errorf("both fields set: code = %v, want InvalidArgument", status.Code(err))
	}
}

func TestSearchUserFindsByID(t *testing.T) {
	ctx := context.Background()
	s := storetest.New()
	if _, err := s.UserCreate(ctx, &store.User{ID: "auth0|found", Email: "found@example.com"}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	srv := New(nil, s)

	resp, err := srv.SearchUser(authedContext(t, s, "auth0|caller"), &chatpb.SearchUserQuery{UserId: "auth0|found"})
	if err != nil {
		t.Fatalf("SearchUser: %v", err)
	}
	if len(resp.GetUsers()) != 1 || resp.GetUsers()[0].GetId() != "auth0|found" {
		t.Fatalf("unexpected result: %+v", resp.GetUsers())
	}
}

func TestGetUserChatsReturnsOnlyMemberChats(t *testing.T) {
	ctx := context.Background()
	s := storetest.New()
	if _, err := s.ChatCreate(ctx, "mine", "auth0|member"); err != nil {
		t.Fatalf("ChatCreate: %v", err)
	}
	if _, err := s.ChatCreate(ctx, "not-mine", "auth0|other"); err != nil {
		t.Fatalf("ChatCreate: %v", err)
	}
	srv := New(nil, s)

	resp, err := srv.GetUserChats(authedContext(t, s, "auth0|member"), &chatpb.GetUserChatsRequest{})
	if err != nil {
		t.Fatalf("GetUserChats: %v", err)
	}
	if len(resp.GetChats()) != 1 || resp.GetChats()[0].GetName() != "mine" {
		t.Fatalf("unexpected result: %+v", resp.GetChats())
	}
}
