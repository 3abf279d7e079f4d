package authn

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/relaywire/chat/internal/store"
	"github.com/relaywire/chat/internal/store/storetest"
)

// fakeVerifier stands in for the identity provider: Verify maps a token
// string straight to a subject via a lookup table, Email returns a fixed
// value or an error, whichever the test wants to exercise.
type fakeVerifier struct {
	subjects map[string]string
	email    string
	emailErr error
}

func (f *fakeVerifier) Verify(token string) (string, error) {
	subject, ok := f.subjects[token]
	if !ok {
		return "", errors.New("unknown token")
	}
	return subject, nil
}

func (f *fakeVerifier) Email(context.Context, string) (string, error) {
	if f.emailErr != nil {
		return "", f.emailErr
	}
	return f.email, nil
}

func unaryCtx(token string) context.Context {
	ctx := context.Background()
	if token == "" {
		return ctx
	}
	return metadata.NewIncomingContext(ctx, metadata.Pairs("authorization", token))
}

func TestUnaryRejectsMissingToken(t *testing.T) {
	i := New(&fakeVerifier{subjects: map[string]string{}}, storetest.New())
	_, err := i.Unary()(unaryCtx(""), nil, &grpc.UnaryServerInfo{}, func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler must not be called without a token")
		return nil, nil
	})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("code = %v, want Unauthenticated", status.Code(err))
	}
}

func TestUnaryRejectsInvalidToken(t *testing.T) {
	i := New(&fakeVerifier{subjects: map[string]string{}}, storetest.New())
	_, err := i.Unary()(unaryCtx("garbage"), nil, &grpc.UnaryServerInfo{}, func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler must not be called with an unverifiable token")
		return nil, nil
	})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("code = %v, want Unauthenticated", status.Code(err))
	}
}

func TestUnaryResolveCreatesNewUser(t *testing.T) {
	users := storetest.New()
	v := &fakeVerifier{
		subjects: map[string]string{"tok": "auth0|new-user"},
		email:    "new-user@example.com",
	}
	i := New(v, users)

	var sawUserID string
	_, err := i.Unary()(unaryCtx("tok"), nil, &grpc.UnaryServerInfo{}, func(ctx context.Context, req interface{}) (interface{}, error) {
		uid, ok := UserID(ctx)
		if !ok {
			t.Fatal("expected UserID to be set in handler context")
		}
		sawUserID = uid
		return nil, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sawUserID != "auth0|new-user" {
		t.Errorf("handler saw user id %q, want auth0|new-user", sawUserID)
	}

	created, err := users.UserGet(context.Background(), "auth0|new-user")
	if err != nil {
		t.Fatalf("UserGet: %v", err)
	}
	if created == nil || created.Email != "new-user@example.com" {
		t.Fatalf("expected resolve-or-create to persist the new user, got %+v", created)
	}
}

func TestUnaryResolveReusesExistingUser(t *testing.T) {
	users := storetest.New()
	if _, err := users.UserCreate(context.Background(), &store.User{ID: "auth0|existing", Email: "existing@example.com"}); err != nil {
		t.Fatalf("seed UserCreate: %v", err)
	}

	// Email would fail if called — resolve-or-create must not call the
	// identity provider's management API for a user that already exists.
	v := &fakeVerifier{
		subjects: map[string]string{"tok": "auth0|existing"},
		emailErr: errors.New("management API must not be called for an existing user"),
	}
	i := New(v, users)

	_, err := i.Unary()(unaryCtx("tok"), nil, &grpc.UnaryServerInfo{}, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMustUserIDWithoutInterceptorContext(t *testing.T) {
	if _, err := MustUserID(context.Background()); status.Code(err) != codes.Internal {
		t.Fatalf("code = %v, want Internal", status.Code(err))
	}
}
