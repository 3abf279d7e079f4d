// Package authn implements the fabric's sole authentication boundary: a
// pair of gRPC interceptors that verify the bearer token on every RPC,
// resolve-or-create the calling User, and replace incoming metadata with a
// trusted user_id before the request reaches any handler.
package authn

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/relaywire/chat/internal/idp"
	"github.com/relaywire/chat/internal/store"
)

// contextKey is unexported so nothing outside this package can forge a
// user_id value into a context directly — handlers must go through UserID.
type contextKey struct{}

var userIDKey contextKey

// Verifier is the subset of *idp.Verifier the interceptor needs, narrowed
// to ease testing with a fake.
type Verifier interface {
	Verify(tokenString string) (subject string, err error)
	Email(ctx context.Context, subject string) (string, error)
}

var _ Verifier = (*idp.Verifier)(nil)

// Interceptor holds the collaborators needed to authenticate a call:
// token verification and the store's resolve-or-create path.
type Interceptor struct {
	verifier Verifier
	users    store.Adapter
}

// New builds an Interceptor.
func New(verifier Verifier, users store.Adapter) *Interceptor {
	return &Interceptor{verifier: verifier, users: users}
}

// authenticate extracts and verifies the bearer token from ctx, performs
// resolve-or-create, and returns the subject's user_id. Failure maps to
// unauthenticated (bad/missing/expired token) or internal (store/IdP
// failure), per the interceptor's contract.
func (i *Interceptor) authenticate(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing metadata")
	}
	vals := md.Get("authorization")
	if len(vals) == 0 || vals[0] == "" {
		return "", status.Error(codes.Unauthenticated, "missing authorization token")
	}

	subject, err := i.verifier.Verify(vals[0])
	if err != nil {
		return "", status.Errorf(codes.Unauthenticated, "invalid token: %v", err)
	}

	existing, err := i.users.UserGet(ctx, subject)
	if err != nil {
		return "", status.Errorf(codes.Internal, "user lookup: %v", err)
	}
	if existing == nil {
		email, err := i.verifier.Email(ctx, subject)
		if err != nil {
			return "", status.Errorf(codes.Internal, "identity provider lookup: %v", err)
		}
		if _, err := i.users.UserCreate(ctx, &store.User{ID: subject, Email: email}); err != nil {
			return "", status.Errorf(codes.Internal, "user create: %v", err)
		}
	}

	return subject, nil
}

// withUserID replaces ctx's incoming metadata with {user_id: subject} so
// downstream code never re-reads the authorization header, per the
// interceptor's output contract.
func withUserID(ctx context.Context, subject string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, subject)
	return metadata.NewIncomingContext(ctx, metadata.Pairs("user_id", subject))
}

// UserID extracts the trusted user_id the interceptor placed in ctx. Panics
// are never appropriate here — a missing value indicates a handler was
// reached without passing through the interceptor, which is a wiring bug
// the caller should surface as an internal error, not silently ignore.
func UserID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(userIDKey).(string)
	return v, ok
}

// Unary returns a grpc.UnaryServerInterceptor enforcing authentication.
func (i *Interceptor) Unary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		subject, err := i.authenticate(ctx)
		if err != nil {
			return nil, err
		}
		return handler(withUserID(ctx, subject), req)
	}
}

// wrappedStream substitutes the authenticated context into a ServerStream.
type wrappedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *wrappedStream) Context() context.Context { return w.ctx }

// Stream returns a grpc.StreamServerInterceptor enforcing authentication on
// the `chat` and `invites` streaming RPCs.
func (i *Interceptor) Stream() grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		subject, err := i.authenticate(ss.Context())
		if err != nil {
			return err
		}
		return handler(srv, &wrappedStream{ServerStream: ss, ctx: withUserID(ss.Context(), subject)})
	}
}

// mustUserID is a handler-side convenience that turns a missing context
// value into a status error instead of a zero value silently flowing
// through as an empty user id.
func mustUserID(ctx context.Context) (string, error) {
	uid, ok := UserID(ctx)
	if !ok || uid == "" {
		return "", status.Error(codes.Internal, "authn: handler reached without interceptor context")
	}
	return uid, nil
}

// MustUserID is the exported form rpcsvc and session handlers call.
func MustUserID(ctx context.Context) (string, error) {
	return mustUserID(ctx)
}
