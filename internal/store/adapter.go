package store

import (
	"context"
	"time"
)

// Adapter is the interface a concrete relational backend must implement.
// It is the one seam between the fabric and the store collaborator named
// out of scope in §1 — every query the core needs is named here, nothing
// more.
type Adapter interface {
	// Open and configure the adapter from a DSN (DATABASE_URL).
	Open(dsn string) error
	// Close releases the underlying pool.
	Close() error

	// UserGet returns the user with the given id, or (nil, nil) if absent.
	UserGet(ctx context.Context, id string) (*User, error)
	// UserCreate resolves-or-creates: if a user with Id already exists its
	// record is returned unchanged; otherwise a new row is inserted.
	UserCreate(ctx context.Context, u *User) (*User, error)
	// UserGetAll returns user records for a set of ids, skipping ids that
	// don't exist.
	UserGetAll(ctx context.Context, ids []string) ([]User, error)
	// UserFind looks up exactly one of id or email (I-search: exactly one
	// must be non-empty; callers enforce this before calling).
	UserFind(ctx context.Context, id, email string) (*User, error)

	// ChatCreate inserts a Chat and gives the creator a Membership in one
	// transaction (I-membership-atomicity applies to chat creation too).
	ChatCreate(ctx context.Context, name, creatorUserID string) (*Chat, error)
	// ChatGet returns the chat with the given id, or (nil, nil) if absent.
	ChatGet(ctx context.Context, id int32) (*Chat, error)
	// ChatsForUser returns every chat the user has a Membership in.
	ChatsForUser(ctx context.Context, userID string) ([]Chat, error)

	// MembershipExists is the I1 authority check.
	MembershipExists(ctx context.Context, userID string, chatID int32) (bool, error)
	// MembershipCreate inserts a Membership; idempotent — inserting an
	// already-existing (userID, chatID) pair is a no-op, not an error (S5).
	MembershipCreate(ctx context.Context, userID string, chatID int32) error
	// UsersForChat returns the distinct members of a chat.
	UsersForChat(ctx context.Context, chatID int32) ([]User, error)

	// MessageSave persists a Message; the store assigns Id and CreatedAt.
	MessageSave(ctx context.Context, m *Message) (*Message, error)
	// MessagesBefore returns messages in chatID with CreatedAt < before,
	// ordered ascending by CreatedAt.
	MessagesBefore(ctx context.Context, chatID int32, before time.Time) ([]Message, error)

	// InviteCreate persists an Invite; the store assigns Id and CreatedAt.
	InviteCreate(ctx context.Context, inviterUserID, inviteeUserID string, chatID int32) (*Invite, error)
	// InviteGet returns the invite with the given id, or (nil, nil) if absent.
	InviteGet(ctx context.Context, id int32) (*Invite, error)
	// InvitesForUser returns the invites outstanding for a user (invitee).
	InvitesForUser(ctx context.Context, userID string) ([]Invite, error)
	// InviteDeleteByID deletes by (id, inviteeUserID) so a user can't
	// delete someone else's invite via the decline path.
	InviteDeleteByID(ctx context.Context, id int32, inviteeUserID string) error
	// InviteDeleteByChat deletes by (chatID, inviteeUserID) — filtered this
	// way, not by invite id, so it absorbs concurrent duplicate acceptances
	// (S5 / accept-worker crash semantics).
	InviteDeleteByChat(ctx context.Context, chatID int32, inviteeUserID string) error
}
