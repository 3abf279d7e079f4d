// Package store defines the persisted data model and the Adapter interface
// a concrete relational backend must implement (§3, §4 of the fabric spec).
package store

import "time"

// ObjHeader is embedded by every persisted entity that carries a
// store-assigned id and a creation timestamp.
type ObjHeader struct {
	ID        int32     `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// User is created lazily, on first authenticated request, by the auth
// interceptor's resolve-or-create step. The Id is the identity provider's
// subject claim verbatim (e.g. "auth0|abc123"), never store-assigned.
type User struct {
	ID        string    `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Chat is created by create_chat; the creator is atomically given a
// Membership in the same operation that inserts the Chat row.
type Chat struct {
	ObjHeader
	Name string `db:"name" json:"name"`
}

// Membership grants both read (history/live) and write (send) rights over
// a chat. It carries no attributes beyond the composite key (I-authority).
type Membership struct {
	UserID string `db:"user_id" json:"user_id"`
	ChatID int32  `db:"chat_id" json:"chat_id"`
}

// Message is immutable once persisted; Id and CreatedAt are store-assigned.
type Message struct {
	ObjHeader
	ChatID int32  `db:"chat_id" json:"chat_id"`
	UserID string `db:"user_id" json:"user_id"`
	Text   string `db:"text" json:"text"`
}

// Invite is short-lived: created on send_invite, removed on answer_invite
// (accept or decline). Acceptance additionally creates a Membership.
type Invite struct {
	ObjHeader
	InviterUserID string `db:"inviter_user_id" json:"inviter_user_id"`
	InviteeUserID string `db:"invitee_user_id" json:"invitee_user_id"`
	ChatID        int32  `db:"chat_id" json:"chat_id"`
}

// IngestMessage is the payload the session manager publishes to
// ingest.messages. The sender comes from the authenticated session, never
// from client-controlled fields, so a misbehaving client cannot spoof it.
type IngestMessage struct {
	UserID string `json:"user_id"`
	ChatID int32  `json:"chat_id"`
	Text   string `json:"text"`
}

// IngestInvite is the payload published to ingest.invites by send_invite.
type IngestInvite struct {
	InviterUserID string `json:"inviter_user_id"`
	InviteeUserID string `json:"invitee_user_id"`
	ChatID        int32  `json:"chat_id"`
}

// IngestAccept is the payload published to ingest.accepts by answer_invite
// (accept branch). UserID is the accepter, injected by the RPC handler from
// auth context, never taken from the client's invite_id alone.
type IngestAccept struct {
	InviteID int32  `json:"invite_id"`
	UserID   string `json:"user_id"`
}
