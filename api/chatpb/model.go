package chatpb

import "github.com/relaywire/chat/internal/store"

// MessageFromStore builds the wire Message for a persisted store.Message.
func MessageFromStore(m store.Message) *Message {
	return &Message{
		Id:        m.ID,
		ChatId:    m.ChatID,
		UserId:    m.UserID,
		Text:      m.Text,
		CreatedAt: ToTimestamp(m.CreatedAt),
	}
}

// ChatFromStore builds the wire Chat for a persisted store.Chat.
func ChatFromStore(c store.Chat) *Chat {
	return &Chat{
		Id:        c.ID,
		Name:      c.Name,
		CreatedAt: ToTimestamp(c.CreatedAt),
	}
}

// UserFromStore builds the wire User for a persisted store.User. Callers
// performing get_related_users must redact Email themselves — this
// constructor preserves it, since search_user legitimately needs it.
func UserFromStore(u store.User) *User {
	return &User{Id: u.ID, Email: u.Email}
}

// InviteFromStore builds the wire Invite for a persisted store.Invite.
func InviteFromStore(inv store.Invite) *Invite {
	return &Invite{
		Id:            inv.ID,
		InviterUserId: inv.InviterUserID,
		InviteeUserId: inv.InviteeUserID,
		ChatId:        inv.ChatID,
		CreatedAt:     ToTimestamp(inv.CreatedAt),
	}
}
