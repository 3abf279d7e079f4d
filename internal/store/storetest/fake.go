// Package storetest provides an in-memory store.Adapter for exercising
// collaborators that depend on the store without a live database,
// mirroring the teacher pack's fake-over-interface test style.
package storetest

import (
	"context"
	"sync"
	"time"

	"github.com/relaywire/chat/internal/store"
)

// Fake implements store.Adapter entirely in memory. Not safe for
// concurrent mutation from multiple goroutines beyond what its mutex
// covers; sufficient for single-threaded table tests.
type Fake struct {
	mu sync.Mutex

	users        map[string]store.User
	chats        map[int32]store.Chat
	memberSet    map[string]map[int32]struct{}
	messages     []store.Message
	invites      map[int32]store.Invite
	nextChatID   int32
	nextMsgID    int32
	nextInviteID int32
}

// New constructs an empty Fake.
func New() *Fake {
	return &Fake{
		users:     make(map[string]store.User),
		chats:     make(map[int32]store.Chat),
		memberSet: make(map[string]map[int32]struct{}),
		invites:   make(map[int32]store.Invite),
	}
}

func (f *Fake) Open(string) error { return nil }
func (f *Fake) Close() error      { return nil }

func (f *Fake) UserGet(_ context.Context, id string) (*store.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *Fake) UserCreate(_ context.Context, u *store.User) (*store.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.users[u.ID]; ok {
		return &existing, nil
	}
	rec := store.User{ID: u.ID, Email: u.Email, CreatedAt: time.Now().UTC()}
	f.users[u.ID] = rec
	return &rec, nil
}

func (f *Fake) UserGetAll(_ context.Context, ids []string) ([]store.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []store.User
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *Fake) UserFind(_ context.Context, id, email string) (*store.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id != "" {
		if u, ok := f.users[id]; ok {
			return &u, nil
		}
		return nil, nil
	}
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (f *Fake) ChatCreate(_ context.Context, name, creatorUserID string) (*store.Chat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextChatID++
	c := store.Chat{ObjHeader: store.ObjHeader{ID: f.nextChatID, CreatedAt: time.Now().UTC()}, Name: name}
	f.chats[c.ID] = c
	f.addMembershipLocked(creatorUserID, c.ID)
	return &c, nil
}

func (f *Fake) ChatGet(_ context.Context, id int32) (*store.Chat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.chats[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *Fake) ChatsForUser(_ context.Context, userID string) ([]store.Chat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []store.Chat
	for chatID := range f.memberSet[userID] {
		out = append(out, f.chats[chatID])
	}
	return out, nil
}

func (f *Fake) MembershipExists(_ context.Context, userID string, chatID int32) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.memberSet[userID][chatID]
	return ok, nil
}

func (f *Fake) MembershipCreate(_ context.Context, userID string, chatID int32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addMembershipLocked(userID, chatID)
	return nil
}

func (f *Fake) addMembershipLocked(userID string, chatID int32) {
	if f.memberSet[userID] == nil {
		f.memberSet[userID] = make(map[int32]struct{})
	}
	f.memberSet[userID][chatID] = struct{}{}
}

func (f *Fake) UsersForChat(_ context.Context, chatID int32) ([]store.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []store.User
	for userID, chats := range f.memberSet {
		if _, ok := chats[chatID]; ok {
			out = append(out, f.users[userID])
		}
	}
	return out, nil
}

func (f *Fake) MessageSave(_ context.Context, m *store.Message) (*store.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextMsgID++
	saved := *m
	saved.ID = f.nextMsgID
	saved.CreatedAt = time.Now().UTC()
	f.messages = append(f.messages, saved)
	return &saved, nil
}

func (f *Fake) MessagesBefore(_ context.Context, chatID int32, before time.Time) ([]store.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []store.Message
	for _, m := range f.messages {
		if m.ChatID == chatID && m.CreatedAt.Before(before) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *Fake) InviteCreate(_ context.Context, inviterUserID, inviteeUserID string, chatID int32) (*store.Invite, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextInviteID++
	inv := store.Invite{
		ObjHeader:     store.ObjHeader{ID: f.nextInviteID, CreatedAt: time.Now().UTC()},
		InviterUserID: inviterUserID,
		InviteeUserID: inviteeUserID,
		ChatID:        chatID,
	}
	f.invites[inv.ID] = inv
	return &inv, nil
}

func (f *Fake) InviteGet(_ context.Context, id int32) (*store.Invite, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inv, ok := f.invites[id]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

func (f *Fake) InvitesForUser(_ context.Context, userID string) ([]store.Invite, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []store.Invite
	for _, inv := range f.invites {
		if inv.InviteeUserID == userID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (f *Fake) InviteDeleteByID(_ context.Context, id int32, inviteeUserID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if inv, ok := f.invites[id]; ok && inv.InviteeUserID == inviteeUserID {
		delete(f.invites, id)
	}
	return nil
}

func (f *Fake) InviteDeleteByChat(_ context.Context, chatID int32, inviteeUserID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, inv := range f.invites {
		if inv.ChatID == chatID && inv.InviteeUserID == inviteeUserID {
			delete(f.invites, id)
		}
	}
	return nil
}

var _ store.Adapter = (*Fake)(nil)
