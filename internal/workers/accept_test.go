package workers

import (
	"context"
	"errors"
	"testing"

	"github.com/relaywire/chat/internal/store"
	"github.com/relaywire/chat/internal/store/storetest"
)

func TestAcceptWorkerResolveAcceptCreatesMembership(t *testing.T) {
	ctx := context.Background()
	s := storetest.New()
	chat, err := s.ChatCreate(ctx, "general", "auth0|inviter")
	if err != nil {
		t.Fatalf("ChatCreate: %v", err)
	}
	inv, err := s.InviteCreate(ctx, "auth0|inviter", "auth0|invitee", chat.ID)
	if err != nil {
		t.Fatalf("InviteCreate: %v", err)
	}
	w := NewAcceptWorker(nil, s)

	chatID, already, err := w.resolveAccept(ctx, store.IngestAccept{InviteID: inv.ID, UserID: "auth0|invitee"})
	if err != nil {
		t.Fatalf("resolveAccept: %v", err)
	}
	if already {
		t.Fatal("expected a fresh accept to not be reported as already processed")
	}
	if chatID != chat.ID {
		t.Fatalf("chatID = %d, want %d", chatID, chat.ID)
	}

	member, err := s.MembershipExists(ctx, "auth0|invitee", chat.ID)
	if err != nil {
		t.Fatalf("MembershipExists: %v", err)
	}
	if !member {
		t.Error("expected accept to create a membership")
	}

	remaining, err := s.InvitesForUser(ctx, "auth0|invitee")
	if err != nil {
		t.Fatalf("InvitesForUser: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("expected the accepted invite to be deleted, found %d remaining", len(remaining))
	}
}

// TestAcceptWorkerResolveAcceptIdempotentRedelivery exercises S5: once an
// invite has already been processed (and therefore deleted), a redelivered
// accept for the same invite id must be a no-op, not an error.
func TestAcceptWorkerResolveAcceptIdempotentRedelivery(t *testing.T) {
	ctx := context.Background()
	s := storetest.New()
	chat, err := s.ChatCreate(ctx, "general", "auth0|inviter")
	if err != nil {
		t.Fatalf("ChatCreate: %v", err)
	}
	inv, err := s.InviteCreate(ctx, "auth0|inviter", "auth0|invitee", chat.ID)
	if err != nil {
		t.Fatalf("InviteCreate: %v", err)
	}
	w := NewAcceptWorker(nil, s)
	in := store.IngestAccept{InviteID: inv.ID, UserID: "auth0|invitee"}

	if _, already, err := w.resolveAccept(ctx, in); err != nil || already {
		t.Fatalf("first accept: already=%v err=%v", already, err)
	}

	// Redelivery of the same accept: InviteGet now finds nothing, since the
	// first pass already deleted the invite row.
	chatID, already, err := w.resolveAccept(ctx, in)
	if err != nil {
		t.Fatalf("redelivered accept returned an error: %v", err)
	}
	if !already {
		t.Fatal("expected redelivered accept to be reported as already processed")
	}
	if chatID != 0 {
		t.Errorf("expected zero-value chatID on an already-processed accept, got %d", chatID)
	}

	// Membership must still exist (created on the first pass) and must not
	// have errored on a second, redundant creation attempt.
	member, err := s.MembershipExists(ctx, "auth0|invitee", chat.ID)
	if err != nil {
		t.Fatalf("MembershipExists: %v", err)
	}
	if !member {
		t.Error("expected membership from the first accept to persist")
	}
}

// TestAcceptWorkerResolveAcceptRejectsNonInvitee guards against accepting
// an invite that was never addressed to the caller: the invite id alone
// isn't proof of authorization, since a client round-trips it between
// send_invite and answer_invite.
func TestAcceptWorkerResolveAcceptRejectsNonInvitee(t *testing.T) {
	ctx := context.Background()
	s := storetest.New()
	chat, err := s.ChatCreate(ctx, "general", "auth0|inviter")
	if err != nil {
		t.Fatalf("ChatCreate: %v", err)
	}
	inv, err := s.InviteCreate(ctx, "auth0|inviter", "auth0|invitee", chat.ID)
	if err != nil {
		t.Fatalf("InviteCreate: %v", err)
	}
	w := NewAcceptWorker(nil, s)

	_, _, err = w.resolveAccept(ctx, store.IngestAccept{InviteID: inv.ID, UserID: "auth0|attacker"})
	if !errors.Is(err, errNotInvitee) {
		t.Fatalf("err = %v, want errNotInvitee", err)
	}

	member, err := s.MembershipExists(ctx, "auth0|attacker", chat.ID)
	if err != nil {
		t.Fatalf("MembershipExists: %v", err)
	}
	if member {
		t.Error("expected the rejected accept to not create a membership")
	}
}

func TestAcceptWorkerResolveAcceptUnknownInvite(t *testing.T) {
	s := storetest.New()
	w := NewAcceptWorker(nil, s)

	_, already, err := w.resolveAccept(context.Background(), store.IngestAccept{InviteID: 999, UserID: "auth0|invitee"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !already {
		t.Fatal("expected an unknown invite id to be treated as already processed")
	}
}
