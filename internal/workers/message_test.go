package workers

import (
	"context"
	"errors"
	"testing"

	"github.com/relaywire/chat/internal/store"
	"github.com/relaywire/chat/internal/store/storetest"
)

func TestMessageWorkerPersistRejectsNonMember(t *testing.T) {
	s := storetest.New()
	w := NewMessageWorker(nil, s)

	_, err := w.persist(context.Background(), store.IngestMessage{
		UserID: "auth0|outsider",
		ChatID: 1,
		Text:   "hi",
	})
	if !errors.Is(err, errUnauthorized) {
		t.Fatalf("err = %v, want errUnauthorized", err)
	}
}

func TestMessageWorkerPersistSavesForMember(t *testing.T) {
	ctx := context.Background()
	s := storetest.New()
	chat, err := s.ChatCreate(ctx, "general", "auth0|member")
	if err != nil {
		t.Fatalf("ChatCreate: %v", err)
	}
	w := NewMessageWorker(nil, s)

	saved, err := w.persist(ctx, store.IngestMessage{
		UserID: "auth0|member",
		ChatID: chat.ID,
		Text:   "hello",
	})
	if err != nil {
		t.Fatalf("persist: %v", err)
	}
	if saved.Text != "hello" || saved.ChatID != chat.ID || saved.UserID != "auth0|member" {
		t.Fatalf("unexpected saved message: %+v", saved)
	}
	if saved.ID == 0 {
		t.Error("expected the store to assign an id")
	}

	msgs, err := s.MessagesBefore(ctx, chat.ID, saved.CreatedAt.Add(1))
	if err != nil {
		t.Fatalf("MessagesBefore: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected 1 persisted message, got %d", len(msgs))
	}
}
