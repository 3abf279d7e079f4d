package broker

import "testing"

func TestExchangeNameBuilders(t *testing.T) {
	cases := []struct {
		name string
		got  string
		want string
	}{
		{"chat", ChatExchange(42), "chat.42"},
		{"connect", ConnectExchange("auth0|abc123"), "connect.auth0|abc123"},
		{"invites", InvitesExchange("auth0|abc123"), "invites.auth0|abc123"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s: got %q, want %q", c.name, c.got, c.want)
		}
	}
}

// TestNameSetIdempotent exercises the local declared-name cache directly:
// the first check for a name reports it unseen, every subsequent check
// reports it seen, matching the idempotent-declare contract (I5) the
// cache exists to short-circuit.
func TestNameSetIdempotent(t *testing.T) {
	n := newNameSet()

	if n.checkAndSet("ingest.messages|ingest.messages") {
		t.Fatal("first check of a new name must report unseen")
	}
	for i := 0; i < 3; i++ {
		if !n.checkAndSet("ingest.messages|ingest.messages") {
			t.Fatalf("repeat check %d must report seen", i)
		}
	}

	// A distinct name is tracked independently.
	if n.checkAndSet("ingest.invites|ingest.invites") {
		t.Fatal("distinct name must report unseen on its own first check")
	}
}

// TestNameSetConcurrent exercises the mutex guarding the cache: many
// goroutines racing to declare the same name must see exactly one
// "unseen" result between them.
func TestNameSetConcurrent(t *testing.T) {
	n := newNameSet()
	const workers = 50

	results := make(chan bool, workers)
	for i := 0; i < workers; i++ {
		go func() {
			results <- n.checkAndSet("errors")
		}()
	}

	var unseen int
	for i := 0; i < workers; i++ {
		if !<-results {
			unseen++
		}
	}
	if unseen != 1 {
		t.Fatalf("expected exactly one unseen result across %d racers, got %d", workers, unseen)
	}
}
