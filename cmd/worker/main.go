// Command worker runs the message, invite, and accept consumers. Multiple
// worker processes can run concurrently against the same broker — each
// consumer competes for deliveries on its queue, so horizontal scaling is
// just launching more of this binary.
package main

import (
	"context"
	"log"
	"sync"

	"github.com/joho/godotenv"

	"github.com/relaywire/chat/internal/assembly"
	"github.com/relaywire/chat/internal/config"
	"github.com/relaywire/chat/internal/lifecycle"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg := config.Load()

	components, err := assembly.BuildWorker(cfg)
	if err != nil {
		log.Fatalf("worker: build: %v", err)
	}
	defer components.Store.Close()

	ctx, cancel := context.WithCancel(context.Background())

	runners := []struct {
		name string
		run  func(context.Context) error
	}{
		{"message", components.Message.Run},
		{"invite", components.Invite.Run},
		{"accept", components.Accept.Run},
	}
	var wg sync.WaitGroup
	for _, r := range runners {
		r := r
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := r.run(ctx); err != nil && err != context.Canceled {
				log.Printf("worker: %s consumer stopped: %v", r.name, err)
			}
		}()
	}

	stop := lifecycle.SignalHandler()
	lifecycle.WaitAndStop(stop, cancelStopper{cancel, &wg}, components.BrokerPool)
}

// cancelStopper adapts a context.CancelFunc to lifecycle.Stopper so the
// three consumer goroutines are told to exit, and are actually given the
// chance to finish their in-flight handle() call and return, before the
// broker pool (which they hold channels on) is torn down.
type cancelStopper struct {
	cancel context.CancelFunc
	wg     *sync.WaitGroup
}

func (c cancelStopper) Stop() {
	c.cancel()
	c.wg.Wait()
}
