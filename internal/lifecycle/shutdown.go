// Package lifecycle handles graceful shutdown of the server and worker
// binaries: catch a termination signal, stop accepting new work, drain
// what's in flight, then let the process exit.
package lifecycle

import (
	"log"
	"os"
	"os/signal"
	"syscall"
)

// SignalHandler returns a channel that receives true once a termination
// signal arrives. The caller doesn't care which signal it was.
func SignalHandler() <-chan bool {
	stop := make(chan bool)

	signchan := make(chan os.Signal, 1)
	signal.Notify(signchan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		sig := <-signchan
		log.Printf("lifecycle: signal received: '%s', shutting down", sig)
		stop <- true
	}()

	return stop
}

// Stopper is anything with a graceful Stop. grpc.Server and the broker pool
// both satisfy a trivial adapter of this shape.
type Stopper interface {
	Stop()
}

// WaitAndStop blocks until stop fires, then calls each Stopper in order.
// Stoppers are called in the given order so dependents (e.g. the gRPC
// server) are stopped before what they depend on (e.g. the broker pool).
func WaitAndStop(stop <-chan bool, stoppers ...Stopper) {
	<-stop
	for _, s := range stoppers {
		s.Stop()
	}
	log.Println("lifecycle: shutdown complete")
}
