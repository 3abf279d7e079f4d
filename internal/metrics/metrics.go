// Package metrics exposes the fabric's live counters, mirroring the
// teacher's expvar.Int LiveTopics pattern and adding a Prometheus handler
// on the same small HTTP server, routed with chi the way the rest of the
// ambient stack's HTTP surfaces are.
package metrics

import (
	"context"
	"expvar"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/handlers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// LiveSessions counts sessions currently in the Running state, the
	// fabric's analog of the teacher's LiveTopics.
	LiveSessions = new(expvar.Int)
	// LiveInviteStreams counts open `invites` RPC streams.
	LiveInviteStreams = new(expvar.Int)
	// MessagesRouted counts messages the message worker has fanned out.
	MessagesRouted = new(expvar.Int)

	messagesRoutedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chat_messages_routed_total",
		Help: "Total messages persisted and fanned out by the message worker.",
	})
	liveSessionsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "chat_live_sessions",
		Help: "Sessions currently bound to the chat stream.",
	})
	liveInviteStreamsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "chat_live_invite_streams",
		Help: "Open invites RPC streams.",
	})
)

func init() {
	expvar.Publish("LiveSessions", LiveSessions)
	expvar.Publish("LiveInviteStreams", LiveInviteStreams)
	expvar.Publish("MessagesRouted", MessagesRouted)

	prometheus.MustRegister(messagesRoutedTotal, liveSessionsGauge, liveInviteStreamsGauge)
}

// RecordMessageRouted increments both the expvar and Prometheus counters
// for a successfully fanned-out message.
func RecordMessageRouted() {
	MessagesRouted.Add(1)
	messagesRoutedTotal.Inc()
}

// SessionStarted/SessionEnded keep the live-session gauges in sync with
// the session manager's Start/Close lifecycle.
func SessionStarted() {
	LiveSessions.Add(1)
	liveSessionsGauge.Inc()
}

func SessionEnded() {
	LiveSessions.Add(-1)
	liveSessionsGauge.Dec()
}

// InviteStreamStarted/InviteStreamEnded keep the live-invite-stream
// gauges in sync with InviteStream's Start/Close lifecycle.
func InviteStreamStarted() {
	LiveInviteStreams.Add(1)
	liveInviteStreamsGauge.Inc()
}

func InviteStreamEnded() {
	LiveInviteStreams.Add(-1)
	liveInviteStreamsGauge.Dec()
}

// Server serves /debug/vars (expvar) and /metrics (Prometheus) on addr.
type Server struct {
	httpServer *http.Server
}

// NewServer builds a metrics HTTP server bound to addr. Call Run to start
// it and Stop to shut it down (Stop satisfies lifecycle.Stopper directly).
func NewServer(addr string) *Server {
	r := chi.NewRouter()
	r.Handle("/debug/vars", expvar.Handler())
	r.Handle("/metrics", promhttp.Handler())

	return &Server{
		httpServer: &http.Server{
			Addr:    addr,
			Handler: handlers.LoggingHandler(os.Stderr, r),
		},
	}
}

// Run starts serving and blocks until the server stops or errors.
func (s *Server) Run() error {
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop gracefully shuts the metrics server down. Satisfies
// lifecycle.Stopper.
func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = s.httpServer.Shutdown(ctx)
}
