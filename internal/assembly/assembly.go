// Package assembly wires the fabric's components together with explicit
// constructor calls, following the teacher pack's sequential "Initialize
// dependencies / services / handlers" main.go style rather than a
// container-based DI framework.
package assembly

import (
	"fmt"

	"google.golang.org/grpc"

	"github.com/relaywire/chat/api/chatpb"
	"github.com/relaywire/chat/internal/authn"
	"github.com/relaywire/chat/internal/broker"
	"github.com/relaywire/chat/internal/config"
	"github.com/relaywire/chat/internal/idp"
	"github.com/relaywire/chat/internal/rpcsvc"
	"github.com/relaywire/chat/internal/store"
	"github.com/relaywire/chat/internal/store/sqlstore"
	"github.com/relaywire/chat/internal/workers"
)

// ServerComponents holds everything cmd/server needs to run: the gRPC
// server with its interceptors wired in, plus the collaborators whose
// lifecycle the caller must close on shutdown.
type ServerComponents struct {
	GRPCServer *grpc.Server
	Store      store.Adapter
	BrokerPool *broker.Pool
}

// BuildServer performs the dependency / service / handler wiring for the
// RPC server binary.
func BuildServer(cfg *config.Config) (*ServerComponents, error) {
	// Initialize dependencies.
	db := sqlstore.New(cfg.DB.MaxOpenConns, cfg.DB.MaxIdleConns)
	if err := db.Open(cfg.DB.URL); err != nil {
		return nil, fmt.Errorf("assembly: open store: %w", err)
	}

	pool := broker.NewPool(cfg.Rabbit.DSN())

	verifier, err := idp.NewVerifier(idp.Config{
		ServerN:            cfg.Auth.ServerN,
		ServerE:            cfg.Auth.ServerE,
		Audience:           cfg.Auth.Audience,
		Issuer:             cfg.Auth.Issuer,
		ManagementBaseURL:  cfg.Auth.ManagementBaseURL,
		ClientID:           cfg.Auth.ClientID,
		ClientSecret:       cfg.Auth.ClientSecret,
		TokenURL:           cfg.Auth.TokenURL,
		ManagementAudience: cfg.Auth.ManagementAudience,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("assembly: build verifier: %w", err)
	}

	// Initialize services.
	interceptor := authn.New(verifier, db)
	svc := rpcsvc.New(pool, db)

	// Initialize handlers (gRPC registration).
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(interceptor.Unary()),
		grpc.StreamInterceptor(interceptor.Stream()),
	)
	chatpb.RegisterChatServer(grpcServer, svc)

	return &ServerComponents{GRPCServer: grpcServer, Store: db, BrokerPool: pool}, nil
}

// WorkerComponents holds the three consumer workers cmd/worker runs, each
// independently cancellable via its own goroutine in the caller.
type WorkerComponents struct {
	Store      store.Adapter
	BrokerPool *broker.Pool

	Message *workers.MessageWorker
	Invite  *workers.InviteWorker
	Accept  *workers.AcceptWorker
}

// BuildWorker performs dependency / service wiring for the worker binary.
func BuildWorker(cfg *config.Config) (*WorkerComponents, error) {
	db := sqlstore.New(cfg.DB.MaxOpenConns, cfg.DB.MaxIdleConns)
	if err := db.Open(cfg.DB.URL); err != nil {
		return nil, fmt.Errorf("assembly: open store: %w", err)
	}

	pool := broker.NewPool(cfg.Rabbit.DSN())

	return &WorkerComponents{
		Store:      db,
		BrokerPool: pool,
		Message:    workers.NewMessageWorker(pool, db),
		Invite:     workers.NewInviteWorker(pool, db),
		Accept:     workers.NewAcceptWorker(pool, db),
	}, nil
}
