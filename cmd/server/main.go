// Command server runs the fabric's gRPC control-plane and streaming
// endpoint.
package main

import (
	"log"
	"net"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"

	"github.com/relaywire/chat/internal/assembly"
	"github.com/relaywire/chat/internal/config"
	"github.com/relaywire/chat/internal/lifecycle"
	"github.com/relaywire/chat/internal/metrics"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg := config.Load()

	components, err := assembly.BuildServer(cfg)
	if err != nil {
		log.Fatalf("server: build: %v", err)
	}
	defer components.Store.Close()

	lis, err := net.Listen("tcp", cfg.ServerAddress)
	if err != nil {
		log.Fatalf("server: listen on %s: %v", cfg.ServerAddress, err)
	}

	metricsSrv := metrics.NewServer(cfg.MetricsAddr)
	go func() {
		if err := metricsSrv.Run(); err != nil {
			log.Printf("server: metrics server: %v", err)
		}
	}()

	go func() {
		log.Printf("server: listening on %s", cfg.ServerAddress)
		if err := components.GRPCServer.Serve(lis); err != nil {
			log.Printf("server: serve: %v", err)
		}
	}()

	stop := lifecycle.SignalHandler()
	lifecycle.WaitAndStop(stop,
		gracefulGRPC{components.GRPCServer},
		metricsSrv,
		components.BrokerPool,
	)
}

// gracefulGRPC adapts *grpc.Server's GracefulStop to lifecycle.Stopper.
type gracefulGRPC struct {
	srv *grpc.Server
}

func (g gracefulGRPC) Stop() { g.srv.GracefulStop() }
