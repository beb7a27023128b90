package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/telhawk-systems/sdk-mockservers/common/httpserver"
	"github.com/telhawk-systems/sdk-mockservers/common/logging"
	"github.com/telhawk-systems/sdk-mockservers/envelope/internal/config"
	"github.com/telhawk-systems/sdk-mockservers/envelope/internal/handlers"
	"github.com/telhawk-systems/sdk-mockservers/envelope/internal/notify"
	"github.com/telhawk-systems/sdk-mockservers/envelope/internal/server"
	"github.com/telhawk-systems/sdk-mockservers/envelope/internal/service"
	"github.com/telhawk-systems/sdk-mockservers/envelope/pkg/storage"

	natsclient "github.com/telhawk-systems/sdk-mockservers/common/messaging/nats"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-config FILE] [URL [ENVELOPE_DIR]]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	// Positional arguments win over file and environment.
	if flag.NArg() > 0 {
		cfg.Server.URL = flag.Arg(0)
	}
	if flag.NArg() > 1 {
		cfg.Envelope.Dir = flag.Arg(1)
	}

	logger := logging.New(
		logging.ParseLevel(cfg.Logging.Level),
		cfg.Logging.Format,
	).With(logging.Service("envelope-server"))
	logging.SetDefault(logger)

	store, err := storage.NewFileStore(cfg.Envelope.Dir)
	if err != nil {
		log.Fatalf("Failed to initialize envelope store: %v", err)
	}
	fmt.Printf("Envelopes will be saved to: %s\n", store.Dir())

	var notifier notify.Notifier = notify.NoOp{}
	if cfg.NATS.Enabled {
		natsCfg := natsclient.DefaultConfig()
		natsCfg.URL = cfg.NATS.URL
		natsCfg.Name = "envelope-server"
		if cfg.NATS.ReconnectWait > 0 {
			natsCfg.ReconnectWait = cfg.NATS.ReconnectWait
		}
		client, err := natsclient.NewClient(natsCfg, logger)
		if err != nil {
			log.Printf("WARNING: Failed to connect to NATS: %v", err)
			log.Println("Continuing without envelope notifications")
		} else {
			notifier = notify.NewBroker(client)
			slog.Info("Envelope notifications enabled", slog.String("nats_url", cfg.NATS.URL))
		}
	}
	defer notifier.Close()

	svc := service.NewEnvelopeService(store, notifier, logger)
	handler := handlers.NewEnvelopeHandler(svc, logger, cfg.Envelope.PathMarker, cfg.Envelope.MaxBodySize)

	srv, err := httpserver.New(cfg.Server, server.NewRouter(handler), logger)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("HTTP server listening on %s\n", cfg.Server.BaseURL())
	fmt.Printf("To stop the server, execute a GET request to %s%s\n", cfg.Server.BaseURL(), httpserver.StopPath)

	if err := srv.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	slog.Info("Server exited")
}
