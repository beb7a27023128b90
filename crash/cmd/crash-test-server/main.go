package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/telhawk-systems/sdk-mockservers/common/httpserver"
	"github.com/telhawk-systems/sdk-mockservers/common/logging"
	"github.com/telhawk-systems/sdk-mockservers/crash/internal/config"
	"github.com/telhawk-systems/sdk-mockservers/crash/internal/handlers"
	"github.com/telhawk-systems/sdk-mockservers/crash/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-config FILE] [URL]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if flag.NArg() > 0 {
		cfg.Server.URL = flag.Arg(0)
	}

	logger := logging.New(
		logging.ParseLevel(cfg.Logging.Level),
		cfg.Logging.Format,
	).With(logging.Service("crash-test-server"))
	logging.SetDefault(logger)

	router := server.NewRouter(handlers.NewCrashHandler(), logger, cfg.Crash.PreviewLimit, cfg.Crash.MaxBodySize)
	srv, err := httpserver.New(cfg.Server, router, logger)
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
}
