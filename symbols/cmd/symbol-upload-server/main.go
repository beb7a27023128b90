package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/telhawk-systems/sdk-mockservers/common/httputil"
	"github.com/telhawk-systems/sdk-mockservers/common/httpserver"
	"github.com/telhawk-systems/sdk-mockservers/common/logging"
	"github.com/telhawk-systems/sdk-mockservers/symbols/internal/config"
	"github.com/telhawk-systems/sdk-mockservers/symbols/internal/handlers"
	"github.com/telhawk-systems/sdk-mockservers/symbols/internal/registry"
	"github.com/telhawk-systems/sdk-mockservers/symbols/internal/server"
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
	).With(logging.Service("symbol-upload-server"))
	logging.SetDefault(logger)

	var reg registry.Registry
	if cfg.Redis.Enabled {
		log.Printf("Initializing Redis upload registry: %s", cfg.Redis.URL)
		redisReg, err := registry.NewRedisRegistry(cfg.Redis.URL)
		if err != nil {
			log.Printf("WARNING: Failed to initialize Redis registry: %v", err)
			log.Println("Continuing with in-memory upload stats")
			reg = registry.NewMemoryRegistry()
		} else {
			reg = redisReg
		}
	} else {
		reg = registry.NewMemoryRegistry()
	}
	defer reg.Close()

	h := handlers.NewSymbolsHandler(reg, logger, cfg.Server.BaseURL(), cfg.Symbols.Org, cfg.Symbols.Project)
	var router http.Handler = server.NewRouter(h)
	router = httpserver.BodyLog(logger, httputil.DefaultPreviewLimit, cfg.Symbols.MaxBodySize)(router)

	srv, err := httpserver.New(cfg.Server, router, logger)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("HTTP server listening on %s\n", cfg.Server.BaseURL())
	fmt.Printf("To stop the server, execute a GET request to %s%s\n", cfg.Server.BaseURL(), httpserver.StopPath)

	runErr := srv.Run(ctx)

	statsCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	stats, err := reg.Stats(statsCtx)
	if err != nil {
		slog.Error("Failed to read upload stats", logging.Error(err))
	}
	if err := registry.WriteStats(os.Stdout, stats); err != nil {
		slog.Error("Failed to print upload stats", logging.Error(err))
	}

	if runErr != nil {
		log.Fatalf("Server error: %v", runErr)
	}
}
