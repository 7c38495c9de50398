package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/demoproject/demo-app/internal/config"
	"github.com/demoproject/demo-app/internal/server"
	"github.com/demoproject/demo-app/internal/services"
)

// @title Demo App API
// @version 1.0
// @description Single-route demo service returning a greeting, a timestamp and a library version.
// @host localhost:3000
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Library version is resolved once for the lifetime of the process
	versions := services.NewLibraryVersionService(nil)
	demoService := services.NewDemoService(versions, nil)

	router := server.NewRouter(cfg, demoService)

	// Port-in-use is fatal: bind before announcing anything
	ln, err := server.Listen(cfg.Addr())
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Startup confirmation goes to stdout; fatal errors keep the default stderr logger
	logger := log.New(os.Stdout, "", log.LstdFlags)

	if err := server.Run(ctx, server.NewHTTPServer(router), ln, logger); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
