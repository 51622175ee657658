// Command profile-server serves the interactive profile explorer.
//
// Usage:
//
//	go run ./cmd/tools/profile-server [flags]
//
// Flags:
//
//	-addr    Listen address (default: localhost:8080)
//	-config  Defaults file (default: config/profile.defaults.json)
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/banshee-data/motion.report/internal/config"
	"github.com/banshee-data/motion.report/internal/profileweb"
	"github.com/banshee-data/motion.report/internal/version"
)

func main() {
	addr := flag.String("addr", "localhost:8080", "Listen address")
	configPath := flag.String("config", config.DefaultConfigPath, "Defaults file")
	flag.Parse()

	log.Printf("profile-server %s (%s)", version.Version, version.GitSHA)

	cfg, err := config.LoadProfileConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	server := profileweb.NewWebServer(profileweb.WebServerConfig{
		Address:  *addr,
		Defaults: cfg,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Cancel the server context on shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Printf("Shutting down...")
		cancel()
	}()

	if err := server.Start(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
