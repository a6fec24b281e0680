package main

import (
	"flag"
	"log"
	"os"

	"catalogfeed_api/config"
	"catalogfeed_api/internal/feed/app"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the app config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	server := app.NewFeedServer(cfg, os.Stdout)
	if err := server.Run(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
