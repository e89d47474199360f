package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"SwingScope/internal/catalog"
	"SwingScope/internal/collector"
	"SwingScope/internal/config"
	"SwingScope/internal/fundamentals"
	"SwingScope/internal/server"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] SwingScope starting...")

	// Load .env if present, then config
	_ = godotenv.Load()
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init price-history fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy, cfg.FetchTimeout())
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy, cfg.FetchTimeout())
	}
	log.Printf("[INFO] price-history source: %s", fetcher.Name())

	analyzer := collector.NewAnalyzer(fetcher)

	// Init fundamentals scraper
	scraper := fundamentals.NewScraper(cfg.Fundamentals.BaseURL, cfg.Proxy, cfg.FetchTimeout())

	// Load symbol catalog; the dashboard still works without one
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Printf("[WARN] load symbol catalog: %v, continuing without", err)
		cat = catalog.Empty()
	} else {
		log.Printf("[INFO] symbol catalog loaded: %d entries", cat.Len())
	}

	// Init HTTP dashboard
	srv := server.New(cfg.Server.ListenAddr, analyzer, scraper, cat)
	srv.Start()

	log.Println("[INFO] SwingScope is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[ERROR] shutdown: %v", err)
	}
	log.Println("[INFO] SwingScope stopped")
}
