// Package main runs the site aggregation API server.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"prexsite/internal/cache"
	"prexsite/internal/config"
	"prexsite/internal/content"
	"prexsite/internal/github"
	"prexsite/internal/logger"
	"prexsite/internal/search"
	"prexsite/internal/strava"
	"prexsite/internal/web"
	"prexsite/internal/youtube"
)

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file")
	addr := flag.String("addr", "", "Listen address (overrides config)")
	flag.Parse()

	config.LoadEnv()

	cfg := config.Default()

	if *configFile != "" {
		loaded, err := config.LoadConfig(*configFile)
		if err != nil {
			logger.NewLogger("error").Error("failed to load config", "error", err)
			os.Exit(1)
		}

		cfg = loaded
	}

	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	log := logger.NewJSONLogger(cfg.Server.LogLevel, os.Stderr)
	log.Info("starting server", "config", cfg.String())

	store := content.NewStore(cfg.Site.ContentDir, log)

	responseCache, err := cache.Open(cfg.Site.CachePath)
	if err != nil {
		log.Error("failed to open response cache", "path", cfg.Site.CachePath, "error", err)
		os.Exit(1)
	}
	defer responseCache.Close()

	creds := config.CredentialsFromEnv()

	videos := youtube.NewClient(youtube.Config{
		APIKey:   creds.GoogleAPIKey,
		Channels: cfg.YouTube.Channels,
		CacheTTL: cfg.YouTubeTTL(),
	}, responseCache, log.With("fetcher", "youtube"))

	fitness := strava.NewClient(strava.Config{
		AccessToken:     creds.StravaAccessToken,
		WeeklyGoalMiles: cfg.Strava.WeeklyGoalMiles,
	}, log.With("fetcher", "strava"))

	code := github.NewClient(github.Config{
		Token:    creds.GitHubToken,
		Repos:    cfg.GitHub.Repos,
		CacheTTL: cfg.GitHubTTL(),
	}, responseCache, log.With("fetcher", "github"))

	idx, err := openIndex(cfg, store, log)
	if err != nil {
		log.Error("failed to open search index", "error", err)
		os.Exit(1)
	}
	defer idx.Close()

	server := web.NewServer(store, videos, fitness, code, idx, log)

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("listening", "addr", cfg.Server.Addr)

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", "error", err)
	}
}

// openIndex opens the configured index path, or builds an in-memory
// index when no path is configured. Either way it is refreshed from
// the store at startup.
func openIndex(cfg *config.Config, store *content.Store, log *logger.Logger) (*search.Index, error) {
	var (
		idx *search.Index
		err error
	)

	if cfg.Site.IndexPath != "" {
		idx, err = search.Open(cfg.Site.IndexPath)
	} else {
		idx, err = search.InMemory()
	}

	if err != nil {
		return nil, err
	}

	count, err := idx.IndexStore(store)
	if err != nil {
		idx.Close()

		return nil, err
	}

	log.Info("search index ready", "posts", count)

	return idx, nil
}
