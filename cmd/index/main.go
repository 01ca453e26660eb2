// Package main builds or refreshes the full-text search index from
// the local content store.
package main

import (
	"flag"
	"fmt"
	"os"

	"prexsite/internal/config"
	"prexsite/internal/content"
	"prexsite/internal/logger"
	"prexsite/internal/search"
)

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file")
	contentDir := flag.String("content", "", "Content directory (overrides config)")
	indexPath := flag.String("index", "", "Index path (overrides config)")
	flag.Parse()

	cfg := config.Default()

	if *configFile != "" {
		loaded, err := config.LoadConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}

		cfg = loaded
	}

	if *contentDir != "" {
		cfg.Site.ContentDir = *contentDir
	}

	if *indexPath != "" {
		cfg.Site.IndexPath = *indexPath
	}

	if cfg.Site.IndexPath == "" {
		fmt.Fprintln(os.Stderr, "no index path configured")
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.Server.LogLevel)
	store := content.NewStore(cfg.Site.ContentDir, log)

	idx, err := search.Open(cfg.Site.IndexPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open index: %v\n", err)
		os.Exit(1)
	}
	defer idx.Close()

	count, err := idx.IndexStore(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "indexing failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("indexed %d posts into %s\n", count, cfg.Site.IndexPath)
}
