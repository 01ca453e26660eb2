// Package main provides a one-shot CLI that runs every aggregation
// and prints the results as aligned tables.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"prexsite/internal/cache"
	"prexsite/internal/config"
	"prexsite/internal/content"
	"prexsite/internal/github"
	"prexsite/internal/logger"
	"prexsite/internal/strava"
	"prexsite/internal/youtube"
	"prexsite/pkg/utils"
)

const descriptionWidth = 48

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file")
	skipPosts := flag.Bool("no-posts", false, "Skip the local content store")
	skipRemote := flag.Bool("no-remote", false, "Skip the external fetchers")
	flag.Parse()

	config.LoadEnv()

	cfg := config.Default()

	if *configFile != "" {
		loaded, err := config.LoadConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}

		cfg = loaded
	}

	log := logger.NewLogger(cfg.Server.LogLevel)

	if !*skipPosts {
		printPosts(cfg, log)
	}

	if !*skipRemote {
		printRemote(cfg, log)
	}
}

func printPosts(cfg *config.Config, log *logger.Logger) {
	store := content.NewStore(cfg.Site.ContentDir, log)
	posts := store.GetAllPosts()

	rows := make([][]string, 0, len(posts))
	for _, post := range posts {
		rows = append(rows, []string{
			post.Date,
			string(post.Category),
			post.Slug,
			utils.TruncateString(post.Title, descriptionWidth),
			strconv.Itoa(post.ReadingTime) + " min",
		})
	}

	fmt.Printf("Posts (%d)\n", len(posts))
	fmt.Print(utils.RenderTable(
		[]string{"Date", "Category", "Slug", "Title", "Reading"},
		rows,
	))

	tags := store.AllTags()

	tagRows := make([][]string, 0, len(tags))
	for _, tag := range tags {
		tagRows = append(tagRows, []string{tag.Name, tag.Slug, strconv.Itoa(tag.Count)})
	}

	fmt.Printf("\nTags (%d)\n", len(tags))
	fmt.Print(utils.RenderTable([]string{"Tag", "Slug", "Posts"}, tagRows))
}

func printRemote(cfg *config.Config, log *logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	responseCache, err := cache.Open(cfg.Site.CachePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open response cache: %v\n", err)
		os.Exit(1)
	}
	defer responseCache.Close()

	creds := config.CredentialsFromEnv()

	videos := youtube.NewClient(youtube.Config{
		APIKey:   creds.GoogleAPIKey,
		Channels: cfg.YouTube.Channels,
		CacheTTL: cfg.YouTubeTTL(),
	}, responseCache, log.With("fetcher", "youtube"))

	fmt.Println("\nRecent videos")

	for key, list := range videos.GetAllChannelVideos(ctx) {
		rows := make([][]string, 0, len(list))
		for _, v := range list {
			rows = append(rows, []string{
				v.Duration,
				v.Views,
				utils.TruncateString(v.Title, descriptionWidth),
			})
		}

		fmt.Printf("channel %s (%d)\n", key, len(list))
		fmt.Print(utils.RenderTable([]string{"Duration", "Views", "Title"}, rows))
	}

	fitness := strava.NewClient(strava.Config{
		AccessToken:     creds.StravaAccessToken,
		WeeklyGoalMiles: cfg.Strava.WeeklyGoalMiles,
	}, log.With("fetcher", "strava"))

	fmt.Println("\nRunning")

	if stats := fitness.GetAthleteStats(ctx); stats != nil {
		fmt.Printf("%.1f / %.0f miles (%.0f%%)\n",
			stats.WeeklyMiles, stats.WeeklyGoal, stats.WeeklyProgress)
	} else {
		fmt.Println("unavailable")
	}

	code := github.NewClient(github.Config{
		Token:    creds.GitHubToken,
		Repos:    cfg.GitHub.Repos,
		CacheTTL: cfg.GitHubTTL(),
	}, responseCache, log.With("fetcher", "github"))

	repos := code.GetRepoData(ctx)

	repoRows := make([][]string, 0, len(repos))
	for _, repo := range repos {
		repoRows = append(repoRows, []string{
			repo.Name,
			strconv.Itoa(repo.Stars),
			repo.LastCommit,
			utils.TruncateString(utils.NormalizeWhitespace(repo.Description), descriptionWidth),
		})
	}

	fmt.Printf("\nRepos (%d)\n", len(repos))
	fmt.Print(utils.RenderTable(
		[]string{"Repo", "Stars", "Last commit", "Description"},
		repoRows,
	))
}
