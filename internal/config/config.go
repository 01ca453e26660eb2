// Package config provides configuration management for the site service.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingContentDir    = errors.New("site.content_dir is required")
	ErrMissingCachePath     = errors.New("site.cache_path is required")
	ErrNoChannels           = errors.New("at least one youtube channel is required")
	ErrChannelMissingKey    = errors.New("channel key is required")
	ErrChannelMissingHandle = errors.New("channel handle is required")
	ErrInvalidMaxResults    = errors.New("channel max_results must be at least 1")
	ErrNoRepos              = errors.New("at least one github repo is required")
	ErrInvalidRepo          = errors.New("repo must be in owner/name form")
	ErrInvalidWeeklyGoal    = errors.New("strava.weekly_goal_miles must be positive")
	ErrInvalidCacheTTL      = errors.New("cache ttl must be non-negative")
	ErrInvalidLogLevel      = errors.New("server.log_level must be one of: debug, info, warn, error")
)

// Config represents the complete site service configuration.
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Server  ServerConfig  `yaml:"server"`
	YouTube YouTubeConfig `yaml:"youtube"`
	Strava  StravaConfig  `yaml:"strava"`
	GitHub  GitHubConfig  `yaml:"github"`
}

// SiteConfig contains local storage paths.
type SiteConfig struct {
	ContentDir string `yaml:"content_dir"`
	CachePath  string `yaml:"cache_path"`
	IndexPath  string `yaml:"index_path"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Addr     string `yaml:"addr"`
	LogLevel string `yaml:"log_level"`
}

// ChannelConfig describes one YouTube channel to aggregate.
type ChannelConfig struct {
	Key        string `yaml:"key"`
	Handle     string `yaml:"handle"`
	MaxResults int    `yaml:"max_results"`
}

// YouTubeConfig contains video-fetcher settings.
type YouTubeConfig struct {
	Channels    []ChannelConfig `yaml:"channels"`
	CacheTTLSec int             `yaml:"cache_ttl_sec"`
}

// StravaConfig contains fitness-widget settings.
type StravaConfig struct {
	WeeklyGoalMiles float64 `yaml:"weekly_goal_miles"`
}

// GitHubConfig contains code-portfolio settings.
type GitHubConfig struct {
	Repos       []string `yaml:"repos"`
	CacheTTLSec int      `yaml:"cache_ttl_sec"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Site: SiteConfig{
			ContentDir: "content/blog",
			CachePath:  "data/cache.db",
			IndexPath:  "data/search.bleve",
		},
		Server: ServerConfig{
			Addr:     ":8080",
			LogLevel: "info",
		},
		YouTube: YouTubeConfig{
			Channels: []ChannelConfig{
				{Key: "parkerrex", Handle: "@parkerrex", MaxResults: 3},
				{Key: "parkerrexdaily", Handle: "@parkerrexdaily", MaxResults: 3},
			},
			CacheTTLSec: 3600,
		},
		Strava: StravaConfig{
			WeeklyGoalMiles: 20,
		},
		GitHub: GitHubConfig{
			Repos: []string{
				"parkerrex/vai",
				"parkerrex/xgpt",
				"parkerrex/ai-sdlc",
			},
			CacheTTLSec: 300,
		},
	}
}

// LoadConfig loads configuration from a YAML file, applying defaults
// for omitted sections.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Site.ContentDir == "" {
		return ErrMissingContentDir
	}

	if c.Site.CachePath == "" {
		return ErrMissingCachePath
	}

	if len(c.YouTube.Channels) == 0 {
		return ErrNoChannels
	}

	for i, ch := range c.YouTube.Channels {
		if ch.Key == "" {
			return fmt.Errorf("%w: channel[%d]", ErrChannelMissingKey, i)
		}

		if ch.Handle == "" {
			return fmt.Errorf("%w: channel[%d]", ErrChannelMissingHandle, i)
		}

		if ch.MaxResults < 1 {
			return fmt.Errorf("%w: channel[%d]", ErrInvalidMaxResults, i)
		}
	}

	if len(c.GitHub.Repos) == 0 {
		return ErrNoRepos
	}

	for i, repo := range c.GitHub.Repos {
		parts := strings.Split(repo, "/")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return fmt.Errorf("%w: repos[%d] = %q", ErrInvalidRepo, i, repo)
		}
	}

	if c.Strava.WeeklyGoalMiles <= 0 {
		return ErrInvalidWeeklyGoal
	}

	if c.YouTube.CacheTTLSec < 0 || c.GitHub.CacheTTLSec < 0 {
		return ErrInvalidCacheTTL
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Server.LogLevel] {
		return ErrInvalidLogLevel
	}

	return nil
}

// YouTubeTTL returns the video cache TTL as a duration.
func (c *Config) YouTubeTTL() time.Duration {
	return time.Duration(c.YouTube.CacheTTLSec) * time.Second
}

// GitHubTTL returns the repo cache TTL as a duration.
func (c *Config) GitHubTTL() time.Duration {
	return time.Duration(c.GitHub.CacheTTLSec) * time.Second
}

// ChannelByKey returns the channel config for a key, or nil.
func (c *Config) ChannelByKey(key string) *ChannelConfig {
	for i := range c.YouTube.Channels {
		if c.YouTube.Channels[i].Key == key {
			return &c.YouTube.Channels[i]
		}
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{ContentDir: %s, Channels: %d, Repos: %d, Addr: %s}",
		c.Site.ContentDir,
		len(c.YouTube.Channels),
		len(c.GitHub.Repos),
		c.Server.Addr,
	)
}
