// Package strava fetches the weekly running summary from the Strava
// API v3.
package strava

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"prexsite/internal/logger"
	"prexsite/internal/models"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://www.strava.com/api/v3"

// metersPerMile converts API distances (meters) to miles.
const metersPerMile = 0.000621371

// ErrUnexpectedStatus indicates a non-success API response.
var ErrUnexpectedStatus = errors.New("unexpected status code")

// Config carries the explicit settings for a Client. An empty
// AccessToken degrades GetAthleteStats to nil without network calls.
type Config struct {
	AccessToken     string
	BaseURL         string
	WeeklyGoalMiles float64
}

// Client is a Strava API client. Responses are not cached; the stat
// widget always shows live totals.
type Client struct {
	accessToken string
	baseURL     string
	weeklyGoal  float64
	http        *http.Client
	log         *logger.Logger
}

// NewClient creates a fitness-stat fetcher.
func NewClient(cfg Config, log *logger.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	goal := cfg.WeeklyGoalMiles
	if goal <= 0 {
		goal = 20
	}

	return &Client{
		accessToken: cfg.AccessToken,
		baseURL:     baseURL,
		weeklyGoal:  goal,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

// GetAthleteStats fetches the authenticated athlete's identity, then
// their activity totals, and reduces them to the weekly summary. Any
// stage failure resolves the whole operation to nil; no partial
// result is ever returned.
func (c *Client) GetAthleteStats(ctx context.Context) *models.AthleteStats {
	if c.accessToken == "" {
		c.logError("strava access token not configured")

		return nil
	}

	var athlete models.Athlete
	if err := c.getJSON(ctx, "/athlete", &athlete); err != nil {
		c.logError("failed to fetch athlete", "error", err)

		return nil
	}

	var stats models.AthleteStatsResponse

	endpoint := fmt.Sprintf("/athletes/%d/stats", athlete.ID)
	if err := c.getJSON(ctx, endpoint, &stats); err != nil {
		c.logError("failed to fetch athlete stats", "athlete", athlete.ID, "error", err)

		return nil
	}

	// Recent run totals stand in for the current week.
	weeklyMiles := math.Round(stats.RecentRunTotals.Distance*metersPerMile*10) / 10

	return &models.AthleteStats{
		WeeklyMiles:    weeklyMiles,
		WeeklyGoal:     c.weeklyGoal,
		WeeklyProgress: math.Min(weeklyMiles/c.weeklyGoal*100, 100),
	}
}

func (c *Client) getJSON(ctx context.Context, endpoint string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func (c *Client) logError(msg string, args ...any) {
	if c.log != nil {
		c.log.Error(msg, args...)
	}
}
