// Package youtube fetches and normalizes recent videos from the
// YouTube Data API v3.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"prexsite/internal/cache"
	"prexsite/internal/config"
	"prexsite/internal/logger"
	"prexsite/internal/models"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://www.googleapis.com/youtube/v3"

const watchURLPrefix = "https://www.youtube.com/watch?v="

// ErrUnexpectedStatus indicates a non-success API response.
var ErrUnexpectedStatus = errors.New("unexpected status code")

// Config carries the explicit settings for a Client. An empty APIKey
// degrades every operation to an empty result without network calls.
type Config struct {
	APIKey   string
	BaseURL  string
	Channels []config.ChannelConfig
	CacheTTL time.Duration
}

// Client is a YouTube Data API client with response caching.
type Client struct {
	apiKey   string
	baseURL  string
	channels []config.ChannelConfig
	ttl      time.Duration
	http     *http.Client
	cache    *cache.Store
	log      *logger.Logger
}

// NewClient creates a video fetcher. The cache may be nil, in which
// case every call goes to the network.
func NewClient(cfg Config, store *cache.Store, log *logger.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		apiKey:   cfg.APIKey,
		baseURL:  baseURL,
		channels: cfg.Channels,
		ttl:      cfg.CacheTTL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		cache: store,
		log:   log,
	}
}

// GetChannelVideos fetches up to maxResults recent videos for a
// channel handle. Every failure path resolves to an empty slice.
func (c *Client) GetChannelVideos(ctx context.Context, channelHandle string, maxResults int) []models.ProcessedVideo {
	if c.apiKey == "" {
		c.logError("youtube api key not configured")

		return []models.ProcessedVideo{}
	}

	searchItems, err := c.searchChannelVideos(ctx, channelHandle, maxResults)
	if err != nil {
		c.logError("youtube search failed", "channel", channelHandle, "error", err)

		return []models.ProcessedVideo{}
	}

	if len(searchItems) == 0 {
		return []models.ProcessedVideo{}
	}

	ids := make([]string, 0, len(searchItems))
	for _, item := range searchItems {
		ids = append(ids, item.ID.VideoID)
	}

	details, err := c.getVideoDetails(ctx, ids)
	if err != nil {
		c.logError("youtube detail lookup failed", "channel", channelHandle, "error", err)

		return []models.ProcessedVideo{}
	}

	videos := make([]models.ProcessedVideo, 0, len(details))
	for _, item := range details {
		videos = append(videos, processVideo(item, false))
	}

	return videos
}

// GetVideoByID fetches one video's full metadata, or nil when the id
// yields no result or any stage fails.
func (c *Client) GetVideoByID(ctx context.Context, videoID string) *models.ProcessedVideo {
	if c.apiKey == "" {
		c.logError("youtube api key not configured")

		return nil
	}

	details, err := c.getVideoDetails(ctx, []string{videoID})
	if err != nil {
		c.logError("youtube detail lookup failed", "video", videoID, "error", err)

		return nil
	}

	if len(details) == 0 {
		return nil
	}

	video := processVideo(details[0], true)

	return &video
}

// GetAllChannelVideos fetches recent videos for every configured
// channel concurrently and returns the lists keyed by channel key.
// One channel's failure does not affect the others.
func (c *Client) GetAllChannelVideos(ctx context.Context) map[string][]models.ProcessedVideo {
	results := make(map[string][]models.ProcessedVideo, len(c.channels))

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	for _, channel := range c.channels {
		wg.Add(1)

		go func(ch config.ChannelConfig) {
			defer wg.Done()

			videos := c.GetChannelVideos(ctx, ch.Handle, ch.MaxResults)

			mu.Lock()
			results[ch.Key] = videos
			mu.Unlock()
		}(channel)
	}

	wg.Wait()

	return results
}

// searchChannelVideos issues the search stage: recent videos for a
// channel handle, newest first.
func (c *Client) searchChannelVideos(ctx context.Context, channelHandle string, maxResults int) ([]models.VideoSearchItem, error) {
	params := url.Values{}
	params.Set("q", channelHandle)
	params.Set("part", "snippet,id")
	params.Set("order", "date")
	params.Set("maxResults", fmt.Sprintf("%d", maxResults))
	params.Set("type", "video")

	var resp models.VideoSearchResponse
	if err := c.getJSON(ctx, "/search", params, &resp); err != nil {
		return nil, err
	}

	return resp.Items, nil
}

// getVideoDetails issues the detail stage: full metadata for a batch
// of video ids in one call.
func (c *Client) getVideoDetails(ctx context.Context, videoIDs []string) ([]models.VideoDetailItem, error) {
	if len(videoIDs) == 0 {
		return nil, nil
	}

	params := url.Values{}
	params.Set("id", strings.Join(videoIDs, ","))
	params.Set("part", "snippet,statistics,contentDetails")

	var resp models.VideoDetailResponse
	if err := c.getJSON(ctx, "/videos", params, &resp); err != nil {
		return nil, err
	}

	return resp.Items, nil
}

// getJSON performs a cached GET against one API endpoint. The cache
// key is the endpoint plus parameters, without the credential.
func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, v any) error {
	cacheKey := "youtube:" + endpoint + "?" + params.Encode()

	if c.cache != nil {
		if payload, ok := c.cache.Get(cacheKey); ok {
			return json.Unmarshal(payload, v)
		}
	}

	params.Set("key", c.apiKey)
	requestURL := c.baseURL + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if c.cache != nil && c.ttl > 0 {
		if err := c.cache.Set(cacheKey, body, c.ttl); err != nil {
			c.logError("failed to cache response", "key", cacheKey, "error", err)
		}
	}

	return nil
}

// processVideo maps one detail item to the normalized record.
// Detail lookups prefer the max-resolution thumbnail; channel
// listings prefer high then medium.
func processVideo(item models.VideoDetailItem, preferMaxres bool) models.ProcessedVideo {
	return models.ProcessedVideo{
		ID:           item.ID,
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		Thumbnail:    selectThumbnail(item.Snippet.Thumbnails, preferMaxres),
		Duration:     FormatDuration(item.ContentDetails.Duration),
		Views:        FormatViewCount(item.Statistics.ViewCount),
		PublishedAt:  item.Snippet.PublishedAt,
		ChannelTitle: item.Snippet.ChannelTitle,
		ChannelID:    item.Snippet.ChannelID,
		Tags:         item.Snippet.Tags,
		URL:          watchURLPrefix + item.ID,
	}
}

func selectThumbnail(thumbs models.Thumbnails, preferMaxres bool) string {
	if preferMaxres && thumbs.Maxres != nil {
		return thumbs.Maxres.URL
	}

	if thumbs.High != nil {
		return thumbs.High.URL
	}

	if thumbs.Medium != nil {
		return thumbs.Medium.URL
	}

	return ""
}

func (c *Client) logError(msg string, args ...any) {
	if c.log != nil {
		c.log.Error(msg, args...)
	}
}
