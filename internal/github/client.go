// Package github fetches code-repository summaries from the GitHub
// REST API v3.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"prexsite/internal/cache"
	"prexsite/internal/logger"
	"prexsite/internal/models"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.github.com"

const defaultDescription = "No description available"

// ErrUnexpectedStatus indicates a non-success API response.
var ErrUnexpectedStatus = errors.New("unexpected status code")

// descriptionOverrides replaces API descriptions for select repos.
var descriptionOverrides = map[string]string{
	"parkerrex/vai":     "vibe with ai - ai-first development tools and workflows",
	"parkerrex/xgpt":    "extended gpt capabilities and advanced ai interactions",
	"parkerrex/ai-sdlc": "ai-powered software development lifecycle automation",
}

// Config carries the explicit settings for a Client. Token is
// optional: unauthenticated calls are allowed but rate-limited.
type Config struct {
	Token    string
	BaseURL  string
	Repos    []string
	CacheTTL time.Duration
}

// Client is a GitHub API client with response caching.
type Client struct {
	token   string
	baseURL string
	repos   []string
	ttl     time.Duration
	http    *http.Client
	cache   *cache.Store
	log     *logger.Logger
}

// NewClient creates a code-portfolio fetcher. The cache may be nil.
func NewClient(cfg Config, store *cache.Store, log *logger.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		token:   cfg.Token,
		baseURL: baseURL,
		repos:   cfg.Repos,
		ttl:     cfg.CacheTTL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		cache: store,
		log:   log,
	}
}

// repoResult is the outcome of fetching one repository.
type repoResult struct {
	data         *models.RepoData
	transportErr error
}

// GetRepoData fetches every configured repository's metadata and
// latest commit concurrently. A repository whose API lookup fails is
// dropped from the result; a transport-level failure on any branch
// resolves the whole call to the static fallback list.
func (c *Client) GetRepoData(ctx context.Context) []models.RepoData {
	results := make([]repoResult, len(c.repos))

	var wg sync.WaitGroup

	for i, repo := range c.repos {
		wg.Add(1)

		go func(i int, repo string) {
			defer wg.Done()

			results[i] = c.fetchRepo(ctx, repo)
		}(i, repo)
	}

	wg.Wait()

	data := make([]models.RepoData, 0, len(c.repos))

	for i, res := range results {
		if res.transportErr != nil {
			c.logError("github transport failure, serving fallback",
				"repo", c.repos[i], "error", res.transportErr)

			return FallbackRepos()
		}

		if res.data != nil {
			data = append(data, *res.data)
		}
	}

	return data
}

// fetchRepo retrieves one repository's metadata and its most recent
// commit. A non-success API response drops the repo (data nil); a
// network error is reported as a transport failure.
func (c *Client) fetchRepo(ctx context.Context, repo string) repoResult {
	var info models.Repo

	err := c.getJSON(ctx, "/repos/"+repo, &info)
	if errors.Is(err, ErrUnexpectedStatus) {
		c.logError("github repo lookup failed", "repo", repo, "error", err)

		return repoResult{}
	}

	if err != nil {
		return repoResult{transportErr: err}
	}

	lastCommit := info.PushedAt

	var commits []models.RepoCommit

	err = c.getJSON(ctx, "/repos/"+repo+"/commits?per_page=1", &commits)
	if errors.Is(err, ErrUnexpectedStatus) {
		c.logError("github commit lookup failed", "repo", repo, "error", err)
	} else if err != nil {
		return repoResult{transportErr: err}
	} else if len(commits) > 0 && commits[0].Commit.Committer.Date != "" {
		lastCommit = commits[0].Commit.Committer.Date
	}

	return repoResult{data: &models.RepoData{
		Name:        info.Name,
		Description: describeRepo(repo, info.Description),
		Stars:       info.StargazersCount,
		LastCommit:  FormatTimeAgo(lastCommit, time.Now()),
		URL:         info.HTMLURL,
		Language:    info.Language,
	}}
}

// describeRepo resolves a repository description: static override
// first, then the API description, then a placeholder.
func describeRepo(repo, apiDescription string) string {
	if override, ok := descriptionOverrides[repo]; ok {
		return override
	}

	if apiDescription != "" {
		return apiDescription
	}

	return defaultDescription
}

func (c *Client) getJSON(ctx context.Context, endpoint string, v any) error {
	cacheKey := "github:" + endpoint

	if c.cache != nil {
		if payload, ok := c.cache.Get(cacheKey); ok {
			return json.Unmarshal(payload, v)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "prexsite/1.0")

	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
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

// FallbackRepos returns the static portfolio shown when the API is
// unreachable.
func FallbackRepos() []models.RepoData {
	return []models.RepoData{
		{
			Name:        "vai",
			Description: "vibe with ai - ai-first development tools and workflows",
			Stars:       234,
			LastCommit:  "2 hours ago",
			URL:         "https://github.com/joinvai/vai",
			Language:    "TypeScript",
		},
		{
			Name:        "xgpt",
			Description: "extended gpt capabilities and advanced ai interactions",
			Stars:       127,
			LastCommit:  "1 day ago",
			URL:         "https://github.com/joinvai/xgpt",
			Language:    "Python",
		},
		{
			Name:        "ai-sdlc",
			Description: "ai-powered software development lifecycle automation",
			Stars:       89,
			LastCommit:  "4 hours ago",
			URL:         "https://github.com/joinvai/ai-sdlc",
			Language:    "TypeScript",
		},
		{
			Name:        "n8n-turbo-next",
			Description: "turbocharged n8n workflows with next.js integration",
			Stars:       45,
			LastCommit:  "3 days ago",
			URL:         "https://github.com/joinvai/n8n-turbo-next",
			Language:    "JavaScript",
		},
	}
}

func (c *Client) logError(msg string, args ...any) {
	if c.log != nil {
		c.log.Error(msg, args...)
	}
}
