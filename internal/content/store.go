package content

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"prexsite/internal/logger"
	"prexsite/internal/models"
)

// Recognized content-document extensions, in lookup order.
var contentExtensions = []string{".mdx", ".md"}

// ParseStatus classifies the outcome of loading one document.
type ParseStatus int

// Load outcomes.
const (
	StatusOK ParseStatus = iota
	StatusNotFound
	StatusParseError
)

// ParseResult is the outcome of loading a single document. Callers
// decide whether to skip or surface non-OK results.
type ParseResult struct {
	Status ParseStatus
	Post   *models.Post
	Body   string
	Err    error
}

// Store reads posts from a local content directory. It keeps no
// in-memory state; every operation re-reads the filesystem.
type Store struct {
	root string
	log  *logger.Logger
}

// NewStore creates a store rooted at dir.
func NewStore(dir string, log *logger.Logger) *Store {
	return &Store{root: dir, log: log}
}

// LoadPost loads and parses one document, reporting the precise
// outcome instead of collapsing every failure to nil.
func (s *Store) LoadPost(category models.Category, slug string) ParseResult {
	path, ok := s.resolvePath(category, slug)
	if !ok {
		return ParseResult{Status: StatusNotFound}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return ParseResult{Status: StatusParseError, Err: err}
	}

	fm, body, err := splitFrontmatter(string(raw))
	if err != nil {
		return ParseResult{Status: StatusParseError, Err: err}
	}

	post := &models.Post{
		Slug:        slug,
		Title:       fm.Title,
		Description: fm.Description,
		Date:        fm.Date,
		Category:    category,
		ReadingTime: estimateReadingTime(body),
		Tags:        fm.Tags,
	}

	return ParseResult{Status: StatusOK, Post: post, Body: body}
}

// GetPostBySlug returns a single parsed post, or nil if the document
// is missing or malformed. Failures are never propagated.
func (s *Store) GetPostBySlug(category models.Category, slug string) *models.Post {
	res := s.LoadPost(category, slug)
	if res.Status != StatusOK {
		s.debugSkip(category, slug, res)

		return nil
	}

	return res.Post
}

// GetPostContent returns the raw body of a document for rendering.
// The second return is false if the document is missing or malformed.
func (s *Store) GetPostContent(category models.Category, slug string) (string, bool) {
	res := s.LoadPost(category, slug)
	if res.Status != StatusOK {
		s.debugSkip(category, slug, res)

		return "", false
	}

	return res.Body, true
}

// GetAllPosts scans every category subdirectory and returns all
// parseable posts sorted by date descending. Malformed documents are
// skipped.
func (s *Store) GetAllPosts() []models.Post {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return []models.Post{}
	}

	all := []models.Post{}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		all = append(all, s.scanCategory(models.Category(entry.Name()))...)
	}

	sortByDateDesc(all)

	return all
}

// GetPostsByCategory returns all parseable posts of one category,
// sorted by date descending.
func (s *Store) GetPostsByCategory(category models.Category) []models.Post {
	posts := s.scanCategory(category)
	if posts == nil {
		posts = []models.Post{}
	}

	sortByDateDesc(posts)

	return posts
}

func (s *Store) scanCategory(category models.Category) []models.Post {
	dir := filepath.Join(s.root, string(category))

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var posts []models.Post

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		slug, ok := slugFromFilename(entry.Name())
		if !ok {
			continue
		}

		res := s.LoadPost(category, slug)
		if res.Status != StatusOK {
			s.debugSkip(category, slug, res)

			continue
		}

		posts = append(posts, *res.Post)
	}

	return posts
}

// resolvePath finds the document file for a slug, trying each
// recognized extension.
func (s *Store) resolvePath(category models.Category, slug string) (string, bool) {
	for _, ext := range contentExtensions {
		path := filepath.Join(s.root, string(category), slug+ext)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}

	return "", false
}

func (s *Store) debugSkip(category models.Category, slug string, res ParseResult) {
	if s.log == nil || res.Status == StatusNotFound {
		return
	}

	s.log.Debug("skipping malformed document",
		"category", string(category),
		"slug", slug,
		"error", res.Err,
	)
}

func slugFromFilename(name string) (string, bool) {
	for _, ext := range contentExtensions {
		if strings.HasSuffix(name, ext) {
			return strings.TrimSuffix(name, ext), true
		}
	}

	return "", false
}

// sortByDateDesc orders posts newest first. Unparseable dates sort
// last.
func sortByDateDesc(posts []models.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return parseDate(posts[i].Date).After(parseDate(posts[j].Date))
	})
}

// parseDate accepts ISO date strings with or without a time part.
func parseDate(value string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}

	return time.Time{}
}
