// Package search provides full-text search over the content store
// using a Bleve index.
package search

import (
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"

	"prexsite/internal/content"
	"prexsite/internal/models"
)

// Index wraps a Bleve search index over posts.
type Index struct {
	index bleve.Index
}

// IndexedPost is the document shape stored in the index.
type IndexedPost struct {
	Slug        string
	Title       string
	Description string
	Body        string
	Category    string
	Tags        []string
	Date        string
}

// Result is one search hit.
type Result struct {
	Slug      string              `json:"slug"`
	Category  string              `json:"category"`
	Title     string              `json:"title"`
	Date      string              `json:"date"`
	Score     float64             `json:"score"`
	Fragments map[string][]string `json:"fragments,omitempty"`
}

// Open opens or creates a Bleve index at path. Use InMemory for an
// ephemeral index.
func Open(path string) (*Index, error) {
	idx, err := bleve.Open(path)
	if err == bleve.ErrorIndexPathDoesNotExist {
		idx, err = bleve.New(path, buildIndexMapping())
		if err != nil {
			return nil, fmt.Errorf("create index: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}

	return &Index{index: idx}, nil
}

// InMemory creates an ephemeral index, used by the server when no
// index path is configured and by tests.
func InMemory() (*Index, error) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create in-memory index: %w", err)
	}

	return &Index{index: idx}, nil
}

// buildIndexMapping maps post fields; titles use the English analyzer
// for stemming.
func buildIndexMapping() mapping.IndexMapping {
	titleFieldMapping := bleve.NewTextFieldMapping()
	titleFieldMapping.Analyzer = "en"

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("Slug", bleve.NewTextFieldMapping())
	docMapping.AddFieldMappingsAt("Title", titleFieldMapping)
	docMapping.AddFieldMappingsAt("Description", bleve.NewTextFieldMapping())
	docMapping.AddFieldMappingsAt("Body", bleve.NewTextFieldMapping())
	docMapping.AddFieldMappingsAt("Category", bleve.NewTextFieldMapping())
	docMapping.AddFieldMappingsAt("Tags", bleve.NewTextFieldMapping())
	docMapping.AddFieldMappingsAt("Date", bleve.NewTextFieldMapping())

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", docMapping)

	return indexMapping
}

// Close closes the index.
func (i *Index) Close() error {
	return i.index.Close()
}

// IndexStore indexes every parseable post from the store in one
// batch. Document ids are "category/slug".
func (i *Index) IndexStore(store *content.Store) (int, error) {
	posts := store.GetAllPosts()
	batch := i.index.NewBatch()

	for _, post := range posts {
		body, _ := store.GetPostContent(post.Category, post.Slug)

		doc := &IndexedPost{
			Slug:        post.Slug,
			Title:       post.Title,
			Description: post.Description,
			Body:        body,
			Category:    string(post.Category),
			Tags:        post.Tags,
			Date:        post.Date,
		}

		id := string(post.Category) + "/" + post.Slug
		if err := batch.Index(id, doc); err != nil {
			return 0, fmt.Errorf("batch index %s: %w", id, err)
		}
	}

	if err := i.index.Batch(batch); err != nil {
		return 0, fmt.Errorf("commit batch: %w", err)
	}

	return len(posts), nil
}

// Search runs a query string (supports quotes, boolean operators,
// fuzzy ~) and returns up to limit hits with highlighted fragments.
func (i *Index) Search(queryStr string, limit int) ([]Result, error) {
	query := bleve.NewQueryStringQuery(queryStr)

	request := bleve.NewSearchRequestOptions(query, limit, 0, false)
	request.Highlight = bleve.NewHighlightWithStyle("html")
	request.Fields = []string{"Slug", "Category", "Title", "Date"}

	results, err := i.index.Search(request)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	hits := make([]Result, 0, len(results.Hits))

	for _, hit := range results.Hits {
		result := Result{
			Score:     hit.Score,
			Fragments: hit.Fragments,
		}

		if slug, ok := hit.Fields["Slug"].(string); ok {
			result.Slug = slug
		}

		if category, ok := hit.Fields["Category"].(string); ok {
			result.Category = category
		}

		if title, ok := hit.Fields["Title"].(string); ok {
			result.Title = title
		}

		if date, ok := hit.Fields["Date"].(string); ok {
			result.Date = date
		}

		hits = append(hits, result)
	}

	return hits, nil
}

// Count returns the number of indexed posts.
func (i *Index) Count() (uint64, error) {
	return i.index.DocCount()
}

// IndexPosts indexes a post list directly, without bodies. Used when
// the caller already holds the posts.
func (i *Index) IndexPosts(posts []models.Post) error {
	batch := i.index.NewBatch()

	for _, post := range posts {
		doc := &IndexedPost{
			Slug:        post.Slug,
			Title:       post.Title,
			Description: post.Description,
			Category:    string(post.Category),
			Tags:        post.Tags,
			Date:        post.Date,
		}

		id := string(post.Category) + "/" + post.Slug
		if err := batch.Index(id, doc); err != nil {
			return fmt.Errorf("batch index %s: %w", id, err)
		}
	}

	return i.index.Batch(batch)
}
