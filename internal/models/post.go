// Package models defines data structures for the content store and fetchers.
package models

// Category identifies a content category (one subdirectory of the store).
type Category string

// The fixed set of content categories.
const (
	CategoryUpdates Category = "updates"
	CategoryNotes   Category = "notes"
	CategoryAI      Category = "ai"
)

// Categories lists all known categories in display order.
var Categories = []Category{CategoryUpdates, CategoryNotes, CategoryAI}

// CategoryInfo holds display metadata for a category.
type CategoryInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CategoryDetails maps each category to its display metadata.
var CategoryDetails = map[Category]CategoryInfo{
	CategoryUpdates: {
		Title:       "Updates",
		Description: "Product updates, announcements, and project progress",
	},
	CategoryNotes: {
		Title:       "Notes",
		Description: "Quick thoughts, observations, and learning notes",
	},
	CategoryAI: {
		Title:       "AI",
		Description: "AI tools, workflows, and development insights",
	},
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	_, ok := CategoryDetails[c]

	return ok
}

// Post represents one parsed content document.
type Post struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Category    Category `json:"category"`
	ReadingTime int      `json:"readingTime"`
	Tags        []string `json:"tags,omitempty"`
}

// TOCItem is one heading entry in a table of contents.
type TOCItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Level int    `json:"level"`
}

// TagMetadata describes one unique tag derived from the post set.
type TagMetadata struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}
