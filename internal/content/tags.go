package content

import (
	"sort"
	"strings"

	"prexsite/internal/models"
	"prexsite/pkg/slugify"
)

// The tag index is a pure function of the current post set and is
// recomputed on every call. Index keys are the literal tag text, so
// "AI" and "ai" produce two entries, while the filtering operations
// match case-insensitively. Both halves of that behavior are relied
// on by consumers.

// AllTags returns one entry per unique literal tag text across all
// posts, sorted by count descending then name ascending.
func (s *Store) AllTags() []models.TagMetadata {
	counts := map[string]int{}

	for _, post := range s.GetAllPosts() {
		for _, tag := range post.Tags {
			counts[tag]++
		}
	}

	tags := make([]models.TagMetadata, 0, len(counts))
	for name, count := range counts {
		tags = append(tags, models.TagMetadata{
			Name:  name,
			Slug:  slugify.Slugify(name),
			Count: count,
		})
	}

	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Count != tags[j].Count {
			return tags[i].Count > tags[j].Count
		}

		return tags[i].Name < tags[j].Name
	})

	return tags
}

// PostsByTag returns all posts carrying the tag (matched
// case-insensitively), sorted by date descending.
func (s *Store) PostsByTag(tag string) []models.Post {
	want := strings.ToLower(tag)

	matched := []models.Post{}

	for _, post := range s.GetAllPosts() {
		for _, t := range post.Tags {
			if strings.ToLower(t) == want {
				matched = append(matched, post)

				break
			}
		}
	}

	// GetAllPosts already returns date-descending order.
	return matched
}

// SlugToTag resolves a tag slug back to its original name by exact
// match against the live index. When the slug matches no current tag
// the name is reconstructed by title-casing the slug segments, which
// may not reproduce the original text.
func (s *Store) SlugToTag(slug string) string {
	for _, tag := range s.AllTags() {
		if tag.Slug == slug {
			return tag.Name
		}
	}

	return slugify.TitleCase(slug)
}

// RelatedTags returns up to limit tags that co-occur with the given
// tag on the same posts, most frequent first.
func (s *Store) RelatedTags(tag string, limit int) []models.TagMetadata {
	self := strings.ToLower(tag)
	counts := map[string]int{}

	for _, post := range s.PostsByTag(tag) {
		for _, t := range post.Tags {
			if strings.ToLower(t) != self {
				counts[t]++
			}
		}
	}

	related := make([]models.TagMetadata, 0, len(counts))
	for name, count := range counts {
		related = append(related, models.TagMetadata{
			Name:  name,
			Slug:  slugify.Slugify(name),
			Count: count,
		})
	}

	sort.SliceStable(related, func(i, j int) bool {
		return related[i].Count > related[j].Count
	})

	if limit > 0 && len(related) > limit {
		related = related[:limit]
	}

	return related
}
