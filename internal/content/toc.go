package content

import (
	"regexp"
	"strconv"
	"strings"

	"prexsite/internal/models"
	"prexsite/pkg/slugify"
)

var headingRegex = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// GenerateTOC scans a document body for markdown headings (levels
// 1-6) and derives a stable anchor id per heading. Order is preserved
// as encountered; repeated titles get -2, -3 ... suffixes so every id
// is unique within the document.
func GenerateTOC(body string) []models.TOCItem {
	toc := []models.TOCItem{}
	seen := map[string]int{}

	for _, line := range strings.Split(body, "\n") {
		match := headingRegex.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		title := strings.TrimSpace(match[2])
		id := slugify.Anchor(title)

		seen[id]++
		if n := seen[id]; n > 1 {
			id = id + "-" + strconv.Itoa(n)
		}

		toc = append(toc, models.TOCItem{
			ID:    id,
			Title: title,
			Level: len(match[1]),
		})
	}

	return toc
}
