// Package content reads and indexes the local content store: a
// directory tree of frontmatter-headed markdown documents, one
// subdirectory per category.
package content

import (
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter parsing errors.
var (
	ErrNoFrontmatter       = errors.New("no frontmatter block found")
	ErrUnclosedFrontmatter = errors.New("unclosed frontmatter block")
)

const frontmatterDelimiter = "---"

// Frontmatter holds the parsed metadata header of a document.
type Frontmatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Date        string   `yaml:"date"`
	Tags        []string `yaml:"tags"`
}

// splitFrontmatter separates the leading --- delimited YAML header
// from the document body. The body is returned with the header
// removed; a document without a header fails with ErrNoFrontmatter.
func splitFrontmatter(raw string) (*Frontmatter, string, error) {
	// Normalize line endings before scanning for delimiters.
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")

	if !strings.HasPrefix(normalized, frontmatterDelimiter+"\n") {
		return nil, "", ErrNoFrontmatter
	}

	rest := normalized[len(frontmatterDelimiter)+1:]

	end := findCloseDelimiter(rest)
	if end < 0 {
		return nil, "", ErrUnclosedFrontmatter
	}

	block := rest[:end]

	body := rest[end+1+len(frontmatterDelimiter):]
	body = strings.TrimPrefix(body, "\n")

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(block), &fm); err != nil {
		return nil, "", err
	}

	return &fm, body, nil
}

// findCloseDelimiter returns the index of the newline preceding the
// closing delimiter, or -1. The delimiter must be a whole line: lines
// that merely start with --- (a ---- rule, ---foo) do not close the
// header.
func findCloseDelimiter(s string) int {
	marker := "\n" + frontmatterDelimiter

	for from := 0; ; {
		i := strings.Index(s[from:], marker)
		if i < 0 {
			return -1
		}

		i += from

		after := i + len(marker)
		if after == len(s) || s[after] == '\n' {
			return i
		}

		from = i + 1
	}
}
