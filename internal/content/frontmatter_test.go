package content

import (
	"errors"
	"testing"
)

func TestSplitFrontmatter(t *testing.T) {
	raw := "---\ntitle: \"Hello\"\ndescription: desc\ndate: \"2024-01-02\"\ntags: [Go, testing]\n---\n\nBody text.\n"

	fm, body, err := splitFrontmatter(raw)
	if err != nil {
		t.Fatalf("splitFrontmatter returned unexpected error: %v", err)
	}

	if fm.Title != "Hello" {
		t.Errorf("Title = %s, want Hello", fm.Title)
	}

	if fm.Date != "2024-01-02" {
		t.Errorf("Date = %s, want 2024-01-02", fm.Date)
	}

	if len(fm.Tags) != 2 || fm.Tags[1] != "testing" {
		t.Errorf("Tags = %v, want [Go testing]", fm.Tags)
	}

	if body != "\nBody text.\n" {
		t.Errorf("body = %q, want body without header", body)
	}
}

func TestSplitFrontmatter_CRLF(t *testing.T) {
	raw := "---\r\ntitle: CRLF\r\n---\r\n\r\nBody\r\n"

	fm, _, err := splitFrontmatter(raw)
	if err != nil {
		t.Fatalf("splitFrontmatter returned unexpected error: %v", err)
	}

	if fm.Title != "CRLF" {
		t.Errorf("Title = %s, want CRLF", fm.Title)
	}
}

func TestSplitFrontmatter_Missing(t *testing.T) {
	_, _, err := splitFrontmatter("# Just a heading\n")
	if !errors.Is(err, ErrNoFrontmatter) {
		t.Errorf("err = %v, want ErrNoFrontmatter", err)
	}
}

func TestSplitFrontmatter_Unclosed(t *testing.T) {
	_, _, err := splitFrontmatter("---\ntitle: Open\n")
	if !errors.Is(err, ErrUnclosedFrontmatter) {
		t.Errorf("err = %v, want ErrUnclosedFrontmatter", err)
	}
}

func TestSplitFrontmatter_RuleDoesNotClose(t *testing.T) {
	// A ---- line is not the closing delimiter.
	_, _, err := splitFrontmatter("---\ntitle: Open\n----\ntext\n")
	if !errors.Is(err, ErrUnclosedFrontmatter) {
		t.Errorf("err = %v, want ErrUnclosedFrontmatter", err)
	}

	// Neither is a line that merely starts with ---.
	_, _, err = splitFrontmatter("---\ntitle: Open\n---foo\n")
	if !errors.Is(err, ErrUnclosedFrontmatter) {
		t.Errorf("err = %v, want ErrUnclosedFrontmatter", err)
	}
}

func TestSplitFrontmatter_CloseAtEOF(t *testing.T) {
	fm, body, err := splitFrontmatter("---\ntitle: End\n---")
	if err != nil {
		t.Fatalf("splitFrontmatter returned unexpected error: %v", err)
	}

	if fm.Title != "End" {
		t.Errorf("Title = %s, want End", fm.Title)
	}

	if body != "" {
		t.Errorf("body = %q, want empty", body)
	}
}

func TestSplitFrontmatter_InvalidYAML(t *testing.T) {
	_, _, err := splitFrontmatter("---\ntitle: [unclosed\n---\n\nbody\n")
	if err == nil {
		t.Error("splitFrontmatter expected error for invalid YAML header")
	}
}
