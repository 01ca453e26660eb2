package search

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prexsite/internal/content"
	"prexsite/internal/models"
)

func writeDoc(t *testing.T, root, rel, doc string) {
	t.Helper()

	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
}

func fixtureStore(t *testing.T) *content.Store {
	t.Helper()
	root := t.TempDir()

	writeDoc(t, root, "notes/vim-setup.mdx", `---
title: "Vim Setup"
description: "Editor configuration from scratch"
date: "2024-02-01"
tags:
  - Tooling
---

Keybindings, plugins, and a minimal vimrc.
`)

	writeDoc(t, root, "ai/agents.mdx", `---
title: "Building Agents"
description: "Notes on agent loops"
date: "2024-05-10"
tags:
  - AI
---

An agent loop calls a model, runs tools, and repeats.
`)

	writeDoc(t, root, "updates/week-12.mdx", `---
title: "Week 12"
description: "Weekly update"
date: "2024-03-20"
tags: []
---

Shipped the editor plugin and fixed the agent runner.
`)

	return content.NewStore(root, nil)
}

func TestIndexStore(t *testing.T) {
	idx, err := InMemory()
	require.NoError(t, err)
	defer idx.Close()

	indexed, err := idx.IndexStore(fixtureStore(t))
	require.NoError(t, err)
	assert.Equal(t, 3, indexed)

	count, err := idx.Count()
	require.NoError(t, err)
	assert.Equal(t, uint64(3), count)
}

func TestSearch_TitleMatch(t *testing.T) {
	idx, err := InMemory()
	require.NoError(t, err)
	defer idx.Close()

	_, err = idx.IndexStore(fixtureStore(t))
	require.NoError(t, err)

	hits, err := idx.Search("vim", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)

	assert.Equal(t, "vim-setup", hits[0].Slug)
	assert.Equal(t, "notes", hits[0].Category)
	assert.Equal(t, "Vim Setup", hits[0].Title)
	assert.Equal(t, "2024-02-01", hits[0].Date)
	assert.Greater(t, hits[0].Score, 0.0)
}

func TestSearch_BodyMatch(t *testing.T) {
	idx, err := InMemory()
	require.NoError(t, err)
	defer idx.Close()

	_, err = idx.IndexStore(fixtureStore(t))
	require.NoError(t, err)

	hits, err := idx.Search("keybindings", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "vim-setup", hits[0].Slug)
}

func TestSearch_Limit(t *testing.T) {
	idx, err := InMemory()
	require.NoError(t, err)
	defer idx.Close()

	_, err = idx.IndexStore(fixtureStore(t))
	require.NoError(t, err)

	hits, err := idx.Search("agent", 1)
	require.NoError(t, err)
	assert.Len(t, hits, 1)
}

func TestSearch_NoMatch(t *testing.T) {
	idx, err := InMemory()
	require.NoError(t, err)
	defer idx.Close()

	_, err = idx.IndexStore(fixtureStore(t))
	require.NoError(t, err)

	hits, err := idx.Search("quaternion", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestIndexPosts(t *testing.T) {
	idx, err := InMemory()
	require.NoError(t, err)
	defer idx.Close()

	posts := []models.Post{
		{Slug: "hello", Title: "Hello World", Category: models.CategoryNotes, Date: "2024-01-01"},
		{Slug: "goodbye", Title: "Goodbye", Category: models.CategoryNotes, Date: "2024-01-02"},
	}

	require.NoError(t, idx.IndexPosts(posts))

	count, err := idx.Count()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), count)

	hits, err := idx.Search("hello", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "hello", hits[0].Slug)
}
