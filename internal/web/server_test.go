package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prexsite/internal/content"
	"prexsite/internal/logger"
	"prexsite/internal/models"
	"prexsite/internal/search"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	root := t.TempDir()

	docs := map[string]string{
		"notes/vim-setup.mdx": `---
title: "Vim Setup"
description: "Editor configuration from scratch"
date: "2024-02-01"
tags:
  - Tooling
---

## Install

Keybindings and plugins.

## Install

More of the same.
`,
		"ai/agents.mdx": `---
title: "Building Agents"
description: "Notes on agent loops"
date: "2024-05-10"
tags:
  - AI
  - Tooling
---

An agent loop calls a model and runs tools.
`,
	}

	for rel, doc := range docs {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
	}

	store := content.NewStore(root, nil)

	idx, err := search.InMemory()
	require.NoError(t, err)
	t.Cleanup(func() { idx.Close() })

	_, err = idx.IndexStore(store)
	require.NoError(t, err)

	log := logger.NewJSONLogger("error", io.Discard)

	return NewServer(store, nil, nil, nil, idx, log)
}

func doGet(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestHandleAllPosts(t *testing.T) {
	s := newTestServer(t)

	rec := doGet(t, s, "/api/posts")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var posts []models.Post
	decodeBody(t, rec, &posts)

	require.Len(t, posts, 2)
	assert.Equal(t, "agents", posts[0].Slug)
	assert.Equal(t, "vim-setup", posts[1].Slug)
}

func TestHandleCategory(t *testing.T) {
	s := newTestServer(t)

	rec := doGet(t, s, "/api/posts/notes")
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Category models.CategoryInfo `json:"category"`
		Posts    []models.Post       `json:"posts"`
	}
	decodeBody(t, rec, &payload)

	require.Len(t, payload.Posts, 1)
	assert.Equal(t, "vim-setup", payload.Posts[0].Slug)
}

func TestHandleCategory_EmptyRendersArray(t *testing.T) {
	s := newTestServer(t)

	rec := doGet(t, s, "/api/posts/updates")
	require.Equal(t, http.StatusOK, rec.Code)

	// No updates posts in the fixture; the list must still be an
	// array, not null.
	assert.Contains(t, rec.Body.String(), `"posts":[]`)
}

func TestHandleCategory_Unknown(t *testing.T) {
	s := newTestServer(t)

	rec := doGet(t, s, "/api/posts/podcasts")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlePost(t *testing.T) {
	s := newTestServer(t)

	rec := doGet(t, s, "/api/posts/notes/vim-setup")
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Post    models.Post          `json:"post"`
		Body    string               `json:"body"`
		TOC     []models.TOCItem     `json:"toc"`
		Related []models.TagMetadata `json:"related"`
	}
	decodeBody(t, rec, &payload)

	assert.Equal(t, "Vim Setup", payload.Post.Title)
	assert.Contains(t, payload.Body, "Keybindings")

	require.Len(t, payload.TOC, 2)
	assert.Equal(t, "install", payload.TOC[0].ID)
	assert.Equal(t, "install-2", payload.TOC[1].ID)

	// Related for the Tooling tag is AI, via the agents post.
	require.Len(t, payload.Related, 1)
	assert.Equal(t, "AI", payload.Related[0].Name)
}

func TestHandlePost_NotFound(t *testing.T) {
	s := newTestServer(t)

	rec := doGet(t, s, "/api/posts/notes/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleTags(t *testing.T) {
	s := newTestServer(t)

	rec := doGet(t, s, "/api/tags")
	require.Equal(t, http.StatusOK, rec.Code)

	var tags []models.TagMetadata
	decodeBody(t, rec, &tags)

	require.Len(t, tags, 2)
	assert.Equal(t, "Tooling", tags[0].Name)
	assert.Equal(t, 2, tags[0].Count)
	assert.Equal(t, "AI", tags[1].Name)
}

func TestHandleTag(t *testing.T) {
	s := newTestServer(t)

	rec := doGet(t, s, "/api/tags/tooling")
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Tag   string        `json:"tag"`
		Posts []models.Post `json:"posts"`
	}
	decodeBody(t, rec, &payload)

	assert.Equal(t, "Tooling", payload.Tag)
	assert.Len(t, payload.Posts, 2)
}

func TestHandleVideos_NoClient(t *testing.T) {
	s := newTestServer(t)

	rec := doGet(t, s, "/api/videos")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestHandleVideo_NoClient(t *testing.T) {
	s := newTestServer(t)

	rec := doGet(t, s, "/api/videos/abc123")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleRunningStats_NoClient(t *testing.T) {
	s := newTestServer(t)

	rec := doGet(t, s, "/api/stats/running")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `null`, rec.Body.String())
}

func TestHandleRepos_NoClient(t *testing.T) {
	s := newTestServer(t)

	rec := doGet(t, s, "/api/repos")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandleSearch(t *testing.T) {
	s := newTestServer(t)

	rec := doGet(t, s, "/api/search?q=vim")
	require.Equal(t, http.StatusOK, rec.Code)

	var hits []search.Result
	decodeBody(t, rec, &hits)

	require.Len(t, hits, 1)
	assert.Equal(t, "vim-setup", hits[0].Slug)
	assert.Equal(t, "notes", hits[0].Category)
}

func TestHandleSearch_MissingQuery(t *testing.T) {
	s := newTestServer(t)

	rec := doGet(t, s, "/api/search")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSearch_NoIndex(t *testing.T) {
	s := newTestServer(t)
	s.idx = nil

	rec := doGet(t, s, "/api/search?q=vim")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	rec := doGet(t, s, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
