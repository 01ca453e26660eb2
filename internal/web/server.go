// Package web exposes the aggregation layer as a JSON API. Handlers
// only call into the data-access modules and encode the result;
// degraded fetcher results render as empty collections or nulls,
// never as 5xx responses.
package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"prexsite/internal/content"
	"prexsite/internal/github"
	"prexsite/internal/logger"
	"prexsite/internal/models"
	"prexsite/internal/search"
	"prexsite/internal/strava"
	"prexsite/internal/youtube"
)

const defaultRelatedTagLimit = 5

// Server wires the aggregation modules to HTTP routes.
type Server struct {
	store   *content.Store
	videos  *youtube.Client
	fitness *strava.Client
	code    *github.Client
	idx     *search.Index
	log     *logger.Logger
}

// NewServer creates the API server. Any of videos/fitness/code/idx
// may be nil; the matching routes then serve empty results.
func NewServer(
	store *content.Store,
	videos *youtube.Client,
	fitness *strava.Client,
	code *github.Client,
	idx *search.Index,
	log *logger.Logger,
) *Server {
	return &Server{
		store:   store,
		videos:  videos,
		fitness: fitness,
		code:    code,
		idx:     idx,
		log:     log,
	}
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/posts", s.handleAllPosts)
	mux.HandleFunc("GET /api/posts/{category}", s.handleCategory)
	mux.HandleFunc("GET /api/posts/{category}/{slug}", s.handlePost)
	mux.HandleFunc("GET /api/tags", s.handleTags)
	mux.HandleFunc("GET /api/tags/{slug}", s.handleTag)
	mux.HandleFunc("GET /api/videos", s.handleVideos)
	mux.HandleFunc("GET /api/videos/{id}", s.handleVideo)
	mux.HandleFunc("GET /api/stats/running", s.handleRunningStats)
	mux.HandleFunc("GET /api/repos", s.handleRepos)
	mux.HandleFunc("GET /api/search", s.handleSearch)
	mux.HandleFunc("GET /health", s.handleHealth)

	return mux
}

func (s *Server) handleAllPosts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.store.GetAllPosts())
}

func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	category := models.Category(r.PathValue("category"))
	if !category.IsValid() {
		http.Error(w, "unknown category", http.StatusNotFound)

		return
	}

	writeJSON(w, map[string]any{
		"category": models.CategoryDetails[category],
		"posts":    s.store.GetPostsByCategory(category),
	})
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	category := models.Category(r.PathValue("category"))
	slug := r.PathValue("slug")

	post := s.store.GetPostBySlug(category, slug)
	if post == nil {
		http.Error(w, "post not found", http.StatusNotFound)

		return
	}

	body, _ := s.store.GetPostContent(category, slug)

	writeJSON(w, map[string]any{
		"post":    post,
		"body":    body,
		"toc":     content.GenerateTOC(body),
		"related": s.relatedForPost(post),
	})
}

// relatedForPost returns the tags related to the post's first tag.
func (s *Server) relatedForPost(post *models.Post) []models.TagMetadata {
	if len(post.Tags) == 0 {
		return []models.TagMetadata{}
	}

	return s.store.RelatedTags(post.Tags[0], defaultRelatedTagLimit)
}

func (s *Server) handleTags(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.store.AllTags())
}

func (s *Server) handleTag(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	name := s.store.SlugToTag(slug)

	writeJSON(w, map[string]any{
		"tag":     name,
		"posts":   s.store.PostsByTag(name),
		"related": s.store.RelatedTags(name, defaultRelatedTagLimit),
	})
}

func (s *Server) handleVideos(w http.ResponseWriter, r *http.Request) {
	if s.videos == nil {
		writeJSON(w, map[string][]models.ProcessedVideo{})

		return
	}

	writeJSON(w, s.videos.GetAllChannelVideos(r.Context()))
}

func (s *Server) handleVideo(w http.ResponseWriter, r *http.Request) {
	if s.videos == nil {
		http.Error(w, "video not found", http.StatusNotFound)

		return
	}

	video := s.videos.GetVideoByID(r.Context(), r.PathValue("id"))
	if video == nil {
		http.Error(w, "video not found", http.StatusNotFound)

		return
	}

	writeJSON(w, video)
}

func (s *Server) handleRunningStats(w http.ResponseWriter, r *http.Request) {
	if s.fitness == nil {
		writeJSON(w, nil)

		return
	}

	// A nil result encodes as JSON null: the widget's degraded state.
	writeJSON(w, s.fitness.GetAthleteStats(r.Context()))
}

func (s *Server) handleRepos(w http.ResponseWriter, r *http.Request) {
	if s.code == nil {
		writeJSON(w, []models.RepoData{})

		return
	}

	writeJSON(w, s.code.GetRepoData(r.Context()))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if s.idx == nil {
		writeJSON(w, []search.Result{})

		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "missing query parameter q", http.StatusBadRequest)

		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	hits, err := s.idx.Search(query, limit)
	if err != nil {
		s.log.Error("search failed", "query", query, "error", err)
		writeJSON(w, []search.Result{})

		return
	}

	writeJSON(w, hits)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "encoding error", http.StatusInternalServerError)
	}
}
