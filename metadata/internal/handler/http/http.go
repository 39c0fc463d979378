package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/gorilla/mux"
	"github.com/mkvy/movies-gateway/metadata/internal/repository"
	"github.com/mkvy/movies-gateway/metadata/internal/repository/memory"
	"github.com/mkvy/movies-gateway/metadata/pkg/model"
)

// Handler serves stored metadata over the provider's REST routes.
type Handler struct {
	repo     *memory.Repository
	apiKey   string
	requests atomic.Int64
}

// New creates a new metadata HTTP handler accepting only apiKey.
func New(repo *memory.Repository, apiKey string) *Handler {
	return &Handler{repo: repo, apiKey: apiKey}
}

// Router returns a router serving the provider routes.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/trending/movie/week", h.trending).Methods(http.MethodGet)
	r.HandleFunc("/search/movie", h.search).Methods(http.MethodGet)
	r.HandleFunc("/movie/{id}", h.movie).Methods(http.MethodGet)
	r.HandleFunc("/person/{id}", h.person).Methods(http.MethodGet)
	r.Use(h.count, h.authorize)
	return r
}

// Requests returns the number of routed requests received.
func (h *Handler) Requests() int64 {
	return h.requests.Load()
}

func (h *Handler) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.requests.Add(1)
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("api_key") != h.apiKey {
			writeStatus(w, http.StatusUnauthorized, "Invalid API key: You must be granted a valid key.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) trending(w http.ResponseWriter, r *http.Request) {
	results, _ := h.repo.Trending(r.Context())
	writePage(w, results)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	results, _ := h.repo.Search(r.Context(), q.Get("query"), q.Get("language"))
	writePage(w, results)
}

func (h *Handler) movie(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeNotFound(w)
		return
	}
	m, err := h.repo.Get(r.Context(), id, r.URL.Query().Get("language"))
	if errors.Is(err, repository.ErrNotFound) {
		writeNotFound(w)
		return
	}
	v := *m
	appended := strings.Split(r.URL.Query().Get("append_to_response"), ",")
	if !contains(appended, "credits") {
		v.Credits = nil
	}
	if !contains(appended, "videos") {
		v.Videos = nil
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *Handler) person(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeNotFound(w)
		return
	}
	p, err := h.repo.GetPerson(r.Context(), id, r.URL.Query().Get("language"))
	if errors.Is(err, repository.ErrNotFound) {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func writePage(w http.ResponseWriter, results []model.MovieResult) {
	if results == nil {
		results = []model.MovieResult{}
	}
	writeJSON(w, http.StatusOK, model.ResultsPage{
		Page:         1,
		Results:      results,
		TotalPages:   1,
		TotalResults: len(results),
	})
}

func writeNotFound(w http.ResponseWriter) {
	writeStatus(w, http.StatusNotFound, "The resource you requested could not be found.")
}

func writeStatus(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]any{
		"success":        false,
		"status_message": message,
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json;charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
