package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/mkvy/movies-gateway/movie/internal/controller/movie"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Handler defines a movie HTTP handler.
type Handler struct {
	ctrl   *movie.Controller
	pages  afero.Fs
	logger *zap.Logger
}

// New creates a new movie HTTP handler. Pages are read from the root of pages.
func New(ctrl *movie.Controller, pages afero.Fs, logger *zap.Logger) *Handler {
	return &Handler{ctrl, pages, logger}
}

// Register adds the handler routes to r.
func (h *Handler) Register(r *mux.Router) {
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/trending", h.Trending).Methods(http.MethodGet)
	api.HandleFunc("/search", h.Search).Methods(http.MethodGet)
	api.HandleFunc("/movie/{movieId}", h.MovieDetail).Methods(http.MethodGet)
	api.HandleFunc("/person/{personId}", h.PersonDetail).Methods(http.MethodGet)

	r.HandleFunc("/", h.Home).Methods(http.MethodGet)
	r.HandleFunc("/movie", h.MoviePage).Methods(http.MethodGet)
	r.HandleFunc("/person", h.PersonPage).Methods(http.MethodGet)
	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
}

// Trending handles GET /api/trending.
func (h *Handler) Trending(w http.ResponseWriter, req *http.Request) {
	v, err := h.ctrl.Trending(req.Context())
	if err != nil {
		h.logger.Error("Failed to list trending movies", zap.Error(err))
		writeError(w, http.StatusBadGateway, "metadata provider error")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// Search handles GET /api/search?query=.
func (h *Handler) Search(w http.ResponseWriter, req *http.Request) {
	values := req.URL.Query()
	if !values.Has("query") {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}
	v, err := h.ctrl.Search(req.Context(), values.Get("query"))
	if err != nil {
		h.logger.Error("Failed to search movies", zap.Error(err))
		writeError(w, http.StatusBadGateway, "metadata provider error")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// MovieDetail handles GET /api/movie/{movieId}.
func (h *Handler) MovieDetail(w http.ResponseWriter, req *http.Request) {
	id, err := strconv.Atoi(mux.Vars(req)["movieId"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "movie id must be an integer")
		return
	}
	v, err := h.ctrl.MovieDetail(req.Context(), id)
	if errors.Is(err, movie.ErrNotFound) {
		writeError(w, http.StatusNotFound, "movie not found")
		return
	} else if err != nil {
		h.logger.Error("Failed to get movie detail", zap.Int("movieID", id), zap.Error(err))
		writeError(w, http.StatusBadGateway, "metadata provider error")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// PersonDetail handles GET /api/person/{personId}.
func (h *Handler) PersonDetail(w http.ResponseWriter, req *http.Request) {
	id, err := strconv.Atoi(mux.Vars(req)["personId"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "person id must be an integer")
		return
	}
	v, err := h.ctrl.PersonDetail(req.Context(), id)
	if errors.Is(err, movie.ErrNotFound) {
		writeError(w, http.StatusNotFound, "person not found")
		return
	} else if err != nil {
		h.logger.Error("Failed to get person detail", zap.Int("personID", id), zap.Error(err))
		writeError(w, http.StatusBadGateway, "metadata provider error")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func writeError(w http.ResponseWriter, code int, detail string) {
	writeJSON(w, code, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("Failed to encode response", zap.Error(err))
	}
}
