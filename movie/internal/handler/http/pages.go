package http

import (
	"context"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// Page file names, relative to the pages filesystem.
const (
	HomePage   = "index.html"
	MoviePage  = "detail.html"
	PersonPage = "person.html"
)

// Home handles GET /.
func (h *Handler) Home(w http.ResponseWriter, req *http.Request) {
	h.servePage(w, req, HomePage)
}

// MoviePage handles GET /movie?id=. It serves the detail page only for
// movies the provider knows, otherwise it redirects home.
func (h *Handler) MoviePage(w http.ResponseWriter, req *http.Request) {
	h.serveIfExists(w, req, MoviePage, h.ctrl.MovieExists)
}

// PersonPage handles GET /person?id=. It serves the person page only for
// people the provider knows, otherwise it redirects home.
func (h *Handler) PersonPage(w http.ResponseWriter, req *http.Request) {
	h.serveIfExists(w, req, PersonPage, h.ctrl.PersonExists)
}

func (h *Handler) serveIfExists(w http.ResponseWriter, req *http.Request, page string, exists func(context.Context, int) bool) {
	id, ok := parseDigits(req.URL.Query().Get("id"))
	if !ok {
		redirectHome(w, req)
		return
	}
	if !exists(req.Context(), id) {
		redirectHome(w, req)
		return
	}
	h.servePage(w, req, page)
}

func (h *Handler) servePage(w http.ResponseWriter, req *http.Request, name string) {
	f, err := h.pages.Open(name)
	if err != nil {
		h.logger.Error("Failed to open page", zap.String("page", name), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	defer f.Close()
	stat, err := f.Stat()
	if err != nil {
		h.logger.Error("Failed to stat page", zap.String("page", name), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	http.ServeContent(w, req, name, stat.ModTime(), f)
}

// parseDigits accepts a non-empty string of ASCII decimal digits that
// fits an int.
func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return id, true
}

func redirectHome(w http.ResponseWriter, req *http.Request) {
	http.Redirect(w, req, "/", http.StatusTemporaryRedirect)
}
