// Package handlers provides HTTP handlers for the static pages.
package handlers

import (
	"bytes"
	"io"
	"net/http"

	"github.com/aristath/approuter/internal/modules/pages"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// PageRenderer writes page markup
type PageRenderer interface {
	Render(w io.Writer, p pages.Page) error
}

// Handler serves page requests
type Handler struct {
	renderer PageRenderer
	pages    []pages.Page
	log      zerolog.Logger
}

// NewHandler creates a new page handler for the given pages
func NewHandler(renderer PageRenderer, all []pages.Page, log zerolog.Logger) *Handler {
	return &Handler{
		renderer: renderer,
		pages:    all,
		log:      log.With().Str("handler", "pages").Logger(),
	}
}

// RegisterRoutes mounts every page on its route
func (h *Handler) RegisterRoutes(r chi.Router) {
	for _, p := range h.pages {
		r.Get(p.Path, h.HandlePage(p))
	}
}

// HandlePage returns a handler rendering p
func (h *Handler) HandlePage(p pages.Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := h.renderer.Render(&buf, p); err != nil {
			h.log.Error().Err(err).Str("path", p.Path).Msg("Failed to render page")
			http.Error(w, "Page not available", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := buf.WriteTo(w); err != nil {
			h.log.Error().Err(err).Str("path", p.Path).Msg("Failed to write page response")
		}
	}
}
