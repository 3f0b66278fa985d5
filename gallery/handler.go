// Package gallery serves a browsable overview of every button option combination.
package gallery

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/networkteam/buttonkit/gallery/views"
)

type Handler struct {
	options handlerOptions

	mux http.Handler
}

// NewHandler creates a gallery handler.
func NewHandler(opts ...HandlerOption) *Handler {
	options := handlerOptions{
		Logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	mux := http.NewServeMux()
	handler := &Handler{
		options: options,

		mux: setHandlerOptions(options, mux),
	}

	mux.HandleFunc("GET /{$}", handler.root)
	mux.HandleFunc("GET /preview", handler.getPreview)
	mux.HandleFunc("GET /source", handler.getSource)

	return handler
}

func setHandlerOptions(options handlerOptions, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ctx = views.WithHandlerOptions(ctx, views.HandlerOptions{
			PathPrefix:        options.PathPrefix,
			Title:             options.Title,
			TailwindScriptURL: options.TailwindScriptURL,
		})
		r = r.WithContext(ctx)

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, views.Index(views.IndexProps{
		Sections: Sections(),
	}))
}

// getPreview renders a single button as an HTML fragment
func (h *Handler) getPreview(w http.ResponseWriter, r *http.Request) {
	preview, err := ParsePreview(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.render(w, r, views.Preview(preview))
}

// getSource renders a button together with its highlighted markup
func (h *Handler) getSource(w http.ResponseWriter, r *http.Request) {
	preview, err := ParsePreview(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := views.Preview(preview).Render(r.Context(), &buf); err != nil {
		h.renderFailed(w, r, err)
		return
	}

	h.render(w, r, views.Source(views.SourceProps{
		Preview: preview,
		HTML:    buf.String(),
	}))
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	templ.Handler(component, templ.WithErrorHandler(h.errorHandler)).ServeHTTP(w, r)
}

func (h *Handler) errorHandler(r *http.Request, err error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.renderFailed(w, r, err)
	})
}

func (h *Handler) renderFailed(w http.ResponseWriter, r *http.Request, err error) {
	h.options.Logger.ErrorContext(r.Context(), "Failed to render gallery page",
		slog.String("path", r.URL.Path),
		slog.Any("err", err.Error()),
	)

	if errors.Is(err, context.Canceled) {
		return
	}
	http.Error(w, "Failed to render", http.StatusInternalServerError)
}
