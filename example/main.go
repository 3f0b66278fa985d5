package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/a-h/templ"

	"github.com/networkteam/buttonkit/button"
	"github.com/networkteam/buttonkit/gallery"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// 1. Use buttons in your own pages

	http.Handle("GET /{$}", templ.Handler(page()))

	http.HandleFunc("POST /save", func(w http.ResponseWriter, r *http.Request) {
		logger.Info("Saved", slog.String("title", r.FormValue("title")))
		http.Redirect(w, r, "/", http.StatusSeeOther)
	})

	// 2. Mount the gallery to browse all variants

	http.Handle("/_buttons/", http.StripPrefix("/_buttons", gallery.NewHandler(
		gallery.WithPathPrefix("/_buttons"),
		gallery.WithLogger(logger),
	)))

	// Run the server

	logger.Info("Starting server on :1095")
	if err := http.ListenAndServe(":1095", nil); err != nil {
		logger.Error("Failed to start server", slog.Group("error", slog.String("message", err.Error())))
		os.Exit(1)
	}
}

func page() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html><head><script src="https://cdn.tailwindcss.com"></script></head><body class="p-8">`); err != nil {
			return err
		}

		form := button.El("form", templ.Attributes{"method": "post", "action": "/save", "class": "flex items-center gap-2"},
			button.El("input", templ.Attributes{"name": "title", "placeholder": "Title", "class": "h-10 rounded-lg border px-3"}),
			button.Button(button.Props{Attributes: templ.Attributes{"type": "submit"}}, button.Text("Save")),
			button.Button(button.Props{Variant: button.VariantOutline, Color: button.ColorError, Attributes: templ.Attributes{"type": "reset"}}, button.Text("Reset")),
			button.Button(button.Props{Variant: button.VariantLink, AsChild: true}, button.A("/_buttons/", button.Text("All buttons"))),
		)
		if err := form.Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}
