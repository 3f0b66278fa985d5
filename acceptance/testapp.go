//go:build acceptance
// +build acceptance

package acceptance

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/a-h/templ"

	"github.com/networkteam/buttonkit/button"
	"github.com/networkteam/buttonkit/gallery"
)

// TestApp serves the gallery below /_buttons and a form page using buttons.
// Tailwind is replaced by an empty local script so tests run offline.
type TestApp struct {
	Server     *httptest.Server
	GalleryURL string
	FormURL    string

	mu        sync.Mutex
	submitted []string
}

func NewTestApp(t *testing.T) *TestApp {
	t.Helper()

	app := &TestApp{}

	mux := http.NewServeMux()
	mux.Handle("/_buttons/", http.StripPrefix("/_buttons", gallery.NewHandler(
		gallery.WithPathPrefix("/_buttons"),
		gallery.WithTailwindScriptURL("/tailwind.js"),
	)))

	mux.HandleFunc("GET /tailwind.js", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/javascript")
	})

	mux.Handle("GET /form", templ.Handler(formPage()))

	mux.HandleFunc("POST /form", func(w http.ResponseWriter, r *http.Request) {
		app.mu.Lock()
		app.submitted = append(app.submitted, r.FormValue("title"))
		app.mu.Unlock()

		templ.Handler(templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, `<!DOCTYPE html><html><body><p id="result">Saved</p></body></html>`)
			return err
		})).ServeHTTP(w, r)
	})

	app.Server = httptest.NewServer(mux)
	app.GalleryURL = app.Server.URL + "/_buttons/"
	app.FormURL = app.Server.URL + "/form"

	t.Cleanup(app.Server.Close)
	return app
}

// Submitted returns the titles posted by the form page.
func (a *TestApp) Submitted() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.submitted...)
}

func formPage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html><body>`); err != nil {
			return err
		}

		err := button.El("form", templ.Attributes{"method": "post", "action": "/form"},
			button.El("input", templ.Attributes{"name": "title", "value": "Quarterly report"}),
			button.Button(button.Props{
				Attributes: templ.Attributes{"type": "submit"},
			}, button.Text("Save")),
			button.Button(button.Props{
				Variant:    button.VariantGhost,
				Attributes: templ.Attributes{"type": "submit", "disabled": true},
			}, button.Text("Archive")),
			button.Button(button.Props{
				Variant: button.VariantLink,
				AsChild: true,
			}, button.A("/_buttons/", button.Text("Gallery"))),
		).Render(ctx, w)
		if err != nil {
			return err
		}

		_, err = io.WriteString(w, `</body></html>`)
		return err
	})
}
