package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/networkteam/buttonkit/button"
)

// Page renders a complete HTML document around content.
func Page(subtitle string, content ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := handlerOptionsFrom(ctx).Title
		if title == "" {
			title = "Buttons"
		}
		fullTitle := title
		if subtitle != "" {
			fullTitle = subtitle + " · " + title
		}

		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<title>"+templ.EscapeString(fullTitle)+"</title>"); err != nil {
			return err
		}
		if err := theme().Render(ctx, w); err != nil {
			return err
		}
		if err := chromaStyles().Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "</head>"); err != nil {
			return err
		}

		body := button.El("body", templ.Attributes{"class": "min-h-screen bg-background text-foreground font-sans"},
			header(title),
			button.El("main", templ.Attributes{"class": "mx-auto max-w-6xl space-y-10 p-6"}, content...),
		)
		if err := body.Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, "</html>")
		return err
	})
}

func header(title string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return button.El("header", templ.Attributes{"class": "border-b border-neutral-200 px-6 py-4"},
			button.El("a", templ.Attributes{"href": link(ctx, "/"), "class": "text-lg font-semibold"}, button.Text(title)),
		).Render(ctx, w)
	})
}
