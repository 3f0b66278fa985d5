package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// DefaultTailwindScriptURL is the Tailwind CSS browser build.
const DefaultTailwindScriptURL = "https://cdn.tailwindcss.com"

// The button classes refer to semantic color tokens. The gallery provides a
// neutral token set so every palette is visible.
const themeConfig = `tailwind.config = {
  theme: {
    extend: {
      colors: {
        background: "hsl(var(--background))",
        foreground: "hsl(var(--foreground))",
        primary: { DEFAULT: "hsl(var(--primary))", foreground: "hsl(var(--primary-foreground))" },
        destructive: { DEFAULT: "hsl(var(--destructive))", foreground: "hsl(var(--destructive-foreground))" },
        accent: { DEFAULT: "hsl(var(--accent))", foreground: "hsl(var(--accent-foreground))" },
        input: "hsl(var(--input))",
        ring: "hsl(var(--ring))",
      },
    },
  },
};`

const themeVariables = `:root {
  --background: 0 0% 100%;
  --foreground: 222 47% 11%;
  --primary: 222 47% 11%;
  --primary-foreground: 210 40% 98%;
  --destructive: 0 84% 60%;
  --destructive-foreground: 210 40% 98%;
  --accent: 210 40% 96%;
  --accent-foreground: 222 47% 11%;
  --input: 214 32% 91%;
  --ring: 222 84% 5%;
}`

func theme() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		scriptURL := handlerOptionsFrom(ctx).TailwindScriptURL
		if scriptURL == "" {
			scriptURL = DefaultTailwindScriptURL
		}

		if _, err := io.WriteString(w, `<script src="`+templ.EscapeString(scriptURL)+`"></script>`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<script>"+themeConfig+"</script>"); err != nil {
			return err
		}
		_, err := io.WriteString(w, "<style>"+themeVariables+"</style>")
		return err
	})
}
