package gallery

import "log/slog"

// handlerOptions holds configuration for a gallery Handler.
// This is unexported; use HandlerOption functions to configure.
type handlerOptions struct {
	// PathPrefix is where the handler is mounted (e.g. "/_buttons").
	PathPrefix string
	// Title is shown in the page header.
	Title string
	// TailwindScriptURL is the Tailwind browser build loaded by the pages.
	TailwindScriptURL string
	// Logger receives render failures.
	Logger *slog.Logger
}

// HandlerOption configures a gallery Handler.
type HandlerOption func(*handlerOptions)

// WithPathPrefix sets the path prefix where the handler is mounted.
// For example, "/_buttons" if mounted at that path.
// This is used for generating correct URLs in the gallery.
func WithPathPrefix(prefix string) HandlerOption {
	return func(o *handlerOptions) {
		o.PathPrefix = prefix
	}
}

// WithTitle sets the title shown on gallery pages.
// Default is "Buttons" if not specified.
func WithTitle(title string) HandlerOption {
	return func(o *handlerOptions) {
		o.Title = title
	}
}

// WithTailwindScriptURL replaces the Tailwind CDN build, e.g. with a locally served copy.
func WithTailwindScriptURL(url string) HandlerOption {
	return func(o *handlerOptions) {
		o.TailwindScriptURL = url
	}
}

// WithLogger sets the logger for render failures.
// Default is slog.Default() if not specified.
func WithLogger(logger *slog.Logger) HandlerOption {
	return func(o *handlerOptions) {
		o.Logger = logger
	}
}
