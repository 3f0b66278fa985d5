package views

import "context"

// HandlerOptions are the handler settings views need while rendering.
type HandlerOptions struct {
	// PathPrefix where the gallery handler is mounted, used to build links.
	PathPrefix string
	// Title is shown in the page title and header.
	Title string
	// TailwindScriptURL is the Tailwind browser build loaded by every page.
	TailwindScriptURL string
}

type handlerOptionsKey struct{}

func WithHandlerOptions(ctx context.Context, options HandlerOptions) context.Context {
	return context.WithValue(ctx, handlerOptionsKey{}, options)
}

func handlerOptionsFrom(ctx context.Context) HandlerOptions {
	options, _ := ctx.Value(handlerOptionsKey{}).(HandlerOptions)
	return options
}

func link(ctx context.Context, path string) string {
	return handlerOptionsFrom(ctx).PathPrefix + path
}
