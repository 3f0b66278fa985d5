package button

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/samber/lo"
)

var voidElements = []string{"area", "base", "br", "col", "embed", "hr", "img", "input", "link", "meta", "source", "track", "wbr"}

// Element is a single HTML element. It renders as a templ component and is the only
// kind of child a composed button accepts, because its attributes can be extended.
type Element struct {
	Tag        string
	Attributes templ.Attributes
	Children   []templ.Component
}

// El creates an element with the given tag, attributes and children.
func El(tag string, attrs templ.Attributes, children ...templ.Component) *Element {
	return &Element{
		Tag:        tag,
		Attributes: attrs,
		Children:   children,
	}
}

// A is a shortcut for an anchor element. Unsafe URLs such as javascript: links are
// replaced by templ's failed sanitization marker.
func A(href string, children ...templ.Component) *Element {
	return El("a", templ.Attributes{"href": string(templ.URL(href))}, children...)
}

func (e Element) Render(ctx context.Context, w io.Writer) error {
	if e.Tag == "" {
		return errors.New("render element: missing tag")
	}

	if _, err := io.WriteString(w, "<"+e.Tag); err != nil {
		return err
	}
	if err := templ.RenderAttributes(ctx, w, renderableAttributes(e.Attributes)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if lo.Contains(voidElements, e.Tag) {
		return nil
	}

	for _, child := range e.Children {
		if child == nil {
			continue
		}
		if err := child.Render(ctx, w); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</"+e.Tag+">")
	return err
}

// renderableAttributes converts values templ would skip into their string form.
func renderableAttributes(attrs templ.Attributes) templ.Attributes {
	out := make(templ.Attributes, len(attrs))
	for key, value := range attrs {
		switch v := value.(type) {
		case string, bool, nil:
			out[key] = v
		case templ.SafeURL:
			out[key] = string(v)
		case fmt.Stringer:
			out[key] = v.String()
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
			out[key] = fmt.Sprint(v)
		default:
			out[key] = v
		}
	}
	return out
}

// Text renders HTML escaped text.
func Text(text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(text))
		return err
	})
}

func stringAttribute(attrs templ.Attributes, key string) string {
	if s, ok := attrs[key].(string); ok {
		return s
	}
	return ""
}
