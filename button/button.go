// Package button provides a Tailwind styled button component for templ.
//
// A button is configured by a variant, size, shape and color. The resolved classes
// are attached either to a native <button> element or, in composition mode, to a
// single caller supplied element such as a link.
package button

import (
	"context"
	"fmt"
	"io"
	"maps"
	"strings"

	"github.com/a-h/templ"

	"github.com/networkteam/buttonkit/internal/classes"
)

// Props configures a button. The zero value renders a default button.
type Props struct {
	// Variant selects the visual treatment (default, outline, soft, ghost, link).
	Variant Variant
	// Size selects height and padding, or a square icon footprint.
	Size Size
	// Shape selects the corner radius.
	Shape Shape
	// Color selects the palette (default or error).
	Color Color
	// Class is appended last and wins over conflicting resolved classes.
	Class string
	// Attributes are forwarded to the rendered element as is.
	Attributes templ.Attributes
	// AsChild renders the single child element instead of a <button>, injecting
	// the resolved classes and attributes into it.
	AsChild bool
}

// Validate reports whether all options are within their domain.
func (p Props) Validate() error {
	if _, err := p.Variant.resolve(); err != nil {
		return err
	}
	if _, err := p.Size.resolve(); err != nil {
		return err
	}
	if _, err := p.Shape.resolve(); err != nil {
		return err
	}
	if _, err := p.Color.resolve(); err != nil {
		return err
	}
	return nil
}

// Button renders a button with the given children.
//
// With props.AsChild set, exactly one child of type *Element or Element is required;
// other input makes Render fail with ErrInvalidChildCount or ErrInvalidChild.
// Invalid options make Render fail with ErrInvalidOption.
func Button(props Props, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class, err := Classes(props)
		if err != nil {
			return err
		}

		t, err := dispatch(props.AsChild, children)
		if err != nil {
			return err
		}

		attrs := make(templ.Attributes, len(props.Attributes)+1)
		maps.Copy(attrs, props.Attributes)
		attrs["class"] = class

		return t.render(ctx, w, attrs)
	})
}

// target is the element a button renders to: either a native <button> or a
// composed caller element.
type target interface {
	render(ctx context.Context, w io.Writer, attrs templ.Attributes) error
}

type nativeTarget struct {
	children []templ.Component
}

func (t nativeTarget) render(ctx context.Context, w io.Writer, attrs templ.Attributes) error {
	return El("button", attrs, t.children...).Render(ctx, w)
}

type composedTarget struct {
	child Element
}

func (t composedTarget) render(ctx context.Context, w io.Writer, attrs templ.Attributes) error {
	child := t.child
	child.Attributes = mergeSlotAttributes(attrs, t.child.Attributes)
	return child.Render(ctx, w)
}

func dispatch(asChild bool, children []templ.Component) (target, error) {
	if !asChild {
		return nativeTarget{children: children}, nil
	}

	if len(children) != 1 {
		return nil, fmt.Errorf("composition mode needs exactly one child, got %d: %w", len(children), ErrInvalidChildCount)
	}

	switch child := children[0].(type) {
	case *Element:
		if child == nil {
			return nil, fmt.Errorf("composition child is nil: %w", ErrInvalidChild)
		}
		return composedTarget{child: *child}, nil
	case Element:
		return composedTarget{child: child}, nil
	default:
		return nil, fmt.Errorf("composition child must be an element, got %T: %w", children[0], ErrInvalidChild)
	}
}

// mergeSlotAttributes merges button attributes into the attributes of a composed child.
// Child values win, except that classes are merged (child last), styles are
// concatenated and inline event handlers run child first.
func mergeSlotAttributes(slot, child templ.Attributes) templ.Attributes {
	merged := make(templ.Attributes, len(slot)+len(child))
	maps.Copy(merged, slot)

	for key, childValue := range child {
		slotValue, exists := slot[key]
		if !exists {
			merged[key] = childValue
			continue
		}

		slotStr, slotIsStr := slotValue.(string)
		childStr, childIsStr := childValue.(string)
		if !slotIsStr || !childIsStr {
			merged[key] = childValue
			continue
		}

		switch {
		case key == "class":
			merged[key] = classes.Merge(slotStr, childStr)
		case key == "style":
			merged[key] = joinNonEmpty("; ", strings.TrimRight(slotStr, "; "), childStr)
		case isEventHandler(key):
			merged[key] = joinNonEmpty("; ", strings.TrimRight(childStr, "; "), slotStr)
		default:
			merged[key] = childValue
		}
	}

	return merged
}

// isEventHandler matches inline handler attributes such as onclick, but not
// custom attributes like onboarding-step.
func isEventHandler(key string) bool {
	name, ok := strings.CutPrefix(strings.ToLower(key), "on")
	if !ok || name == "" {
		return false
	}
	return strings.IndexFunc(name, func(r rune) bool {
		return r < 'a' || r > 'z'
	}) == -1
}

func joinNonEmpty(sep string, parts ...string) string {
	var nonEmpty []string
	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return strings.Join(nonEmpty, sep)
}
