package button

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

type Variant string
type Size string
type Shape string
type Color string

const (
	VariantDefault Variant = "default"
	VariantOutline Variant = "outline"
	VariantSoft    Variant = "soft"
	VariantGhost   Variant = "ghost"
	VariantLink    Variant = "link"

	SizeDefault Size = "default"
	SizeSm      Size = "sm"
	SizeLg      Size = "lg"
	SizeIcon    Size = "icon"

	ShapeDefault Shape = "default"
	ShapeSquare  Shape = "square"
	ShapePill    Shape = "pill"

	ColorDefault Color = "default"
	ColorError   Color = "error"
)

var (
	// ErrInvalidOption is returned for a variant, size, shape or color outside its domain.
	ErrInvalidOption = errors.New("invalid button option")
	// ErrInvalidChildCount is returned when composition mode gets other than exactly one child.
	ErrInvalidChildCount = errors.New("invalid child count")
	// ErrInvalidChild is returned when the composition child cannot receive attributes.
	ErrInvalidChild = errors.New("invalid child")
)

var (
	variants = []Variant{VariantDefault, VariantOutline, VariantSoft, VariantGhost, VariantLink}
	sizes    = []Size{SizeDefault, SizeSm, SizeLg, SizeIcon}
	shapes   = []Shape{ShapeDefault, ShapeSquare, ShapePill}
	colors   = []Color{ColorDefault, ColorError}
)

// Variants returns all variants in declaration order.
func Variants() []Variant { return append([]Variant(nil), variants...) }

// Sizes returns all sizes in declaration order.
func Sizes() []Size { return append([]Size(nil), sizes...) }

// Shapes returns all shapes in declaration order.
func Shapes() []Shape { return append([]Shape(nil), shapes...) }

// Colors returns all colors in declaration order.
func Colors() []Color { return append([]Color(nil), colors...) }

// OptionError describes a rejected option value. It matches ErrInvalidOption with errors.Is.
type OptionError struct {
	Option  string
	Value   string
	Allowed []string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("%s: %s %q (allowed: %s)", ErrInvalidOption, e.Option, e.Value, strings.Join(e.Allowed, ", "))
}

func (e *OptionError) Unwrap() error {
	return ErrInvalidOption
}

// The empty value of every option stands for its default.

func (v Variant) resolve() (Variant, error) {
	if v == "" {
		return VariantDefault, nil
	}
	if !lo.Contains(variants, v) {
		return "", optionError("variant", string(v), variants)
	}
	return v, nil
}

func (s Size) resolve() (Size, error) {
	if s == "" {
		return SizeDefault, nil
	}
	if !lo.Contains(sizes, s) {
		return "", optionError("size", string(s), sizes)
	}
	return s, nil
}

func (s Shape) resolve() (Shape, error) {
	if s == "" {
		return ShapeDefault, nil
	}
	if !lo.Contains(shapes, s) {
		return "", optionError("shape", string(s), shapes)
	}
	return s, nil
}

func (c Color) resolve() (Color, error) {
	if c == "" {
		return ColorDefault, nil
	}
	if !lo.Contains(colors, c) {
		return "", optionError("color", string(c), colors)
	}
	return c, nil
}

func optionError[T ~string](option, value string, allowed []T) *OptionError {
	return &OptionError{
		Option: option,
		Value:  value,
		Allowed: lo.Map(allowed, func(item T, _ int) string {
			return string(item)
		}),
	}
}

// ParseVariant converts loosely typed input into a Variant.
// An empty string yields the default; unknown values fail with ErrInvalidOption.
func ParseVariant(s string) (Variant, error) {
	return Variant(strings.TrimSpace(s)).resolve()
}

// ParseSize converts loosely typed input into a Size.
func ParseSize(s string) (Size, error) {
	return Size(strings.TrimSpace(s)).resolve()
}

// ParseShape converts loosely typed input into a Shape.
func ParseShape(s string) (Shape, error) {
	return Shape(strings.TrimSpace(s)).resolve()
}

// ParseColor converts loosely typed input into a Color.
func ParseColor(s string) (Color, error) {
	return Color(strings.TrimSpace(s)).resolve()
}
