package button

import (
	"fmt"
	"strings"

	"github.com/networkteam/buttonkit/internal/classes"
)

const baseClasses = "flex items-center justify-center gap-2 rounded-lg text-sm font-medium transition duration-300 border ring-offset-background focus:outline-none focus:ring-2 focus:ring-offset-2 disabled:cursor-not-allowed disabled:opacity-50"

// SizeClasses returns the dimensional classes of a size.
func SizeClasses(size Size) (string, error) {
	size, err := size.resolve()
	if err != nil {
		return "", err
	}

	switch size {
	case SizeSm:
		return "h-8 rounded-md px-3", nil
	case SizeLg:
		return "h-12 rounded-md px-8", nil
	case SizeIcon:
		return "size-8", nil
	default: // SizeDefault
		return "h-10 px-4 py-2", nil
	}
}

// ShapeClasses returns the corner radius classes of a shape.
func ShapeClasses(shape Shape) (string, error) {
	shape, err := shape.resolve()
	if err != nil {
		return "", err
	}

	switch shape {
	case ShapeSquare:
		return "rounded-none", nil
	case ShapePill:
		return "rounded-full", nil
	default: // ShapeDefault
		return "rounded-lg", nil
	}
}

// StructuralClasses returns base, size and shape classes joined in that order.
// No variant adds structural classes of its own; the variant is still validated.
func StructuralClasses(variant Variant, size Size, shape Shape) (string, error) {
	if _, err := variant.resolve(); err != nil {
		return "", err
	}

	sizeClasses, err := SizeClasses(size)
	if err != nil {
		return "", err
	}
	shapeClasses, err := ShapeClasses(shape)
	if err != nil {
		return "", err
	}

	return strings.Join([]string{baseClasses, sizeClasses, shapeClasses}, " "), nil
}

// PaletteClasses returns the color classes for a variant and color pair.
func PaletteClasses(variant Variant, color Color) (string, error) {
	variant, err := variant.resolve()
	if err != nil {
		return "", err
	}
	color, err = color.resolve()
	if err != nil {
		return "", err
	}

	palette, ok := palettes[variant][color]
	if !ok {
		// Unreachable as long as the palette table covers the whole domain.
		return "", fmt.Errorf("no palette for variant %q and color %q: %w", variant, color, ErrInvalidOption)
	}
	return palette, nil
}

// Classes resolves the final class attribute for props.
//
// Structural and palette classes come first, followed by props.Class and a "class"
// passthrough attribute. Conflicting Tailwind utilities are merged so that the
// caller's classes win.
func Classes(props Props) (string, error) {
	structural, err := StructuralClasses(props.Variant, props.Size, props.Shape)
	if err != nil {
		return "", err
	}
	palette, err := PaletteClasses(props.Variant, props.Color)
	if err != nil {
		return "", err
	}

	return classes.Merge(structural, palette, props.Class, stringAttribute(props.Attributes, "class")), nil
}
