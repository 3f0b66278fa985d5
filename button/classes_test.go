package button_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/buttonkit/button"
)

func TestPaletteClasses_UniquePerCombination(t *testing.T) {
	seen := make(map[string]string)
	for _, variant := range button.Variants() {
		for _, color := range button.Colors() {
			key := string(variant) + "/" + string(color)

			palette, err := button.PaletteClasses(variant, color)
			require.NoError(t, err, key)
			require.NotEmpty(t, palette, key)

			if other, exists := seen[palette]; exists {
				t.Errorf("palette of %s equals palette of %s", key, other)
			}
			seen[palette] = key
		}
	}
	assert.Len(t, seen, 10)
}

func TestSizeClasses(t *testing.T) {
	want := map[button.Size]string{
		button.SizeDefault: "h-10 px-4 py-2",
		button.SizeSm:      "h-8 rounded-md px-3",
		button.SizeLg:      "h-12 rounded-md px-8",
		button.SizeIcon:    "size-8",
	}
	for size, classes := range want {
		got, err := button.SizeClasses(size)
		require.NoError(t, err)
		assert.Equal(t, classes, got, size)
	}
}

func TestStructuralClasses_SizeIsOrthogonal(t *testing.T) {
	for _, size := range button.Sizes() {
		sizeClasses, err := button.SizeClasses(size)
		require.NoError(t, err)

		for _, variant := range button.Variants() {
			for _, shape := range button.Shapes() {
				structural, err := button.StructuralClasses(variant, size, shape)
				require.NoError(t, err)
				assert.Contains(t, structural, sizeClasses, "variant=%s size=%s shape=%s", variant, size, shape)
			}
		}
	}
}

func TestStructuralClasses_Order(t *testing.T) {
	structural, err := button.StructuralClasses(button.VariantDefault, button.SizeLg, button.ShapePill)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(structural, "flex items-center justify-center"))
	assert.True(t, strings.HasSuffix(structural, "h-12 rounded-md px-8 rounded-full"))
}

func TestClasses_Idempotent(t *testing.T) {
	props := button.Props{Variant: button.VariantSoft, Size: button.SizeLg, Shape: button.ShapeSquare, Color: button.ColorError, Class: "w-full"}

	first, err := button.Classes(props)
	require.NoError(t, err)
	second, err := button.Classes(props)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestClasses_DefaultFallback(t *testing.T) {
	implicit, err := button.Classes(button.Props{})
	require.NoError(t, err)

	explicit, err := button.Classes(button.Props{
		Variant: button.VariantDefault,
		Size:    button.SizeDefault,
		Shape:   button.ShapeDefault,
		Color:   button.ColorDefault,
	})
	require.NoError(t, err)

	assert.Equal(t, explicit, implicit)
	assert.NotEmpty(t, implicit)
}

func TestClasses_OverridePrecedence(t *testing.T) {
	resolved, err := button.Classes(button.Props{Class: "h-12"})
	require.NoError(t, err)

	tokens := strings.Fields(resolved)
	assert.Contains(t, tokens, "h-12")
	assert.NotContains(t, tokens, "h-10")
	assert.Equal(t, "h-12", tokens[len(tokens)-1])
}

func TestClasses_ClassAttributeIsAnOverride(t *testing.T) {
	resolved, err := button.Classes(button.Props{
		Class:      "mt-2",
		Attributes: map[string]any{"class": "rounded-none"},
	})
	require.NoError(t, err)

	tokens := strings.Fields(resolved)
	assert.Contains(t, tokens, "mt-2")
	assert.Contains(t, tokens, "rounded-none")
	assert.NotContains(t, tokens, "rounded-lg")
}

func TestClasses_OutlineErrorSmallPill(t *testing.T) {
	resolved, err := button.Classes(button.Props{
		Variant: button.VariantOutline,
		Color:   button.ColorError,
		Size:    button.SizeSm,
		Shape:   button.ShapePill,
	})
	require.NoError(t, err)

	tokens := strings.Fields(resolved)

	// Pill radius, small size and the outline error palette
	for _, want := range []string{"rounded-full", "h-8", "px-3", "focus:ring-destructive", "border-destructive/50", "text-destructive", "hover:bg-destructive/10", "hover:text-destructive"} {
		assert.Contains(t, tokens, want)
	}

	// Nothing from other palettes
	for _, unwanted := range []string{"bg-primary", "text-primary", "focus:ring-ring", "bg-destructive", "bg-destructive/10", "text-destructive-foreground", "underline-offset-4", "hover:bg-accent", "border-transparent"} {
		assert.NotContains(t, tokens, unwanted)
	}

	// Radius from size and base is overridden by the shape
	assert.NotContains(t, tokens, "rounded-md")
	assert.NotContains(t, tokens, "rounded-lg")
}

func TestClasses_InvalidOption(t *testing.T) {
	_, err := button.Classes(button.Props{Variant: "destructive"})
	assert.ErrorIs(t, err, button.ErrInvalidOption)

	_, err = button.PaletteClasses(button.VariantDefault, "warning")
	assert.ErrorIs(t, err, button.ErrInvalidOption)

	_, err = button.StructuralClasses("fancy", button.SizeDefault, button.ShapeDefault)
	assert.ErrorIs(t, err, button.ErrInvalidOption)

	_, err = button.ShapeClasses("circle")
	assert.ErrorIs(t, err, button.ErrInvalidOption)
}
