package button_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/buttonkit/button"
)

func TestParseVariant(t *testing.T) {
	tests := []struct {
		input   string
		want    button.Variant
		wantErr bool
	}{
		{input: "", want: button.VariantDefault},
		{input: "default", want: button.VariantDefault},
		{input: "outline", want: button.VariantOutline},
		{input: " soft ", want: button.VariantSoft},
		{input: "ghost", want: button.VariantGhost},
		{input: "link", want: button.VariantLink},
		{input: "primary", wantErr: true},
		{input: "Outline", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := button.ParseVariant(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, button.ErrInvalidOption)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSizeShapeColor(t *testing.T) {
	size, err := button.ParseSize("sm")
	require.NoError(t, err)
	assert.Equal(t, button.SizeSm, size)

	size, err = button.ParseSize("")
	require.NoError(t, err)
	assert.Equal(t, button.SizeDefault, size)

	_, err = button.ParseSize("xl")
	assert.ErrorIs(t, err, button.ErrInvalidOption)

	shape, err := button.ParseShape("pill")
	require.NoError(t, err)
	assert.Equal(t, button.ShapePill, shape)

	_, err = button.ParseShape("circle")
	assert.ErrorIs(t, err, button.ErrInvalidOption)

	color, err := button.ParseColor("error")
	require.NoError(t, err)
	assert.Equal(t, button.ColorError, color)

	_, err = button.ParseColor("danger")
	assert.ErrorIs(t, err, button.ErrInvalidOption)
}

func TestOptionError(t *testing.T) {
	_, err := button.ParseColor("danger")

	var optErr *button.OptionError
	require.True(t, errors.As(err, &optErr))
	assert.Equal(t, "color", optErr.Option)
	assert.Equal(t, "danger", optErr.Value)
	assert.Equal(t, []string{"default", "error"}, optErr.Allowed)
	assert.Contains(t, err.Error(), `color "danger"`)
}

func TestDomains(t *testing.T) {
	assert.Len(t, button.Variants(), 5)
	assert.Len(t, button.Sizes(), 4)
	assert.Len(t, button.Shapes(), 3)
	assert.Len(t, button.Colors(), 2)

	// Returned slices are copies.
	variants := button.Variants()
	variants[0] = "changed"
	assert.Equal(t, button.VariantDefault, button.Variants()[0])
}

func TestProps_Validate(t *testing.T) {
	assert.NoError(t, button.Props{}.Validate())
	assert.NoError(t, button.Props{Variant: button.VariantLink, Size: button.SizeIcon, Shape: button.ShapeSquare, Color: button.ColorError}.Validate())

	for _, props := range []button.Props{
		{Variant: "primary"},
		{Size: "xl"},
		{Shape: "circle"},
		{Color: "danger"},
	} {
		assert.ErrorIs(t, props.Validate(), button.ErrInvalidOption, "%+v", props)
	}
}
