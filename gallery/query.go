package gallery

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/networkteam/buttonkit/button"
	"github.com/networkteam/buttonkit/gallery/views"
)

// ParsePreview reads a preview from URL query parameters.
// Missing options use their defaults; unknown values fail with button.ErrInvalidOption.
func ParsePreview(q url.Values) (views.PreviewProps, error) {
	var (
		preview views.PreviewProps
		err     error
	)

	if preview.Button.Variant, err = button.ParseVariant(q.Get("variant")); err != nil {
		return preview, err
	}
	if preview.Button.Size, err = button.ParseSize(q.Get("size")); err != nil {
		return preview, err
	}
	if preview.Button.Shape, err = button.ParseShape(q.Get("shape")); err != nil {
		return preview, err
	}
	if preview.Button.Color, err = button.ParseColor(q.Get("color")); err != nil {
		return preview, err
	}

	if asChild := q.Get("as_child"); asChild != "" {
		preview.Button.AsChild, err = strconv.ParseBool(asChild)
		if err != nil {
			return preview, fmt.Errorf("invalid as_child %q: %w", asChild, err)
		}
	}

	preview.Button.Class = q.Get("class")
	preview.Label = q.Get("label")
	preview.Href = q.Get("href")

	return preview, nil
}
