package gallery

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/networkteam/buttonkit/button"
	"github.com/networkteam/buttonkit/gallery/views"
)

// Sections returns one gallery section per size and shape, each holding every
// variant and color combination, followed by a section of composed links.
func Sections() []views.Section {
	sections := lo.FlatMap(button.Sizes(), func(size button.Size, _ int) []views.Section {
		return lo.Map(button.Shapes(), func(shape button.Shape, _ int) views.Section {
			return views.Section{
				Title: fmt.Sprintf("Size %s, shape %s", size, shape),
				Cells: cells(func(variant button.Variant, color button.Color) views.PreviewProps {
					return views.PreviewProps{Button: button.Props{Variant: variant, Size: size, Shape: shape, Color: color}}
				}),
			}
		})
	})

	return append(sections, views.Section{
		Title: "Composed links",
		Cells: cells(func(variant button.Variant, color button.Color) views.PreviewProps {
			return views.PreviewProps{
				Button: button.Props{Variant: variant, Size: button.SizeDefault, Shape: button.ShapeDefault, Color: color, AsChild: true},
				Label:  "Link",
				Href:   "#",
			}
		}),
	})
}

func cells(build func(button.Variant, button.Color) views.PreviewProps) []views.PreviewProps {
	return lo.FlatMap(button.Variants(), func(variant button.Variant, _ int) []views.PreviewProps {
		return lo.Map(button.Colors(), func(color button.Color, _ int) views.PreviewProps {
			return build(variant, color)
		})
	})
}
