package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/networkteam/buttonkit/button"
)

// Section is a group of gallery cells sharing size and shape.
type Section struct {
	Title string
	Cells []PreviewProps
}

type IndexProps struct {
	Sections []Section
}

// Index renders the gallery overview.
func Index(props IndexProps) templ.Component {
	sections := make([]templ.Component, 0, len(props.Sections))
	for _, section := range props.Sections {
		sections = append(sections, sectionView(section))
	}
	return Page("", sections...)
}

func sectionView(section Section) templ.Component {
	cells := make([]templ.Component, 0, len(section.Cells))
	for _, cell := range section.Cells {
		cells = append(cells, cellView(cell))
	}

	return button.El("section", templ.Attributes{"class": "space-y-4"},
		button.El("h2", templ.Attributes{"class": "text-base font-semibold"}, button.Text(section.Title)),
		button.El("div", templ.Attributes{"class": "grid grid-cols-2 gap-4 md:grid-cols-5"}, cells...),
	)
}

func cellView(cell PreviewProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return button.El("div", templ.Attributes{
			"id":    cell.AnchorID(),
			"class": "flex flex-col items-start gap-3 rounded-lg border border-neutral-200 p-3",
		},
			optionBadges(cell.Button),
			Preview(cell),
			sourceLink(ctx, cell),
		).Render(ctx, w)
	})
}

func sourceLink(ctx context.Context, cell PreviewProps) templ.Component {
	return button.Button(button.Props{
		Variant: button.VariantLink,
		Size:    button.SizeSm,
		Class:   "h-auto px-0 text-xs",
		AsChild: true,
	}, button.A(link(ctx, "/source?"+cell.Query().Encode()), button.Text("Source")))
}
