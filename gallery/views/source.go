package views

import (
	"github.com/a-h/templ"

	"github.com/networkteam/buttonkit/button"
)

type SourceProps struct {
	Preview PreviewProps
	// HTML is the rendered markup of the preview.
	HTML string
}

// Source renders a preview next to its highlighted markup.
func Source(props SourceProps) templ.Component {
	return Page("Source",
		button.El("section", templ.Attributes{"class": "space-y-6"},
			optionBadges(props.Preview.Button),
			button.El("div", templ.Attributes{"id": props.Preview.AnchorID(), "class": "rounded-lg border border-neutral-200 p-6"},
				Preview(props.Preview),
			),
			button.El("div", templ.Attributes{"class": "text-sm"}, highlightHTML(props.HTML)),
		),
	)
}
