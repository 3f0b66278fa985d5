package views

import (
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"github.com/gofrs/uuid"

	"github.com/networkteam/buttonkit/button"
)

// anchorNamespace scopes the name based UUIDs of gallery anchors.
var anchorNamespace = uuid.NewV5(uuid.NamespaceURL, "https://github.com/networkteam/buttonkit/gallery")

// PreviewProps describes one button shown in the gallery.
type PreviewProps struct {
	Button button.Props
	// Label is the button text, "Button" if empty.
	Label string
	// Href is the link target of a composed preview, "#" if empty.
	Href string
}

// Query encodes the preview as URL query parameters understood by the gallery handler.
func (p PreviewProps) Query() url.Values {
	q := url.Values{}
	q.Set("variant", string(p.Button.Variant))
	q.Set("size", string(p.Button.Size))
	q.Set("shape", string(p.Button.Shape))
	q.Set("color", string(p.Button.Color))
	if p.Button.Class != "" {
		q.Set("class", p.Button.Class)
	}
	if p.Button.AsChild {
		q.Set("as_child", strconv.FormatBool(true))
	}
	if p.Label != "" {
		q.Set("label", p.Label)
	}
	if p.Href != "" {
		q.Set("href", p.Href)
	}
	return q
}

// AnchorID is an element id that stays the same for the same preview across renders.
func (p PreviewProps) AnchorID() string {
	return "btn-" + uuid.NewV5(anchorNamespace, p.Query().Encode()).String()
}

func (p PreviewProps) label() string {
	if p.Label != "" {
		return p.Label
	}
	if p.Button.Size == button.SizeIcon {
		return "★"
	}
	return "Button"
}

// Preview renders the button of a preview. Composed previews render as a link.
func Preview(p PreviewProps) templ.Component {
	if !p.Button.AsChild {
		return button.Button(p.Button, button.Text(p.label()))
	}

	href := p.Href
	if href == "" {
		href = "#"
	}
	return button.Button(p.Button, button.A(href, button.Text(p.label())))
}
