package views

import (
	"github.com/a-h/templ"

	"github.com/networkteam/buttonkit/button"
	"github.com/networkteam/buttonkit/internal/classes"
)

type BadgeVariant string

const (
	BadgeVariantSecondary BadgeVariant = "secondary"
	BadgeVariantError     BadgeVariant = "error"
	BadgeVariantOutline   BadgeVariant = "outline"
)

type BadgeProps struct {
	Variant BadgeVariant
	Class   string
}

func badgeClasses(props BadgeProps) string {
	var variantClasses string

	switch props.Variant {
	case BadgeVariantSecondary:
		variantClasses = "border-transparent bg-neutral-200 text-black"
	case BadgeVariantError:
		variantClasses = "border-transparent bg-red-500 text-white"
	case BadgeVariantOutline:
		variantClasses = "border-neutral-300 text-neutral-700"
	default: // DefaultBadgeVariant
		variantClasses = "border-transparent bg-black text-white"
	}

	return classes.Merge(
		"inline-flex items-center rounded-full border px-2.5 py-0.5 text-xs font-semibold transition-colors font-mono",
		variantClasses,
		props.Class,
	)
}

// Badge renders a small label.
func Badge(props BadgeProps, text string) templ.Component {
	return button.El("span", templ.Attributes{"class": badgeClasses(props)}, button.Text(text))
}

// optionBadges labels a gallery cell with its variant and color.
func optionBadges(props button.Props) templ.Component {
	colorVariant := BadgeVariantSecondary
	if props.Color == button.ColorError {
		colorVariant = BadgeVariantError
	}

	return button.El("div", templ.Attributes{"class": "flex gap-1"},
		Badge(BadgeProps{Variant: BadgeVariantOutline}, string(props.Variant)),
		Badge(BadgeProps{Variant: colorVariant}, string(props.Color)),
	)
}
