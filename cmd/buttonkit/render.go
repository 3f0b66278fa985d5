package main

import (
	"bytes"
	"io"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/spf13/cobra"

	"github.com/networkteam/buttonkit/internal/batch"
)

type renderFlags struct {
	file      string
	highlight bool
	button    batch.Definition
	attrs     map[string]string
}

func newRenderCmd() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render buttons as HTML",
		Long: `Render a single button configured by flags, or every button of a YAML batch file.

Example:
  buttonkit render --variant outline --color error --size sm --shape pill --label Delete`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := flags.batchFile()
			if err != nil {
				return err
			}
			return runRender(cmd, file, flags.highlight)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "YAML batch file with a list of buttons")
	cmd.Flags().BoolVar(&flags.highlight, "highlight", false, "Syntax highlight the output for terminals")
	cmd.Flags().StringVar(&flags.button.Label, "label", "Button", "Button text")
	cmd.Flags().StringVar(&flags.button.Variant, "variant", "", "Variant: default, outline, soft, ghost, link")
	cmd.Flags().StringVar(&flags.button.Size, "size", "", "Size: default, sm, lg, icon")
	cmd.Flags().StringVar(&flags.button.Shape, "shape", "", "Shape: default, square, pill")
	cmd.Flags().StringVar(&flags.button.Color, "color", "", "Color: default, error")
	cmd.Flags().StringVar(&flags.button.Class, "class", "", "Additional classes, winning over resolved ones")
	cmd.Flags().BoolVar(&flags.button.AsChild, "as-child", false, "Render the button as a link instead of a <button>")
	cmd.Flags().StringVar(&flags.button.Href, "href", "", "Link target when rendering as child")
	cmd.Flags().StringToStringVar(&flags.attrs, "attr", nil, "Passthrough attributes, e.g. --attr type=submit")

	return cmd
}

func (f *renderFlags) batchFile() (batch.File, error) {
	if f.file != "" {
		return batch.Load(f.file)
	}

	def := f.button
	if len(f.attrs) > 0 {
		def.Attributes = make(map[string]any, len(f.attrs))
		for key, value := range f.attrs {
			def.Attributes[key] = value
		}
	}
	return batch.File{Buttons: []batch.Definition{def}}, nil
}

func runRender(cmd *cobra.Command, file batch.File, highlight bool) error {
	if !highlight {
		return batch.Render(cmd.Context(), cmd.OutOrStdout(), file)
	}

	var buf bytes.Buffer
	if err := batch.Render(cmd.Context(), &buf, file); err != nil {
		return err
	}
	return highlightHTML(cmd.OutOrStdout(), buf.String())
}

func highlightHTML(w io.Writer, source string) error {
	return quick.Highlight(w, source, "html", "terminal256", "monokai")
}
