// Package batch renders buttons described in a YAML file.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/a-h/templ"
	"gopkg.in/yaml.v3"

	"github.com/networkteam/buttonkit/button"
	"github.com/networkteam/buttonkit/internal/validation"
)

// File is a list of button definitions.
//
//	buttons:
//	  - label: Delete
//	    variant: outline
//	    color: error
//	    attributes:
//	      type: submit
type File struct {
	Buttons []Definition `yaml:"buttons" validate:"required,min=1,dive"`
}

// Definition describes one button. Option values are validated like query or flag input.
type Definition struct {
	Label   string `yaml:"label"`
	Variant string `yaml:"variant" validate:"button_variant"`
	Size    string `yaml:"size" validate:"button_size"`
	Shape   string `yaml:"shape" validate:"button_shape"`
	Color   string `yaml:"color" validate:"button_color"`
	Class   string `yaml:"class"`
	// AsChild renders the button as a Tag element (default "a") linking to Href.
	AsChild bool   `yaml:"as_child"`
	Tag     string `yaml:"tag" validate:"omitempty,alphanum,lowercase"`
	Href    string `yaml:"href"`
	// Attributes are passed through. Booleans render as bare attributes.
	Attributes map[string]any `yaml:"attributes"`
}

// Load reads and validates a batch file.
func Load(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("opening batch file: %w", err)
	}
	defer f.Close()

	file, err := Decode(f)
	if err != nil {
		return File{}, fmt.Errorf("batch file %s: %w", path, err)
	}
	return file, nil
}

// Decode reads and validates a batch file.
func Decode(r io.Reader) (File, error) {
	var file File

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("decoding: %w", err)
	}

	if err := validation.Struct(file); err != nil {
		return File{}, err
	}
	return file, nil
}

// Props converts the definition into button props.
func (d Definition) Props() (button.Props, error) {
	var (
		props button.Props
		err   error
	)
	if props.Variant, err = button.ParseVariant(d.Variant); err != nil {
		return props, err
	}
	if props.Size, err = button.ParseSize(d.Size); err != nil {
		return props, err
	}
	if props.Shape, err = button.ParseShape(d.Shape); err != nil {
		return props, err
	}
	if props.Color, err = button.ParseColor(d.Color); err != nil {
		return props, err
	}

	props.Class = d.Class
	props.AsChild = d.AsChild
	props.Attributes = attributes(d.Attributes)

	return props, nil
}

// Component returns the button of the definition.
func (d Definition) Component() (templ.Component, error) {
	props, err := d.Props()
	if err != nil {
		return nil, err
	}

	label := button.Text(d.Label)
	if !d.AsChild {
		return button.Button(props, label), nil
	}

	tag := d.Tag
	if tag == "" {
		tag = "a"
	}
	childAttrs := templ.Attributes{}
	if d.Href != "" {
		childAttrs["href"] = string(templ.URL(d.Href))
	}
	return button.Button(props, button.El(tag, childAttrs, label)), nil
}

// Render writes every button of the file, one per line.
func Render(ctx context.Context, w io.Writer, file File) error {
	for i, def := range file.Buttons {
		component, err := def.Component()
		if err != nil {
			return fmt.Errorf("buttons[%d]: %w", i, err)
		}
		if err := component.Render(ctx, w); err != nil {
			return fmt.Errorf("buttons[%d]: %w", i, err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func attributes(in map[string]any) templ.Attributes {
	if len(in) == 0 {
		return nil
	}

	out := make(templ.Attributes, len(in))
	for key, value := range in {
		switch v := value.(type) {
		case string, bool:
			out[key] = v
		case nil:
			out[key] = true
		default:
			out[key] = fmt.Sprint(v)
		}
	}
	return out
}
