// Package ui renders command results as styled terminal output, plain
// text, YAML or TOML.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
	"github.com/projup/projup/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Result is implemented by everything a command prints. Text and terminal
// output go through Render; YAML and TOML marshal the value itself.
type Result interface {
	Render(s Styles) string
}

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders a command result
	RenderResult(result Result) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return newStyledRenderer(output, lipgloss.NewRenderer(output)), nil
	case FormatText:
		return newStyledRenderer(output, plainRenderer()), nil
	case FormatYAML:
		return &yamlRenderer{w: output}, nil
	case FormatTOML:
		return &tomlRenderer{w: output}, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}

type styledRenderer struct {
	w      io.Writer
	styles Styles
}

func newStyledRenderer(w io.Writer, r *lipgloss.Renderer) *styledRenderer {
	return &styledRenderer{w: w, styles: NewStyles(r)}
}

func (r *styledRenderer) RenderResult(result Result) error {
	_, err := fmt.Fprint(r.w, result.Render(r.styles))
	return err
}

func (r *styledRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.w, msg)
	return err
}

type yamlRenderer struct {
	w io.Writer
}

func (r *yamlRenderer) RenderResult(result Result) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode yaml")
	}
	return enc.Close()
}

func (r *yamlRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintf(r.w, "# %s\n", msg)
	return err
}

type tomlRenderer struct {
	w io.Writer
}

func (r *tomlRenderer) RenderResult(result Result) error {
	if err := toml.NewEncoder(r.w).Encode(result); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode toml")
	}
	return nil
}

func (r *tomlRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintf(r.w, "# %s\n", msg)
	return err
}
