package topics

import (
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/projup/projup/pkg/logging"
)

// Renderer formats the content of a topic file for the terminal. ext is the
// file extension, including the dot.
type Renderer interface {
	Render(content string, ext string) string
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(content, ext string) string

func (f RendererFunc) Render(content, ext string) string {
	return f(content, ext)
}

// Plain shows topics as written.
var Plain Renderer = RendererFunc(func(content, _ string) string { return content })

// GlamourRenderer renders markdown topics with glamour. Other formats are
// returned unchanged.
type GlamourRenderer struct {
	// Style is "auto" or a glamour standard style such as "dark", "light"
	// or "notty"
	Style string
	// Width wraps lines when positive
	Width int

	once sync.Once
	term *glamour.TermRenderer
}

// NewGlamourRenderer returns a renderer picking its style from the terminal.
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

func (r *GlamourRenderer) init() {
	logger := logging.GetLogger("topics.glamour")

	options := []glamour.TermRendererOption{}
	if r.Style == "" || r.Style == "auto" {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStandardStyle(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	term, err := glamour.NewTermRenderer(options...)
	if err != nil {
		logger.Warn().Err(err).Str("style", r.Style).Msg("markdown renderer unavailable")
		return
	}
	r.term = term
}

// Render implements Renderer. On any rendering error the raw content is
// returned.
func (r *GlamourRenderer) Render(content string, ext string) string {
	if ext != ".md" {
		return content
	}

	r.once.Do(r.init)
	if r.term == nil {
		return content
	}

	rendered, err := r.term.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
