package topics

import "strings"

// Renderer turns raw topic content into what gets printed. ext is the
// topic file extension, including the dot.
type Renderer interface {
	Render(content string, ext string) string
}

// RendererFunc adapts a function to the Renderer interface
type RendererFunc func(content string, ext string) string

// Render calls f
func (f RendererFunc) Render(content string, ext string) string {
	return f(content, ext)
}

// PlainRenderer prints topics as written, ending them with exactly one newline
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, ext string) string {
	trimmed := strings.TrimRight(content, " \t\r\n")
	if trimmed == "" {
		return ""
	}
	return trimmed + "\n"
}
