package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a markdown renderer backed by glamour, suitable for
// the Console's WithRenderer option. Answers and document content pass
// through it before printing.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // detect light/dark background
	)
	if err != nil {
		// Fall back to plain text rather than failing the whole view.
		return func(content string) (string, error) {
			return content, nil
		}
	}

	return func(content string) (string, error) {
		return r.Render(content)
	}
}
