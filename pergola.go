package pergola

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Rule and banner geometry. The widths are deliberately fixed, not
// configurable: every artifact rendered anywhere should line up in a diff.
const (
	// DefaultSeparatorWidth is the rule width used by banners and JSON blocks.
	DefaultSeparatorWidth = 50

	// documentRuleWidth is the narrower rule closing each document block.
	documentRuleWidth = 30

	// ruleChar is the glyph horizontal rules are drawn with.
	ruleChar = "-"
)

// ContentRenderer transforms body content before it is written.
// This allows for TUI rendering (markdown to ANSI) without coupling the core
// package. Structural lines (banners, labels, rules) never pass through it.
type ContentRenderer func(string) (string, error)

// Console renders workflow artifacts as plain text lines.
//
// All methods write complete lines to the configured writer and return the
// first write error encountered. A Console is stateless between calls; it is
// safe to interleave methods in any order.
type Console struct {
	out      io.Writer
	renderer ContentRenderer
	sanitize bool
	deltas   bool
}

// Option defines a functional option for configuring a Console.
type Option func(*Console)

// WithRenderer sets a content renderer applied to document bodies and
// generated answers.
func WithRenderer(r ContentRenderer) Option {
	return func(c *Console) {
		c.renderer = r
	}
}

// WithSanitize strips terminal control sequences from body content before
// printing. Off by default: content is normally reproduced verbatim.
func WithSanitize() Option {
	return func(c *Console) {
		c.sanitize = true
	}
}

// WithStateDeltas annotates each rendered step with the state keys it added,
// modified, or removed, computed against the previous step's snapshot.
func WithStateDeltas() Option {
	return func(c *Console) {
		c.deltas = true
	}
}

// NewConsole creates a Console writing to w. A nil writer defaults to
// os.Stdout.
func NewConsole(w io.Writer, opts ...Option) *Console {
	if w == nil {
		w = os.Stdout
	}
	c := &Console{out: w}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Separator writes a horizontal rule of the given width followed by a
// newline. Widths at or below zero produce a bare newline.
func (c *Console) Separator(width int) error {
	if width < 0 {
		width = 0
	}
	_, err := fmt.Fprintln(c.out, strings.Repeat(ruleChar, width))
	return err
}

// TitleBanner writes a three-line banner: a rule, the upper-cased title
// indented by two spaces, and a closing rule. Both rules use
// DefaultSeparatorWidth.
func (c *Console) TitleBanner(title string) error {
	if err := c.Separator(DefaultSeparatorWidth); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(c.out, "  %s \n", strings.ToUpper(title)); err != nil {
		return err
	}
	return c.Separator(DefaultSeparatorWidth)
}

// renderContent applies the optional sanitizer and renderer to body text.
// A renderer failure falls back to the unrendered text rather than dropping
// output.
func (c *Console) renderContent(s string) string {
	if c.sanitize {
		s = scrubControl(s)
	}
	if c.renderer != nil {
		if out, err := c.renderer(s); err == nil {
			return strings.TrimRight(out, "\n")
		}
	}
	return s
}
