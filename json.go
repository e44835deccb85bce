package pergola

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DefaultJSONTitle labels JSON blocks when the caller supplies no title.
const DefaultJSONTitle = "JSON Data"

// jsonIndent is the indentation step for pretty-printed values.
const jsonIndent = "  "

// JSON renders data as an indented JSON block between a title banner and a
// trailing separator. An empty title falls back to DefaultJSONTitle.
// Non-ASCII characters are written verbatim; nothing is escaped beyond what
// JSON itself requires, so the printed body re-parses to the original value.
func (c *Console) JSON(data any, title string) error {
	if title == "" {
		title = DefaultJSONTitle
	}

	// Encode before writing the banner so a marshal failure produces no
	// partial block.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	if err := c.TitleBanner(title); err != nil {
		return err
	}
	if _, err := c.out.Write(buf.Bytes()); err != nil {
		return err
	}
	return c.Separator(DefaultSeparatorWidth)
}
