package pergola

import (
	"fmt"

	"github.com/aretw0/pergola/pkg/domain"
)

// ContentPreviewLimit is how many characters of a document body are printed
// before the remainder is elided.
const ContentPreviewLimit = 500

// ellipsis marks elided document content.
const ellipsis = "..."

// Documents renders up to max retrieved documents under a "Documents" banner,
// each as a numbered block with its source line and a bounded content
// preview. When max is zero or negative every document is rendered.
// Documents beyond the cap are dropped silently, not summarized.
func (c *Console) Documents(docs []domain.Document, max int) error {
	if max > 0 && len(docs) > max {
		docs = docs[:max]
	}

	if err := c.TitleBanner("Documents"); err != nil {
		return err
	}

	for i, doc := range docs {
		if _, err := fmt.Fprintf(c.out, "Document %d:\n", i+1); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(c.out, "Source: %s\n", doc.Source()); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(c.out, "Content:"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(c.out, c.renderContent(preview(doc.PageContent))); err != nil {
			return err
		}
		if err := c.Separator(documentRuleWidth); err != nil {
			return err
		}
	}
	return nil
}

// preview bounds content at ContentPreviewLimit characters, appending an
// ellipsis when anything was cut. The limit counts runes, not bytes, so
// multi-byte text is never split mid-character.
func preview(content string) string {
	runes := []rune(content)
	if len(runes) <= ContentPreviewLimit {
		return content
	}
	return string(runes[:ContentPreviewLimit]) + ellipsis
}
