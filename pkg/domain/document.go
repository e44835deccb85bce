package domain

import "fmt"

// MetadataSource is the metadata key that carries a document's origin.
const MetadataSource = "source"

// SourceUnknown is the fallback printed when a document has no source
// metadata.
const SourceUnknown = "Unknown"

// Document is a retrieved text passage plus whatever metadata the
// retrieval pipeline attached to it.
type Document struct {
	// PageContent is the passage text. It may be arbitrarily long;
	// renderers are responsible for bounding it.
	PageContent string `json:"page_content" yaml:"page_content"`

	// Metadata holds free-form key-value pairs (source, title, score...).
	// Keys pergola does not recognize are preserved, not rejected.
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Source returns the document's origin from metadata, or SourceUnknown
// when the key is absent. Non-string values are formatted rather than
// rejected, since retrievers disagree on how they encode origins.
func (d Document) Source() string {
	v, ok := d.Metadata[MetadataSource]
	if !ok {
		return SourceUnknown
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
