package loam

// DocMetadata is the frontmatter pergola understands on corpus files.
// It uses "mapstructure" tags to match standard frontmatter/YAML keys.
// Unrecognized keys land in Extra and are carried through to the rendered
// document untouched.
type DocMetadata struct {
	// Source is the passage's origin (URL, file path, collection name).
	Source string `json:"source" mapstructure:"source"`

	// Title is an optional human label; it never replaces Source.
	Title string `json:"title,omitempty" mapstructure:"title"`

	// Score is the retrieval score the pipeline assigned, when it kept one.
	Score float64 `json:"score,omitempty" mapstructure:"score"`

	// Tags are free-form labels for corpus curation.
	Tags []string `json:"tags,omitempty" mapstructure:"tags"`

	// Extra collects every remaining frontmatter key.
	Extra map[string]any `json:"-" mapstructure:",remain"`
}
