package cli

// RunOptions carries the configuration shared by the render commands.
type RunOptions struct {
	Path      string // artifact file, corpus directory, or "-" for stdin
	MaxDocs   int    // cap on rendered document blocks, 0 renders all
	Title     string // banner title for the json command
	Select    string // JSONPath filter for the json command
	ForceYAML bool   // treat input as YAML regardless of extension
	Markdown  bool   // render answers and document content through glamour
	Sanitize  bool   // strip control sequences from rendered content
	Deltas    bool   // annotate steps with state deltas
	Mermaid   bool   // emit the trace as a Mermaid flowchart instead of steps
	Debug     bool   // verbose diagnostics on stderr
	Plain     bool   // no banner or styling even on a terminal

	// Watch mode
	Addr string // redis address of the step feed
	Key  string // redis list key, empty means the default
}
