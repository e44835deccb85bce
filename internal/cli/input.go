package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/aretw0/pergola/pkg/trace"
)

// openArtifact resolves the configured path into a reader plus the format to
// decode. "-" (or an empty path) selects stdin, which is treated as JSON
// unless --yaml forces otherwise.
func openArtifact(opts RunOptions) (io.ReadCloser, trace.Format, error) {
	if opts.Path == "" || opts.Path == "-" {
		// Reading a terminal would block forever waiting for input nobody
		// plans to type.
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, 0, fmt.Errorf("no artifact on stdin (pass a file path or pipe input)")
		}
		format := trace.FormatJSON
		if opts.ForceYAML {
			format = trace.FormatYAML
		}
		return io.NopCloser(os.Stdin), format, nil
	}

	f, err := os.Open(opts.Path)
	if err != nil {
		return nil, 0, fmt.Errorf("cannot open artifact: %w", err)
	}
	format := trace.DetectFormat(opts.Path)
	if opts.ForceYAML {
		format = trace.FormatYAML
	}
	return f, format, nil
}

// isCorpusDir reports whether the path points at a directory of documents
// rather than a single artifact file.
func isCorpusDir(path string) bool {
	if path == "" || path == "-" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
