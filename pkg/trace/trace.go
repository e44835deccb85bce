package trace

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aretw0/pergola/pkg/domain"
)

// Format identifies an artifact encoding.
type Format int

const (
	// FormatJSON is a single JSON document (the default).
	FormatJSON Format = iota
	// FormatNDJSON is newline-delimited JSON, one value per line.
	FormatNDJSON
	// FormatYAML is a single YAML document.
	FormatYAML
)

// String implements fmt.Stringer for log output.
func (f Format) String() string {
	switch f {
	case FormatNDJSON:
		return "ndjson"
	case FormatYAML:
		return "yaml"
	default:
		return "json"
	}
}

// DetectFormat guesses an artifact's encoding from its file name.
// Unrecognized extensions fall back to JSON.
func DetectFormat(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ndjson", ".jsonl":
		return FormatNDJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ReadDocuments decodes a retrieved-document dump. JSON input may be a
// top-level array of documents, a single document object, or a full run
// artifact (its documents section is taken).
func ReadDocuments(r io.Reader, f Format) ([]domain.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	switch f {
	case FormatNDJSON:
		return parseDocumentsNDJSON(data)
	case FormatYAML:
		return parseDocumentsYAML(data)
	default:
		return parseDocumentsJSON(data)
	}
}

// ReadResult decodes a workflow result set. JSON input may be a mapping
// keyed by node name (key order preserved), an array of explicit
// (node, record) pairs, or a full run artifact.
func ReadResult(r io.Reader, f Format) ([]domain.NodeResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	switch f {
	case FormatNDJSON:
		return parseResultNDJSON(data)
	case FormatYAML:
		return parseResultYAML(data)
	default:
		return parseResultJSON(data)
	}
}

// ReadTransitions decodes a state-transition log. JSON input may be an array
// of transitions (single-key mappings or explicit pairs), a single
// transition object, or a full run artifact.
func ReadTransitions(r io.Reader, f Format) ([]domain.StateTransition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	switch f {
	case FormatNDJSON:
		return parseTransitionsNDJSON(data)
	case FormatYAML:
		return parseTransitionsYAML(data)
	default:
		return parseTransitionsJSON(data)
	}
}

// ReadRun decodes a complete run artifact with its documents, steps, and
// results sections. NDJSON has no way to carry the sectioned shape and is
// rejected.
func ReadRun(r io.Reader, f Format) (domain.Run, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return domain.Run{}, fmt.Errorf("read artifact: %w", err)
	}
	switch f {
	case FormatNDJSON:
		return domain.Run{}, fmt.Errorf("run artifacts cannot be ndjson; pass the stream to the steps reader instead")
	case FormatYAML:
		return parseRunYAML(data)
	default:
		return parseRunJSON(data)
	}
}

// ParseTransition decodes one transition value: a single-key mapping like
// {"retrieve": {...}} or an explicit {"node": "...", "state": {...}} pair.
// This is the line-level decoder used by live feeds.
func ParseTransition(data []byte) (domain.StateTransition, error) {
	entries, err := jsonObjectEntries(data)
	if err != nil {
		return domain.StateTransition{}, fmt.Errorf("parse transition: %w", err)
	}
	return transitionFromEntries(entries), nil
}
