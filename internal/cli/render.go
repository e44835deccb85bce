package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ohler55/ojg/jp"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/pergola/internal/presentation/graph"
	"github.com/aretw0/pergola/pkg/adapters/loam"
	"github.com/aretw0/pergola/pkg/domain"
	"github.com/aretw0/pergola/pkg/trace"
)

// RenderDocs prints the retrieved documents from an artifact file, stdin, or
// a corpus directory.
func RenderDocs(opts RunOptions) error {
	console := newConsole(opts)

	if isCorpusDir(opts.Path) {
		corpus, err := loam.Open(opts.Path)
		if err != nil {
			return err
		}
		docs, err := corpus.Documents(context.Background())
		if err != nil {
			return err
		}
		return console.Documents(docs, opts.MaxDocs)
	}

	rc, format, err := openArtifact(opts)
	if err != nil {
		return err
	}
	defer rc.Close()

	docs, err := trace.ReadDocuments(rc, format)
	if err != nil {
		return err
	}
	return console.Documents(docs, opts.MaxDocs)
}

// RenderResult prints the final answer block of a workflow artifact.
func RenderResult(opts RunOptions) error {
	console := newConsole(opts)

	rc, format, err := openArtifact(opts)
	if err != nil {
		return err
	}
	defer rc.Close()

	results, err := trace.ReadResult(rc, format)
	if err != nil {
		return err
	}
	return console.WorkflowResult(results)
}

// RenderSteps prints the execution trace of a workflow artifact, either as
// numbered step lines or as a Mermaid flowchart.
func RenderSteps(opts RunOptions) error {
	rc, format, err := openArtifact(opts)
	if err != nil {
		return err
	}
	defer rc.Close()

	transitions, err := trace.ReadTransitions(rc, format)
	if err != nil {
		return err
	}

	if opts.Mermaid {
		// Same invariant as the step renderer: every transition needs a label.
		for i, tr := range transitions {
			if tr.Node == "" {
				return fmt.Errorf("step %d: %w", i+1, domain.ErrEmptyTransition)
			}
		}
		fmt.Print(graph.GenerateMermaid(transitions))
		return nil
	}
	return newConsole(opts).WorkflowSteps(transitions)
}

// RenderRun prints every section of a full run artifact in reading order:
// documents, then steps, then the final result.
func RenderRun(opts RunOptions) error {
	console := newConsole(opts)

	rc, format, err := openArtifact(opts)
	if err != nil {
		return err
	}
	defer rc.Close()

	run, err := trace.ReadRun(rc, format)
	if err != nil {
		return err
	}
	return console.Run(run, opts.MaxDocs)
}

// RenderJSON pretty-prints an arbitrary artifact under a banner, optionally
// narrowed by a JSONPath selector.
func RenderJSON(opts RunOptions) error {
	console := newConsole(opts)

	rc, format, err := openArtifact(opts)
	if err != nil {
		return err
	}
	defer rc.Close()

	data, err := decodeAny(rc, format)
	if err != nil {
		return err
	}

	if opts.Select != "" {
		data, err = applySelector(data, opts.Select)
		if err != nil {
			return err
		}
	}
	return console.JSON(data, opts.Title)
}

// decodeAny reads the artifact into a generic value. JSON numbers keep their
// original notation so re-encoding does not reformat them.
func decodeAny(r io.Reader, format trace.Format) (any, error) {
	switch format {
	case trace.FormatYAML:
		var data any
		if err := yaml.NewDecoder(r).Decode(&data); err != nil {
			return nil, fmt.Errorf("invalid yaml artifact: %w", err)
		}
		return data, nil
	case trace.FormatNDJSON:
		return nil, fmt.Errorf("ndjson artifacts have no single document to print")
	default:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		var data any
		if err := dec.Decode(&data); err != nil {
			return nil, fmt.Errorf("invalid json artifact: %w", err)
		}
		return data, nil
	}
}

// applySelector narrows data with a JSONPath expression. A single match is
// unwrapped; multiple matches render as a list.
func applySelector(data any, selector string) (any, error) {
	expr, err := jp.ParseString(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	matches := expr.Get(data)
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("selector %q matched nothing", selector)
	case 1:
		return matches[0], nil
	default:
		return matches, nil
	}
}
