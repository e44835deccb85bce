/*
Package pergola renders the artifacts of agentic retrieval workflows (retrieved documents, state transitions, and final answers) as plain, diff-friendly console output.

It is the presentation half of a pipeline it deliberately knows nothing about: the retrieval component and the workflow engine that produce these artifacts are consumed as opaque inputs. Pergola only formats and writes.

# Concept

Everything goes through a Console, a stateless set of print operations over one output stream. Each operation is a bounded sequence of line writes: no buffering, no color or markup beyond plain separators, no blocking. Output is meant to be captured, diffed, and read in transcripts, so the geometry (rule widths, preview limits) is fixed rather than configurable.

# Key Features

  - Stateless Operations: every call is self-contained; interleave them freely.
  - Bounded Output: document previews are capped, so a hostile or huge passage cannot flood a transcript.
  - Explicit Ordering: results and transitions are ordered slices, never maps, so "first record" and "step 3" mean what they say.
  - Pluggable Body Rendering: an optional ContentRenderer (e.g. markdown to ANSI) applies to content only, never to structural lines.

# Usage

	package main

	import (
		"log"

		"github.com/aretw0/pergola"
		"github.com/aretw0/pergola/pkg/domain"
	)

	func main() {
		console := pergola.NewConsole(nil) // nil writer = os.Stdout

		docs := []domain.Document{
			{
				PageContent: "Agents decompose tasks into steps...",
				Metadata:    map[string]any{"source": "planning.md"},
			},
		}
		if err := console.Documents(docs, 3); err != nil {
			log.Fatal(err)
		}

		steps := []domain.StateTransition{
			{Node: "retrieve"},
			{Node: "generate"},
		}
		if err := console.WorkflowSteps(steps); err != nil {
			log.Fatal(err)
		}
	}
*/
package pergola
