package trace

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/aretw0/pergola/pkg/domain"
)

// runShell captures a run artifact's sections without decoding the
// order-sensitive ones. Steps and results stay raw so the ordered walkers
// can process them.
type runShell struct {
	Documents []domain.Document `json:"documents"`
	Steps     json.RawMessage   `json:"steps"`
	Results   json.RawMessage   `json:"results"`
}

// firstByte returns the first non-whitespace byte, or 0 for blank input.
func firstByte(data []byte) byte {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

func parseDocumentsJSON(data []byte) ([]domain.Document, error) {
	switch firstByte(data) {
	case '[':
		var docs []domain.Document
		if err := json.Unmarshal(data, &docs); err != nil {
			return nil, fmt.Errorf("decode documents: %w", err)
		}
		return docs, nil
	case '{':
		entries, err := jsonObjectEntries(data)
		if err != nil {
			return nil, fmt.Errorf("decode documents: %w", err)
		}
		// A single bare document, not a run artifact.
		if !hasRunKeys(entries) {
			var doc domain.Document
			if err := json.Unmarshal(data, &doc); err != nil {
				return nil, fmt.Errorf("decode document: %w", err)
			}
			return []domain.Document{doc}, nil
		}
		run, err := parseRunJSON(data)
		if err != nil {
			return nil, err
		}
		return run.Documents, nil
	default:
		return nil, fmt.Errorf("documents artifact must be a JSON array or object")
	}
}

func parseResultJSON(data []byte) ([]domain.NodeResult, error) {
	switch firstByte(data) {
	case '{':
		entries, err := jsonObjectEntries(data)
		if err != nil {
			return nil, fmt.Errorf("decode result: %w", err)
		}
		if hasRunKeys(entries) {
			run, err := parseRunJSON(data)
			if err != nil {
				return nil, err
			}
			return run.Results, nil
		}
		return resultsFromEntries(entries)
	case '[':
		dec := json.NewDecoder(bytes.NewReader(data))
		if _, err := dec.Token(); err != nil {
			return nil, fmt.Errorf("decode result: %w", err)
		}
		var out []domain.NodeResult
		for dec.More() {
			entries, err := decodeOrderedObject(dec)
			if err != nil {
				return nil, fmt.Errorf("result entry %d: %w", len(out)+1, err)
			}
			pair, err := resultPairFromEntries(entries)
			if err != nil {
				return nil, fmt.Errorf("result entry %d: %w", len(out)+1, err)
			}
			out = append(out, pair)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("result artifact must be a JSON object or array")
	}
}

func parseTransitionsJSON(data []byte) ([]domain.StateTransition, error) {
	switch firstByte(data) {
	case '[':
		dec := json.NewDecoder(bytes.NewReader(data))
		if _, err := dec.Token(); err != nil {
			return nil, fmt.Errorf("decode steps: %w", err)
		}
		var out []domain.StateTransition
		for dec.More() {
			entries, err := decodeOrderedObject(dec)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", len(out)+1, err)
			}
			out = append(out, transitionFromEntries(entries))
		}
		return out, nil
	case '{':
		entries, err := jsonObjectEntries(data)
		if err != nil {
			return nil, fmt.Errorf("decode steps: %w", err)
		}
		if hasRunKeys(entries) {
			run, err := parseRunJSON(data)
			if err != nil {
				return nil, err
			}
			return run.Transitions, nil
		}
		// A single transition object.
		return []domain.StateTransition{transitionFromEntries(entries)}, nil
	default:
		return nil, fmt.Errorf("steps artifact must be a JSON array or object")
	}
}

func parseRunJSON(data []byte) (domain.Run, error) {
	var shell runShell
	if err := json.Unmarshal(data, &shell); err != nil {
		return domain.Run{}, fmt.Errorf("decode run artifact: %w", err)
	}

	run := domain.Run{Documents: shell.Documents}

	if len(shell.Steps) > 0 && !bytes.Equal(bytes.TrimSpace(shell.Steps), []byte("null")) {
		steps, err := parseTransitionsJSON(shell.Steps)
		if err != nil {
			return domain.Run{}, fmt.Errorf("run steps: %w", err)
		}
		run.Transitions = steps
	}
	if len(shell.Results) > 0 && !bytes.Equal(bytes.TrimSpace(shell.Results), []byte("null")) {
		results, err := parseResultJSON(shell.Results)
		if err != nil {
			return domain.Run{}, fmt.Errorf("run results: %w", err)
		}
		run.Results = results
	}
	return run, nil
}
