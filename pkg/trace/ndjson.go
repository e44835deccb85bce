package trace

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/aretw0/pergola/pkg/domain"
)

// maxLineSize bounds a single NDJSON line. Document dumps can carry whole
// page bodies on one line, well past bufio.Scanner's 64KB default.
const maxLineSize = 4 << 20

// eachLine calls fn for every non-blank line with its 1-indexed position.
func eachLine(data []byte, fn func(n int, line []byte) error) error {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	n := 0
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		n++
		if err := fn(n, line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan ndjson: %w", err)
	}
	return nil
}

func parseDocumentsNDJSON(data []byte) ([]domain.Document, error) {
	var docs []domain.Document
	err := eachLine(data, func(n int, line []byte) error {
		var doc domain.Document
		if err := json.Unmarshal(line, &doc); err != nil {
			return fmt.Errorf("document line %d: %w", n, err)
		}
		docs = append(docs, doc)
		return nil
	})
	return docs, err
}

func parseResultNDJSON(data []byte) ([]domain.NodeResult, error) {
	var out []domain.NodeResult
	err := eachLine(data, func(n int, line []byte) error {
		entries, err := jsonObjectEntries(line)
		if err != nil {
			return fmt.Errorf("result line %d: %w", n, err)
		}
		pair, err := resultPairFromEntries(entries)
		if err != nil {
			return fmt.Errorf("result line %d: %w", n, err)
		}
		out = append(out, pair)
		return nil
	})
	return out, err
}

func parseTransitionsNDJSON(data []byte) ([]domain.StateTransition, error) {
	var out []domain.StateTransition
	err := eachLine(data, func(n int, line []byte) error {
		entries, err := jsonObjectEntries(line)
		if err != nil {
			return fmt.Errorf("step line %d: %w", n, err)
		}
		out = append(out, transitionFromEntries(entries))
		return nil
	})
	return out, err
}
