package trace

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/aretw0/pergola/pkg/domain"
)

// orderedEntry is one key of a mapping in document order. Decoders build
// these instead of maps wherever "first key" carries meaning.
type orderedEntry struct {
	key   string
	value any
}

// decodeOrderedObject consumes one JSON object from the decoder, preserving
// key order. The decoder must be positioned at the opening brace.
func decodeOrderedObject(dec *json.Decoder) ([]orderedEntry, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	var entries []orderedEntry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected key token %v", keyTok)
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("decode value of %q: %w", key, err)
		}
		entries = append(entries, orderedEntry{key: key, value: value})
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return entries, nil
}

// jsonObjectEntries decodes a standalone JSON object from raw bytes.
func jsonObjectEntries(data []byte) ([]orderedEntry, error) {
	return decodeOrderedObject(json.NewDecoder(bytes.NewReader(data)))
}

func findString(entries []orderedEntry, key string) (string, bool) {
	for _, e := range entries {
		if e.key == key {
			s, ok := e.value.(string)
			return s, ok
		}
	}
	return "", false
}

func findMap(entries []orderedEntry, key string) map[string]any {
	for _, e := range entries {
		if e.key == key {
			m, _ := asStringMap(e.value)
			return m
		}
	}
	return nil
}

// asStringMap coerces a decoded mapping value. YAML decoders occasionally
// produce map[any]any for exotic keys; those are stringified rather than
// rejected.
func asStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprintf("%v", k)] = val
		}
		return out, true
	case nil:
		return nil, true
	default:
		return nil, false
	}
}

// hasRunKeys reports whether a mapping looks like a sectioned run artifact
// rather than a node-keyed payload.
func hasRunKeys(entries []orderedEntry) bool {
	for _, e := range entries {
		switch e.key {
		case "documents", "steps", "results":
			return true
		}
	}
	return false
}

// transitionFromEntries converts one decoded mapping into a transition.
// The explicit {"node": "...", "state": {...}} pair form wins when the node
// key holds a string; otherwise the mapping's first key names the node and
// its value is the state snapshot. An empty mapping yields an unlabeled
// transition, which renderers reject.
func transitionFromEntries(entries []orderedEntry) domain.StateTransition {
	if node, ok := findString(entries, "node"); ok {
		return domain.StateTransition{Node: node, State: findMap(entries, "state")}
	}
	if len(entries) == 0 {
		return domain.StateTransition{}
	}
	state, _ := asStringMap(entries[0].value)
	return domain.StateTransition{Node: entries[0].key, State: state}
}

// resultsFromEntries converts a node-keyed mapping into ordered records.
func resultsFromEntries(entries []orderedEntry) ([]domain.NodeResult, error) {
	out := make([]domain.NodeResult, 0, len(entries))
	for _, e := range entries {
		m, ok := asStringMap(e.value)
		if !ok {
			return nil, fmt.Errorf("result record for %q is not a mapping", e.key)
		}
		rec, err := DecodeRecord(m)
		if err != nil {
			return nil, fmt.Errorf("record %q: %w", e.key, err)
		}
		out = append(out, domain.NodeResult{Node: e.key, Record: rec})
	}
	return out, nil
}

// resultPairFromEntries converts one element of an explicit pair array.
func resultPairFromEntries(entries []orderedEntry) (domain.NodeResult, error) {
	if node, ok := findString(entries, "node"); ok {
		rec, err := DecodeRecord(findMap(entries, "record"))
		if err != nil {
			return domain.NodeResult{}, fmt.Errorf("record %q: %w", node, err)
		}
		return domain.NodeResult{Node: node, Record: rec}, nil
	}
	if len(entries) == 0 {
		return domain.NodeResult{}, fmt.Errorf("result entry is an empty mapping")
	}
	m, ok := asStringMap(entries[0].value)
	if !ok {
		return domain.NodeResult{}, fmt.Errorf("result record for %q is not a mapping", entries[0].key)
	}
	rec, err := DecodeRecord(m)
	if err != nil {
		return domain.NodeResult{}, fmt.Errorf("record %q: %w", entries[0].key, err)
	}
	return domain.NodeResult{Node: entries[0].key, Record: rec}, nil
}
