package trace

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/pergola/pkg/domain"
)

// yamlRoot parses data and unwraps the document node. yaml.Node is used
// instead of plain unmarshalling because mapping nodes keep their key order.
func yamlRoot(data []byte) (*yaml.Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, fmt.Errorf("empty yaml document")
		}
		node = node.Content[0]
	}
	return node, nil
}

func yamlKind(k yaml.Kind) string {
	switch k {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}

// yamlMappingEntries walks a mapping node in document order.
func yamlMappingEntries(node *yaml.Node) ([]orderedEntry, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected yaml mapping, got %s", yamlKind(node.Kind))
	}
	entries := make([]orderedEntry, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		var value any
		if err := node.Content[i+1].Decode(&value); err != nil {
			return nil, fmt.Errorf("decode value of %q: %w", key, err)
		}
		entries = append(entries, orderedEntry{key: key, value: value})
	}
	return entries, nil
}

func parseDocumentsYAML(data []byte) ([]domain.Document, error) {
	root, err := yamlRoot(data)
	if err != nil {
		return nil, err
	}
	switch root.Kind {
	case yaml.SequenceNode:
		var docs []domain.Document
		if err := root.Decode(&docs); err != nil {
			return nil, fmt.Errorf("decode documents: %w", err)
		}
		return docs, nil
	case yaml.MappingNode:
		entries, err := yamlMappingEntries(root)
		if err != nil {
			return nil, err
		}
		if !hasRunKeys(entries) {
			var doc domain.Document
			if err := root.Decode(&doc); err != nil {
				return nil, fmt.Errorf("decode document: %w", err)
			}
			return []domain.Document{doc}, nil
		}
		run, err := parseRunYAMLNode(root)
		if err != nil {
			return nil, err
		}
		return run.Documents, nil
	default:
		return nil, fmt.Errorf("documents artifact must be a yaml sequence or mapping, got %s", yamlKind(root.Kind))
	}
}

func parseResultYAML(data []byte) ([]domain.NodeResult, error) {
	root, err := yamlRoot(data)
	if err != nil {
		return nil, err
	}
	switch root.Kind {
	case yaml.MappingNode:
		entries, err := yamlMappingEntries(root)
		if err != nil {
			return nil, err
		}
		if hasRunKeys(entries) {
			run, err := parseRunYAMLNode(root)
			if err != nil {
				return nil, err
			}
			return run.Results, nil
		}
		return resultsFromEntries(entries)
	case yaml.SequenceNode:
		out := make([]domain.NodeResult, 0, len(root.Content))
		for i, item := range root.Content {
			entries, err := yamlMappingEntries(item)
			if err != nil {
				return nil, fmt.Errorf("result entry %d: %w", i+1, err)
			}
			pair, err := resultPairFromEntries(entries)
			if err != nil {
				return nil, fmt.Errorf("result entry %d: %w", i+1, err)
			}
			out = append(out, pair)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("result artifact must be a yaml mapping or sequence, got %s", yamlKind(root.Kind))
	}
}

func parseTransitionsYAML(data []byte) ([]domain.StateTransition, error) {
	root, err := yamlRoot(data)
	if err != nil {
		return nil, err
	}
	switch root.Kind {
	case yaml.SequenceNode:
		return yamlTransitionSequence(root)
	case yaml.MappingNode:
		entries, err := yamlMappingEntries(root)
		if err != nil {
			return nil, err
		}
		if hasRunKeys(entries) {
			run, err := parseRunYAMLNode(root)
			if err != nil {
				return nil, err
			}
			return run.Transitions, nil
		}
		return []domain.StateTransition{transitionFromEntries(entries)}, nil
	default:
		return nil, fmt.Errorf("steps artifact must be a yaml sequence or mapping, got %s", yamlKind(root.Kind))
	}
}

func yamlTransitionSequence(node *yaml.Node) ([]domain.StateTransition, error) {
	out := make([]domain.StateTransition, 0, len(node.Content))
	for i, item := range node.Content {
		entries, err := yamlMappingEntries(item)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		out = append(out, transitionFromEntries(entries))
	}
	return out, nil
}

func parseRunYAML(data []byte) (domain.Run, error) {
	root, err := yamlRoot(data)
	if err != nil {
		return domain.Run{}, err
	}
	if root.Kind != yaml.MappingNode {
		return domain.Run{}, fmt.Errorf("run artifact must be a yaml mapping, got %s", yamlKind(root.Kind))
	}
	return parseRunYAMLNode(root)
}

// parseRunYAMLNode assembles a run from a mapping node's recognized
// sections. Keys outside the three sections are ignored, not rejected.
func parseRunYAMLNode(node *yaml.Node) (domain.Run, error) {
	var run domain.Run
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		value := node.Content[i+1]
		switch key {
		case "documents":
			if err := value.Decode(&run.Documents); err != nil {
				return domain.Run{}, fmt.Errorf("run documents: %w", err)
			}
		case "steps":
			if value.Kind != yaml.SequenceNode {
				return domain.Run{}, fmt.Errorf("run steps must be a sequence, got %s", yamlKind(value.Kind))
			}
			steps, err := yamlTransitionSequence(value)
			if err != nil {
				return domain.Run{}, fmt.Errorf("run steps: %w", err)
			}
			run.Transitions = steps
		case "results":
			results, err := yamlResultsNode(value)
			if err != nil {
				return domain.Run{}, fmt.Errorf("run results: %w", err)
			}
			run.Results = results
		}
	}
	return run, nil
}

func yamlResultsNode(node *yaml.Node) ([]domain.NodeResult, error) {
	switch node.Kind {
	case yaml.MappingNode:
		entries, err := yamlMappingEntries(node)
		if err != nil {
			return nil, err
		}
		return resultsFromEntries(entries)
	case yaml.SequenceNode:
		out := make([]domain.NodeResult, 0, len(node.Content))
		for i, item := range node.Content {
			entries, err := yamlMappingEntries(item)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i+1, err)
			}
			pair, err := resultPairFromEntries(entries)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i+1, err)
			}
			out = append(out, pair)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected mapping or sequence, got %s", yamlKind(node.Kind))
	}
}
