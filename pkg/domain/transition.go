package domain

// StateTransition is one recorded step of a workflow run: the node that
// executed and the state snapshot it left behind.
//
// Transition sequences are ordered slices. The recording order is the
// execution order; nothing in pergola re-sorts or deduplicates them.
type StateTransition struct {
	// Node is the step's identifying label, the graph node that ran.
	Node string `json:"node" yaml:"node"`

	// State is the snapshot after the step. The plain step listing ignores
	// it; delta rendering and downstream tooling read it.
	State map[string]any `json:"state,omitempty" yaml:"state,omitempty"`
}

// Run bundles the artifacts one complete workflow execution leaves behind.
// Any section may be empty: a run cut short before generating an answer
// still has documents and steps worth rendering.
type Run struct {
	Documents   []Document        `json:"documents,omitempty" yaml:"documents,omitempty"`
	Transitions []StateTransition `json:"steps,omitempty" yaml:"steps,omitempty"`
	Results     []NodeResult      `json:"results,omitempty" yaml:"results,omitempty"`
}
