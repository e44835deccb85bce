package pergola

import (
	"fmt"

	"github.com/aretw0/pergola/pkg/domain"
)

// WorkflowSteps renders the step sequence of a run under a "Workflow Steps"
// banner, one numbered line per transition in slice order. With
// WithStateDeltas enabled, each step is followed by the state keys it added,
// modified, or removed relative to the previous step.
//
// A transition with no node label fails the whole operation with
// domain.ErrEmptyTransition wrapped in the step's position.
func (c *Console) WorkflowSteps(transitions []domain.StateTransition) error {
	if err := c.TitleBanner("Workflow Steps"); err != nil {
		return err
	}

	var prev map[string]any
	for i, tr := range transitions {
		if err := c.Step(i+1, tr); err != nil {
			return err
		}
		if c.deltas {
			if err := c.stateDelta(domain.DiffState(prev, tr.State)); err != nil {
				return err
			}
			prev = tr.State
		}
	}
	return nil
}

// Step renders a single numbered step line. It is the incremental sibling of
// WorkflowSteps for callers consuming a live transition feed; n is the
// 1-indexed step number.
func (c *Console) Step(n int, tr domain.StateTransition) error {
	if tr.Node == "" {
		return fmt.Errorf("step %d: %w", n, domain.ErrEmptyTransition)
	}
	_, err := fmt.Fprintf(c.out, "Step %d: %s\n", n, tr.Node)
	return err
}

// StepDelta renders a step line followed by its state delta against prev.
// Feed consumers that track the previous snapshot themselves use this
// instead of WorkflowSteps.
func (c *Console) StepDelta(n int, tr domain.StateTransition, prev map[string]any) error {
	if err := c.Step(n, tr); err != nil {
		return err
	}
	return c.stateDelta(domain.DiffState(prev, tr.State))
}

// stateDelta writes one indented line per changed key: "+" added,
// "~" modified, "-" removed. An empty delta writes nothing.
func (c *Console) stateDelta(d domain.Delta) error {
	for _, k := range d.Added {
		if _, err := fmt.Fprintf(c.out, "  + %s\n", k); err != nil {
			return err
		}
	}
	for _, k := range d.Modified {
		if _, err := fmt.Fprintf(c.out, "  ~ %s\n", k); err != nil {
			return err
		}
	}
	for _, k := range d.Removed {
		if _, err := fmt.Fprintf(c.out, "  - %s\n", k); err != nil {
			return err
		}
	}
	return nil
}
