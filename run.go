package pergola

import "github.com/aretw0/pergola/pkg/domain"

// Run renders a complete run artifact in reading order: retrieved documents,
// the step sequence, then the terminal result. Empty sections are skipped,
// so a partial artifact (a run aborted before generating an answer) still
// renders whatever it has. maxDocs bounds the document section exactly as in
// Documents.
func (c *Console) Run(run domain.Run, maxDocs int) error {
	if len(run.Documents) > 0 {
		if err := c.Documents(run.Documents, maxDocs); err != nil {
			return err
		}
	}
	if len(run.Transitions) > 0 {
		if err := c.WorkflowSteps(run.Transitions); err != nil {
			return err
		}
	}
	if len(run.Results) > 0 {
		if err := c.WorkflowResult(run.Results); err != nil {
			return err
		}
	}
	return nil
}
