package pergola

import (
	"fmt"

	"github.com/aretw0/pergola/pkg/domain"
)

// WorkflowResult renders the terminal record of a run under a
// "Workflow Result" banner: the question asked, the generated answer, and
// the retry count. The first element of results is the terminal record;
// callers own that ordering. Records beyond the first are ignored.
//
// Returns domain.ErrEmptyResult when results is empty.
func (c *Console) WorkflowResult(results []domain.NodeResult) error {
	if len(results) == 0 {
		return domain.ErrEmptyResult
	}
	rec := results[0].Record

	if err := c.TitleBanner("Workflow Result"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(c.out, "Question: %s\n", rec.QuestionText()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(c.out, "Answer: %s\n", c.renderContent(rec.GenerationText())); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(c.out, "Retries: %s\n", rec.RetryText()); err != nil {
		return err
	}

	// A record that hit the ceiling produced its answer without ever passing
	// the quality gate.
	if n, ok := rec.Retries(); ok && n >= domain.MaxRetries {
		_, err := fmt.Fprintf(c.out, "Warning: maximum retries (%d) reached without a satisfactory answer\n", domain.MaxRetries)
		return err
	}
	return nil
}
