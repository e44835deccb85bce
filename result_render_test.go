package pergola_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/pergola"
	"github.com/aretw0/pergola/pkg/domain"
)

func record(q, a string, retries int) domain.NodeResult {
	return domain.NodeResult{
		Node: "generate",
		Record: domain.ResultRecord{
			Question:   &q,
			Generation: &a,
			RetryCount: &retries,
		},
	}
}

func TestWorkflowResult(t *testing.T) {
	var buf bytes.Buffer
	c := pergola.NewConsole(&buf)

	results := []domain.NodeResult{record("What is agent memory?", "Short-term and long-term stores.", 1)}
	if err := c.WorkflowResult(results); err != nil {
		t.Fatalf("WorkflowResult() error: %v", err)
	}

	rule := strings.Repeat("-", 50)
	want := rule + "\n" +
		"  WORKFLOW RESULT \n" +
		rule + "\n" +
		"Question: What is agent memory?\n" +
		"Answer: Short-term and long-term stores.\n" +
		"Retries: 1\n"
	if got := buf.String(); got != want {
		t.Errorf("output mismatch:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestWorkflowResultRetryWarning(t *testing.T) {
	tests := []struct {
		name        string
		retries     int
		wantWarning bool
	}{
		{"Below Threshold", 2, false},
		{"At Threshold", 3, true},
		{"Above Threshold", 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			c := pergola.NewConsole(&buf)

			if err := c.WorkflowResult([]domain.NodeResult{record("Q1", "A1", tt.retries)}); err != nil {
				t.Fatal(err)
			}

			got := strings.Contains(buf.String(), "Warning: maximum retries")
			if got != tt.wantWarning {
				t.Errorf("warning printed = %v, want %v; output:\n%s", got, tt.wantWarning, buf.String())
			}
		})
	}
}

func TestWorkflowResultMissingFields(t *testing.T) {
	var buf bytes.Buffer
	c := pergola.NewConsole(&buf)

	// A completely empty record still renders, with fallbacks everywhere and
	// no warning, since an absent retry count is not a threshold hit.
	results := []domain.NodeResult{{Node: "generate"}}
	if err := c.WorkflowResult(results); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"Question: N/A\n", "Answer: N/A\n", "Retries: N/A\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Warning:") {
		t.Errorf("absent retry count must not trigger the warning:\n%s", out)
	}
}

func TestWorkflowResultEmpty(t *testing.T) {
	var buf bytes.Buffer
	c := pergola.NewConsole(&buf)

	err := c.WorkflowResult(nil)
	if !errors.Is(err, domain.ErrEmptyResult) {
		t.Fatalf("WorkflowResult(nil) error = %v, want ErrEmptyResult", err)
	}
	if buf.Len() != 0 {
		t.Errorf("no output expected on empty result, got %q", buf.String())
	}
}

func TestWorkflowResultUsesFirstRecordOnly(t *testing.T) {
	var buf bytes.Buffer
	c := pergola.NewConsole(&buf)

	results := []domain.NodeResult{
		record("first question", "first answer", 0),
		record("second question", "second answer", 3),
	}
	if err := c.WorkflowResult(results); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "first question") {
		t.Errorf("terminal record not rendered:\n%s", out)
	}
	if strings.Contains(out, "second") {
		t.Errorf("records past the first must be ignored:\n%s", out)
	}
}
