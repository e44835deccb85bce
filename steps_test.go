package pergola_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/pergola"
	"github.com/aretw0/pergola/pkg/domain"
)

func TestWorkflowSteps(t *testing.T) {
	var buf bytes.Buffer
	c := pergola.NewConsole(&buf)

	transitions := []domain.StateTransition{
		{Node: "retrieve", State: map[string]any{"documents": []any{"d1"}}},
		{Node: "grade_documents"},
		{Node: "generate"},
	}
	if err := c.WorkflowSteps(transitions); err != nil {
		t.Fatalf("WorkflowSteps() error: %v", err)
	}

	rule := strings.Repeat("-", 50)
	want := rule + "\n" +
		"  WORKFLOW STEPS \n" +
		rule + "\n" +
		"Step 1: retrieve\n" +
		"Step 2: grade_documents\n" +
		"Step 3: generate\n"
	if got := buf.String(); got != want {
		t.Errorf("output mismatch:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestWorkflowStepsEmptyLabel(t *testing.T) {
	var buf bytes.Buffer
	c := pergola.NewConsole(&buf)

	transitions := []domain.StateTransition{
		{Node: "retrieve"},
		{}, // recorded without a node label
	}
	err := c.WorkflowSteps(transitions)
	if !errors.Is(err, domain.ErrEmptyTransition) {
		t.Fatalf("error = %v, want ErrEmptyTransition", err)
	}
	if !strings.Contains(err.Error(), "step 2") {
		t.Errorf("error should locate the offending step, got %q", err.Error())
	}
	// The steps before the bad one were already written.
	if !strings.Contains(buf.String(), "Step 1: retrieve\n") {
		t.Errorf("expected prior steps in output, got %q", buf.String())
	}
}

func TestWorkflowStepsWithDeltas(t *testing.T) {
	var buf bytes.Buffer
	c := pergola.NewConsole(&buf, pergola.WithStateDeltas())

	transitions := []domain.StateTransition{
		{Node: "retrieve", State: map[string]any{
			"question":  "q",
			"documents": []any{"d1"},
		}},
		{Node: "grade_documents", State: map[string]any{
			"question":  "q",
			"documents": []any{"d1", "d2"},
			"relevant":  true,
		}},
	}
	if err := c.WorkflowSteps(transitions); err != nil {
		t.Fatal(err)
	}

	rule := strings.Repeat("-", 50)
	want := rule + "\n" +
		"  WORKFLOW STEPS \n" +
		rule + "\n" +
		"Step 1: retrieve\n" +
		"  + documents\n" +
		"  + question\n" +
		"Step 2: grade_documents\n" +
		"  + relevant\n" +
		"  ~ documents\n"
	if got := buf.String(); got != want {
		t.Errorf("delta output mismatch:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestStepIncremental(t *testing.T) {
	var buf bytes.Buffer
	c := pergola.NewConsole(&buf)

	if err := c.Step(4, domain.StateTransition{Node: "web_search"}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "Step 4: web_search\n" {
		t.Errorf("Step() = %q", got)
	}

	err := c.Step(5, domain.StateTransition{})
	if !errors.Is(err, domain.ErrEmptyTransition) {
		t.Errorf("Step() with no label = %v, want ErrEmptyTransition", err)
	}
}

func TestStepDelta(t *testing.T) {
	var buf bytes.Buffer
	c := pergola.NewConsole(&buf)

	prev := map[string]any{"documents": []any{"d1"}, "retry_query": "r"}
	tr := domain.StateTransition{Node: "generate", State: map[string]any{
		"documents":  []any{"d1"},
		"generation": "answer",
	}}
	if err := c.StepDelta(2, tr, prev); err != nil {
		t.Fatal(err)
	}

	want := "Step 2: generate\n" +
		"  + generation\n" +
		"  - retry_query\n"
	if got := buf.String(); got != want {
		t.Errorf("StepDelta() = %q, want %q", got, want)
	}
}
