package domain

import "testing"

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestResultRecordAccessors(t *testing.T) {
	tests := []struct {
		name           string
		rec            ResultRecord
		wantQuestion   string
		wantGeneration string
		wantRetryText  string
	}{
		{
			name: "All Fields Present",
			rec: ResultRecord{
				Question:   strPtr("What is agent memory?"),
				Generation: strPtr("Short-term and long-term stores."),
				RetryCount: intPtr(1),
			},
			wantQuestion:   "What is agent memory?",
			wantGeneration: "Short-term and long-term stores.",
			wantRetryText:  "1",
		},
		{
			name:           "All Fields Absent",
			rec:            ResultRecord{},
			wantQuestion:   ValueMissing,
			wantGeneration: ValueMissing,
			wantRetryText:  ValueMissing,
		},
		{
			name: "Zero Retries Is Present",
			rec: ResultRecord{
				RetryCount: intPtr(0),
			},
			wantQuestion:   ValueMissing,
			wantGeneration: ValueMissing,
			wantRetryText:  "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.QuestionText(); got != tt.wantQuestion {
				t.Errorf("QuestionText() = %q, want %q", got, tt.wantQuestion)
			}
			if got := tt.rec.GenerationText(); got != tt.wantGeneration {
				t.Errorf("GenerationText() = %q, want %q", got, tt.wantGeneration)
			}
			if got := tt.rec.RetryText(); got != tt.wantRetryText {
				t.Errorf("RetryText() = %q, want %q", got, tt.wantRetryText)
			}
		})
	}
}

func TestResultRecordRetries(t *testing.T) {
	t.Run("Absent", func(t *testing.T) {
		var rec ResultRecord
		if n, ok := rec.Retries(); ok || n != 0 {
			t.Errorf("Retries() = (%d, %v), want (0, false)", n, ok)
		}
	})

	t.Run("Present", func(t *testing.T) {
		rec := ResultRecord{RetryCount: intPtr(MaxRetries)}
		n, ok := rec.Retries()
		if !ok {
			t.Fatal("Retries() reported absent for a populated count")
		}
		if n != MaxRetries {
			t.Errorf("Retries() = %d, want %d", n, MaxRetries)
		}
	})
}
