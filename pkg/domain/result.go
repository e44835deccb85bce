package domain

import "strconv"

// ValueMissing is the fallback printed for absent optional record fields.
const ValueMissing = "N/A"

// MaxRetries is the answering pipeline's retry ceiling. A record that
// reports this many retries produced its answer without ever passing the
// quality gate.
const MaxRetries = 3

// ResultRecord is the output record a workflow node produced: the original
// question, the generated answer, and how many retries it took. Every field
// is optional; use the accessors to render missing fields as ValueMissing
// instead of branching on nil at call sites.
type ResultRecord struct {
	Question   *string `json:"question,omitempty" yaml:"question,omitempty" mapstructure:"question"`
	Generation *string `json:"generation,omitempty" yaml:"generation,omitempty" mapstructure:"generation"`
	RetryCount *int    `json:"retry_count,omitempty" yaml:"retry_count,omitempty" mapstructure:"retry_count"`
}

// QuestionText returns the question, or ValueMissing when absent.
func (r ResultRecord) QuestionText() string {
	if r.Question == nil {
		return ValueMissing
	}
	return *r.Question
}

// GenerationText returns the generated answer, or ValueMissing when absent.
func (r ResultRecord) GenerationText() string {
	if r.Generation == nil {
		return ValueMissing
	}
	return *r.Generation
}

// RetryText returns the retry count as text, or ValueMissing when absent.
func (r ResultRecord) RetryText() string {
	if r.RetryCount == nil {
		return ValueMissing
	}
	return strconv.Itoa(*r.RetryCount)
}

// Retries reports the retry count and whether the record carried one at all.
func (r ResultRecord) Retries() (int, bool) {
	if r.RetryCount == nil {
		return 0, false
	}
	return *r.RetryCount, true
}

// NodeResult pairs a workflow node's name with the record it produced.
// Result sets are ordered slices: renderers treat the first element as the
// terminal record, so producers must emit records in completion order.
type NodeResult struct {
	Node   string       `json:"node" yaml:"node"`
	Record ResultRecord `json:"record" yaml:"record"`
}
