package trace

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/pergola/pkg/domain"
)

// DecodeRecord converts a loosely typed record mapping into a ResultRecord.
// Decoding is weakly typed because engines disagree on how they serialize
// counters: retry_count arrives as 3, 3.0, or "3" depending on the producer.
// Keys beyond the known fields are ignored, not rejected.
func DecodeRecord(raw map[string]any) (domain.ResultRecord, error) {
	var rec domain.ResultRecord
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &rec,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return rec, fmt.Errorf("build record decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return rec, fmt.Errorf("decode result record: %w", err)
	}
	return rec, nil
}
