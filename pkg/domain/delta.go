package domain

import (
	"reflect"
	"sort"
)

// Delta describes how one step changed the workflow state: the keys it
// introduced, the keys it rewrote, and the keys it dropped. Key lists are
// sorted so rendered output is stable run to run.
type Delta struct {
	Added    []string `json:"added,omitempty" yaml:"added,omitempty"`
	Modified []string `json:"modified,omitempty" yaml:"modified,omitempty"`
	Removed  []string `json:"removed,omitempty" yaml:"removed,omitempty"`
}

// DiffState compares two state snapshots. A nil prev represents the initial
// load: everything in next counts as added. Values are compared with
// reflect.DeepEqual since snapshots carry arbitrary decoded JSON.
func DiffState(prev, next map[string]any) Delta {
	var d Delta

	for k, nextVal := range next {
		prevVal, exists := prev[k]
		if !exists {
			d.Added = append(d.Added, k)
			continue
		}
		if !reflect.DeepEqual(prevVal, nextVal) {
			d.Modified = append(d.Modified, k)
		}
	}

	for k := range prev {
		if _, exists := next[k]; !exists {
			d.Removed = append(d.Removed, k)
		}
	}

	sort.Strings(d.Added)
	sort.Strings(d.Modified)
	sort.Strings(d.Removed)
	return d
}

// IsEmpty reports whether the delta contains any change at all.
func (d Delta) IsEmpty() bool {
	return len(d.Added) == 0 && len(d.Modified) == 0 && len(d.Removed) == 0
}
