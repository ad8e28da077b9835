package quiz

import (
	"encoding/json"
	"sort"
)

// ParseSelection converts one submitted per-question value into a sorted,
// deduplicated set of option indices within [0, optionCount). Submissions
// arrive as arbitrary JSON from the client, so anything that is not an
// array of in-range integers degrades to an empty selection rather than an
// error: a malformed entry never fails the whole submission.
func ParseSelection(raw json.RawMessage, optionCount int) []int {
	out := []int{}
	if len(raw) == 0 {
		return out
	}
	var entries []interface{}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return out
	}
	seen := map[int]bool{}
	for _, e := range entries {
		f, ok := e.(float64)
		if !ok || f != float64(int(f)) {
			continue
		}
		idx := int(f)
		if idx < 0 || idx >= optionCount || seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// NormalizeIndices returns a sorted, deduplicated copy of indices. The
// input slice is never modified; callers pass canonical answer keys here.
func NormalizeIndices(indices []int) []int {
	out := make([]int, 0, len(indices))
	seen := map[int]bool{}
	for _, i := range indices {
		if seen[i] {
			continue
		}
		seen[i] = true
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
