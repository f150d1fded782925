// internal/engine/vector.go
package engine

import "sort"

// TagVector is the user's accumulated tag weights for one assessment.
// Weights only ever grow while it is built.
type TagVector map[string]float64

// Add accumulates w onto tag. Non-positive weights are ignored.
func (v TagVector) Add(tag string, w float64) {
	if w <= 0 || tag == "" {
		return
	}
	v[tag] += w
}

// Max returns the strongest weight, or 1 when no weight exceeds 1.
func (v TagVector) Max() float64 {
	strongest := 1.0
	for _, w := range v {
		if w > strongest {
			strongest = w
		}
	}
	return strongest
}

// Top returns up to n tags by descending weight, ties broken by name.
func (v TagVector) Top(n int, skip func(tag string) bool) []string {
	tags := make([]string, 0, len(v))
	for tag := range v {
		if skip != nil && skip(tag) {
			continue
		}
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if v[tags[i]] != v[tags[j]] {
			return v[tags[i]] > v[tags[j]]
		}
		return tags[i] < tags[j]
	})
	if n >= 0 && len(tags) > n {
		tags = tags[:n]
	}
	return tags
}
