// Package fuzzy implements the pure candidate-filtering contract behind the
// interactive function picker: given the full catalog and the user's current
// input, produce the ranked subsequence of matching entries. The input-loop
// mechanics live in the prompt package; this one is side-effect free.
package fuzzy

import "github.com/sahilm/fuzzy"

// Filter returns the catalog entries approximately matching input, in the
// matcher's ranking order, each preserved verbatim. The empty input matches
// everything, returning the catalog members in their original order. The
// catalog itself is never modified.
func Filter(catalog []string, input string) []string {
	if input == "" {
		out := make([]string, len(catalog))
		copy(out, catalog)
		return out
	}

	matches := fuzzy.Find(input, catalog)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, catalog[m.Index])
	}
	return out
}
