package explorer

import (
	"sort"

	"github.com/sahilm/fuzzy"
)

// Filter ranks entries against query using fuzzy matching. The match
// target is the entry name plus, when preview is non-nil and returns
// text for the entry, its preview snippet, so a search can find a note
// by a phrase in its opening line. An empty query returns entries
// unchanged. Results are ordered by score descending, ties broken by
// name ascending.
func Filter(entries []Entry, query string, preview func(Entry) string) []Entry {
	if query == "" {
		return entries
	}

	targets := make([]string, len(entries))
	for i, e := range entries {
		targets[i] = e.Name
		if preview != nil {
			if p := preview(e); p != "" {
				targets[i] += " " + p
			}
		}
	}

	matches := fuzzy.Find(query, targets)
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return entries[matches[i].Index].Name < entries[matches[j].Index].Name
	})

	out := make([]Entry, len(matches))
	for i, m := range matches {
		out[i] = entries[m.Index]
	}
	return out
}
