// Package spacing owns the spaced-repetition rules: the per-category retest
// policy, the schedule derivation, and the mastery evaluation. Everything in
// here is a pure function of its inputs; persistence and orchestration live
// in the service layer.
package spacing

import "github.com/relearnhq/relearn-backend/internal/types"

// PolicyEntry describes one category: a display label and the day offsets
// (from creation) at which retests are scheduled. Offsets are ascending.
type PolicyEntry struct {
	Label       string
	OffsetsDays []int
}

var policy = map[types.Category]PolicyEntry{
	types.CategoryConceptual: {Label: "Conceptual", OffsetsDays: []int{1, 3, 7}},
	types.CategoryProcedural: {Label: "Procedural", OffsetsDays: []int{1, 3, 7}},
	types.CategoryCareless:   {Label: "Careless", OffsetsDays: []int{1, 3}},
	types.CategoryKnowledge:  {Label: "Knowledge Gap", OffsetsDays: []int{1, 3, 7, 14}},
}

// OffsetsFor returns the retest day offsets for a category. The category
// enumeration is closed and validated upstream; unknown values yield nil.
func OffsetsFor(c types.Category) []int {
	entry, ok := policy[c]
	if !ok {
		return nil
	}
	out := make([]int, len(entry.OffsetsDays))
	copy(out, entry.OffsetsDays)
	return out
}

// LabelFor returns the display label for a category.
func LabelFor(c types.Category) string {
	return policy[c].Label
}
