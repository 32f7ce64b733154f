package domain

// FilterSpec describes the currently active query predicates. It is a plain
// value owned by the caller; the engine only reads it. Empty fields mean
// "predicate not active". All active predicates are AND-combined; list
// predicates are OR-combined within themselves.
type FilterSpec struct {
	Submolts    []string
	Authors     []string
	Tags        []string
	ClassNotes  []string
	MinUpvotes  int
	MinComments int
	Search      string
	PostIDs     []string // explicit allow-list for ad hoc selections
}

// IsEmpty reports whether no predicate is active. Filtering with an empty
// spec returns the full corpus in original order.
func (s FilterSpec) IsEmpty() bool {
	return len(s.Submolts) == 0 &&
		len(s.Authors) == 0 &&
		len(s.Tags) == 0 &&
		len(s.ClassNotes) == 0 &&
		s.MinUpvotes <= 0 &&
		s.MinComments <= 0 &&
		s.Search == "" &&
		len(s.PostIDs) == 0
}
