package model

import "sort"

// IndexSet is an ordered, deduplicated set of string index labels.
//
// Members preserves insertion order so that indexed iteration over variables
// and generated constraints is reproducible across runs. Set-algebra results
// (Union, SymmetricDifference) are returned in sorted label order, since the
// operands' insertion orders cannot be merged meaningfully.
type IndexSet struct {
	members []string            // insertion order
	index   map[string]struct{} // membership
}

// NewIndexSet builds an IndexSet from labels, dropping duplicates while
// preserving first-seen order.
// Complexity: O(n).
func NewIndexSet(labels ...string) *IndexSet {
	s := &IndexSet{index: make(map[string]struct{}, len(labels))}
	for _, l := range labels {
		if _, dup := s.index[l]; dup {
			continue
		}
		s.index[l] = struct{}{}
		s.members = append(s.members, l)
	}

	return s
}

// Len returns the number of labels in the set.
func (s *IndexSet) Len() int { return len(s.members) }

// Contains reports whether label is a member of the set.
func (s *IndexSet) Contains(label string) bool {
	_, ok := s.index[label]
	return ok
}

// Members returns the labels in insertion order.
// The returned slice is a copy; callers may not mutate set internals through it.
func (s *IndexSet) Members() []string {
	out := make([]string, len(s.members))
	copy(out, s.members)

	return out
}

// Equal reports set equality with other, ignoring insertion order.
// A nil set equals another nil set and nothing else.
func (s *IndexSet) Equal(other *IndexSet) bool {
	if s == nil || other == nil {
		return s == other
	}
	if len(s.members) != len(other.members) {
		return false
	}
	for _, l := range s.members {
		if !other.Contains(l) {
			return false
		}
	}

	return true
}

// Union returns a new set holding every label present in s or other,
// in sorted label order.
func (s *IndexSet) Union(other *IndexSet) *IndexSet {
	merged := make([]string, 0, len(s.members)+len(other.members))
	merged = append(merged, s.members...)
	for _, l := range other.members {
		if !s.Contains(l) {
			merged = append(merged, l)
		}
	}
	sort.Strings(merged)

	return NewIndexSet(merged...)
}

// SymmetricDifference returns a new set holding labels present in exactly
// one of s, other — in sorted label order. An empty result means the sets
// are equal; the expansion validator relies on this to compare index sets.
func (s *IndexSet) SymmetricDifference(other *IndexSet) *IndexSet {
	var diff []string
	for _, l := range s.members {
		if !other.Contains(l) {
			diff = append(diff, l)
		}
	}
	for _, l := range other.members {
		if !s.Contains(l) {
			diff = append(diff, l)
		}
	}
	sort.Strings(diff)

	return NewIndexSet(diff...)
}
