package types

import "sort"

// TargetSet is a deduplicated set of build target identifiers. Targets
// are opaque strings consumable by the build system; insertion order is
// irrelevant.
type TargetSet map[string]struct{}

func NewTargetSet(targets ...string) TargetSet {
	set := TargetSet{}
	set.Add(targets...)
	return set
}

func (s TargetSet) Add(targets ...string) {
	for _, target := range targets {
		if target != "" {
			s[target] = struct{}{}
		}
	}
}

// Union adds every target of other into s.
func (s TargetSet) Union(other TargetSet) {
	for target := range other {
		s[target] = struct{}{}
	}
}

func (s TargetSet) Contains(target string) bool {
	_, ok := s[target]
	return ok
}

func (s TargetSet) Len() int {
	return len(s)
}

// Sorted returns the targets in lexical order for stable output.
func (s TargetSet) Sorted() []string {
	targets := make([]string, 0, len(s))
	for target := range s {
		targets = append(targets, target)
	}
	sort.Strings(targets)
	return targets
}
