package crossfilter

import (
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"
)

// TargetSpec names a computation parameter the synchronized value feeds,
// e.g. {lineChart year}. Only meaningful on the page that renders the
// computation.
type TargetSpec struct {
	ComputationID string
	Parameter     string
}

func (s TargetSpec) String() string {
	return s.ComputationID + "." + s.Parameter
}

// ResolvedTarget is a TargetSpec paired with the value to deliver.
type ResolvedTarget struct {
	ComputationID string
	Parameter     string
	Value         FilterValue
}

// TargetResolver maps each page to the computation parameters its
// control drives. Registration validates eagerly so a target naming a
// computation absent from its page fails at startup, never during
// dispatch. Resolution is a pure lookup.
type TargetResolver struct {
	targets map[string][]TargetSpec
}

func NewTargetResolver() *TargetResolver {
	return &TargetResolver{targets: make(map[string][]TargetSpec)}
}

// Register records the target set for pageID. Every spec must reference
// a computation in available, and a (computation, parameter) pair may
// appear only once. Validation is all-or-nothing: on error the previous
// registration for pageID is untouched. Re-registering replaces the set.
func (r *TargetResolver) Register(pageID string, specs []TargetSpec, available []string) error {
	if pageID == "" {
		return &ConfigurationError{Msg: "empty page id"}
	}
	seen := make(map[TargetSpec]bool, len(specs))
	for _, spec := range specs {
		if spec.ComputationID == "" || spec.Parameter == "" {
			return &ConfigurationError{
				Page: pageID,
				Spec: spec,
				Msg:  fmt.Sprintf("incomplete target %q", spec),
			}
		}
		if seen[spec] {
			return &ConfigurationError{
				Page: pageID,
				Spec: spec,
				Msg:  fmt.Sprintf("duplicate target %q", spec),
			}
		}
		seen[spec] = true
		if !contains(available, spec.ComputationID) {
			msg := fmt.Sprintf("target %q references unknown computation %q", spec, spec.ComputationID)
			if hint := closestName(spec.ComputationID, available); hint != "" {
				msg += fmt.Sprintf(" (did you mean %q?)", hint)
			}
			return &ConfigurationError{Page: pageID, Spec: spec, Msg: msg}
		}
	}
	r.targets[pageID] = append([]TargetSpec(nil), specs...)
	return nil
}

// Resolve returns the registered targets for pageID paired with value,
// in registration order. An unregistered page resolves to nothing; a
// control with no dependents is not an error.
func (r *TargetResolver) Resolve(pageID string, value FilterValue) []ResolvedTarget {
	specs := r.targets[pageID]
	if len(specs) == 0 {
		return nil
	}
	resolved := make([]ResolvedTarget, 0, len(specs))
	for _, spec := range specs {
		resolved = append(resolved, ResolvedTarget{
			ComputationID: spec.ComputationID,
			Parameter:     spec.Parameter,
			Value:         value,
		})
	}
	return resolved
}

// Pages returns the registered page ids, sorted.
func (r *TargetResolver) Pages() []string {
	pages := make([]string, 0, len(r.targets))
	for id := range r.targets {
		pages = append(pages, id)
	}
	sort.Strings(pages)
	return pages
}

func contains(names []string, want string) bool {
	for _, n := range names {
		if n == want {
			return true
		}
	}
	return false
}

// closestName suggests a known computation within a small edit distance
// of the misspelled one.
func closestName(miss string, available []string) string {
	best := ""
	bestDist := 4
	for _, name := range available {
		if d := levenshtein.ComputeDistance(miss, name); d < bestDist {
			best = name
			bestDist = d
		}
	}
	return best
}
