package verifier

import (
	"slices"

	"github.com/rigcheck/rigcheck/pkg/checker"
	"github.com/rigcheck/rigcheck/pkg/header"
)

// Kind is the header kind of a verification report.
const Kind = "BuildReport"

// Report is the outcome of verifying one build.
type Report struct {
	header.Header `yaml:",inline"`

	BuildID   string `json:"buildId" yaml:"buildId"`
	BuildName string `json:"buildName,omitempty" yaml:"buildName,omitempty"`

	CompletenessViolations  []string `json:"completenessViolations" yaml:"completenessViolations"`
	CompatibilityViolations []string `json:"compatibilityViolations" yaml:"compatibilityViolations"`
	OptimalityWarnings      []string `json:"optimalityWarnings" yaml:"optimalityWarnings"`
}

// Valid reports whether the build has neither completeness nor
// compatibility violations.
func (r *Report) Valid() bool {
	return len(r.CompletenessViolations) == 0 && len(r.CompatibilityViolations) == 0
}

// Count returns the number of messages in the given family.
func (r *Report) Count(f checker.Family) int {
	switch f {
	case checker.FamilyCompleteness:
		return len(r.CompletenessViolations)
	case checker.FamilyCompatibility:
		return len(r.CompatibilityViolations)
	case checker.FamilyOptimality:
		return len(r.OptimalityWarnings)
	default:
		return 0
	}
}

// messageSet accumulates rendered messages of one family.
type messageSet map[string]struct{}

func (s messageSet) add(msg string) {
	s[msg] = struct{}{}
}

// sorted returns the messages in ascending order, never nil.
func (s messageSet) sorted() []string {
	out := make([]string, 0, len(s))
	for msg := range s {
		out = append(out, msg)
	}
	slices.Sort(out)
	return out
}
