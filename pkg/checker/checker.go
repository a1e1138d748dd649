package checker

import (
	"sort"

	"github.com/rigcheck/rigcheck/pkg/build"
)

// Family classifies a checker and the report section its findings land in.
type Family string

const (
	FamilyCompleteness  Family = "completeness"
	FamilyCompatibility Family = "compatibility"
	FamilyOptimality    Family = "optimality"
)

// String returns the family name.
func (f Family) String() string {
	return string(f)
}

// Finding is a violation or warning: a message key and its arguments.
type Finding struct {
	Key  string
	Args []any
}

// Checker is a single validation rule.
type Checker interface {
	// Name identifies the rule in logs and metrics.
	Name() string
	// Family is the report section findings belong to.
	Family() Family
	// Priority orders rules; lower runs first. Order never changes results.
	Priority() int
	// Check returns a finding, or nil when the rule holds or does not apply.
	Check(b *build.Build) *Finding
}

type rule struct {
	name     string
	priority int
	check    func(b *build.Build) *Finding
}

func (r rule) Name() string {
	return r.name
}

func (r rule) Priority() int {
	return r.priority
}

func (r rule) Check(b *build.Build) *Finding {
	if b == nil {
		return nil
	}
	return r.check(b)
}

// CompletenessChecker reports a missing mandatory part.
type CompletenessChecker struct{ rule }

// Family implements Checker.
func (CompletenessChecker) Family() Family { return FamilyCompleteness }

// CompatibilityChecker reports parts that cannot work together.
type CompatibilityChecker struct{ rule }

// Family implements Checker.
func (CompatibilityChecker) Family() Family { return FamilyCompatibility }

// OptimalityChecker reports a working but suboptimal combination.
type OptimalityChecker struct{ rule }

// Family implements Checker.
func (OptimalityChecker) Family() Family { return FamilyOptimality }

// NewCompleteness creates a completeness rule.
func NewCompleteness(name string, priority int, check func(*build.Build) *Finding) *CompletenessChecker {
	return &CompletenessChecker{rule{name: name, priority: priority, check: check}}
}

// NewCompatibility creates a compatibility rule.
func NewCompatibility(name string, priority int, check func(*build.Build) *Finding) *CompatibilityChecker {
	return &CompatibilityChecker{rule{name: name, priority: priority, check: check}}
}

// NewOptimality creates an optimality rule.
func NewOptimality(name string, priority int, check func(*build.Build) *Finding) *OptimalityChecker {
	return &OptimalityChecker{rule{name: name, priority: priority, check: check}}
}

// Sort orders checkers by priority, then by name.
func Sort(checkers []Checker) {
	sort.SliceStable(checkers, func(i, j int) bool {
		if checkers[i].Priority() != checkers[j].Priority() {
			return checkers[i].Priority() < checkers[j].Priority()
		}
		return checkers[i].Name() < checkers[j].Name()
	})
}

func finding(key string, args ...any) *Finding {
	return &Finding{Key: key, Args: args}
}
