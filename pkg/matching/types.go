package matching

import "cmp"

// Relation reports whether item from declares compatibility with item to,
// i.e. from can be used where to is required.
type Relation[K cmp.Ordered] func(from, to K) bool

// Tier identifies the pass that produced an assignment.
type Tier int

const (
	// TierExact matches identical types.
	TierExact Tier = iota + 1
	// TierLossless substitutes a supply that declares compatibility with the need.
	TierLossless
	// TierLossy substitutes a supply the need declares compatibility with.
	TierLossy
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierLossless:
		return "lossless"
	case TierLossy:
		return "lossy"
	default:
		return "unknown"
	}
}

// Assignment records quantity units of supplied serving needed.
type Assignment[K cmp.Ordered] struct {
	Needed   K
	Supplied K
	Quantity int
	Tier     Tier
}

// Allocation is the outcome of a matching run.
type Allocation[K cmp.Ordered] struct {
	// Residual is the demand left uncovered. Empty means satisfied.
	Residual map[K]int
	// Remaining is the supply left unused.
	Remaining map[K]int
	// Assignments lists every consumption in the order it happened.
	Assignments []Assignment[K]
}

// Satisfied reports whether all demand was covered.
func (a *Allocation[K]) Satisfied() bool {
	return len(a.Residual) == 0
}

// Option configures a matching run.
type Option func(*options)

type options struct {
	lossy bool
}

// WithLossyDowngrade enables the third tier. Only storage connectors use it.
func WithLossyDowngrade() Option {
	return func(o *options) {
		o.lossy = true
	}
}
