package matching

import (
	"cmp"
	"maps"
	"slices"
)

// Resolve returns the demand from needed that available cannot cover.
// See the package documentation for the allocation order.
func Resolve[K cmp.Ordered](needed, available map[K]int, compatible Relation[K], opts ...Option) map[K]int {
	return Allocate(needed, available, compatible, opts...).Residual
}

// Allocate runs the tiered matching and returns the full allocation.
// Entries with a quantity of zero or less are ignored. A nil relation
// disables substitution.
func Allocate[K cmp.Ordered](needed, available map[K]int, compatible Relation[K], opts ...Option) *Allocation[K] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	a := &Allocation[K]{
		Residual:  positive(needed),
		Remaining: positive(available),
	}

	for _, t := range sortedKeys(a.Residual) {
		a.consume(t, t, TierExact)
	}

	if compatible == nil {
		return a
	}

	a.substitute(TierLossless, func(need, supply K) bool {
		return compatible(supply, need)
	})

	if o.lossy {
		a.substitute(TierLossy, func(need, supply K) bool {
			return compatible(need, supply)
		})
	}

	return a
}

// substitute runs one substitution tier over the current residual.
func (a *Allocation[K]) substitute(tier Tier, accepts func(need, supply K) bool) {
	for _, t := range sortedKeys(a.Residual) {
		for _, u := range sortedKeys(a.Remaining) {
			if a.Residual[t] <= 0 {
				break
			}
			if u == t || !accepts(t, u) {
				continue
			}
			a.consume(t, u, tier)
		}
	}
}

// consume moves as much of supply into need as both allow.
func (a *Allocation[K]) consume(need, supply K, tier Tier) {
	n, s := a.Residual[need], a.Remaining[supply]
	if n <= 0 || s <= 0 {
		return
	}

	q := min(n, s)
	take(a.Residual, need, q)
	take(a.Remaining, supply, q)

	a.Assignments = append(a.Assignments, Assignment[K]{
		Needed:   need,
		Supplied: supply,
		Quantity: q,
		Tier:     tier,
	})
}

// take decrements m[k] by q and drops the entry at or below zero.
func take[K cmp.Ordered](m map[K]int, k K, q int) {
	m[k] -= q
	if m[k] <= 0 {
		delete(m, k)
	}
}

func positive[K cmp.Ordered](m map[K]int) map[K]int {
	out := make(map[K]int, len(m))
	for k, v := range m {
		if v > 0 {
			out[k] = v
		}
	}
	return out
}

func sortedKeys[K cmp.Ordered](m map[K]int) []K {
	return slices.Sorted(maps.Keys(m))
}
