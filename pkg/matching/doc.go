// Package matching decides whether a supply of typed resources covers a demand.
//
// Demand and supply are quantity maps keyed by resource type, e.g.
// {SATA III: 3} needed against {SATA III: 1, SATA II: 4} available on a
// motherboard. Resolve allocates supply to demand in three ordered tiers and
// returns the unmet residual; an empty residual means the supply is enough.
//
// # Tiers
//
//  1. Exact: a needed type consumes supply of the same type.
//  2. Lossless upgrade: a needed type t consumes supply u when u declares
//     compatibility with t (compatible(u, t)), e.g. a PCIe 6+2-pin plug
//     serving a 6-pin socket.
//  3. Lossy downgrade (opt-in via WithLossyDowngrade): a needed type t
//     consumes supply d when t declares compatibility with d
//     (compatible(t, d)), e.g. a SATA III drive on a SATA II port.
//
// Each tier runs to completion over the whole residual before the next one
// starts, so a lower tier only ever sees demand the higher tiers could not
// cover. Within a tier, needed types are visited in ascending key order and
// candidate supplies are consumed in ascending key order, which makes the
// allocation reproducible.
//
// # Complexity
//
// With n needed types and m available types: O(n·m) relation lookups per
// substitution tier plus O((n+m) log(n+m)) for ordering.
//
// The caller's maps are never modified.
package matching
