/*
Copyright © 2025 The rigcheck Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package checker implements the build validation rules.
//
// # Families
//
// Every Checker belongs to one of three families:
//   - Completeness: a mandatory slot is empty (no CPU, fewer than two fans, ...).
//   - Compatibility: selected parts cannot work together (socket mismatch,
//     too few PSU connectors, cooler too tall, ...).
//   - Optimality: parts work together but leave performance unused
//     (PCIe version mismatch, RAM clocked above what the CPU supports, ...).
//
// A Checker inspects a single build and returns at most one Finding: a
// message key plus positional arguments. Checkers are stateless and never
// modify the build, so one Checker value may be shared across goroutines.
//
// # Partial builds
//
// Compatibility and optimality checkers return nil when any slot they compare
// is empty; reporting missing parts is the completeness family's job.
//
// # Resource checks
//
// Connector, bay and mount checks extract a needed and an available quantity
// map from the build and hand them to matching.Resolve. Any residual demand
// produces a single finding naming the supplying component.
//
// # Registration
//
// Defaults returns the built-in rule set in priority order. Callers can pass
// their own list (for example Defaults plus custom rules) to the verifier.
package checker
