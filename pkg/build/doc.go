/*
Copyright © 2025 The rigcheck Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package build defines the PC build aggregate and its components.
//
// A Build holds optional single-valued slots (CPU, motherboard, PSU, case,
// cooler, GPU) and multi-valued slots (fans, RAM kits, HDDs, SSDs), each
// multi-valued entry pairing a component with a positive quantity.
//
// Builds are produced fully populated by a loader (see package store): every
// catalog reference a component makes is already resolved to a *catalog.Item
// carrying its compatibility relation. Rule checks only read a Build; any slot
// may be empty because partial builds are legal while a user is still picking
// parts.
package build
