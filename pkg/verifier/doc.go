/*
Copyright © 2025 The rigcheck Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package verifier runs every registered checker against one build and
// collects the outcome into a Report.
//
// # Usage
//
//	s, _ := store.Default()
//	v := verifier.New(s, verifier.WithLanguage(language.German))
//	report, err := v.Verify(ctx, "gaming-rig")
//	if errors.IsNotFound(err) {
//	    // unknown build id
//	}
//	fmt.Println(report.Valid())
//
// # Report
//
// A Report holds three sets of rendered messages: completeness violations,
// compatibility violations and optimality warnings. Each set is sorted and
// free of duplicates. A build is valid when the first two sets are empty;
// optimality warnings never make a build invalid.
//
// Verification is read-only and idempotent: verifying the same unchanged
// build twice yields identical sets. Partial builds are always verified;
// rules whose components are missing report nothing.
//
// # Errors
//
// An unknown build id yields a NOT_FOUND StructuredError with field
// "buildId". When the loader can suggest a close id, it is attached to the
// error context under "suggestion".
package verifier
