package checker

import "strings"

// Skip returns the checkers whose names match none of the patterns, in
// their original order. Patterns support a leading and/or trailing "*":
//   - "storage-*" skips every rule starting with "storage-"
//   - "*-power" skips every rule ending with "-power"
//   - "*ram*" skips every rule containing "ram"
//   - "fan-sizes" skips exactly that rule
func Skip(checkers []Checker, patterns []string) []Checker {
	kept := make([]Checker, 0, len(checkers))
	for _, c := range checkers {
		if !matchesAny(c.Name(), patterns) {
			kept = append(kept, c)
		}
	}
	return kept
}

func matchesAny(name string, patterns []string) bool {
	for _, p := range patterns {
		if matchesPattern(name, p) {
			return true
		}
	}
	return false
}

func matchesPattern(name, pattern string) bool {
	if !strings.Contains(pattern, "*") {
		return name == pattern
	}

	prefixed := strings.HasPrefix(pattern, "*")
	suffixed := strings.HasSuffix(pattern, "*")
	switch {
	case prefixed && suffixed:
		return strings.Contains(name, strings.Trim(pattern, "*"))
	case prefixed:
		return strings.HasSuffix(name, strings.TrimPrefix(pattern, "*"))
	case suffixed:
		return strings.HasPrefix(name, strings.TrimSuffix(pattern, "*"))
	default:
		return false
	}
}
