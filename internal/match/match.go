// Package match implements the wildcard name matching used to select
// workspaces. Patterns are plain names with optional "*" wildcards; a "*"
// matches any run of characters, including none. Matching is
// case-insensitive and anchored to the whole candidate.
package match

import "strings"

// HasWildcard reports whether pattern contains at least one "*".
func HasWildcard(pattern string) bool {
	return strings.Contains(pattern, "*")
}

// Collapse rewrites runs of consecutive "*" into a single "*". Collapsing is
// idempotent, so "a**b" and "a*b" compile to the same pattern.
func Collapse(pattern string) string {
	if !strings.Contains(pattern, "**") {
		return pattern
	}
	var b strings.Builder
	b.Grow(len(pattern))
	prevStar := false
	for _, r := range pattern {
		if r == '*' {
			if prevStar {
				continue
			}
			prevStar = true
		} else {
			prevStar = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Matches reports whether candidate matches pattern. A pattern without
// wildcards must equal the candidate (ignoring case). The empty pattern
// matches only the empty candidate; "*" matches everything.
func Matches(pattern, candidate string) bool {
	pattern = strings.ToLower(Collapse(pattern))
	candidate = strings.ToLower(candidate)

	if !strings.Contains(pattern, "*") {
		return pattern == candidate
	}

	// Split into literal segments. Leading/trailing "*" produce empty
	// segments at the ends, which anchor nothing.
	segments := strings.Split(pattern, "*")

	// First segment is anchored to the start of the candidate.
	first := segments[0]
	if !strings.HasPrefix(candidate, first) {
		return false
	}
	candidate = candidate[len(first):]

	// Last segment is anchored to the end of the candidate.
	last := segments[len(segments)-1]
	middle := segments[1 : len(segments)-1]

	// Middle segments match greedily left to right. Each must appear after
	// the previous one; the wildcards absorb whatever lies between.
	for _, seg := range middle {
		if seg == "" {
			continue
		}
		idx := strings.Index(candidate, seg)
		if idx < 0 {
			return false
		}
		candidate = candidate[idx+len(seg):]
	}

	return strings.HasSuffix(candidate, last)
}
