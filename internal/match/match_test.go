package match

import "testing"

func TestMatches(t *testing.T) {
	tests := []struct {
		name      string
		pattern   string
		candidate string
		want      bool
	}{
		{
			name:      "exact name",
			pattern:   "web-app",
			candidate: "web-app",
			want:      true,
		},
		{
			name:      "exact name mismatch",
			pattern:   "web-app",
			candidate: "web-api",
			want:      false,
		},
		{
			name:      "exact match ignores case",
			pattern:   "Web-App",
			candidate: "web-APP",
			want:      true,
		},
		{
			name:      "bare star matches anything",
			pattern:   "*",
			candidate: "library-c",
			want:      true,
		},
		{
			name:      "bare star matches empty",
			pattern:   "*",
			candidate: "",
			want:      true,
		},
		{
			name:      "empty pattern matches only empty",
			pattern:   "",
			candidate: "web-app",
			want:      false,
		},
		{
			name:      "empty pattern matches empty candidate",
			pattern:   "",
			candidate: "",
			want:      true,
		},
		{
			name:      "prefix wildcard",
			pattern:   "*-b",
			candidate: "library-b",
			want:      true,
		},
		{
			name:      "prefix wildcard no suffix match",
			pattern:   "*-a",
			candidate: "library-b",
			want:      false,
		},
		{
			name:      "suffix wildcard",
			pattern:   "lib*",
			candidate: "library-c",
			want:      true,
		},
		{
			name:      "suffix wildcard is anchored",
			pattern:   "lib*",
			candidate: "my-library",
			want:      false,
		},
		{
			name:      "interior wildcard",
			pattern:   "app*-b",
			candidate: "application-b",
			want:      true,
		},
		{
			name:      "interior wildcard absorbs nothing",
			pattern:   "web*app",
			candidate: "webapp",
			want:      true,
		},
		{
			name:      "multiple wildcards",
			pattern:   "*lib*-c*",
			candidate: "some-library-c1",
			want:      true,
		},
		{
			name:      "wildcard matching is case-insensitive",
			pattern:   "LIB*",
			candidate: "library-b",
			want:      true,
		},
		{
			name:      "pattern longer than candidate",
			pattern:   "library-long*",
			candidate: "lib",
			want:      false,
		},
		{
			name:      "segments must appear in order",
			pattern:   "*b*a*",
			candidate: "a-b",
			want:      false,
		},
		{
			name:      "repeated middle segment",
			pattern:   "*ab*ab",
			candidate: "abab",
			want:      true,
		},
		{
			name:      "middle segment cannot be reused for suffix",
			pattern:   "a*a",
			candidate: "a",
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.pattern, tt.candidate); got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.pattern, tt.candidate, got, tt.want)
			}
		})
	}
}

func TestMatchesCollapsesStarRuns(t *testing.T) {
	// Any run of "*" behaves as a single "*", so doubling the stars in a
	// pattern never changes the outcome.
	pairs := []struct {
		single  string
		doubled string
	}{
		{"*-b", "**-b"},
		{"lib*", "lib***"},
		{"a*b*c", "a**b**c"},
		{"*", "****"},
	}
	candidates := []string{"", "a", "library-b", "a-b-c", "abc", "lib"}

	for _, p := range pairs {
		for _, c := range candidates {
			if got, want := Matches(p.doubled, c), Matches(p.single, c); got != want {
				t.Errorf("Matches(%q, %q) = %v, but Matches(%q, %q) = %v", p.doubled, c, got, p.single, c, want)
			}
		}
	}
}

func TestCollapse(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{name: "no stars", pattern: "web-app", want: "web-app"},
		{name: "single star untouched", pattern: "a*b", want: "a*b"},
		{name: "double star", pattern: "a**b", want: "a*b"},
		{name: "long run", pattern: "****", want: "*"},
		{name: "multiple runs", pattern: "**a**b**", want: "*a*b*"},
		{name: "idempotent", pattern: Collapse("a****b"), want: "a*b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collapse(tt.pattern); got != tt.want {
				t.Errorf("Collapse(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestHasWildcard(t *testing.T) {
	if HasWildcard("web-app") {
		t.Error("HasWildcard(\"web-app\") = true, want false")
	}
	if !HasWildcard("web-*") {
		t.Error("HasWildcard(\"web-*\") = false, want true")
	}
}
