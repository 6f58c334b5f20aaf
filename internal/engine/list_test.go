package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/danieljhkim/monorun/internal/procx"
	"github.com/danieljhkim/monorun/internal/testutil"
)

// TestListWorkspaces_DiscoveryOrder verifies listing reports every
// workspace in discovery order with its location and originating pattern.
func TestListWorkspaces_DiscoveryOrder(t *testing.T) {
	eng := newRunEngine(procx.NewFakeRunner())
	p := loadSampleProject(t, eng)

	result, err := eng.ListWorkspaces(context.Background(), p, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []struct {
		name     string
		location string
		pattern  string
		scripts  int
	}{
		{"application-a", "applications/application-a", "applications/*", 1},
		{"application-b", "applications/application-b", "applications/*", 2},
		{"library-a", "libraries/library-a", "libraries/*", 1},
		{"library-b", "libraries/library-b", "libraries/*", 2},
		{"library-c", "libraries/library-c", "libraries/*", 1},
	}
	if len(result.Workspaces) != len(want) {
		t.Fatalf("got %d workspaces, want %d", len(result.Workspaces), len(want))
	}
	for i, w := range want {
		got := result.Workspaces[i]
		if got.Name != w.name {
			t.Errorf("workspace %d = %q, want %q", i, got.Name, w.name)
		}
		if got.Location != w.location {
			t.Errorf("workspace %s location = %q, want %q", w.name, got.Location, w.location)
		}
		if got.MatchPattern != w.pattern {
			t.Errorf("workspace %s pattern = %q, want %q", w.name, got.MatchPattern, w.pattern)
		}
		if got.ScriptCount != w.scripts {
			t.Errorf("workspace %s script count = %d, want %d", w.name, got.ScriptCount, w.scripts)
		}
	}
}

// TestListWorkspaces_PatternFilter verifies the optional name pattern
// narrows the listing the same way run filters match names.
func TestListWorkspaces_PatternFilter(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{name: "prefix wildcard", pattern: "library-*", want: []string{"library-a", "library-b", "library-c"}},
		{name: "suffix wildcard", pattern: "*-b", want: []string{"application-b", "library-b"}},
		{name: "exact case-insensitive", pattern: "APPLICATION-A", want: []string{"application-a"}},
		{name: "no matches", pattern: "zz*", want: []string{}},
	}

	eng := newRunEngine(procx.NewFakeRunner())
	p := loadSampleProject(t, eng)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := eng.ListWorkspaces(context.Background(), p, tt.pattern)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := make([]string, len(result.Workspaces))
			for i, ws := range result.Workspaces {
				got[i] = ws.Name
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("workspaces = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestListWorkspaces_EmptyProject verifies a project whose globs match
// nothing lists as empty rather than failing.
func TestListWorkspaces_EmptyProject(t *testing.T) {
	eng := newRunEngine(procx.NewFakeRunner())
	root := testutil.WriteTree(t, []string{"packages/*"}, nil)

	p, err := eng.LoadProject(context.Background(), root)
	if err != nil {
		t.Fatalf("failed to load project: %v", err)
	}

	result, err := eng.ListWorkspaces(context.Background(), p, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Workspaces) != 0 {
		t.Errorf("expected empty listing, got %d", len(result.Workspaces))
	}
}

// TestListScripts_SortedWithOwners verifies scripts list sorted by name
// with owning workspaces in discovery order.
func TestListScripts_SortedWithOwners(t *testing.T) {
	eng := newRunEngine(procx.NewFakeRunner())
	p := loadSampleProject(t, eng)

	result, err := eng.ListScripts(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Scripts) != 2 {
		t.Fatalf("got %d scripts, want 2", len(result.Scripts))
	}

	all := result.Scripts[0]
	if all.Name != "all-workspaces" {
		t.Errorf("first script = %q, want all-workspaces", all.Name)
	}
	wantOwners := []string{"application-a", "application-b", "library-a", "library-b", "library-c"}
	if strings.Join(all.Workspaces, ",") != strings.Join(wantOwners, ",") {
		t.Errorf("all-workspaces owners = %v, want %v", all.Workspaces, wantOwners)
	}

	b := result.Scripts[1]
	if b.Name != "b-workspaces" {
		t.Errorf("second script = %q, want b-workspaces", b.Name)
	}
	if strings.Join(b.Workspaces, ",") != "application-b,library-b" {
		t.Errorf("b-workspaces owners = %v", b.Workspaces)
	}
}

// TestDescribeWorkspace returns the workspace's manifest details and its
// scripts in declaration order.
func TestDescribeWorkspace(t *testing.T) {
	eng := newRunEngine(procx.NewFakeRunner())
	p := loadSampleProject(t, eng)

	result, err := eng.DescribeWorkspace(context.Background(), p, "library-b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Name != "library-b" || result.Location != "libraries/library-b" {
		t.Errorf("got %s at %s", result.Name, result.Location)
	}
	if result.MatchPattern != "libraries/*" {
		t.Errorf("pattern = %q, want libraries/*", result.MatchPattern)
	}
	if len(result.Scripts) != 2 {
		t.Fatalf("got %d scripts, want 2", len(result.Scripts))
	}
	if result.Scripts[0].Name != "all-workspaces" || result.Scripts[1].Name != "b-workspaces" {
		t.Errorf("scripts out of declaration order: %v", result.Scripts)
	}
	if result.Scripts[1].Command != "echo library-b" {
		t.Errorf("command = %q, want %q", result.Scripts[1].Command, "echo library-b")
	}
}

// TestDescribeWorkspace_NotFound verifies lookup of an unknown name.
func TestDescribeWorkspace_NotFound(t *testing.T) {
	eng := newRunEngine(procx.NewFakeRunner())
	p := loadSampleProject(t, eng)

	_, err := eng.DescribeWorkspace(context.Background(), p, "nonexistent")
	if !errors.Is(err, ErrWorkspaceNotFound) {
		t.Fatalf("expected ErrWorkspaceNotFound, got %v", err)
	}
}

// TestDescribeScript returns each owner's declared command in discovery
// order.
func TestDescribeScript(t *testing.T) {
	eng := newRunEngine(procx.NewFakeRunner())
	p := loadSampleProject(t, eng)

	result, err := eng.DescribeScript(context.Background(), p, "b-workspaces")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Name != "b-workspaces" {
		t.Errorf("name = %q", result.Name)
	}
	if len(result.DefinedIn) != 2 {
		t.Fatalf("got %d owners, want 2", len(result.DefinedIn))
	}
	first := result.DefinedIn[0]
	if first.Workspace != "application-b" || first.Command != "echo application-b" {
		t.Errorf("first owner = %+v", first)
	}
	second := result.DefinedIn[1]
	if second.Workspace != "library-b" || second.Location != "libraries/library-b" {
		t.Errorf("second owner = %+v", second)
	}
}

// TestDescribeScript_NotFound verifies lookup of a script nothing
// declares.
func TestDescribeScript_NotFound(t *testing.T) {
	eng := newRunEngine(procx.NewFakeRunner())
	p := loadSampleProject(t, eng)

	_, err := eng.DescribeScript(context.Background(), p, "nonexistent")
	if !errors.Is(err, ErrScriptNotFound) {
		t.Fatalf("expected ErrScriptNotFound, got %v", err)
	}
}
