package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Mode != "" || cfg.FailFast || cfg.NoColor {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestLoad_ReadsProjectConfig(t *testing.T) {
	root := t.TempDir()
	content := "mode: parallel\nfail_fast: true\n"
	if err := os.WriteFile(filepath.Join(root, FileName), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Mode != "parallel" {
		t.Errorf("Mode = %q, want %q", cfg.Mode, "parallel")
	}
	if !cfg.FailFast {
		t.Error("FailFast = false, want true")
	}
	if cfg.NoColor {
		t.Error("NoColor = true, want false")
	}
}

func TestLoad_EnvOverridesLocation(t *testing.T) {
	alt := filepath.Join(t.TempDir(), "elsewhere.yaml")
	if err := os.WriteFile(alt, []byte("no_color: true\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv(EnvConfigPath, alt)

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.NoColor {
		t.Error("NoColor = false, want true (from MONORUN_CONFIG file)")
	}
}

func TestLoad_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed YAML", content: "mode: [unclosed\n"},
		{name: "unknown mode", content: "mode: sideways\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			if err := os.WriteFile(filepath.Join(root, FileName), []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			if _, err := Load(root); err == nil {
				t.Error("expected error")
			}
		})
	}
}
