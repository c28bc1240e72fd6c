package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pacerapp/pacer/internal/domain"
)

const validYAML = `
database:
  path: "/tmp/pacer-test.db"
planning:
  window_days: 10
  hard_ceiling: 4
  deload_hard_factor: 0.5
  deload_easy_factor: 0.8
  timezone: "Europe/Berlin"
classifier:
  extra_endurance_types: ["skierg"]
  extra_strength_types: ["kettlebell"]
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadValid verifies that a well-formed YAML config loads with all fields populated.
func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Path != "/tmp/pacer-test.db" {
		t.Errorf("database.path = %q, want %q", cfg.Database.Path, "/tmp/pacer-test.db")
	}
	if cfg.Planning.WindowDays != 10 {
		t.Errorf("planning.window_days = %d, want 10", cfg.Planning.WindowDays)
	}
	if cfg.Planning.HardCeiling != 4 {
		t.Errorf("planning.hard_ceiling = %d, want 4", cfg.Planning.HardCeiling)
	}
	if cfg.Planning.Timezone != "Europe/Berlin" {
		t.Errorf("planning.timezone = %q, want %q", cfg.Planning.Timezone, "Europe/Berlin")
	}
}

// TestLoadMissingFileUsesDefaults verifies that an absent config file is not an error.
func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Planning.WindowDays != 7 {
		t.Errorf("planning.window_days = %d, want default 7", cfg.Planning.WindowDays)
	}
	if cfg.Planning.DeloadHardFactor != 0.55 {
		t.Errorf("planning.deload_hard_factor = %g, want default 0.55", cfg.Planning.DeloadHardFactor)
	}
}

// TestEnvOverride verifies that PACER_ env vars take precedence over YAML values.
func TestEnvOverride(t *testing.T) {
	t.Setenv("PACER_DB", "/tmp/override.db")
	t.Setenv("PACER_WINDOW_DAYS", "14")
	t.Setenv("PACER_TZ", "America/New_York")

	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Path != "/tmp/override.db" {
		t.Errorf("database.path = %q, want %q", cfg.Database.Path, "/tmp/override.db")
	}
	if cfg.Planning.WindowDays != 14 {
		t.Errorf("planning.window_days = %d, want 14", cfg.Planning.WindowDays)
	}
	// Unchanged fields keep YAML values.
	if cfg.Planning.HardCeiling != 4 {
		t.Errorf("planning.hard_ceiling = %d, want 4", cfg.Planning.HardCeiling)
	}
}

// TestValidationRejectsBadWindow verifies the planning horizon bounds.
func TestValidationRejectsBadWindow(t *testing.T) {
	yaml := `
planning:
  window_days: 30
  deload_hard_factor: 0.55
  deload_easy_factor: 0.75
  timezone: "UTC"
`
	if _, err := Load(writeTemp(t, yaml)); err == nil {
		t.Fatal("expected validation error for window_days 30")
	}
}

// TestValidationRejectsBadTimezone verifies that an unknown zone name fails fast.
func TestValidationRejectsBadTimezone(t *testing.T) {
	yaml := `
planning:
  window_days: 7
  deload_hard_factor: 0.55
  deload_easy_factor: 0.75
  timezone: "Mars/Olympus"
`
	if _, err := Load(writeTemp(t, yaml)); err == nil {
		t.Fatal("expected validation error for unknown timezone")
	}
}

// TestParamsMergesClassifierTypes verifies that extra activity names land in
// the modality lookup.
func TestParamsMergesClassifierTypes(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	params := cfg.Params()
	if params.TypeRules.Modalities["skierg"] != domain.ModalityEndurance {
		t.Errorf("skierg modality = %q, want endurance", params.TypeRules.Modalities["skierg"])
	}
	if params.TypeRules.Modalities["kettlebell"] != domain.ModalityStrength {
		t.Errorf("kettlebell modality = %q, want strength", params.TypeRules.Modalities["kettlebell"])
	}
	if params.Location.String() != "Europe/Berlin" {
		t.Errorf("location = %q, want Europe/Berlin", params.Location)
	}
}
