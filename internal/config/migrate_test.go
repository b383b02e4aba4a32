package config

import "testing"

func TestMigrateConfig_V0ToV2(t *testing.T) {
	// Config without schema_version is treated as v1
	cfg := &Config{}

	changed, changes := MigrateConfig(cfg)

	if !changed {
		t.Error("expected migration to report changes")
	}

	if cfg.SchemaVersion != CurrentSchemaVersion {
		t.Errorf("expected schema version %d, got %d", CurrentSchemaVersion, cfg.SchemaVersion)
	}

	if len(changes) != 2 {
		t.Errorf("expected 2 changes, got %d", len(changes))
	}

	if cfg.Prompt != DefaultPromptConfig() {
		t.Error("expected prompt config to be populated")
	}
}

func TestMigrateConfig_AlreadyLatest(t *testing.T) {
	cfg := Default()

	changed, changes := MigrateConfig(cfg)

	if changed {
		t.Error("expected no changes for already up-to-date config")
	}

	if len(changes) != 0 {
		t.Errorf("expected no changes, got %d", len(changes))
	}
}

func TestMigrateConfig_PreservesExistingPrompt(t *testing.T) {
	off := false
	cfg := &Config{
		SchemaVersion: 1,
		Prompt:        PromptConfig{Mode: "survey"},
		Install:       InstallConfig{SymlinkSpecs: &off},
	}

	changed, changes := MigrateConfig(cfg)

	if !changed {
		t.Error("expected migration to report version change")
	}
	if len(changes) != 0 {
		t.Errorf("expected no field changes, got %v", changes)
	}

	// Should NOT overwrite existing settings
	if cfg.Prompt.Mode != "survey" {
		t.Error("existing prompt.mode should be preserved")
	}
	if cfg.Install.IsSymlinkSpecs() {
		t.Error("existing install.symlink_specs should be preserved")
	}
}

func TestNeedsMigration(t *testing.T) {
	tests := []struct {
		name     string
		version  int
		expected bool
	}{
		{"v0 needs migration", 0, true},
		{"v1 needs migration", 1, true},
		{"current version no migration", CurrentSchemaVersion, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{SchemaVersion: tt.version}
			if NeedsMigration(cfg) != tt.expected {
				t.Errorf("NeedsMigration() = %v, expected %v", NeedsMigration(cfg), tt.expected)
			}
		})
	}
}
