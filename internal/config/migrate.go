package config

import "fmt"

// MigrationChange describes a single config change during migration.
type MigrationChange struct {
	Field       string
	Description string
}

// MigrateConfig migrates config to the latest schema version.
// Returns true if any changes were made, along with a list of changes.
func MigrateConfig(cfg *Config) (changed bool, changes []MigrationChange) {
	startVersion := cfg.SchemaVersion

	// Configs without schema_version are v1 (pre-versioning)
	if cfg.SchemaVersion == 0 {
		cfg.SchemaVersion = 1
	}

	// v1 → v2: Add prompt settings
	if cfg.SchemaVersion < 2 {
		// Only set defaults if prompt config is empty (zero value)
		if cfg.Prompt == (PromptConfig{}) {
			cfg.Prompt = DefaultPromptConfig()
			changes = append(changes, MigrationChange{
				Field:       "prompt.mode",
				Description: fmt.Sprintf("default: %s", cfg.Prompt.Mode),
			})
		}
		if cfg.Install.SymlinkSpecs == nil {
			cfg.Install.SymlinkSpecs = boolPtr(true)
			changes = append(changes, MigrationChange{
				Field:       "install.symlink_specs",
				Description: "default: true",
			})
		}
		cfg.SchemaVersion = 2
	}

	changed = cfg.SchemaVersion != startVersion
	return changed, changes
}

// NeedsMigration returns true if the config needs migration.
func NeedsMigration(cfg *Config) bool {
	return cfg.SchemaVersion < CurrentSchemaVersion
}
