package config

// MergeConfig merges defaults into existing config.
// Existing values take precedence; only missing fields are added from defaults.
func MergeConfig(existing, defaults *Config) *Config {
	result := *existing

	// NOTE: Don't update SchemaVersion here - let MigrateConfig handle it
	// This preserves the original version for migration detection

	// Merge Prompt (preserve existing, fill missing)
	if result.Prompt.Mode == "" {
		result.Prompt.Mode = defaults.Prompt.Mode
	}

	// Merge Install (preserve explicit false)
	if result.Install.SymlinkSpecs == nil {
		result.Install.SymlinkSpecs = defaults.Install.SymlinkSpecs
	}

	return &result
}
