package config

// GetDefaults returns the default configuration values.
// The platform stays a plain setting rather than being detected from the
// host: the official archives are keyed by the feed's platform names and
// win64 is the supported default.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"target_directory":     "",
		"last_update":          "",
		"auto_update":          false,
		"driver_path":          "chromedriver",
		"platform":             "win64",
		"download_dir":         "~/.driverup/downloads",
		"http_timeout_seconds": 30,
		"show_progress":        true,
		"skip_confirmations":   false,
	}
}
