// Package config provides configuration loading and validation for lre.json.
package config

// Config represents the complete lre.json configuration.
type Config struct {
	Suites   *SuitesConfig `json:"suites,omitempty"`
	Report   *ReportConfig `json:"report,omitempty"`
	Judge    *JudgeConfig  `json:"judge,omitempty"`
	Parallel int           `json:"parallel,omitempty"` // Suites evaluated concurrently (0 = one per CPU)
}

// SuitesConfig says where reference suites live.
type SuitesConfig struct {
	Directory string `json:"directory,omitempty"`
	Pattern   string `json:"pattern,omitempty"` // Glob matched against file names in Directory
}

// ReportConfig configures the rendered report.
type ReportConfig struct {
	Path   string `json:"path,omitempty"`   // Write the report here instead of stdout
	Format string `json:"format,omitempty"` // "markdown", "json", or "yaml"
}

// JudgeConfig tunes the precision judge.
type JudgeConfig struct {
	Slack float64 `json:"slack,omitempty"` // Allowed excess above the target
}
