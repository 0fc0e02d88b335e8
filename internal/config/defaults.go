package config

// Default configuration values.
const (
	DefaultConfigFile      = "lre.json"
	DefaultSuitesDirectory = "testdata/lre"
	DefaultSuitesPattern   = "*.yaml"
	DefaultReportFormat    = "markdown"
	DefaultSlack           = 0.1
)

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	applySuitesDefaults(cfg)
	applyReportDefaults(cfg)
	applyJudgeDefaults(cfg)
}

func applySuitesDefaults(cfg *Config) {
	if cfg.Suites == nil {
		cfg.Suites = &SuitesConfig{}
	}
	if cfg.Suites.Directory == "" {
		cfg.Suites.Directory = DefaultSuitesDirectory
	}
	if cfg.Suites.Pattern == "" {
		cfg.Suites.Pattern = DefaultSuitesPattern
	}
}

func applyReportDefaults(cfg *Config) {
	if cfg.Report == nil {
		cfg.Report = &ReportConfig{}
	}
	if cfg.Report.Format == "" {
		cfg.Report.Format = DefaultReportFormat
	}
}

func applyJudgeDefaults(cfg *Config) {
	if cfg.Judge == nil {
		cfg.Judge = &JudgeConfig{}
	}
	if cfg.Judge.Slack == 0 {
		cfg.Judge.Slack = DefaultSlack
	}
}
