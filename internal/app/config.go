package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ProfilePath string // hcl workload profiles (file or directory)

	LogFormat   string
	LogLevel    string
	ArenaBudget uint64 // shared value-store budget in bytes; 0 = unbounded
	ScriptName  string // identity reported by the {script} special variable
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ProfilePath == "" {
		return nil, errors.New("ProfilePath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
