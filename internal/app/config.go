package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath  string // task file, batch mode
	ConfigPath string // optional hcl limits file

	Solver      string
	WorkerCount int
	LogFormat   string
	LogLevel    string
	ServePort   int

	PublishURL       string
	PublishEvent     string
	PublishNamespace string
	PublishInsecure  bool // skip TLS verification of PublishURL
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" && cfg.ServePort <= 0 {
		return nil, errors.New("InputPath is required unless a serve port is given")
	}
	if cfg.WorkerCount < 1 {
		return nil, errors.New("WorkerCount must be at least 1")
	}
	if cfg.ServePort < 0 || cfg.ServePort > 65535 {
		return nil, errors.New("ServePort must be between 0 and 65535")
	}

	return &cfg, nil
}

// Serving reports whether the app runs the HTTP surface instead of a batch.
func (c *Config) Serving() bool {
	return c.ServePort > 0
}
