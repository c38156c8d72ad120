package config

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "prod",
		Server: ServerConfig{
			Port: 4361,
			Host: "localhost",
		},
		API: APIConfig{
			URL: "http://localhost:4362",
		},
		Session: SessionConfig{
			MaxAge: 86400,
		},
		Cache: CacheConfig{
			TTLSeconds: 300,
			MaxEntries: 256,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
