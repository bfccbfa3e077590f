// Package config loads application configuration from environment variables
// into annotated structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: LoadEnv
// reads one or more `.env` files into the process environment, and Load
// parses the environment into any struct using `env` field tags. The CLI is
// a short-lived process that reads its configuration exactly once, so there
// is no caching layer.
//
// # Usage
//
//	type Config struct {
//	    Dictionary string `env:"PASSKIT_DICTIONARY" envDefault:"/usr/share/dict/words"`
//	    LogLevel   string `env:"PASSKIT_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    // ...
//	}
package config
