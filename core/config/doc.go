// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads a .env file on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
// Variables already set in the environment always win over .env values.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/hedns/core/config"
//
//	type ConsoleConfig struct {
//		Username string `env:"HE_USERNAME,required"`
//		Password string `env:"HE_PASSWORD,required"`
//		BaseURL  string `env:"HE_BASE_URL" envDefault:"https://dns.he.net"`
//	}
//
//	func main() {
//		var cfg ConsoleConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per process lifetime:
//
//	var cfg1 ConsoleConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 ConsoleConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently, so every component can declare
// its own configuration struct and still read one consistent snapshot:
//
//	type HookConfig struct {
//		Zone   string `env:"HE_ZONE,required"`
//		Domain string `env:"CERTBOT_DOMAIN,required"`
//	}
//
//	config.MustLoad(&ConsoleConfig{})
//	config.MustLoad(&HookConfig{})
package config
