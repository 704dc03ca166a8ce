package server

import (
	"github.com/joeshaw/envdecode"
)

// Config is the server's runtime configuration, read from the
// environment. Every field has a default so a bare `rivals-web` works.
type Config struct {
	// Addr is the listen address
	Addr string `env:"RIVALS_ADDR,default=:8000"`
	// CardsPath points at the card catalog file
	CardsPath string `env:"RIVALS_CARDS,default=data/cards.json"`
	// BalancePath optionally points at a YAML balance override file
	BalancePath string `env:"RIVALS_BALANCE"`
	// Origin is the allowed CORS origin
	Origin string `env:"RIVALS_ORIGIN,default=*"`
}

// ConfigFromEnv reads the server configuration from the environment
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
