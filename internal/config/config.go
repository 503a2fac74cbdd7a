// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the process needs at startup. The portal and
// relay addresses identify the externally-deployed contracts whose messages
// the dispatcher routes by sender.
type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	EtherPortal  string `env:"ETHER_PORTAL_ADDRESS" envDefault:"0xffdbe43d4c855bf7e0f105c400a50857f53ab044"`
	ERC20Portal  string `env:"ERC20_PORTAL_ADDRESS" envDefault:"0x9c21aeb2093c32ddbc53eef24b873bdcd1ada1db"`
	ERC721Portal string `env:"ERC721_PORTAL_ADDRESS" envDefault:"0x237f8dd094c0e47f4236f12b4fa01d6dae89fb87"`
	AddressRelay string `env:"DAPP_ADDRESS_RELAY" envDefault:"0xf5de34d6bbc0446e2a45719e718efebaae179dae"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}
	return cfg, nil
}
